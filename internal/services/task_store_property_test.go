package services

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"task-tracker/internal/domain"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
)

// modelTask is the expected state of one task after a sequence of operations
type modelTask struct {
	id        int64
	text      string
	completed bool
}

func checkAgainstModel(t *rapid.T, label string, got []domain.Task, want []modelTask) {
	if len(got) != len(want) {
		t.Fatalf("%s: %d tasks, model has %d", label, len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].id || got[i].Text != want[i].text || got[i].Completed != want[i].completed {
			t.Fatalf("%s: task %d = {%d %q %v}, model {%d %q %v}", label, i,
				got[i].ID, got[i].Text, got[i].Completed, want[i].id, want[i].text, want[i].completed)
		}
	}
}

func TestProperty_StoreOperationSequence(t *testing.T) {
	ops := []string{"add", "toggle", "remove", "toggleUnknown", "removeUnknown"}
	texts := []string{"Buy milk", "Call mom", "Run 5k", "", "   "}

	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		repo, err := sqlite.New(":memory:")
		if err != nil {
			t.Fatalf("open repository: %v", err)
		}
		defer repo.Close()

		clock := newFakeClock()
		store := NewTaskStore(repo, DefaultStorageKey, NewTimeServiceWithClock(clock.Now), logging.Nop())
		if err := store.Load(ctx); err != nil {
			t.Fatalf("load: %v", err)
		}

		var model []modelTask
		steps := rapid.IntRange(1, 25).Draw(t, "steps")
		for step := 0; step < steps; step++ {
			switch rapid.SampledFrom(ops).Draw(t, "op") {
			case "add":
				text := rapid.SampledFrom(texts).Draw(t, "text")
				task, err := store.Add(ctx, domain.NewTaskInput{Text: text})
				if err != nil {
					t.Fatalf("add: %v", err)
				}
				if strings.TrimSpace(text) == "" {
					if task != nil {
						t.Fatalf("blank text added task %d", task.ID)
					}
					continue
				}
				if n := len(model); n > 0 && task.ID <= model[n-1].id {
					t.Fatalf("id %d not after %d", task.ID, model[n-1].id)
				}
				model = append(model, modelTask{id: task.ID, text: text})

			case "toggle":
				if len(model) == 0 {
					continue
				}
				i := rapid.IntRange(0, len(model)-1).Draw(t, "index")
				_, found, err := store.Toggle(ctx, model[i].id)
				if err != nil || !found {
					t.Fatalf("toggle %d: found=%v err=%v", model[i].id, found, err)
				}
				model[i].completed = !model[i].completed

			case "remove":
				if len(model) == 0 {
					continue
				}
				i := rapid.IntRange(0, len(model)-1).Draw(t, "index")
				removed, err := store.Remove(ctx, model[i].id)
				if err != nil || !removed {
					t.Fatalf("remove %d: removed=%v err=%v", model[i].id, removed, err)
				}
				model = append(model[:i], model[i+1:]...)

			case "toggleUnknown":
				// Real ids are millisecond timestamps, far above this range.
				id := rapid.Int64Range(1, 1000).Draw(t, "unknownID")
				if _, found, err := store.Toggle(ctx, id); err != nil || found {
					t.Fatalf("toggle unknown %d: found=%v err=%v", id, found, err)
				}

			case "removeUnknown":
				id := rapid.Int64Range(1, 1000).Draw(t, "unknownID")
				if removed, err := store.Remove(ctx, id); err != nil || removed {
					t.Fatalf("remove unknown %d: removed=%v err=%v", id, removed, err)
				}
			}

			checkAgainstModel(t, "in memory", store.Tasks(), model)

			reloaded := NewTaskStore(repo, DefaultStorageKey, NewTimeServiceWithClock(clock.Now), logging.Nop())
			if err := reloaded.Load(ctx); err != nil {
				t.Fatalf("reload: %v", err)
			}
			checkAgainstModel(t, "reloaded", reloaded.Tasks(), model)
		}
	})
}
