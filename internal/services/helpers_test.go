package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
)

// fakeClock is a settable clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// flakyRepository wraps a real repository and fails writes on demand
type flakyRepository struct {
	sqlite.Repository
	failWrites bool
	writes     int
}

func (r *flakyRepository) SetItem(ctx context.Context, key, value string) error {
	if r.failWrites {
		return errors.New("disk full")
	}
	r.writes++
	return r.Repository.SetItem(ctx, key, value)
}

func newTestRepository(t *testing.T) *flakyRepository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return &flakyRepository{Repository: repo}
}

func setupTaskStore(t *testing.T) (TaskStore, *flakyRepository, *fakeClock) {
	t.Helper()
	repo := newTestRepository(t)
	clock := newFakeClock()
	store := NewTaskStore(repo, DefaultStorageKey, NewTimeServiceWithClock(clock.Now), logging.Nop())
	require.NoError(t, store.Load(context.Background()))
	return store, repo, clock
}

func storedValue(t *testing.T, repo sqlite.Repository) string {
	t.Helper()
	value, _, err := repo.GetItem(context.Background(), DefaultStorageKey)
	require.NoError(t, err)
	return value
}
