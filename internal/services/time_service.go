package services

import (
	"sync"
	"time"

	"task-tracker/internal/domain"
)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	mu     sync.Mutex
	now    func() time.Time
	lastID int64
}

// NewTimeService creates a TimeService backed by the system clock
func NewTimeService() TimeService {
	return NewTimeServiceWithClock(time.Now)
}

// NewTimeServiceWithClock creates a TimeService with an injected clock
func NewTimeServiceWithClock(now func() time.Time) TimeService {
	return &timeServiceImpl{now: now}
}

// Now returns the current time
func (t *timeServiceImpl) Now() time.Time {
	return t.now()
}

// NextID returns now in Unix milliseconds, bumped past the last issued id when
// the clock has not advanced
func (t *timeServiceImpl) NextID(now time.Time) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := now.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

// Observe records an id loaded from storage
func (t *timeServiceImpl) Observe(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id > t.lastID {
		t.lastID = id
	}
}

// FormatDueDate formats a due date for display
func (t *timeServiceImpl) FormatDueDate(dueDate, layout string) string {
	return domain.FormatDueDate(dueDate, layout)
}
