// Package autosave debounces save operations.
//
// Editing an initial balance fires a save per keystroke. Instead of writing
// every intermediate value, a scheduled save waits out a short delay and is
// cancelled and rescheduled by the next edit, so only the last value of a
// burst is persisted.
package autosave

import (
	"sync"
	"time"
)

// Saver debounces save functions per key. The zero value is not usable, use
// New.
type Saver struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*time.Timer
}

// New returns a Saver that fires a scheduled save after the given delay.
func New(delay time.Duration) *Saver {
	return &Saver{
		delay:   delay,
		pending: make(map[string]*time.Timer),
	}
}

// Schedule runs save after the configured delay. A save already scheduled
// for the same key is cancelled first, so rapid successive schedules persist
// only the last one. Saves for different keys do not affect each other.
func (s *Saver) Schedule(key string, save func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.pending[key]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.delay, func() {
		save()

		// Only forget the schedule if it has not been superseded while
		// the save ran.
		s.mu.Lock()
		if s.pending[key] == timer {
			delete(s.pending, key)
		}
		s.mu.Unlock()
	})
	s.pending[key] = timer
}

// Cancel drops a scheduled save for the key, if any.
func (s *Saver) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.pending[key]; ok {
		timer.Stop()
		delete(s.pending, key)
	}
}

// Wait blocks until no save is scheduled for the key. It exists for tests
// and shutdown paths.
func (s *Saver) Wait(key string) {
	for {
		s.mu.Lock()
		_, ok := s.pending[key]
		s.mu.Unlock()

		if !ok {
			return
		}

		time.Sleep(time.Millisecond)
	}
}
