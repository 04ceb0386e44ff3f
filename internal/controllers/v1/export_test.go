package v1

import (
	"time"

	"github.com/finance-center/backend/internal/autosave"
)

// SetAutosaveDelay swaps the debounce saver for one with the passed delay so
// tests do not have to wait out the production delay. The returned function
// restores the previous saver.
func SetAutosaveDelay(delay time.Duration) func() {
	previous := balanceSaver
	balanceSaver = autosave.New(delay)

	return func() {
		balanceSaver = previous
	}
}

// WaitForAutosave blocks until no save is scheduled for the key.
func WaitForAutosave(key string) {
	balanceSaver.Wait(key)
}
