package back

import (
	"time"
)

// Back holds the player roster logic: validation, leveling, and search.
// Persistence is delegated to a Store.
type Back struct {
	store Store

	// now is the clock used to validate birthdays.
	now func() time.Time
}

// New returns a Back persisting to store, its only collaborator. Birthdays are
// validated against time.Now.
func New(store Store) *Back {
	return &Back{
		store: store,
		now:   time.Now,
	}
}
