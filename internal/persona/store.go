package persona

import (
	"context"
	"fmt"
)

// Store is the persistence contract for persona profiles. Names are
// case-insensitive unique keys; Save is a full-replace upsert with
// last-writer-wins semantics.
//
// Any backend satisfying this interface is substitutable; the rest of
// the system never sees past it.
type Store interface {
	// Save upserts a profile by name. Saving a non-built-in profile
	// under a reserved built-in name fails with ErrNameReserved.
	Save(ctx context.Context, p Profile) error

	// Get returns the profile for name, or ErrNotFound.
	Get(ctx context.Context, name string) (Profile, error)

	// List returns all profiles. Order is implementation-defined and
	// documented per backend; callers must not assume more.
	List(ctx context.Context) ([]Profile, error)

	// Remove deletes by name, reporting whether anything was deleted.
	Remove(ctx context.Context, name string) (bool, error)
}

// checkReserved enforces the reserved-name policy shared by all
// backends.
func checkReserved(p Profile) error {
	if !p.BuiltIn && IsReserved(p.Name) {
		return fmt.Errorf("%w: %q", ErrNameReserved, p.Name)
	}
	return nil
}
