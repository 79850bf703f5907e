// Package sessionstore persists the session user across client restarts.
// The store is a single mutable slot: writes are whole-record replace or clear.
package sessionstore

import "github.com/genesi-finance/genesi-client/internal/model"

// Store is the persistent session slot. Only the session manager writes to it.
type Store interface {
	// Load returns the stored user, or (nil, nil) when the slot is empty.
	Load() (*model.User, error)
	// Save replaces the slot with the given user.
	Save(u *model.User) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear() error
}
