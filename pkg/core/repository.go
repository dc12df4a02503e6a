package core

import "context"

// Repository defines the contract for loading and storing a notebook.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism (JSON file, YAML file, memory).
type Repository interface {
	// Load returns every persisted note. A store that was never written
	// returns no notes and no error.
	Load(ctx context.Context) ([]Note, error)

	// Store replaces the persisted notes with the given set.
	Store(ctx context.Context, notes []Note) error
}
