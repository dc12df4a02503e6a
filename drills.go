package drills

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/drills/internal/platform"
	"github.com/aretw0/drills/pkg/adapters/fs"
	"github.com/aretw0/drills/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// Notebook is a public alias for the core notebook service.
type Notebook = core.Notebook

// --- Configuration ---

// Option defines a functional option for configuring a notebook.
type Option = platform.Option

// WithLogger sets the logger for the notebook and its repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithDateLayout sets the time layout used to stamp notes.
func WithDateLayout(layout string) Option {
	return platform.WithDateLayout(layout)
}

// WithClock replaces time.Now (useful for testing).
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithReadOnly makes saving fail instead of writing the notes file.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithSerializer registers a serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// OpenNotebook loads the notebook stored at path (fs.DefaultPath when empty).
func OpenNotebook(ctx context.Context, path string, opts ...Option) (*core.Notebook, error) {
	if path == "" {
		path = fs.DefaultPath
	}
	return platform.OpenNotebook(ctx, path, opts...)
}

// NewRepository builds the file adapter for path without loading it.
// Pass it to WithRepository to share it with a notebook.
func NewRepository(path string, opts ...Option) *fs.Repository {
	if path == "" {
		path = fs.DefaultPath
	}
	return platform.NewRepository(path, opts...)
}
