package platform

import (
	"context"

	"github.com/aretw0/drills/pkg/adapters/fs"
	"github.com/aretw0/drills/pkg/core"
)

// NewRepository builds the file adapter for path from the given options.
func NewRepository(path string, opts ...Option) *fs.Repository {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newFSRepository(path, o)
}

// OpenNotebook wires a repository into a notebook and loads it.
//
//	nb, err := platform.OpenNotebook(ctx, "notes/notes.json", platform.WithLogger(logger))
func OpenNotebook(ctx context.Context, path string, opts ...Option) (*core.Notebook, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = newFSRepository(path, o)
	}

	nb := core.NewNotebook(repo,
		core.WithLogger(o.logger),
		core.WithDateLayout(o.dateLayout),
		core.WithClock(o.now),
	)
	if err := nb.Open(ctx); err != nil {
		return nil, err
	}
	return nb, nil
}

func newFSRepository(path string, o *options) *fs.Repository {
	return fs.NewRepository(fs.Config{
		Path:        path,
		ReadOnly:    o.readOnly,
		Logger:      o.logger,
		Serializers: o.serializers,
	})
}
