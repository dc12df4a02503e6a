package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/drills/pkg/adapters/fs"
	"github.com/aretw0/drills/pkg/core"
)

// options holds the internal configuration for a notebook.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	dateLayout  string
	readOnly    bool
	now         func() time.Time
	serializers map[string]fs.Serializer
}

// Option defines a functional option for configuring a notebook.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:      slog.Default(),
		dateLayout:  core.DefaultDateLayout,
		now:         time.Now,
		serializers: make(map[string]fs.Serializer),
	}
}

// WithLogger sets the logger for the notebook and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock, memory).
// If provided, the default file adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithDateLayout sets the time layout used to stamp created and updated notes.
func WithDateLayout(layout string) Option {
	return func(o *options) {
		o.dateLayout = layout
	}
}

// WithClock replaces time.Now (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithReadOnly makes Save fail with core.ErrReadOnly instead of writing the file.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithSerializer registers a serializer for a file extension (e.g. ".json").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
