package fs

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	ReadOnly bool   `json:"read_only"`
	Exists   bool   `json:"exists"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{
		Path:     r.Path,
		Format:   r.format,
		ReadOnly: r.config.ReadOnly,
		Exists:   fileExists(r.Path),
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
