package core

import (
	"github.com/aretw0/introspection"
)

// NotebookState exposes internal state for observability.
type NotebookState struct {
	Notes          int    `json:"notes"`
	Dirty          bool   `json:"dirty"`
	DateLayout     string `json:"date_layout"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (n *Notebook) State() any {
	repoType := "unknown"
	if n.repo != nil {
		repoType = "repository"
		if comp, ok := n.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return NotebookState{
		Notes:          len(n.notes),
		Dirty:          n.dirty,
		DateLayout:     n.dateLayout,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (n *Notebook) ComponentType() string {
	return "notebook"
}

var _ introspection.Introspectable = (*Notebook)(nil)
var _ introspection.Component = (*Notebook)(nil)
