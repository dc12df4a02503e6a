package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// DefaultDateLayout renders dates like "14 Oct 2026".
const DefaultDateLayout = "02 Jan 2006"

// Notebook handles the business logic for notes.
// It keeps every note in memory, keyed by normalized title, and only touches
// the repository on Open and Save.
type Notebook struct {
	repo       Repository
	notes      map[string]Note
	logger     *slog.Logger
	dateLayout string
	now        func() time.Time
	dirty      bool
}

// NotebookOption configures a Notebook.
type NotebookOption func(*Notebook)

// WithLogger sets the logger used by the notebook.
func WithLogger(logger *slog.Logger) NotebookOption {
	return func(n *Notebook) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithDateLayout sets the time layout used to stamp notes.
func WithDateLayout(layout string) NotebookOption {
	return func(n *Notebook) {
		if layout != "" {
			n.dateLayout = layout
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) NotebookOption {
	return func(n *Notebook) {
		if now != nil {
			n.now = now
		}
	}
}

// NewNotebook creates an empty Notebook backed by repo.
func NewNotebook(repo Repository, opts ...NotebookOption) *Notebook {
	n := &Notebook{
		repo:       repo,
		notes:      make(map[string]Note),
		logger:     slog.Default(),
		dateLayout: DefaultDateLayout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Open replaces the in-memory notes with the repository contents.
// A malformed document is logged and leaves the notebook empty.
func (n *Notebook) Open(ctx context.Context) error {
	n.notes = make(map[string]Note)
	n.dirty = false

	loaded, err := n.repo.Load(ctx)
	if errors.Is(err, ErrMalformed) {
		n.logger.Warn("Failed to parse notes, starting empty", "error", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	for _, note := range loaded {
		key := NormalizeTitle(note.Title)
		if key == "" {
			n.logger.Debug("Skipping note without title")
			continue
		}
		note.Title = key
		n.notes[key] = note
	}
	n.logger.Debug("Notebook opened", "notes", len(n.notes))
	return nil
}

// Create inserts a new note stamped with the current date.
// An existing note with the same title is overwritten; existed reports whether that happened.
func (n *Notebook) Create(title, body string) (note Note, existed bool, err error) {
	key := NormalizeTitle(title)
	if key == "" {
		return Note{}, false, ErrEmptyTitle
	}

	_, existed = n.notes[key]
	note = Note{
		Title: key,
		Date:  n.stamp(),
		Body:  strings.TrimSpace(body),
	}
	n.notes[key] = note
	n.dirty = true
	n.logger.Debug("Note created", "title", key, "overwritten", existed)
	return note, existed, nil
}

// Update replaces the body of an existing note and refreshes its date.
func (n *Notebook) Update(title, body string) (Note, error) {
	key := NormalizeTitle(title)
	if _, ok := n.notes[key]; !ok {
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	delete(n.notes, key)
	note := Note{
		Title: key,
		Date:  n.stamp(),
		Body:  strings.TrimSpace(body),
	}
	n.notes[key] = note
	n.dirty = true
	n.logger.Debug("Note updated", "title", key)
	return note, nil
}

// Delete removes a note. Deleting an absent title is a no-op.
func (n *Notebook) Delete(title string) (Note, bool) {
	key := NormalizeTitle(title)
	note, ok := n.notes[key]
	if !ok {
		return Note{Title: key}, false
	}
	delete(n.notes, key)
	n.dirty = true
	n.logger.Debug("Note deleted", "title", key)
	return note, true
}

// Get retrieves a note by title, case-insensitively.
func (n *Notebook) Get(title string) (Note, error) {
	key := NormalizeTitle(title)
	note, ok := n.notes[key]
	if !ok {
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return note, nil
}

// Has reports whether a note with this title exists.
func (n *Notebook) Has(title string) bool {
	_, ok := n.notes[NormalizeTitle(title)]
	return ok
}

// List returns all notes sorted by title.
func (n *Notebook) List() []Note {
	notes := make([]Note, 0, len(n.notes))
	for _, note := range n.notes {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Title < notes[j].Title
	})
	return notes
}

// Len returns the number of notes.
func (n *Notebook) Len() int {
	return len(n.notes)
}

// Save writes every note through the repository.
func (n *Notebook) Save(ctx context.Context) error {
	if err := n.repo.Store(ctx, n.List()); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	n.dirty = false
	n.logger.Debug("Notebook saved", "notes", len(n.notes))
	return nil
}

func (n *Notebook) stamp() string {
	return n.now().Format(n.dateLayout)
}
