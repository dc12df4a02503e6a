// Package notesapp implements the interactive menu of the notes tool.
package notesapp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/drills/internal/prompt"
	"github.com/aretw0/drills/pkg/core"
)

// Menu is shown before every action is read.
const Menu = `What do you want to do?
1. Create a note
2. Display the notes
3. Update a note
4. Delete a note
5. Quit`

// Session drives one run of the menu loop over a notebook.
type Session struct {
	prompt   *prompt.Prompter
	notebook *core.Notebook
	logger   *slog.Logger
}

// NewSession creates a Session. A nil logger means slog.Default().
func NewSession(p *prompt.Prompter, nb *core.Notebook, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{prompt: p, notebook: nb, logger: logger}
}

// Run reads and executes actions until Quit, which saves the notebook.
// If the input ends first, prompt.ErrNoInput is returned and nothing is saved.
func (s *Session) Run(ctx context.Context) error {
	for {
		action, err := s.ReadAction()
		if err != nil {
			return err
		}
		s.logger.Debug("Action selected", "action", action)

		done, err := s.Execute(ctx, action)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// ReadAction shows the menu until a valid action number is entered.
func (s *Session) ReadAction() (core.Action, error) {
	answer, err := s.prompt.Until(Menu, func(answer string) string {
		_, err := core.ParseAction(answer)
		switch {
		case errors.Is(err, core.ErrNotANumber):
			return "Enter a number"
		case errors.Is(err, core.ErrActionRange):
			return "Invalid input, number should be between 1 and 5"
		}
		return ""
	})
	if err != nil {
		return 0, err
	}
	return core.ParseAction(answer)
}

// Execute performs a single action. done is true once the session should end.
func (s *Session) Execute(ctx context.Context, action core.Action) (done bool, err error) {
	switch action {
	case core.ActionCreate:
		return false, s.create()
	case core.ActionDisplay:
		s.display()
		return false, nil
	case core.ActionUpdate:
		return false, s.update()
	case core.ActionDelete:
		return false, s.delete()
	case core.ActionQuit:
		s.prompt.Println("Quit")
		s.prompt.Println("Saving notes...")
		return true, s.notebook.Save(ctx)
	default:
		return false, core.ErrActionRange
	}
}

func (s *Session) create() error {
	title, err := s.prompt.Line("Enter a title for your note:")
	if err != nil {
		return err
	}
	body, err := s.prompt.Line("Enter the body of your note:")
	if err != nil {
		return err
	}

	_, existed, err := s.notebook.Create(title, body)
	if errors.Is(err, core.ErrEmptyTitle) {
		s.prompt.Println("Title cannot be empty")
		return nil
	}
	if err != nil {
		return err
	}
	if existed {
		s.prompt.Println("Note already exists")
	}
	return nil
}

func (s *Session) display() {
	s.prompt.Println("Notes:")
	notes := s.notebook.List()
	if len(notes) == 0 {
		s.prompt.Println("No notes found")
	}
	for _, note := range notes {
		s.prompt.Printf("%s - %s\n", note.Title, note.Date)
		s.prompt.Printf("\t%s\n", note.Body)
	}
	s.prompt.Println()
}

func (s *Session) update() error {
	title, err := s.prompt.Line("Enter the title of the note you want to update:")
	if err != nil {
		return err
	}
	if !s.notebook.Has(title) {
		s.prompt.Println("Note not found")
		return nil
	}

	body, err := s.prompt.Line("Enter the new body of the note:")
	if err != nil {
		return err
	}
	_, err = s.notebook.Update(title, body)
	return err
}

func (s *Session) delete() error {
	title, err := s.prompt.Line("Enter the title of the note you want to delete:")
	if err != nil {
		return err
	}

	s.prompt.Printf("Deleting note '%s'\n", core.NormalizeTitle(title))
	s.notebook.Delete(title)
	return nil
}
