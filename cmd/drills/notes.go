package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/drills"
	"github.com/aretw0/drills/internal/notesapp"
	"github.com/aretw0/drills/internal/prompt"
	"github.com/aretw0/drills/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

var (
	notesFile     string
	notesReadOnly bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Take notes interactively",
	Long: `Create, display, update and delete notes from a menu.
Notes are kept in memory and written to the notes file when you choose Quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		nb, _, err := openNotebook(ctx)
		if err != nil {
			return err
		}

		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		session := notesapp.NewSession(p, nb, slog.Default())
		if err := session.Run(ctx); err != nil {
			return fmt.Errorf("notes session ended: %w", err)
		}
		return nil
	},
}

// openNotebook resolves the notes file from flags and config, then loads it.
func openNotebook(ctx context.Context) (*drills.Notebook, *fs.Repository, error) {
	path := notesFile
	if path == "" {
		path = settings.Notes.File
	}

	opts := []drills.Option{
		drills.WithLogger(slog.Default()),
		drills.WithDateLayout(settings.Notes.DateLayout),
		drills.WithReadOnly(notesReadOnly || settings.Notes.ReadOnly),
	}
	repo := drills.NewRepository(path, opts...)

	nb, err := drills.OpenNotebook(ctx, path, append(opts, drills.WithRepository(repo))...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open notes %s: %w", path, err)
	}
	return nb, repo, nil
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.PersistentFlags().StringVarP(&notesFile, "file", "f", "", "Notes file, .json or .yaml (default from config, "+fs.DefaultPath+")")
	notesCmd.PersistentFlags().BoolVar(&notesReadOnly, "read-only", false, "Never write the notes file")
}
