package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

var notesStatCmd = &cobra.Command{
	Use:   "stat",
	Short: "Show the notebook and storage state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nb, repo, err := openNotebook(context.Background())
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{
			nb.ComponentType():   nb.State(),
			repo.ComponentType(): repo.State(),
		})
	},
}

func init() {
	notesCmd.AddCommand(notesStatCmd)
}
