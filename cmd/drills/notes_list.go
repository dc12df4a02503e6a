package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nb, _, err := openNotebook(context.Background())
		if err != nil {
			return err
		}

		notes := nb.List()
		out := cmd.OutOrStdout()

		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}
			return nil
		}

		if len(notes) == 0 {
			fmt.Fprintln(out, "No notes found")
			return nil
		}
		for _, note := range notes {
			fmt.Fprintf(out, "%s - %s\n", note.Title, note.Date)
			fmt.Fprintf(out, "\t%s\n", note.Body)
		}
		return nil
	},
}

func init() {
	notesCmd.AddCommand(notesListCmd)
	notesListCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
