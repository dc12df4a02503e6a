package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/drills"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of drills",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "drills version %s\n", strings.TrimSpace(drills.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
