package main

import (
	"log/slog"

	"github.com/aretw0/drills/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string

	// settings is loaded before any subcommand runs.
	settings = config.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "Small console exercises: binary conversion, notes and word frequency",
	Long: `Drills bundles three independent beginner programs.
Each subcommand reads from standard input, transforms it and prints the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = cfg
		slog.Debug("Configuration loaded", "notes_file", cfg.Notes.File, "width", cfg.WordFreq.Width)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal("command failed", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (default ./"+config.DefaultFile+" if present)")
}
