package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/drills/internal/prompt"
	"github.com/aretw0/drills/pkg/wordfreq"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	wordfreqGlob        string
	wordfreqWidth       int
	wordfreqInteractive bool
)

var wordfreqCmd = &cobra.Command{
	Use:   "wordfreq [text...]",
	Short: "Count word occurrences",
	Long: `Count how often each lowercased word occurs and print them by descending count.

The text comes from, in order: files matching --glob, the arguments, piped standard
input, or an interactive prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := wordfreqText(cmd, args)
		if err != nil {
			return err
		}

		width := wordfreqWidth
		if width <= 0 {
			width = settings.WordFreq.Width
		}

		freqs := wordfreq.Analyse(text)
		slog.Debug("Text analysed", "words", wordfreq.Total(freqs), "distinct", len(freqs))
		return wordfreq.Render(cmd.OutOrStdout(), freqs, width)
	},
}

func wordfreqText(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case wordfreqGlob != "":
		return wordfreq.ReadFiles(wordfreqGlob)
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if !wordfreqInteractive && !isTerminal(in) {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", errors.New("no text to analyse")
		}
		return string(data), nil
	}

	p := prompt.New(in, cmd.OutOrStdout())
	text, err := p.Until("Enter text to be analysed", prompt.NonEmpty("Please enter a non-empty string"))
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return text, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.AddCommand(wordfreqCmd)
	wordfreqCmd.Flags().StringVar(&wordfreqGlob, "glob", "", "Analyse files matching this pattern (supports **)")
	wordfreqCmd.Flags().IntVar(&wordfreqWidth, "width", 0, "Column width for words and counts (default from config, 20)")
	wordfreqCmd.Flags().BoolVarP(&wordfreqInteractive, "interactive", "i", false, "Prompt for a line of text even when input is piped")
}
