package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/drills/internal/prompt"
	"github.com/aretw0/drills/pkg/binary"
	"github.com/spf13/cobra"
)

var bin2decCmd = &cobra.Command{
	Use:   "bin2dec [binary]",
	Short: "Convert a binary number to decimal",
	Long: `Convert a string of 0s and 1s to its decimal value.
Without an argument the number is read from standard input, asking again until it is valid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var bin string
		if len(args) == 1 {
			bin = args[0]
		} else {
			p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			answer, err := p.Until("Enter a binary number:", func(answer string) string {
				_, err := binary.ToDecimal(answer)
				switch {
				case errors.Is(err, binary.ErrOverflow):
					return "Please enter a binary number of at most 64 significant bits"
				case err != nil:
					return "Please enter a binary number (should contain only 0 and 1)"
				}
				return ""
			})
			if err != nil {
				return fmt.Errorf("failed to read binary number: %w", err)
			}
			bin = answer
		}

		dec, err := binary.ToDecimal(bin)
		if err != nil {
			return fmt.Errorf("cannot convert %q: %w", bin, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s in decimal is %d\n", bin, dec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bin2decCmd)
}
