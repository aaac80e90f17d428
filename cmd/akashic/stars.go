package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

func newStarsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stars [system]",
		Short: "List the fixed stars used for generic readings",
		Example: `  akashic stars
  akashic stars sirius -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			stars := akashic.FixedStars()
			if len(args) == 1 {
				star, ok := akashic.FixedStar(args[0])
				if !ok {
					return fmt.Errorf("unknown star system %q", args[0])
				}
				stars = []domain.StarseedConnection{star}
			}

			if format != formatText {
				return writeStructured(cmd.OutOrStdout(), format, stars)
			}
			writeStars(cmd.OutOrStdout(), stars)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}

func writeStars(w io.Writer, stars []domain.StarseedConnection) {
	for _, s := range stars {
		fmt.Fprintf(w, "%-9s %-9s %2g° %-10s %s\n", s.StarSystem, s.FixedStar, s.Degree, s.Sign, s.ConnectionType)
		fmt.Fprintf(w, "          %s\n", s.Description)
	}
}
