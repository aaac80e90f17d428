package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
)

func newPresetsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the quick-select profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			groups := akashic.Presets()
			if format != formatText {
				return writeStructured(cmd.OutOrStdout(), format, groups)
			}

			out := cmd.OutOrStdout()
			for gi, g := range groups {
				fmt.Fprintf(out, "%s\n", g.Title)
				for pi, p := range g.Profiles {
					fmt.Fprintf(out, "  %d:%d  %-28s %s\n", gi, pi, p.Name, p.BirthPlace)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}
