package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

func newRaysCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rays",
		Short: "Describe the seven rays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if format != formatText {
				return writeStructured(cmd.OutOrStdout(), format, akashic.Rays())
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.New(render.Plain).Rays())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	return cmd
}
