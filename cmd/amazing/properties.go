package main

import (
	"os"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/spf13/cobra"
)

func propertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the supported properties",
		Long: `Show every property with the property it can never share a number with,
and whether every number has one of the pair.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cli.NewRenderer(os.Stdout, cli.FormatText, palette()).Catalog()
		},
	}
}
