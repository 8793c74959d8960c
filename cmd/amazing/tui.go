package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/tui"
	"github.com/Veraticus/amazing-numbers/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive prompt full screen",
		Long: `Open a full-screen prompt with scrollback, request history and the
ability to stop a long search with Esc.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}

	cmd.Flags().String("theme", "default", fmt.Sprintf("color theme (%s)", strings.Join(themes.Names(), ", ")))

	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	themeName, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}

	err = tui.Run(cmd.Context(), newEngine(),
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithColor(appConfig.Display.Color),
	)
	if err != nil && cmd.Context().Err() != nil {
		return nil
	}
	return err
}
