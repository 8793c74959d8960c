package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/config"
	"github.com/Veraticus/amazing-numbers/internal/session"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	inputPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return fmt.Errorf("failed to get input flag: %w", err)
	}

	var in io.Reader = os.Stdin
	if inputPath != "" {
		path := config.ExpandPath(inputPath)
		file, err := os.Open(path) // #nosec G304 - user-specified request file
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				slog.Error("failed to close input file", "error", closeErr)
			}
		}()
		slog.Debug("Replaying requests", "file", path)
		in = file
	}

	// The prompt always answers in text; --format applies to one-shot commands.
	renderer := cli.NewRenderer(os.Stdout, cli.FormatText, palette())
	s := session.New(newEngine(), renderer)

	if err := s.Run(ctx, cli.NewLineReader(in)); err != nil {
		if ctx.Err() != nil {
			// Interrupted; the handler has already told the user.
			return nil
		}
		return err
	}
	return nil
}
