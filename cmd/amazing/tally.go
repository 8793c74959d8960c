package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/request"
	"github.com/spf13/cobra"
)

func tallyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally START COUNT",
		Short: "Count how many numbers in a range hold each property",
		Long: `Classify COUNT consecutive numbers from START and report, per property,
how many of them hold it. Progress is drawn on stderr.

Examples:
  amazing tally 1 1000000
  amazing tally --format json 1 1000`,
		Args: cobra.ExactArgs(2),
		RunE: runTally,
	}

	cmd.Flags().Bool("no-progress", false, "do not draw a progress bar")

	return cmd
}

func runTally(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	req, err := request.Parse(strings.Join(args, " "))
	if err != nil {
		return reject(renderer, err)
	}

	var onStep func()
	var progress *cli.Progress
	if noProgress, _ := cmd.Flags().GetBool("no-progress"); !noProgress {
		progress = cli.NewProgress(os.Stderr, req.Count, "Counting")
		onStep = progress.Step
	}

	tally, err := newEngine().Tally(ctx, req.Start, req.Count, onStep)
	if progress != nil && err == nil {
		progress.Finish()
	}
	if err != nil {
		return fmt.Errorf("failed to tally properties: %w", err)
	}

	return renderer.Tally(tally)
}
