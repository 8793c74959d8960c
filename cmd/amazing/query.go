package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/common"
	"github.com/Veraticus/amazing-numbers/internal/filter"
	"github.com/Veraticus/amazing-numbers/internal/request"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check NUMBER",
		Short: "Show every property of one number",
		Long: `Classify one natural number (or zero) and report whether each property
holds for it.

Examples:
  amazing check 1
  amazing check 12321 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
}

func runCheck(_ *cobra.Command, args []string) error {
	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	req, err := request.Parse(args[0])
	if err != nil {
		return reject(renderer, err)
	}

	// Zero ends the interactive prompt but is an ordinary number here.
	return renderer.Single(newEngine().Single(req.Start))
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list START COUNT [PROPERTY...]",
		Short: "List consecutive numbers or search for matching ones",
		Long: `Without properties, report COUNT consecutive numbers starting at START.
With properties, report the first COUNT numbers from START that hold every
named property. Prefix a property with - to exclude it. Flags must come
before START so that excluded properties are not read as flags.

Examples:
  amazing list 1 10
  amazing list 1 5 even -sunny
  amazing list --format yaml 100 3 gapful palindromic`,
		Args: cobra.MinimumNArgs(2),
		RunE: runList,
	}

	// Stop flag parsing at START so -PROPERTY stays an argument.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	req, err := request.Parse(strings.Join(args, " "))
	if err != nil {
		return reject(renderer, err)
	}

	eng := newEngine()
	seq := eng.List(ctx, req.Start, req.Count)
	if req.Kind == request.KindSearch {
		f, err := filter.Parse(req.Properties)
		if err != nil {
			return reject(renderer, err)
		}
		seq = eng.Search(ctx, req.Start, req.Count, f)
	}

	for c := range seq {
		if err := renderer.Member(c); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// reject renders a request error for the user and fails the command.
func reject(renderer *cli.Renderer, err error) error {
	if renderErr := renderer.Error(err); renderErr != nil {
		return fmt.Errorf("failed to report invalid request: %w", renderErr)
	}
	return common.NewUserError("request rejected", fmt.Errorf("%w: %w", common.ErrInvalidArgument, err))
}
