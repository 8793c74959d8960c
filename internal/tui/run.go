package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/amazing-numbers/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen session and blocks until the user quits or ctx
// is done.
func Run(ctx context.Context, eng *engine.Engine, opts ...Option) error {
	if eng == nil {
		return fmt.Errorf("engine is required")
	}

	p := tea.NewProgram(New(ctx, eng, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(Model); ok {
		slog.Debug("TUI finished", "requests", m.requests)
		if m.Err() != nil {
			return m.Err()
		}
	}
	return nil
}
