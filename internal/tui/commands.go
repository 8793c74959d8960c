package tui

import (
	"bytes"
	"context"

	"github.com/Veraticus/amazing-numbers/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// handleRequest answers line off the update loop. The session writes into
// out, which only one request uses at a time.
func handleRequest(ctx context.Context, s *session.Session, out *bytes.Buffer, line string) tea.Cmd {
	return func() tea.Msg {
		exit, err := s.Handle(ctx, line)
		msg := requestDoneMsg{
			line:   line,
			output: out.String(),
			exit:   exit,
			err:    err,
		}
		out.Reset()
		return msg
	}
}
