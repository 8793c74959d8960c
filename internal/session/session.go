// Package session runs the request loop shared by the line prompt and the
// full-screen front end.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/common"
	"github.com/Veraticus/amazing-numbers/internal/engine"
	"github.com/Veraticus/amazing-numbers/internal/filter"
	"github.com/Veraticus/amazing-numbers/internal/numbers"
	"github.com/Veraticus/amazing-numbers/internal/request"
)

// Greeting explains the request syntax.
const Greeting = `Welcome to Amazing Numbers!
Supported requests:
- enter a natural number to know its properties;
- enter two natural numbers to obtain the properties of the list:
  * the first parameter represents a starting number;
  * the second parameter shows how many consecutive numbers are to be processed;
- two natural numbers and properties to search for;
- a property preceded by minus must not be present in numbers;
- separate the parameters with one space;
- enter 0 to exit.
`

// Prompt asks for the next request.
const Prompt = "Enter a request:"

// Farewell is printed when the user exits.
const Farewell = "Goodbye!"

// Session answers requests one line at a time.
type Session struct {
	engine   *engine.Engine
	renderer *cli.Renderer
	greet    bool
	prompt   bool
}

// Option configures a session.
type Option func(*Session)

// WithGreeting controls whether Run prints the greeting first.
func WithGreeting(enabled bool) Option {
	return func(s *Session) {
		s.greet = enabled
	}
}

// WithPrompt controls whether Run prints the prompt before each read.
func WithPrompt(enabled bool) Option {
	return func(s *Session) {
		s.prompt = enabled
	}
}

// New creates a session answering with eng and writing through renderer.
func New(eng *engine.Engine, renderer *cli.Renderer, opts ...Option) *Session {
	s := &Session{
		engine:   eng,
		renderer: renderer,
		greet:    true,
		prompt:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and answers requests until the user exits, input ends or ctx is
// done. Invalid requests are reported and the loop goes on.
func (s *Session) Run(ctx context.Context, reader *cli.LineReader) error {
	if s.greet {
		if err := s.renderer.Println(s.renderer.Palette().Title(Greeting)); err != nil {
			return err
		}
	}

	for {
		if s.prompt {
			if err := s.renderer.Println(s.renderer.Palette().Prompt(Prompt)); err != nil {
				return err
			}
		}

		line, err := reader.ReadLine(ctx)
		switch {
		case errors.Is(err, io.EOF):
			slog.Debug("Input ended without an exit request")
			return nil
		case errors.Is(err, cli.ErrInputCancelled):
			return ctx.Err()
		case err != nil:
			return fmt.Errorf("failed to read request: %w", err)
		}

		exit, err := s.Handle(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Handle answers one request line. It reports exit once the user asks to
// leave. The error is only set when output could not be written.
func (s *Session) Handle(ctx context.Context, line string) (bool, error) {
	req, err := request.Parse(line)
	if err != nil {
		common.LogDebug("Rejected request", common.Fields{"line": line, "error": err.Error()})
		return false, s.renderer.Error(err)
	}

	common.LogDebug("Handling request", common.Fields{
		"kind":  req.Kind.String(),
		"start": req.Start,
		"count": req.Count,
	})

	switch req.Kind {
	case request.KindExit:
		return true, s.renderer.Println(Farewell)
	case request.KindSingle:
		return false, s.renderer.Single(s.engine.Single(req.Start))
	case request.KindList:
		return false, s.members(s.engine.List(ctx, req.Start, req.Count))
	case request.KindSearch:
		f, err := filter.Parse(req.Properties)
		if err != nil {
			common.LogDebug("Rejected filter", common.Fields{"properties": req.Properties, "error": err.Error()})
			return false, s.renderer.Error(err)
		}
		return false, s.members(s.engine.Search(ctx, req.Start, req.Count, f))
	default:
		return false, s.renderer.Error(fmt.Errorf("%w: unsupported request", common.ErrInvalidArgument))
	}
}

func (s *Session) members(seq func(func(*numbers.Classifier) bool)) error {
	for c := range seq {
		if err := s.renderer.Member(c); err != nil {
			return err
		}
	}
	return nil
}
