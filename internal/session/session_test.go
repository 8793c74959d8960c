package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(out *bytes.Buffer, opts ...Option) *Session {
	return New(engine.New(), cli.NewRenderer(out, cli.FormatText, cli.Palette{}), opts...)
}

func TestSession_Run(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out)

	input := strings.NewReader("10 2\n1 2 even -odd\n1 2 spy duck\nabc\n0\n7\n")
	require.NoError(t, s.Run(context.Background(), cli.NewLineReader(input)))

	want := Greeting + "\n" +
		"Enter a request:\n" +
		"10 is even, duck, jumping, happy\n" +
		"11 is odd, palindromic, sad\n" +
		"Enter a request:\n" +
		"2 is even, palindromic, spy, jumping, sad\n" +
		"4 is even, palindromic, spy, square, jumping, sad\n" +
		"Enter a request:\n" +
		"The request contains mutually exclusive properties: [DUCK, SPY]\n" +
		"There are no numbers with these properties.\n" +
		"Enter a request:\n" +
		"The first parameter should be a natural number or zero.\n" +
		"Enter a request:\n" +
		"Goodbye!\n"
	assert.Equal(t, want, out.String())
}

func TestSession_RunStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, WithGreeting(false), WithPrompt(false))

	require.NoError(t, s.Run(context.Background(), cli.NewLineReader(strings.NewReader("5"))))
	assert.Contains(t, out.String(), "Properties of 5\n")
	assert.NotContains(t, out.String(), Farewell)
}

func TestSession_RunCancelled(t *testing.T) {
	var out bytes.Buffer
	s := newSession(&out, WithGreeting(false))

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, cli.NewLineReader(pr))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_Handle(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		contains string
		exit     bool
	}{
		{name: "exit", line: "0", contains: "Goodbye!", exit: true},
		{name: "exit with plus", line: " +0 ", contains: "Goodbye!", exit: true},
		{name: "single", line: "1", contains: "Properties of 1\n"},
		{name: "bad count", line: "1 0", contains: "The second parameter should be a natural number."},
		{
			name:     "unknown property",
			line:     "1 2 prime",
			contains: "The property [PRIME] is wrong.\nAvailable properties: [EVEN, ODD, BUZZ",
		},
		{
			name:     "contradiction",
			line:     "1 2 even -even",
			contains: "mutually exclusive properties: [-EVEN, EVEN]",
		},
		{name: "empty line", line: "", contains: "The first parameter should be a natural number or zero."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			exit, err := newSession(&out).Handle(context.Background(), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.exit, exit)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestSession_HandleKeepsEstimatorBetweenRequests(t *testing.T) {
	var out bytes.Buffer
	eng := engine.New()
	s := New(eng, cli.NewRenderer(&out, cli.FormatText, cli.Palette{}))

	_, err := s.Handle(context.Background(), "24 2")
	require.NoError(t, err)
	// The sunny check on 25 looks at 26 and leaves the estimate past it.
	assert.Equal(t, int64(6), eng.Estimator().Root)

	_, err = s.Handle(context.Background(), "35")
	require.NoError(t, err)
	assert.Equal(t, int64(36), eng.Estimator().Square)
	assert.Contains(t, out.String(), "sunny: true")
}
