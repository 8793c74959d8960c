package tui

// requestDoneMsg carries the rendered answer to one submitted line.
type requestDoneMsg struct {
	err    error
	output string
	line   string
	exit   bool
}
