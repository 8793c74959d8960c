package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/engine"
	"github.com/Veraticus/amazing-numbers/internal/session"
	"github.com/Veraticus/amazing-numbers/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of rows around the scrollback: title, two
// border rows, the input line and the help line.
const chromeHeight = 5

// Model holds the main TUI state.
type Model struct {
	ctx        context.Context
	lastError  error
	cancel     context.CancelFunc
	session    *session.Session
	output     *bytes.Buffer
	theme      themes.Theme
	pending    string
	keymap     KeyMap
	scrollback []string
	history    []string
	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	spinner    spinner.Model
	config     Config
	historyPos int
	requests   int
	width      int
	height     int
	busy       bool
	stopped    bool
	quitting   bool
}

// New creates a model answering requests with eng. ctx bounds every request.
func New(ctx context.Context, eng *engine.Engine, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := &bytes.Buffer{}
	renderer := cli.NewRenderer(out, cli.FormatText, cli.Palette{Color: cfg.Color})

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "e.g. 1 10 even -sunny"
	input.PromptStyle = cfg.Theme.Prompt
	input.CharLimit = 512
	input.Focus()

	m := Model{
		ctx:      ctx,
		session:  session.New(eng, renderer, session.WithGreeting(false), session.WithPrompt(false)),
		output:   out,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		input:    input,
		viewport: viewport.New(cfg.Width, 1),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cfg.Theme.Busy)),
		config:   cfg,
	}
	m.resize(cfg.Width, cfg.Height)

	if cfg.Greeting {
		m.appendOutput(session.Greeting)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case requestDoneMsg:
		return m.finishRequest(msg)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		if m.cancel != nil {
			m.cancel()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Cancel):
		if m.busy {
			m.stopped = true
			m.cancel()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ClearScreen):
		m.scrollback = nil
		m.viewport.SetContent("")
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keymap.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.HistoryPrev):
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keymap.HistoryNext):
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[m.historyPos])
			m.input.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.input.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	if line != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != line) {
		m.history = append(m.history, line)
		if len(m.history) > m.config.History {
			m.history = m.history[len(m.history)-m.config.History:]
		}
	}
	m.historyPos = len(m.history)

	m.appendOutput(m.theme.Echo.Render("> " + line))
	m.requests++
	m.busy = true
	m.stopped = false
	m.pending = line

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	return m, tea.Batch(handleRequest(ctx, m.session, m.output, line), m.spinner.Tick)
}

func (m Model) finishRequest(msg requestDoneMsg) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.busy = false
	m.pending = ""

	m.appendOutput(msg.output)
	if m.stopped {
		m.appendOutput(m.theme.Busy.Render("Request stopped."))
		m.stopped = false
	}

	if msg.err != nil {
		m.lastError = msg.err
		m.appendOutput(fmt.Sprintf("Error: %v", msg.err))
	}

	if msg.exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// appendOutput adds text to the scrollback and follows it.
func (m *Model) appendOutput(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}

	m.scrollback = append(m.scrollback, strings.Split(text, "\n")...)
	if limit := m.config.Scrollback; limit > 0 && len(m.scrollback) > limit {
		m.scrollback = m.scrollback[len(m.scrollback)-limit:]
	}

	m.viewport.SetContent(strings.Join(m.scrollback, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	chrome := chromeHeight
	if !m.config.ShowHelp {
		chrome--
	}

	m.viewport.Width = max(width-2, 1)
	m.viewport.Height = max(height-chrome, 1)
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
	m.help.Width = width
	m.viewport.GotoBottom()
}

// Scrollback returns the output lines currently kept.
func (m Model) Scrollback() []string {
	return m.scrollback
}

// Err returns the last output failure, if any.
func (m Model) Err() error {
	return m.lastError
}
