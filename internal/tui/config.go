package tui

import (
	"github.com/Veraticus/amazing-numbers/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Width      int
	Height     int
	Scrollback int
	History    int
	Color      bool
	ShowHelp   bool
	Greeting   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Width:      80,
		Height:     24,
		Scrollback: 2000,
		History:    100,
		Color:      true,
		ShowHelp:   true,
		Greeting:   true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithScrollback caps how many output lines are kept.
func WithScrollback(lines int) Option {
	return func(c *Config) {
		c.Scrollback = lines
	}
}

// WithColor toggles styling of request output.
func WithColor(enabled bool) Option {
	return func(c *Config) {
		c.Color = enabled
	}
}

// WithGreeting toggles the welcome text shown at start.
func WithGreeting(enabled bool) Option {
	return func(c *Config) {
		c.Greeting = enabled
	}
}

// WithHelp toggles the key help line.
func WithHelp(enabled bool) Option {
	return func(c *Config) {
		c.ShowHelp = enabled
	}
}
