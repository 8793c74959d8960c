package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// progressBatch is how many steps are collected before the bar redraws.
const progressBatch = 4096

// Progress shows how far a long range evaluation has got.
type Progress struct {
	bar     *progressbar.ProgressBar
	pending int
}

// NewProgress creates a progress bar over total steps.
func NewProgress(w io.Writer, total int64, description string) *Progress {
	p := &Progress{}
	p.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return p
}

// Step advances the bar by one.
func (p *Progress) Step() {
	p.pending++
	if p.pending >= progressBatch {
		p.flush()
	}
}

func (p *Progress) flush() {
	if p.pending == 0 {
		return
	}
	if err := p.bar.Add(p.pending); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
	p.pending = 0
}

// Finish draws the remaining steps and completes the bar.
func (p *Progress) Finish() {
	p.flush()
	if err := p.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}
