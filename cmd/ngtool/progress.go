package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/viant/ngtooling/generator"
)

// progressReporter renders generator progress as a single redrawn line
type progressReporter struct {
	out     io.Writer
	bar     progress.Model
	percent float64
}

func newProgressReporter(out io.Writer) *progressReporter {
	return &progressReporter{
		out: out,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
	}
}

func (p *progressReporter) Report(update generator.Progress) {
	p.percent += update.Increment
	if p.percent > 100 {
		p.percent = 100
	}
	fmt.Fprintf(p.out, "\r\033[K%s %s", p.bar.ViewAs(p.percent/100), SubtitleStyle.Render(update.Message))
}

// Done terminates the progress line
func (p *progressReporter) Done() {
	fmt.Fprintln(p.out)
}
