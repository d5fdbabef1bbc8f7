package sim

import (
	"github.com/zeusync/flightrig/internal/checkpoint"
	"github.com/zeusync/flightrig/internal/core/observability/log"
)

var _ checkpoint.Display = (*TextDisplay)(nil)

// TextDisplay stands in for the on-screen counter and keeps every text it
// was given.
type TextDisplay struct {
	history []string
	logger  log.Log
}

func NewTextDisplay(logger log.Log) *TextDisplay {
	return &TextDisplay{logger: logger.Named("display")}
}

func (d *TextDisplay) SetText(text string) {
	d.history = append(d.history, text)
	d.logger.Debug("counter text", log.String("text", text))
}

func (d *TextDisplay) Text() string {
	if len(d.history) == 0 {
		return ""
	}
	return d.history[len(d.history)-1]
}

func (d *TextDisplay) History() []string { return append([]string(nil), d.history...) }
