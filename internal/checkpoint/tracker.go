package checkpoint

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/zeusync/flightrig/internal/core/events/bus"
	"github.com/zeusync/flightrig/internal/core/observability/log"
)

// Display receives the progress text whenever it changes.
type Display interface {
	SetText(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

func (f DisplayFunc) SetText(text string) { f(text) }

// Tracker counts rings passed out of a total fixed at Initialize.
type Tracker struct {
	remaining []string
	total     int
	text      string
	display   Display
	events    bus.EventBus
	logger    log.Log
}

type TrackerOption func(*Tracker)

func WithEvents(events bus.EventBus) TrackerOption {
	return func(t *Tracker) { t.events = events }
}

func WithTrackerLogger(logger log.Log) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTracker creates a tracker over ids. display may be nil.
func NewTracker(ids []string, display Display, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		display: display,
		logger:  log.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.Named("checkpoints")
	t.Initialize(ids)
	return t
}

// Initialize snapshots the total. Rings added afterwards never raise it.
func (t *Tracker) Initialize(ids []string) {
	t.remaining = slices.Clone(ids)
	t.total = len(ids)
	t.refresh()
	t.logger.Info("course initialized", log.Int("total", t.total))
}

// OnCheckpointEntered counts the ring with the given id. Unknown or already
// counted ids are ignored and it returns false.
func (t *Tracker) OnCheckpointEntered(id string) bool {
	idx := lo.IndexOf(t.remaining, id)
	if idx < 0 {
		return false
	}
	t.remaining = slices.Delete(t.remaining, idx, idx+1)
	t.refresh()

	data := PassedData{ID: id, Completed: t.Completed(), Total: t.total}
	t.logger.Info("checkpoint passed",
		log.String("id", id),
		log.String("progress", t.text),
	)
	t.publish(EventPassed, data)
	if len(t.remaining) == 0 {
		t.logger.Info("course completed", log.Int("total", t.total))
		t.publish(EventCompleted, data)
	}
	return true
}

func (t *Tracker) refresh() {
	t.text = fmt.Sprintf("%d/%d", t.Completed(), t.total)
	if t.display != nil {
		t.display.SetText(t.text)
	}
}

func (t *Tracker) publish(eventType string, data PassedData) {
	if t.events == nil {
		return
	}
	if err := t.events.Publish(bus.NewEvent(eventType, "checkpoints", data)); err != nil {
		t.logger.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

func (t *Tracker) Completed() int { return t.total - len(t.remaining) }
func (t *Tracker) Total() int     { return t.total }
func (t *Tracker) Text() string   { return t.text }

// Remaining returns the ids not yet passed, in course order.
func (t *Tracker) Remaining() []string { return slices.Clone(t.remaining) }
