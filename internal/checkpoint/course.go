package checkpoint

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/zeusync/flightrig/internal/core/events/bus"
	"github.com/zeusync/flightrig/internal/core/observability/log"
	"github.com/zeusync/flightrig/internal/core/physics"
)

var ErrDuplicateRing = errors.New("checkpoint: duplicate ring id")

// Ring describes one checkpoint when building a Course.
type Ring struct {
	ID     string
	Volume physics.SphereVolume
}

// Course owns the rings of a scene and routes trigger events to them.
// Destroyed rings leave the course; the tracker total is unaffected.
type Course struct {
	tracker *Tracker
	rings   []*Checkpoint
	events  bus.EventBus
	sub     bus.Subscription
	logger  log.Log
}

// NewCourse builds rings with a shared tracker and subscribes to
// physics.EventTriggerEnter on events.
func NewCourse(rings []Ring, display Display, scheduler Scheduler, destroyDelay float64, events bus.EventBus, logger log.Log) (*Course, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	ids := lo.Map(rings, func(r Ring, _ int) string { return r.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateRing, dups)
	}

	c := &Course{
		tracker: NewTracker(ids, display, WithEvents(events), WithTrackerLogger(logger)),
		events:  events,
		logger:  logger.Named("course"),
	}
	for _, r := range rings {
		cp := New(r.ID, r.Volume, c.tracker, scheduler)
		cp.DestroyDelay = destroyDelay
		cp.onDestroy = c.remove
		c.rings = append(c.rings, cp)
	}

	if events != nil {
		sub, err := events.Subscribe(physics.EventTriggerEnter, c.handleTrigger)
		if err != nil {
			return nil, err
		}
		c.sub = sub
	}
	return c, nil
}

func (c *Course) handleTrigger(e bus.Event) error {
	data, ok := e.Data().(physics.TriggerEvent)
	if !ok {
		return fmt.Errorf("checkpoint: unexpected %s payload %T", e.Type(), e.Data())
	}
	if cp, found := c.Ring(data.VolumeID); found {
		cp.OnTriggerEnter(data.Tag)
	}
	return nil
}

func (c *Course) remove(cp *Checkpoint) {
	c.rings = lo.Without(c.rings, cp)
	c.logger.Debug("ring destroyed", log.String("id", cp.ID))
	if c.events != nil {
		if err := c.events.Publish(bus.NewEvent(EventDestroyed, "checkpoints", cp.ID)); err != nil {
			c.logger.Warn("event handler failed", log.String("event", EventDestroyed), log.Error(err))
		}
	}
}

// Ring looks up a ring that has not been destroyed yet.
func (c *Course) Ring(id string) (*Checkpoint, bool) {
	return lo.Find(c.rings, func(cp *Checkpoint) bool { return cp.ID == id })
}

// Rings returns the rings still in the scene.
func (c *Course) Rings() []*Checkpoint { return append([]*Checkpoint(nil), c.rings...) }

func (c *Course) Tracker() *Tracker { return c.tracker }

// Close stops listening for trigger events.
func (c *Course) Close() error {
	if c.events == nil {
		return nil
	}
	return c.events.Unsubscribe(c.sub)
}
