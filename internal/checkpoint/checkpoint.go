package checkpoint

import (
	"github.com/zeusync/flightrig/internal/core/physics"
	"github.com/zeusync/flightrig/internal/core/systems"
)

// PlayerTag identifies the controlled aircraft in trigger events.
const PlayerTag = "Player"

// DefaultDestroyDelay is the time a passed ring stays visible.
const DefaultDestroyDelay = 3.0

// Scheduler runs a callback once after a delay in simulated seconds.
// systems.Timers satisfies it.
type Scheduler interface {
	After(delay float64, fn func()) systems.TimerID
}

// Checkpoint is one ring. Counter may be nil, in which case passing the
// ring only schedules its destruction.
type Checkpoint struct {
	ID           string
	Volume       physics.SphereVolume
	Counter      *Tracker
	DestroyDelay float64

	scheduler Scheduler
	onDestroy func(*Checkpoint)
	pending   bool
	destroyed bool
}

func New(id string, volume physics.SphereVolume, counter *Tracker, scheduler Scheduler) *Checkpoint {
	return &Checkpoint{
		ID:           id,
		Volume:       volume,
		Counter:      counter,
		DestroyDelay: DefaultDestroyDelay,
		scheduler:    scheduler,
	}
}

// OnTriggerEnter handles an object entering the ring's volume. Only the
// player counts. Destruction is scheduled once, no matter how often the
// player re-enters before it runs.
func (c *Checkpoint) OnTriggerEnter(tag string) {
	if tag != PlayerTag || c.destroyed {
		return
	}
	if c.Counter != nil {
		c.Counter.OnCheckpointEntered(c.ID)
	}
	if c.pending {
		return
	}
	c.pending = true
	if c.scheduler == nil {
		c.destroy()
		return
	}
	c.scheduler.After(c.DestroyDelay, c.destroy)
}

func (c *Checkpoint) destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.onDestroy != nil {
		c.onDestroy(c)
	}
}

// Destroyed reports whether the delayed destruction has run.
func (c *Checkpoint) Destroyed() bool { return c.destroyed }

// Pending reports whether destruction is scheduled but has not run yet.
func (c *Checkpoint) Pending() bool { return c.pending && !c.destroyed }
