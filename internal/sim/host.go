package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/flightrig/internal/checkpoint"
	"github.com/zeusync/flightrig/internal/core/events/bus"
	"github.com/zeusync/flightrig/internal/core/observability/log"
	"github.com/zeusync/flightrig/internal/core/physics"
	"github.com/zeusync/flightrig/internal/core/systems"
)

var _ systems.System = (*host)(nil)

// host stands in for the physics engine: it integrates the body above the
// ground and raises a trigger event whenever the body enters a ring. Every
// integrated position is folded into trace; equal sums mean the same path.
type host struct {
	body         *physics.Body
	groundHeight float64
	course       *checkpoint.Course
	events       bus.EventBus
	inside       map[string]bool
	trace        *xxhash.Digest
	scratch      [24]byte
	logger       log.Log
}

func newHost(body *physics.Body, groundHeight float64, course *checkpoint.Course, events bus.EventBus, logger log.Log) *host {
	return &host{
		body:         body,
		groundHeight: groundHeight,
		course:       course,
		events:       events,
		inside:       make(map[string]bool),
		trace:        xxhash.New(),
		logger:       logger.Named("host"),
	}
}

func (h *host) Name() string { return "host" }

func (h *host) FixedUpdate(dt float64) {
	h.body.Integrate(dt)
	if p := h.body.Position(); p.Y() < h.groundHeight {
		h.body.SetPosition(physics.Vec3{p.X(), h.groundHeight, p.Z()})
	}

	position := h.body.Position()
	h.record(position)
	for _, ring := range h.course.Rings() {
		in := ring.Volume.Contains(position)
		entered := in && !h.inside[ring.ID]
		h.inside[ring.ID] = in
		if !entered {
			continue
		}
		event := bus.NewEvent(physics.EventTriggerEnter, "host", physics.TriggerEvent{
			VolumeID: ring.ID,
			Tag:      checkpoint.PlayerTag,
		})
		if err := h.events.Publish(event); err != nil {
			h.logger.Warn("trigger handler failed", log.String("ring", ring.ID), log.Error(err))
		}
	}
}

func (h *host) Update(float64) {}

func (h *host) record(p physics.Vec3) {
	for i, c := range p {
		binary.LittleEndian.PutUint64(h.scratch[i*8:], math.Float64bits(c))
	}
	_, _ = h.trace.Write(h.scratch[:])
}

// Trace is the running hash of every position the body has been at.
func (h *host) Trace() uint64 { return h.trace.Sum64() }
