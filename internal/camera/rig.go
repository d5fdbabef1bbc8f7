package camera

import (
	"github.com/samber/lo"

	"github.com/zeusync/flightrig/internal/core/observability/log"
	"github.com/zeusync/flightrig/internal/core/physics"
	"github.com/zeusync/flightrig/internal/core/systems"
)

// Target is what the rig follows. flight.Model satisfies it.
type Target interface {
	CurrentSpeed() float64
	MaxSpeed() float64
	// Roll is the roll increment of the last physics tick; negative rolls
	// right.
	Roll() float64
}

// State is derived every visual tick and never persisted.
type State struct {
	Distance float64
	Lag      float64
}

var _ systems.System = (*Rig)(nil)

// Rig drives the camera arm: its depth scale encodes the camera distance
// and its local roll trails the aircraft by the lag offset.
type Rig struct {
	config Config
	target Target
	arm    *physics.Transform
	state  State
	logger log.Log
}

func NewRig(config Config, target Target, arm *physics.Transform, logger log.Log) *Rig {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Rig{
		config: config,
		target: target,
		arm:    arm,
		state:  State{Distance: config.MinDistance},
		logger: logger.Named("camera"),
	}
}

func (r *Rig) Name() string { return "camera" }

func (r *Rig) FixedUpdate(float64) {}

func (r *Rig) Update(dt float64) {
	if r.arm == nil || r.target == nil {
		return
	}

	if r.config.Pullback {
		r.state.Distance = Distance(r.config, r.target.CurrentSpeed(), r.target.MaxSpeed())
		r.arm.SetDepthScale(r.state.Distance)
	}

	if r.config.LagRotation {
		prev := r.state.Lag
		r.state.Lag = StepLag(r.state.Lag, r.target.Roll(), r.config, dt)
		if delta := r.state.Lag - prev; delta != 0 {
			r.arm.Rotate(physics.Euler(0, 0, delta))
		}
	}

	r.logger.Debug("camera tick",
		log.Float64("distance", r.state.Distance),
		log.Float64("lag", r.state.Lag),
	)
}

func (r *Rig) State() State { return r.state }

// Distance maps speed onto [MinDistance, MaxDistance]. Reverse speed keeps
// the camera at MinDistance.
func Distance(cfg Config, speed, maxSpeed float64) float64 {
	t := 0.0
	if maxSpeed > 0 {
		t = lo.Clamp(speed/maxSpeed, 0, 1)
	}
	return cfg.MinDistance + t*(cfg.MaxDistance-cfg.MinDistance)
}

// StepLag advances the lag offset by one visual tick. Rolling right grows
// it, rolling left shrinks it, and with no roll it decays toward zero
// without crossing it. The result stays within ±MaxLagDist.
func StepLag(lag, roll float64, cfg Config, dt float64) float64 {
	step := cfg.LagSpeed * dt
	switch {
	case roll < 0:
		lag += step
	case roll > 0:
		lag -= step
	case lag > 0:
		lag = max(lag-step, 0)
	case lag < 0:
		lag = min(lag+step, 0)
	}
	return lo.Clamp(lag, -cfg.MaxLagDist, cfg.MaxLagDist)
}
