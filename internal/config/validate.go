package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/zeusync/flightrig/internal/core/observability/log"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownKey    = errors.New("unknown configuration key")
)

type validator struct {
	errs []error
}

func (v *validator) fail(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
}

func (v *validator) within(key string, value, low, high float64) {
	if math.IsNaN(value) || value < low || value > high {
		v.fail("%s = %v, want [%v, %v]", key, value, low, high)
	}
}

func (v *validator) positive(key string, value float64) {
	if !(value > 0) {
		v.fail("%s = %v, want > 0", key, value)
	}
}

func (v *validator) position(key string, p []float64) {
	if len(p) != 3 {
		v.fail("%s has %d components, want 3", key, len(p))
	}
}

// Validate checks every tunable against the range the aircraft was tuned
// for. All violations are reported together.
func (s *Settings) Validate() error {
	v := &validator{}

	f := s.Flight
	v.positive("flight.max_speed", f.MaxSpeed)
	v.within("flight.max_reverse_speed", f.MaxReverseSpeed, 0, math.Max(f.MaxSpeed, 0))
	v.within("flight.speed_ramp_up", f.SpeedRampUp, 0, 1)
	v.within("flight.speed_ramp_down", f.SpeedRampDown, 0, 5)
	v.within("flight.idle_speed", f.IdleSpeed, 0, 5)
	v.within("flight.pitch_rotation_speed", f.PitchRotationSpeed, 0, 500)
	v.within("flight.yaw_rotation_speed", f.YawRotationSpeed, 0, 10)
	v.within("flight.roll_rotation_speed", f.RollRotationSpeed, 0, 50)
	v.within("flight.direction_modifier", f.DirectionModifier, -5, 5)
	v.within("flight.ground_check_distance", f.GroundCheckDistance, 0, 1)

	p := s.Propeller
	if p.Count < 0 || p.Count > 2 {
		v.fail("propeller.count = %d, want 0, 1 or 2", p.Count)
	}
	v.within("propeller.speed_cap", p.SpeedCap, 0, 5)

	c := s.Camera
	v.within("camera.min_distance", c.MinDistance, 1, 5)
	v.within("camera.max_distance", c.MaxDistance, 1, 5)
	if c.MaxDistance < c.MinDistance {
		v.fail("camera.max_distance %v is below camera.min_distance %v", c.MaxDistance, c.MinDistance)
	}
	v.within("camera.lag_speed", c.LagSpeed, 0.5, 5)
	v.within("camera.max_lag_dist", c.MaxLagDist, 0, 0.5)

	cp := s.Checkpoint
	v.within("checkpoint.destroy_delay", cp.DestroyDelay, 0, math.MaxFloat64)
	v.positive("checkpoint.radius", cp.Radius)
	for i, r := range cp.Rings {
		if r.ID == "" {
			v.fail("checkpoint.rings[%d] has no id", i)
		}
		v.position(fmt.Sprintf("checkpoint.rings[%d].position", i), r.Position)
		if r.Radius < 0 {
			v.fail("checkpoint.rings[%d].radius = %v, want >= 0", i, r.Radius)
		}
	}
	ids := lo.Map(cp.Rings, func(r RingSettings, _ int) string { return r.ID })
	if dups := lo.FindDuplicates(lo.Compact(ids)); len(dups) > 0 {
		v.fail("checkpoint.rings has duplicate ids %v", dups)
	}

	sim := s.Sim
	v.positive("sim.fixed_step", sim.FixedStep)
	v.positive("sim.max_delta_time", sim.MaxDeltaTime)
	v.positive("sim.frame_delta", sim.FrameDelta)
	if sim.MaxStepsPerFrame <= 0 {
		v.fail("sim.max_steps_per_frame = %d, want > 0", sim.MaxStepsPerFrame)
	}
	v.within("sim.report_interval", sim.ReportInterval, 0, math.MaxFloat64)
	v.position("sim.start_position", sim.StartPosition)

	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		v.fail("log.level: %v", err)
	}

	return errors.Join(v.errs...)
}
