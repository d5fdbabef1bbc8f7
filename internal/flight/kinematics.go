package flight

import (
	"math"

	"github.com/samber/lo"

	"github.com/zeusync/flightrig/internal/core/physics"
)

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// StepSpeed returns the speed after one physics tick of dt seconds.
// Without throttle the speed decays toward 0 on the ground and toward
// IdleSpeed in the air.
func StepSpeed(speed float64, grounded bool, cfg Config, throttle, dt float64) float64 {
	speed += throttle * (cfg.SpeedRampUp * dt)

	if throttle == 0 {
		target := cfg.IdleSpeed
		if grounded {
			target = 0
		}
		speed = MoveTowards(speed, target, cfg.SpeedRampDown*dt)
	}

	return lo.Clamp(speed, -cfg.MaxReverseSpeed, cfg.MaxSpeed)
}

// Advance runs the speed and attitude part of a physics tick on s, using
// s.Grounded as the current ground state, and returns the rotation increment
// to right-multiply onto the body orientation.
//
// Pitch and roll respond only in the air. Yaw responds in the air or while
// the throttle is held. An axis that does not respond is zero this tick.
func Advance(s *State, cfg Config, in InputSample, dt float64) physics.Quat {
	s.Throttle = in.Throttle
	s.CurrentSpeed = StepSpeed(s.CurrentSpeed, s.Grounded, cfg, in.Throttle, dt)

	s.Pitch, s.Yaw, s.Roll = 0, 0, 0
	if !s.Grounded {
		s.Pitch = in.LookY * (cfg.PitchRotationSpeed * dt)
		if !cfg.InvertedPitch {
			s.Pitch = -s.Pitch
		}
		s.Roll = -in.LookX * (cfg.RollRotationSpeed * dt)
	}
	if in.Throttle != 0 || !s.Grounded {
		s.Yaw = yawAxis(in) * (cfg.YawRotationSpeed * dt)
	}

	return physics.Euler(s.Pitch, s.Yaw, s.Roll)
}

// yawAxis maps the two yaw keys to -1, 0 or 1. Left wins when both are held.
func yawAxis(in InputSample) float64 {
	switch {
	case in.YawLeft:
		return -1
	case in.YawRight:
		return 1
	default:
		return 0
	}
}

// FlightDirection is the body-local direction of travel: forward, tilted on
// the up axis by DirectionModifier.
func FlightDirection(cfg Config) physics.Vec3 {
	return physics.Forward.Add(physics.Vec3{0, cfg.DirectionModifier, 0})
}

// PropellerIncrement is the per-frame spin in degrees about the propeller's
// Z axis for the given speed.
func PropellerIncrement(speed, speedCap float64) float64 {
	return lo.Clamp(-speed/2.5, -speedCap, speedCap)
}
