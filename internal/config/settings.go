package config

import (
	"github.com/zeusync/flightrig/internal/camera"
	"github.com/zeusync/flightrig/internal/checkpoint"
	"github.com/zeusync/flightrig/internal/core/physics"
	"github.com/zeusync/flightrig/internal/core/systems"
	"github.com/zeusync/flightrig/internal/flight"
)

// Settings is the full, flat set of author-time tunables for one session.
type Settings struct {
	Flight     flight.Config          `mapstructure:"flight" yaml:"flight"`
	Propeller  flight.PropellerConfig `mapstructure:"propeller" yaml:"propeller"`
	Camera     camera.Config          `mapstructure:"camera" yaml:"camera"`
	Checkpoint CheckpointSettings     `mapstructure:"checkpoint" yaml:"checkpoint"`
	Sim        SimSettings            `mapstructure:"sim" yaml:"sim"`
	Log        LogSettings            `mapstructure:"log" yaml:"log"`
}

type CheckpointSettings struct {
	// DestroyDelay is how long a passed ring stays in the scene.
	DestroyDelay float64 `mapstructure:"destroy_delay" yaml:"destroy_delay"`
	// Radius of each ring's trigger volume unless the ring sets its own.
	Radius float64        `mapstructure:"radius" yaml:"radius"`
	Rings  []RingSettings `mapstructure:"rings" yaml:"rings"`
}

type RingSettings struct {
	ID       string    `mapstructure:"id" yaml:"id"`
	Position []float64 `mapstructure:"position" yaml:"position,flow"`
	Radius   float64   `mapstructure:"radius" yaml:"radius,omitempty"`
}

// SimSettings configures the headless host.
type SimSettings struct {
	systems.LoopConfig `mapstructure:",squash" yaml:",inline"`

	// FrameDelta is the visual frame length used when a script sets none.
	FrameDelta     float64   `mapstructure:"frame_delta" yaml:"frame_delta"`
	GroundHeight   float64   `mapstructure:"ground_height" yaml:"ground_height"`
	StartPosition  []float64 `mapstructure:"start_position" yaml:"start_position,flow"`
	ReportInterval float64   `mapstructure:"report_interval" yaml:"report_interval"`
}

type LogSettings struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// Default returns the tunables of the stock aircraft and a five ring
// course straight ahead of an air start.
func Default() Settings {
	return Settings{
		Flight:    flight.DefaultConfig(),
		Propeller: flight.DefaultPropellerConfig(),
		Camera:    camera.DefaultConfig(),
		Checkpoint: CheckpointSettings{
			DestroyDelay: checkpoint.DefaultDestroyDelay,
			Radius:       3,
			Rings: []RingSettings{
				{ID: "ring-1", Position: []float64{0, 9.5, 8}},
				{ID: "ring-2", Position: []float64{0, 8.5, 20}},
				{ID: "ring-3", Position: []float64{0, 7, 36}},
				{ID: "ring-4", Position: []float64{0, 5, 56}},
				{ID: "ring-5", Position: []float64{0, 3, 80}},
			},
		},
		Sim: SimSettings{
			LoopConfig:     systems.DefaultLoopConfig(),
			FrameDelta:     1.0 / 60,
			GroundHeight:   0,
			StartPosition:  []float64{0, 10, 0},
			ReportInterval: 1,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Vec3 converts a validated three element position.
func Vec3(p []float64) physics.Vec3 {
	var v physics.Vec3
	copy(v[:], p)
	return v
}

// RingVolumes builds the trigger volumes of the configured course.
func (c CheckpointSettings) RingVolumes() []checkpoint.Ring {
	rings := make([]checkpoint.Ring, 0, len(c.Rings))
	for _, r := range c.Rings {
		radius := c.Radius
		if r.Radius > 0 {
			radius = r.Radius
		}
		rings = append(rings, checkpoint.Ring{
			ID:     r.ID,
			Volume: physics.SphereVolume{Center: Vec3(r.Position), Radius: radius},
		})
	}
	return rings
}
