package flight

// Config holds the per-session flight tunables. It is read-only while the
// simulation runs. Rotation speeds are in degrees per second.
type Config struct {
	MaxSpeed        float64 `mapstructure:"max_speed" yaml:"max_speed"`
	MaxReverseSpeed float64 `mapstructure:"max_reverse_speed" yaml:"max_reverse_speed"`
	SpeedRampUp     float64 `mapstructure:"speed_ramp_up" yaml:"speed_ramp_up"`
	SpeedRampDown   float64 `mapstructure:"speed_ramp_down" yaml:"speed_ramp_down"`
	// IdleSpeed is the speed an airborne aircraft settles at without throttle.
	IdleSpeed float64 `mapstructure:"idle_speed" yaml:"idle_speed"`

	// InvertedPitch makes pulling the look axis down raise the nose.
	InvertedPitch      bool    `mapstructure:"inverted_pitch" yaml:"inverted_pitch"`
	PitchRotationSpeed float64 `mapstructure:"pitch_rotation_speed" yaml:"pitch_rotation_speed"`
	YawRotationSpeed   float64 `mapstructure:"yaw_rotation_speed" yaml:"yaw_rotation_speed"`
	RollRotationSpeed  float64 `mapstructure:"roll_rotation_speed" yaml:"roll_rotation_speed"`

	// DirectionModifier tilts the flight direction on the body's up axis;
	// a small negative value keeps takeoff controlled.
	DirectionModifier   float64 `mapstructure:"direction_modifier" yaml:"direction_modifier"`
	GroundCheckDistance float64 `mapstructure:"ground_check_distance" yaml:"ground_check_distance"`
}

func DefaultConfig() Config {
	return Config{
		MaxSpeed:            15,
		MaxReverseSpeed:     5,
		SpeedRampUp:         0.5,
		SpeedRampDown:       1,
		IdleSpeed:           3,
		InvertedPitch:       true,
		PitchRotationSpeed:  200,
		YawRotationSpeed:    5,
		RollRotationSpeed:   20,
		DirectionModifier:   -0.09,
		GroundCheckDistance: 0.5,
	}
}

// PropellerConfig controls the visual propeller spin.
type PropellerConfig struct {
	// Count is the number of driven propellers, 0 to 2.
	Count int `mapstructure:"count" yaml:"count"`
	// SpeedCap bounds the per-frame spin increment in degrees.
	SpeedCap float64 `mapstructure:"speed_cap" yaml:"speed_cap"`
}

func DefaultPropellerConfig() PropellerConfig {
	return PropellerConfig{
		Count:    1,
		SpeedCap: 3,
	}
}
