package camera

// Config holds the chase camera tunables. Both behaviors are optional.
type Config struct {
	// Pullback moves the camera back as the aircraft speeds up.
	Pullback    bool    `mapstructure:"pullback" yaml:"pullback"`
	MinDistance float64 `mapstructure:"min_distance" yaml:"min_distance"`
	MaxDistance float64 `mapstructure:"max_distance" yaml:"max_distance"`

	// LagRotation makes the arm trail the aircraft's roll.
	LagRotation bool `mapstructure:"lag_rotation" yaml:"lag_rotation"`
	// LagSpeed is the lag change rate in degrees per second.
	LagSpeed float64 `mapstructure:"lag_speed" yaml:"lag_speed"`
	// MaxLagDist bounds the lag offset in degrees.
	MaxLagDist float64 `mapstructure:"max_lag_dist" yaml:"max_lag_dist"`
}

func DefaultConfig() Config {
	return Config{
		Pullback:    true,
		MinDistance: 1,
		MaxDistance: 1.5,
		LagRotation: true,
		LagSpeed:    1,
		MaxLagDist:  0.1,
	}
}
