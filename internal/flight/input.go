package flight

// InputSample is one tick's worth of player input. Axes are pre-clamped to
// [-1, 1] by the input layer.
type InputSample struct {
	// Throttle is the forward/back axis.
	Throttle float64 `yaml:"throttle"`
	// LookX is the horizontal look axis; it drives roll.
	LookX float64 `yaml:"look_x"`
	// LookY is the vertical look axis; it drives pitch.
	LookY    float64 `yaml:"look_y"`
	YawLeft  bool    `yaml:"yaw_left"`
	YawRight bool    `yaml:"yaw_right"`
}

// InputSource provides the input for the next physics tick.
type InputSource interface {
	Sample() InputSample
}

// StaticInput always returns the same sample.
type StaticInput InputSample

func (s StaticInput) Sample() InputSample { return InputSample(s) }
