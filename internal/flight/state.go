package flight

// State is the mutable flight state of one aircraft. Pitch, Yaw and Roll are
// the increments (degrees) applied on the last physics tick.
type State struct {
	CurrentSpeed float64
	Pitch        float64
	Yaw          float64
	Roll         float64
	Grounded     bool
	// Throttle is the forward/back axis seen on the last tick.
	Throttle float64
}
