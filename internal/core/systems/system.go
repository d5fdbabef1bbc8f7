package systems

// System represents a frame-driven game logic processor.
type System interface {
	Name() string

	// FixedUpdate runs once per physics step with the fixed step length.
	FixedUpdate(fixedDeltaTime float64)
	// Update runs once per rendered frame with the (clamped) frame delta.
	Update(deltaTime float64)
}

// Priority defines execution order. Higher priorities run first within a
// phase; equal priorities keep registration order.
type Priority uint16

// System priorities
const (
	PriorityLowest  Priority = 200
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)

// Stats describes what a Loop has executed so far.
type Stats struct {
	Frames     uint64
	FixedSteps uint64
	// Time is the simulated time in seconds.
	Time float64
	// DroppedTime is frame time discarded by clamping or the step limit.
	DroppedTime float64
}
