package checkpoint

// Bus event types published by this package.
const (
	// EventPassed carries PassedData after a ring is counted.
	EventPassed = "checkpoint.passed"
	// EventCompleted carries PassedData when the last ring is counted.
	EventCompleted = "checkpoint.completed"
	// EventDestroyed carries the ring id once its delayed destruction ran.
	EventDestroyed = "checkpoint.destroyed"
)

type PassedData struct {
	ID        string
	Completed int
	Total     int
}
