package physics

// EventTriggerEnter is published on the bus when a tagged body starts to
// overlap a trigger volume. Its data is a TriggerEvent.
const EventTriggerEnter = "trigger.enter"

type TriggerEvent struct {
	VolumeID string
	Tag      string
}

// SphereVolume is a trigger volume; it reports overlap but never blocks.
type SphereVolume struct {
	Center Vec3
	Radius float64
}

func (s SphereVolume) Contains(p Vec3) bool {
	return Distance(p, s.Center) <= s.Radius
}
