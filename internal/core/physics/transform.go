package physics

// Transform is a scene node's local rotation and scale. Propellers and the
// camera arm are driven through it.
type Transform struct {
	Name     string
	Rotation Quat
	Scale    Vec3
}

func NewTransform(name string) *Transform {
	return &Transform{
		Name:     name,
		Rotation: Identity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// Rotate composes delta onto the current local rotation.
func (t *Transform) Rotate(delta Quat) {
	t.Rotation = Compose(t.Rotation, delta)
}

// SetDepthScale sets the Z scale and leaves X and Y at 1.
func (t *Transform) SetDepthScale(z float64) {
	t.Scale = Vec3{1, 1, z}
}
