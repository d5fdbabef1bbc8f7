package physics

// RigidBody is the part of a host physics body that the flight model reads
// and writes. Velocity is adopted directly by the host, it is not a force.
type RigidBody interface {
	Position() Vec3
	Rotation() Quat
	SetRotation(Quat)
	Velocity() Vec3
	SetVelocity(Vec3)
}

// TransformDirection rotates a body-local direction into world space.
func TransformDirection(b RigidBody, local Vec3) Vec3 {
	return b.Rotation().Rotate(local)
}

var _ RigidBody = (*Body)(nil)

// Body is a kinematic RigidBody. It has no mass and no collision response;
// Integrate moves it by its velocity.
type Body struct {
	position Vec3
	rotation Quat
	velocity Vec3
}

func NewBody(position Vec3) *Body {
	return &Body{
		position: position,
		rotation: Identity(),
	}
}

func (b *Body) Position() Vec3       { return b.position }
func (b *Body) SetPosition(p Vec3)   { b.position = p }
func (b *Body) Rotation() Quat       { return b.rotation }
func (b *Body) SetRotation(q Quat)   { b.rotation = q.Normalize() }
func (b *Body) Velocity() Vec3       { return b.velocity }
func (b *Body) SetVelocity(v Vec3)   { b.velocity = v }
func (b *Body) Integrate(dt float64) { b.position = b.position.Add(b.velocity.Mul(dt)) }
