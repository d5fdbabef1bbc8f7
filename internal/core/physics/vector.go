package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 and Quat alias the mathgl types so callers can use mgl64 directly.
type (
	Vec3 = mgl64.Vec3
	Quat = mgl64.Quat
)

// Axes of the host coordinate system: +Y up, +Z forward, +X right.
var (
	Right   = Vec3{1, 0, 0}
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Forward = Vec3{0, 0, 1}
)

// Identity is the zero rotation.
func Identity() Quat { return mgl64.QuatIdent() }

// Euler builds a rotation from angles in degrees about X, Y and Z. The host
// engine applies Z first, then X, then Y, so the result is qY*qX*qZ.
func Euler(x, y, z float64) Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(x), Right)
	qy := mgl64.QuatRotate(mgl64.DegToRad(y), Up)
	qz := mgl64.QuatRotate(mgl64.DegToRad(z), Forward)
	return qy.Mul(qx).Mul(qz)
}

// Compose right-multiplies delta onto q, i.e. applies delta in q's local
// frame. The result is renormalized to keep repeated composition stable.
func Compose(q, delta Quat) Quat {
	return q.Mul(delta).Normalize()
}

// AngleAbout returns the signed rotation angle of q about axis, in radians,
// by projecting q onto that axis (swing-twist decomposition).
func AngleAbout(q Quat, axis Vec3) float64 {
	axis = axis.Normalize()
	p := axis.Mul(q.V.Dot(axis))
	twist := mgl64.Quat{W: q.W, V: p}
	if twist.Len() == 0 {
		return 0
	}
	twist = twist.Normalize()
	angle := 2 * math.Atan2(twist.V.Dot(axis), twist.W)
	// keep the result in (-pi, pi]
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Distance between two points.
func Distance(a, b Vec3) float64 { return a.Sub(b).Len() }
