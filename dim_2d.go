//go:build planar

package rigid

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Planar build: vectors are 2D and angular quantities are scalars about the
// out-of-plane axis.

type Vector = mgl32.Vec2

// InertiaValue is the raw representation of an inertia moment: a single
// scalar in the planar build.
type InertiaValue = Scalar

// Rotation is an orientation in the plane, stored as the sine/cosine pair of
// its angle.
type Rotation struct {
	Sin, Cos Scalar
}

func NewRotation(radians Scalar) Rotation {
	return Rotation{Sin: math32.Sin(radians), Cos: math32.Cos(radians)}
}

func IdentityRotation() Rotation {
	return Rotation{Sin: 0, Cos: 1}
}

func (r Rotation) Inverse() Rotation {
	return Rotation{Sin: -r.Sin, Cos: r.Cos}
}
