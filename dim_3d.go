//go:build !planar

package rigid

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Spatial build: vectors are 3D and angular quantities are symmetric 3x3
// tensors.

type Vector = mgl32.Vec3

// InertiaValue is the raw representation of an inertia moment: a full tensor
// matrix in the spatial build.
type InertiaValue = mgl32.Mat3

// Rotation is a 3D orientation.
type Rotation struct {
	Quat mgl32.Quat
}

func NewRotation(q mgl32.Quat) Rotation {
	return Rotation{Quat: q}
}

func IdentityRotation() Rotation {
	return Rotation{Quat: mgl32.QuatIdent()}
}

func (r Rotation) Inverse() Rotation {
	return Rotation{Quat: r.Quat.Inverse()}
}

func (r Rotation) mat3() mgl32.Mat3 {
	return r.Quat.Mat4().Mat3()
}
