//go:build !planar

package rigid

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Inertia is the local-space moment of inertia of a body as a symmetric 3x3
// tensor: the torque needed for a desired angular acceleration along each
// axis. The zero value means no angular resistance.
type Inertia struct {
	Value InertiaValue
}

// Rotated returns the world-space tensor R * I * R^T for the given
// orientation. This costs two matrix multiplications, so callers that need it
// repeatedly should cache the result rather than recompute per object per
// step.
func (i Inertia) Rotated(rot Rotation) Inertia {
	r := rot.mat3()
	return Inertia{Value: r.Mul3(i.Value).Mul3(r.Transpose())}
}

// Inverse returns the inverted inertia tensor. The zero tensor has no matrix
// inverse and maps to the zero InverseInertia by convention; any other
// singular tensor is an input-validity problem for the geometry that produced
// it.
func (i Inertia) Inverse() InverseInertia {
	if i.Value == (mgl32.Mat3{}) {
		return InverseInertia{}
	}
	return InverseInertia{Value: i.Value.Inv()}
}

// Shifted computes the inertia tensor of a body with the given mass as
// measured about a point displaced by offset from the center of mass
// (parallel axis theorem):
//
//	I' = I + mass * (|offset|^2 * E - offset * offset^T)
//
// A non-positive or non-finite mass contributes nothing and the tensor is
// returned unshifted.
func (i Inertia) Shifted(mass Scalar, offset Vector) InertiaValue {
	if mass > 0 && isFiniteMass(mass) {
		diagonal := mgl32.Ident3().Mul(offset.LenSqr())
		return i.Value.Add(diagonal.Sub(offset.OuterProd3(offset)).Mul(mass))
	}
	return i.Value
}

// InverseInertia is the local-space inverted inertia tensor. The zero value
// means the body does not respond to angular effects.
type InverseInertia struct {
	Value InertiaValue
}

// Rotated returns the world-space tensor for the given orientation. As with
// Inertia.Rotated, this is not cheap; cache it when possible.
func (ii InverseInertia) Rotated(rot Rotation) InverseInertia {
	r := rot.mat3()
	return InverseInertia{Value: r.Mul3(ii.Value).Mul3(r.Transpose())}
}

// Inverse returns the original inertia tensor, with the same zero boundary
// convention as Inertia.Inverse.
func (ii InverseInertia) Inverse() Inertia {
	if ii.Value == (mgl32.Mat3{}) {
		return Inertia{}
	}
	return Inertia{Value: ii.Value.Inv()}
}

func addInertia(a, b InertiaValue) InertiaValue {
	return a.Add(b)
}
