//go:build planar

package rigid

// Inertia is the moment of inertia of a body about the out-of-plane axis:
// the torque needed for a desired angular acceleration. The zero value means
// no angular resistance.
type Inertia struct {
	Value InertiaValue
}

// Rotated is the identity in the planar build; a scalar moment about a fixed
// axis is unaffected by in-plane rotation. It exists so that callers can stay
// dimension-agnostic.
func (i Inertia) Rotated(_ Rotation) Inertia {
	return i
}

// Inverse returns the inverted moment of inertia. The zero moment maps to the
// zero inverse, matching the spatial build's singular-tensor convention.
func (i Inertia) Inverse() InverseInertia {
	if i.Value == 0 {
		return InverseInertia{}
	}
	return InverseInertia{Value: 1.0 / i.Value}
}

// Shifted computes the moment of a body with the given mass as measured about
// a point displaced by offset from the center of mass (parallel axis
// theorem). A non-positive or non-finite mass contributes nothing and the
// moment is returned unshifted.
func (i Inertia) Shifted(mass Scalar, offset Vector) InertiaValue {
	if mass > 0 && isFiniteMass(mass) {
		return i.Value + offset.LenSqr()*mass
	}
	return i.Value
}

// InverseInertia is the inverted moment of inertia about the out-of-plane
// axis.
type InverseInertia struct {
	Value InertiaValue
}

// Rotated is the identity in the planar build, mirroring Inertia.Rotated.
func (ii InverseInertia) Rotated(_ Rotation) InverseInertia {
	return ii
}

// Inverse returns the original moment of inertia, with the same zero
// boundary convention as Inertia.Inverse.
func (ii InverseInertia) Inverse() Inertia {
	if ii.Value == 0 {
		return Inertia{}
	}
	return Inertia{Value: 1.0 / ii.Value}
}

func addInertia(a, b InertiaValue) InertiaValue {
	return a + b
}
