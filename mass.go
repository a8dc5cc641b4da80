package rigid

import (
	"github.com/chewxy/math32"
)

// Scalar is the numeric type used throughout the module, matching the mgl32
// vector and matrix types.
type Scalar = float32

// Mass is the mass of a body or a single collider. The zero value means "no
// mass": the body is treated as having infinite resistance to linear effects.
type Mass struct {
	Value Scalar
}

// Inverse returns the cached-form inverse used by solvers. Zero mass maps to
// an infinite inverse mass, never a division fault.
func (m Mass) Inverse() InverseMass {
	if m.Value == 0 {
		return InverseMass{Value: math32.Inf(1)}
	}
	return InverseMass{Value: 1.0 / m.Value}
}

// InverseMass is 1/mass. Solvers read this on their hot path; +Inf means the
// body does not respond to linear effects at all.
type InverseMass struct {
	Value Scalar
}

func (im InverseMass) Inverse() Mass {
	if im.Value == 0 || math32.IsInf(im.Value, 1) {
		return Mass{}
	}
	return Mass{Value: 1.0 / im.Value}
}

// CenterOfMass is the offset of a body's mass centroid from its local origin.
// The zero value is origin-centered.
type CenterOfMass struct {
	Offset Vector
}

// ColliderDensity is the density assigned to one collider's shape, used when
// deriving its ColliderMassProperties. An explicit zero density is valid and
// means the shape contributes no mass to its body.
type ColliderDensity struct {
	Value Scalar
}

func DefaultColliderDensity() ColliderDensity {
	return ColliderDensity{Value: 1.0}
}

// MassPropertiesBundle is the full mass-property set for a rigid body,
// for bodies whose single collider shape is known at creation time.
type MassPropertiesBundle struct {
	Mass           Mass
	InverseMass    InverseMass
	Inertia        Inertia
	InverseInertia InverseInertia
	CenterOfMass   CenterOfMass
}

// NewMassPropertiesBundle derives the bundle from a shape and density by
// copying the fields of the corresponding collider snapshot.
func NewMassPropertiesBundle(shape Shape, density Scalar) MassPropertiesBundle {
	props := NewColliderMassProperties(shape, density)

	return MassPropertiesBundle{
		Mass:           props.mass,
		InverseMass:    props.inverseMass,
		Inertia:        props.inertia,
		InverseInertia: props.inverseInertia,
		CenterOfMass:   props.centerOfMass,
	}
}

// Components returns the bundle's fields for Commands.AddEntity.
func (b MassPropertiesBundle) Components() []any {
	return []any{
		&b.Mass,
		&b.InverseMass,
		&b.Inertia,
		&b.InverseInertia,
		&b.CenterOfMass,
	}
}

func isFiniteMass(mass Scalar) bool {
	return !math32.IsInf(mass, 0) && !math32.IsNaN(mass)
}
