//go:build !planar

package rigid

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MassProperties integrates the solid shape at the given density: mass, the
// inertia tensor about the shape centroid in local axes, their inverses, and
// the centroid location. Closed forms per shape kind; the resulting tensors
// are diagonal because every shape is axis-aligned in its own local frame.
func (s Shape) MassProperties(density Scalar) MassData {
	var mass Scalar
	var moments mgl32.Vec3

	switch s.Kind {
	case ShapeSphere:
		r := s.Radius
		mass = density * (4.0 / 3.0) * math32.Pi * r * r * r
		i := 0.4 * mass * r * r
		moments = mgl32.Vec3{i, i, i}

	case ShapeBox:
		hx := s.HalfExtents.X()
		hy := s.HalfExtents.Y()
		hz := s.HalfExtents.Z()
		mass = density * 8 * hx * hy * hz
		third := mass / 3.0
		moments = mgl32.Vec3{
			third * (hy*hy + hz*hz),
			third * (hx*hx + hz*hz),
			third * (hx*hx + hy*hy),
		}

	case ShapeCapsule:
		// Cylinder of half-height h on the local y axis plus two hemisphere
		// caps, combined with their centroid offsets folded in.
		r := s.Radius
		h := s.HalfHeight
		cylMass := density * math32.Pi * r * r * 2 * h
		capMass := density * (4.0 / 3.0) * math32.Pi * r * r * r

		axial := cylMass*0.5*r*r + capMass*0.4*r*r
		transverse := cylMass*(h*h/3.0+r*r/4.0) +
			capMass*(0.4*r*r+h*h+0.75*h*r)

		mass = cylMass + capMass
		moments = mgl32.Vec3{transverse, axial, transverse}
	}

	inertia := mgl32.Diag3(moments)

	return MassData{
		Mass:        mass,
		InvMass:     Mass{Value: mass}.Inverse().Value,
		Inertia:     inertia,
		InvInertia:  Inertia{Value: inertia}.Inverse().Value,
		LocalCenter: s.Offset,
	}
}
