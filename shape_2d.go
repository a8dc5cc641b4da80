//go:build planar

package rigid

import (
	"github.com/chewxy/math32"
)

// MassProperties integrates the shape at the given density: mass, inertia
// about the shape centroid (the out-of-plane scalar moment), their inverses,
// and the centroid location. Closed forms per shape kind.
func (s Shape) MassProperties(density Scalar) MassData {
	var mass, inertia Scalar

	switch s.Kind {
	case ShapeSphere:
		mass = density * math32.Pi * s.Radius * s.Radius
		inertia = mass * 0.5 * s.Radius * s.Radius

	case ShapeBox:
		w := 2 * s.HalfExtents.X()
		h := 2 * s.HalfExtents.Y()
		mass = density * w * h
		inertia = mass * (w*w + h*h) / 12.0

	case ShapeCapsule:
		// Rectangle section plus two half discs capping it at +/- HalfHeight
		// on the local y axis. Each half disc's moment about the capsule
		// center folds its own centroid offset into the disc-center moment.
		r := s.Radius
		h := s.HalfHeight
		rectMass := density * 2 * r * 2 * h
		rectInertia := rectMass * (r*r + h*h) / 3.0
		halfDiscMass := density * math32.Pi * r * r * 0.5
		halfDiscInertia := halfDiscMass * (r*r*0.5 + h*h + 8.0*r*h/(3.0*math32.Pi))

		mass = rectMass + 2*halfDiscMass
		inertia = rectInertia + 2*halfDiscInertia
	}

	return MassData{
		Mass:        mass,
		InvMass:     Mass{Value: mass}.Inverse().Value,
		Inertia:     inertia,
		InvInertia:  Inertia{Value: inertia}.Inverse().Value,
		LocalCenter: s.Offset,
	}
}
