package rigid

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota // circle in the planar build
	ShapeBox
	ShapeCapsule
)

// Shape is an immutable collider shape description. Which fields are read
// depends on Kind: Radius for spheres and capsules, HalfExtents for boxes,
// HalfHeight for the straight section of capsules. Offset places the shape's
// centroid relative to the collider's local origin.
type Shape struct {
	Kind        ShapeKind
	Radius      Scalar
	HalfExtents Vector
	HalfHeight  Scalar
	Offset      Vector
}

// MassData is the raw output of the geometry mass-property routine: total
// mass, its precomputed inverse, the inertia moment about the shape centroid
// with its precomputed inverse, and the centroid location in collider-local
// space.
type MassData struct {
	Mass        Scalar
	InvMass     Scalar
	Inertia     InertiaValue
	InvInertia  InertiaValue
	LocalCenter Vector
}

type ShapeId string

// ShapeServer registers shapes once and shares them by handle. Registered
// shapes are immutable; changing a collider's geometry means registering a
// new shape and pointing the collider at it.
type ShapeServer struct {
	shapes map[ShapeId]Shape
}

func NewShapeServer() *ShapeServer {
	return &ShapeServer{
		shapes: make(map[ShapeId]Shape),
	}
}

func (server *ShapeServer) RegisterShape(shape Shape) ShapeId {
	id := makeShapeId()
	server.shapes[id] = shape
	return id
}

func (server *ShapeServer) Shape(id ShapeId) (Shape, bool) {
	shape, ok := server.shapes[id]
	return shape, ok
}

func makeShapeId() ShapeId {
	return ShapeId(uuid.NewString())
}

// ColliderComponent attaches a registered shape to an entity. The entity is
// either a rigid body itself or linked to one with a Parent component.
type ColliderComponent struct {
	Shape ShapeId
}

// ColliderMassProperties is the read-only mass contribution of one collider,
// fully determined by its shape and density. It is re-derived by
// ColliderMassSystem whenever either input changes; writes from outside this
// package are overridden on the next derivation pass.
type ColliderMassProperties struct {
	mass           Mass
	inverseMass    InverseMass
	inertia        Inertia
	inverseInertia InverseInertia
	centerOfMass   CenterOfMass
}

// ColliderMassPropertiesZero is the massless snapshot: the neutral element
// under aggregation, so a massless collider never perturbs its body's
// combined mass properties.
func ColliderMassPropertiesZero() ColliderMassProperties {
	return ColliderMassProperties{
		mass:           Mass{},
		inverseMass:    InverseMass{Value: math32.Inf(1)},
		inertia:        Inertia{},
		inverseInertia: InverseInertia{},
		centerOfMass:   CenterOfMass{},
	}
}

// NewColliderMassProperties derives the snapshot for a shape at the given
// density. Zero density yields the zero snapshot regardless of shape. The
// inverse mass and inverse inertia are taken from the geometry routine's own
// output rather than re-derived, so there is a single divide-by-zero path.
func NewColliderMassProperties(shape Shape, density Scalar) ColliderMassProperties {
	if density == 0 {
		return ColliderMassPropertiesZero()
	}

	md := shape.MassProperties(density)

	return ColliderMassProperties{
		mass:           Mass{Value: md.Mass},
		inverseMass:    InverseMass{Value: md.InvMass},
		inertia:        Inertia{Value: md.Inertia},
		inverseInertia: InverseInertia{Value: md.InvInertia},
		centerOfMass:   CenterOfMass{Offset: md.LocalCenter},
	}
}

func (p ColliderMassProperties) Mass() Scalar {
	return p.mass.Value
}

func (p ColliderMassProperties) InverseMass() Scalar {
	return p.inverseMass.Value
}

func (p ColliderMassProperties) Inertia() InertiaValue {
	return p.inertia.Value
}

func (p ColliderMassProperties) InverseInertia() InertiaValue {
	return p.inverseInertia.Value
}

func (p ColliderMassProperties) CenterOfMass() Vector {
	return p.centerOfMass.Offset
}
