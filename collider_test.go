package rigid

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColliderMassProperties_ZeroDensity(t *testing.T) {
	shapes := []Shape{
		{Kind: ShapeSphere, Radius: 0.5},
		{Kind: ShapeBox},
		{Kind: ShapeCapsule, Radius: 0.25, HalfHeight: 1.0},
	}

	for _, shape := range shapes {
		props := NewColliderMassProperties(shape, 0)
		if props != ColliderMassPropertiesZero() {
			t.Errorf("zero density on shape kind %v should yield the zero snapshot, got %+v", shape.Kind, props)
		}
	}
}

func TestColliderMassPropertiesZero_Sentinels(t *testing.T) {
	zero := ColliderMassPropertiesZero()

	assert.Equal(t, Scalar(0), zero.Mass())
	if !math32.IsInf(zero.InverseMass(), 1) {
		t.Errorf("zero snapshot should carry infinite inverse mass, got %v", zero.InverseMass())
	}

	var zeroMoment InertiaValue
	assert.Equal(t, zeroMoment, zero.Inertia())
	assert.Equal(t, zeroMoment, zero.InverseInertia())
	assert.Equal(t, Vector{}, zero.CenterOfMass())
}

func TestColliderMassProperties_MatchesGeometryOutput(t *testing.T) {
	shape := Shape{Kind: ShapeSphere, Radius: 0.5}
	md := shape.MassProperties(1.0)
	props := NewColliderMassProperties(shape, 1.0)

	assert.Equal(t, md.Mass, props.Mass())
	assert.Equal(t, md.InvMass, props.InverseMass())
	assert.Equal(t, md.Inertia, props.Inertia())
	assert.Equal(t, md.InvInertia, props.InverseInertia())
	assert.Equal(t, md.LocalCenter, props.CenterOfMass())
}

func TestMassPropertiesBundle_MatchesSnapshot(t *testing.T) {
	shape := Shape{Kind: ShapeSphere, Radius: 0.5}
	bundle := NewMassPropertiesBundle(shape, 1.0)
	props := NewColliderMassProperties(shape, 1.0)

	assert.Equal(t, props.mass, bundle.Mass)
	assert.Equal(t, props.inverseMass, bundle.InverseMass)
	assert.Equal(t, props.inertia, bundle.Inertia)
	assert.Equal(t, props.inverseInertia, bundle.InverseInertia)
	assert.Equal(t, props.centerOfMass, bundle.CenterOfMass)
}

func TestShapeServer_RegisterAndLookup(t *testing.T) {
	server := NewShapeServer()

	shape := Shape{Kind: ShapeSphere, Radius: 2.0}
	id := server.RegisterShape(shape)
	id2 := server.RegisterShape(Shape{Kind: ShapeCapsule, Radius: 1.0, HalfHeight: 0.5})

	require.NotEqual(t, id, id2, "every registration gets its own handle")

	got, ok := server.Shape(id)
	require.True(t, ok)
	assert.Equal(t, shape, got)

	_, ok = server.Shape(ShapeId("nope"))
	assert.False(t, ok)
}

func TestCombineColliderMassProperties_Commutative(t *testing.T) {
	a := NewColliderMassProperties(Shape{Kind: ShapeSphere, Radius: 0.5}, 1.0)
	b := NewColliderMassProperties(Shape{Kind: ShapeCapsule, Radius: 0.25, HalfHeight: 0.5}, 2.0)
	zero := ColliderMassPropertiesZero()

	ab := CombineColliderMassProperties(a, b)
	ba := CombineColliderMassProperties(b, a)
	assert.Equal(t, ab.Mass, ba.Mass)
	assert.Equal(t, ab.CenterOfMass, ba.CenterOfMass)

	// The zero snapshot is the neutral element.
	withZero := CombineColliderMassProperties(a, zero, b)
	assert.InDelta(t, float64(ab.Mass.Value), float64(withZero.Mass.Value), 1e-5)
	assert.Equal(t, ab.CenterOfMass, withZero.CenterOfMass)
	assert.Equal(t, ab.Inertia, withZero.Inertia)
}
