//go:build planar

package rigid

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeMassProperties_Disc(t *testing.T) {
	disc := Shape{Kind: ShapeSphere, Radius: 0.5}
	md := disc.MassProperties(1.0)

	wantMass := math32.Pi * 0.25
	require.InDelta(t, float64(wantMass), float64(md.Mass), 1e-5)
	assert.InDelta(t, float64(wantMass*0.5*0.25), float64(md.Inertia), 1e-5)
	assert.Equal(t, Vector{}, md.LocalCenter, "a symmetric shape is centered at its origin")

	// The inverse outputs come from the same derivation, not a second path.
	assert.InDelta(t, 1.0, float64(md.Mass*md.InvMass), 1e-5)
	assert.InDelta(t, 1.0, float64(md.Inertia*md.InvInertia), 1e-5)
}

func TestShapeMassProperties_Box(t *testing.T) {
	box := Shape{Kind: ShapeBox, HalfExtents: Vector{0.5, 1.0}}
	md := box.MassProperties(1.0)

	// 1x2 rectangle at unit density.
	require.InDelta(t, 2.0, float64(md.Mass), 1e-5)
	assert.InDelta(t, 2.0*(1.0+4.0)/12.0, float64(md.Inertia), 1e-5)
}

func TestShapeMassProperties_CapsuleBounds(t *testing.T) {
	capsule := Shape{Kind: ShapeCapsule, Radius: 0.5, HalfHeight: 1.0}
	md := capsule.MassProperties(1.0)

	// A capsule is bounded by its inscribed rectangle and bounding box.
	rect := Shape{Kind: ShapeBox, HalfExtents: Vector{0.5, 1.0}}.MassProperties(1.0)
	bounding := Shape{Kind: ShapeBox, HalfExtents: Vector{0.5, 1.5}}.MassProperties(1.0)

	if md.Mass <= rect.Mass || md.Mass >= bounding.Mass {
		t.Errorf("capsule mass %v should be between %v and %v", md.Mass, rect.Mass, bounding.Mass)
	}
	if md.Inertia <= rect.Inertia || md.Inertia >= bounding.Inertia {
		t.Errorf("capsule inertia %v should be between %v and %v", md.Inertia, rect.Inertia, bounding.Inertia)
	}
}

func TestShapeMassProperties_OffsetCentroid(t *testing.T) {
	disc := Shape{Kind: ShapeSphere, Radius: 0.5, Offset: Vector{1, 2}}
	md := disc.MassProperties(1.0)

	assert.Equal(t, Vector{1, 2}, md.LocalCenter)
}
