package rigid

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestMass_InverseBoundary(t *testing.T) {
	// Zero mass maps to infinite inverse mass, never a division fault.
	inv := Mass{}.Inverse()
	if !math32.IsInf(inv.Value, 1) {
		t.Errorf("zero mass should invert to +Inf, got %v", inv.Value)
	}

	assert.InDelta(t, 0.5, float64(Mass{Value: 2.0}.Inverse().Value), 1e-6)
}

func TestInverseMass_InverseBoundary(t *testing.T) {
	if got := (InverseMass{Value: math32.Inf(1)}).Inverse(); got != (Mass{}) {
		t.Errorf("infinite inverse mass should invert to zero mass, got %v", got)
	}
	if got := (InverseMass{}).Inverse(); got != (Mass{}) {
		t.Errorf("zero inverse mass should invert to zero mass, got %v", got)
	}

	assert.InDelta(t, 4.0, float64(InverseMass{Value: 0.25}.Inverse().Value), 1e-6)
}

func TestDefaultColliderDensity(t *testing.T) {
	assert.Equal(t, Scalar(1.0), DefaultColliderDensity().Value)
}
