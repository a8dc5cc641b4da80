//go:build !planar

package rigid

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func diagInertia(x, y, z Scalar) Inertia {
	return Inertia{Value: mgl32.Diag3(mgl32.Vec3{x, y, z})}
}

// assertMat3Near compares element-wise. Rotation leaves float32 residue in
// elements that should be zero, which a relative matrix comparison rejects.
func assertMat3Near(t *testing.T, want, got mgl32.Mat3, delta float64) {
	t.Helper()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, float64(want.At(r, c)), float64(got.At(r, c)), delta, "element (%d,%d)", r, c)
		}
	}
}

func TestInertia_InverseRoundTrip(t *testing.T) {
	i := diagInertia(2, 4, 8)
	back := i.Inverse().Inverse()
	assert.True(t, i.Value.ApproxEqualThreshold(back.Value, 1e-5), "expected %v, got %v", i.Value, back.Value)
}

func TestInertia_ZeroBoundary(t *testing.T) {
	// The zero tensor has no matrix inverse; inverting it is defined as the
	// other type's zero, not a singular-matrix result.
	if got := (Inertia{}).Inverse(); got != (InverseInertia{}) {
		t.Errorf("Inertia zero should invert to InverseInertia zero, got %v", got)
	}
	if got := (InverseInertia{}).Inverse(); got != (Inertia{}) {
		t.Errorf("InverseInertia zero should invert to Inertia zero, got %v", got)
	}
}

func TestInertia_RotatedRoundTrip(t *testing.T) {
	i := diagInertia(1, 2, 3)
	rot := NewRotation(mgl32.QuatRotate(1.1, mgl32.Vec3{0.3, 0.8, 0.5}.Normalize()))

	back := i.Rotated(rot).Rotated(rot.Inverse())
	assertMat3Near(t, i.Value, back.Value, 1e-4)
}

func TestInertia_RotatedQuarterTurn(t *testing.T) {
	// A quarter turn around z swaps the x and y principal moments.
	i := diagInertia(1, 2, 3)
	rot := NewRotation(mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 0, 1}))

	world := i.Rotated(rot).Value
	want := mgl32.Diag3(mgl32.Vec3{2, 1, 3})
	assertMat3Near(t, want, world, 1e-4)
}

func TestInertia_ShiftedGuard(t *testing.T) {
	i := diagInertia(1, 2, 3)
	offset := Vector{1, 2, 3}

	for _, mass := range []Scalar{0, -1, math32.Inf(1), math32.NaN()} {
		if got := i.Shifted(mass, offset); got != i.Value {
			t.Errorf("Shifted with mass %v should leave the tensor unchanged, got %v", mass, got)
		}
	}
}

func TestInertia_ParallelAxisFromZero(t *testing.T) {
	// Shifting along x must not add inertia about the x axis; the transverse
	// axes gain m * d^2.
	mass := Scalar(2.0)
	d := Scalar(3.0)
	got := Inertia{}.Shifted(mass, Vector{d, 0, 0})

	want := mgl32.Diag3(mgl32.Vec3{0, mass * d * d, mass * d * d})
	assert.True(t, got.ApproxEqualThreshold(want, 1e-5), "expected %v, got %v", want, got)
}

func TestInertia_ShiftedGeneralOffset(t *testing.T) {
	mass := Scalar(1.5)
	offset := Vector{1, 2, 3}

	got := Inertia{}.Shifted(mass, offset)
	want := mgl32.Ident3().Mul(offset.LenSqr()).Sub(offset.OuterProd3(offset)).Mul(mass)
	assert.True(t, got.ApproxEqualThreshold(want, 1e-5), "expected %v, got %v", want, got)

	// Shifting preserves symmetry.
	assert.InDelta(t, float64(got.At(0, 1)), float64(got.At(1, 0)), 1e-6)
	assert.InDelta(t, float64(got.At(0, 2)), float64(got.At(2, 0)), 1e-6)
	assert.InDelta(t, float64(got.At(1, 2)), float64(got.At(2, 1)), 1e-6)
}

func TestInverseInertia_RotatedRoundTrip(t *testing.T) {
	ii := diagInertia(2, 5, 9).Inverse()
	rot := NewRotation(mgl32.QuatRotate(0.7, mgl32.Vec3{1, 1, 0}.Normalize()))

	back := ii.Rotated(rot).Rotated(rot.Inverse())
	assertMat3Near(t, ii.Value, back.Value, 1e-4)
}
