package affine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestRotation(t *testing.T) {
	rot := Rotation(90)
	tx, ty := rot.Apply(1, 2)

	if math.Round(tx) != -2 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 1 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}

	// translating the point to the origin first should leave it there
	t0 := Translation(-1, -2)
	tx, ty = t0.Mul(rot).Apply(1, 2)

	if math.Round(tx) != 0 {
		t.Errorf("unexpected value for transformed x: %v", tx)
	}
	if math.Round(ty) != 0 {
		t.Errorf("unexpected value for transformed y: %v", ty)
	}
}

func TestRotationInverse(t *testing.T) {
	for _, deg := range []float64{0, 1, 30, 45, 90, 135, 180, 270, 359.5, -72, 1080} {
		m := Multiply(Rotation(deg), Rotation(-deg))
		if !m.Equal(Identity(), tolerance) {
			t.Errorf("rotate(%v)·rotate(%v) is not the identity: %v", deg, -deg, m)
		}
	}
}

func TestScaleInverse(t *testing.T) {
	for _, s := range []float64{0.001, 0.5, 1, 2, 3, 17.25, 1000} {
		m := Multiply(Scale(s), Scale(1/s))
		if !m.Equal(Identity(), tolerance) {
			t.Errorf("scale(%v)·scale(%v) is not the identity: %v", s, 1/s, m)
		}
	}
}

func TestMultiplyConvention(t *testing.T) {
	a := Matrix{A: 1, B: 2, C: 3, D: 4, OffsetX: 5, OffsetY: 6}
	b := Matrix{A: 7, B: 8, C: 9, D: 10, OffsetX: 11, OffsetY: 12}
	m := Multiply(a, b)

	expected := Matrix{
		A:       1*7 + 2*9,
		B:       1*8 + 2*10,
		C:       3*7 + 4*9,
		D:       3*8 + 4*10,
		OffsetX: 5*7 + 6*9 + 11,
		OffsetY: 5*8 + 6*10 + 12,
	}
	assert.Equal(t, expected, m)

	// a is applied first
	x, y := a.Apply(1, 1)
	x, y = b.Apply(x, y)
	mx, my := m.Apply(1, 1)
	assert.InDelta(t, x, mx, tolerance)
	assert.InDelta(t, y, my, tolerance)
}

func TestMultiplyAssociative(t *testing.T) {
	a := Rotation(33)
	b := Translation(12, -4)
	c := Scale(1.5)

	left := Multiply(Multiply(a, b), c)
	right := Multiply(a, Multiply(b, c))
	if !left.Equal(right, tolerance) {
		t.Errorf("(a·b)·c != a·(b·c): %v != %v", left, right)
	}
}

func TestMultiplyNotCommutative(t *testing.T) {
	// A uniform scale commutes with a rotation, so mix in a translation.
	r := Rotation(90)
	tr := Translation(10, 0)
	if Multiply(r, tr).Equal(Multiply(tr, r), tolerance) {
		t.Errorf("rotation and translation should not commute")
	}

	r2 := Multiply(Rotation(90), Scale(2))
	s2 := Multiply(Scale(2), Rotation(90))
	if !r2.Equal(s2, tolerance) {
		t.Errorf("uniform scale should commute with rotation")
	}

	ns := Matrix{A: 2, D: 1}
	if Multiply(Rotation(90), ns).Equal(Multiply(ns, Rotation(90)), tolerance) {
		t.Errorf("rotation and non-uniform scale should not commute")
	}
}

func TestPivotedNeutral(t *testing.T) {
	prev := Matrix{A: 0.8, B: 0.6, C: -0.6, D: 0.8, OffsetX: 13, OffsetY: -7}
	m := Pivoted(Translation(-75, -75), Translation(75, 75),
		Scale(1), Translation(0, 0), Rotation(0), prev)
	if m != prev {
		t.Errorf("neutral manipulation changed the transform: %v != %v", m, prev)
	}
}

func TestPivotedRotationAroundCenter(t *testing.T) {
	in := Translation(-75, -75)
	out := Translation(75, 75)
	m := Pivoted(in, out, Scale(1), Translation(0, 0), Rotation(90), Identity())

	// The pivot stays in place.
	x, y := m.Apply(75, 75)
	assert.InDelta(t, 75, x, tolerance)
	assert.InDelta(t, 75, y, tolerance)

	// Without translation this matches a plain rotation about the center.
	ref := in.Mul(Rotation(90)).Mul(out)
	assert.True(t, m.Equal(ref, tolerance))
}

func TestPivotedRotatesTranslation(t *testing.T) {
	in := Translation(-75, -75)
	out := Translation(75, 75)
	m := Pivoted(in, out, Scale(1), Translation(10, 0), Rotation(90), Identity())

	// Rotation is applied after translation, so the translation is rotated
	// as well. A rotate-about-center followed by a plain translation would
	// move the pivot to (85, 75) instead.
	x, y := m.Apply(75, 75)
	assert.InDelta(t, 75, x, tolerance)
	assert.InDelta(t, 85, y, tolerance)

	ref := in.Mul(Rotation(90)).Mul(out).Mul(Translation(10, 0))
	assert.False(t, m.Equal(ref, tolerance))
}

func TestPivotedScale(t *testing.T) {
	m := Pivoted(Translation(-75, -75), Translation(75, 75),
		Scale(2), Translation(0, 0), Rotation(0), Identity())

	x, y := m.Apply(0, 0)
	assert.InDelta(t, -75, x, tolerance)
	assert.InDelta(t, -75, y, tolerance)
	x, y = m.Apply(150, 150)
	assert.InDelta(t, 225, x, tolerance)
	assert.InDelta(t, 225, y, tolerance)
}

func TestInvert(t *testing.T) {
	m := Pivoted(Translation(-75, -75), Translation(75, 75),
		Scale(1.7), Translation(20, -3), Rotation(41), Translation(100, 50))

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("matrix should be invertible")
	}
	if !Multiply(m, inv).Equal(Identity(), tolerance) {
		t.Errorf("m·inverse(m) is not the identity")
	}

	x, y := m.Apply(12, 34)
	x, y = inv.Apply(x, y)
	assert.InDelta(t, 12, x, tolerance)
	assert.InDelta(t, 34, y, tolerance)

	_, ok = Scale(0).Invert()
	if ok {
		t.Errorf("singular matrix reported as invertible")
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		t.Errorf("identity not recognized")
	}
	if id.A != 1 || id.D != 1 || id.B != 0 || id.C != 0 || id.OffsetX != 0 || id.OffsetY != 0 {
		t.Errorf("unexpected identity: %v", id)
	}
	if Translation(1, 0).IsIdentity() {
		t.Errorf("translation recognized as identity")
	}
}
