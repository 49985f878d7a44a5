package game

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
)

func TestGridStep(t *testing.T) {
	tests := []struct {
		extent     float64
		division   int
		maxSpacing int
		want       int
	}{
		{extent: 5, division: 10, maxSpacing: -1, want: 1},
		{extent: 100, division: 10, maxSpacing: -1, want: 10},
		{extent: 100, division: 10, maxSpacing: 4, want: 4},
		{extent: 37, division: 5, maxSpacing: -1, want: 7},
		{extent: 37, division: 0, maxSpacing: -1, want: 37},
		{extent: 37, division: 5, maxSpacing: 0, want: 7},
	}
	for _, tt := range tests {
		if got := GridStep(tt.extent, tt.division, tt.maxSpacing); got != tt.want {
			t.Errorf("GridStep(%v, %v, %v) = %v, want %v", tt.extent, tt.division, tt.maxSpacing, got, tt.want)
		}
	}
}

func TestCircleSegmentsBounded(t *testing.T) {
	b := SegmentBounds{Min: 30, Max: 60, TargetLength: 0.5, ScaleFactor: 4}
	last := 0
	for r := 0.0; r <= 200; r += 0.25 {
		n := CircleSegments(r, r, b)
		if n < b.Min || n > b.Max {
			t.Fatalf("segments for radius %v out of range: %v", r, n)
		}
		if n < last {
			t.Fatalf("segments decreased at radius %v: %v < %v", r, n, last)
		}
		last = n
	}
	if last != b.Max {
		t.Fatalf("expected large radius to reach the maximum, got %v", last)
	}
}

func TestEllipseCircumference(t *testing.T) {
	if c := EllipseCircumference(3, 3); math.Abs(c-2*math.Pi*3) > 1e-9 {
		t.Fatalf("circle circumference mismatch: %v", c)
	}
	if c := EllipseCircumference(0, 0); c != 0 {
		t.Fatalf("expected zero circumference, got %v", c)
	}
	// Ramanujan's second approximation is accurate to well below 0.01% for this ratio.
	if c := EllipseCircumference(10, 5); math.Abs(c-48.442) > 0.01 {
		t.Fatalf("unexpected circumference: %v", c)
	}
}

func TestBoundsOrderIndependent(t *testing.T) {
	a, b := cube.Pos{4, -2, 7}, cube.Pos{-1, 3, 2}
	b1, b2 := BoundsOf(a, b), BoundsOf(b, a)
	if b1.Min() != b2.Min() || b1.Max() != b2.Max() {
		t.Fatalf("bounds depend on corner order: %v/%v vs %v/%v", b1.Min(), b1.Max(), b2.Min(), b2.Max())
	}
	e := b1.Expand()
	if e.Width() != 6 || e.Height() != 6 || e.Length() != 6 {
		t.Fatalf("unexpected expanded extents: %v %v %v", e.Width(), e.Height(), e.Length())
	}
	if e.Volume() != 216 {
		t.Fatalf("unexpected volume: %v", e.Volume())
	}
}

func TestVec2(t *testing.T) {
	a, b := Vec2{X: 1, Z: 5}, Vec2{X: 4, Z: 1}
	if d := a.Distance(b); d != 5 {
		t.Fatalf("expected distance 5, got %v", d)
	}
	if m := a.Min(b); m != (Vec2{X: 1, Z: 1}) {
		t.Fatalf("unexpected min: %v", m)
	}
	if m := a.Max(b); m != (Vec2{X: 4, Z: 5}) {
		t.Fatalf("unexpected max: %v", m)
	}
	if s := a.Sub(b).Scale(2); s != (Vec2{X: -6, Z: 8}) {
		t.Fatalf("unexpected scaled difference: %v", s)
	}
}
