package graphics

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNewDrawParamsDefaults(t *testing.T) {
	p := NewDrawParams()
	if p.Scale != V(1, 1) {
		t.Errorf("scale: got %v, want (1, 1)", p.Scale)
	}
	if p.Color != White {
		t.Errorf("color: got %v, want white", p.Color)
	}
	if !p.matrix().IsIdentity() {
		t.Errorf("default matrix: got %+v, want identity", p.matrix())
	}
}

func TestPositionParams(t *testing.T) {
	p := PositionParams(V(10, 20))
	got := p.matrix().TransformPoint(V(1, 1))
	if !vecAlmostEqual(got, V(11, 21)) {
		t.Errorf("got %v, want (11, 21)", got)
	}
}

func TestDrawParamsMatrixOrder(t *testing.T) {
	// Origin is subtracted first, then scale, then rotation, then
	// position.
	p := DrawParams{
		Position: V(100, 0),
		Origin:   V(2, 0),
		Scale:    V(3, 3),
		Rotation: math32.Pi / 2,
		Color:    White,
	}

	// Texel (4, 0): minus origin (2, 0), scaled (6, 0), rotated to
	// (0, 6), translated to (100, 6).
	got := p.matrix().TransformPoint(V(4, 0))
	if !vecAlmostEqual(got, V(100, 6)) {
		t.Errorf("got %v, want (100, 6)", got)
	}
}

func TestDrawParamsOriginPinsRotation(t *testing.T) {
	p := DrawParams{
		Position: V(50, 50),
		Origin:   V(8, 8),
		Scale:    V(1, 1),
		Rotation: 1.3,
		Color:    White,
	}
	// The origin texel stays at Position under any rotation.
	got := p.matrix().TransformPoint(V(8, 8))
	if !vecAlmostEqual(got, V(50, 50)) {
		t.Errorf("origin moved: got %v, want (50, 50)", got)
	}
}
