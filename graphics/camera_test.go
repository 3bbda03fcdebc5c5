package graphics

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestCameraDefaultCentersOrigin(t *testing.T) {
	c := NewCamera(640, 480)
	p := c.Project(V(0, 0))
	if !vecAlmostEqual(p, V(320, 240)) {
		t.Errorf("world origin: got %v, want (320, 240)", p)
	}
}

func TestCameraPosition(t *testing.T) {
	c := NewCamera(640, 480)
	c.Position = V(100, 50)
	c.Update()

	p := c.Project(V(100, 50))
	if !vecAlmostEqual(p, V(320, 240)) {
		t.Errorf("looked-at point: got %v, want viewport center", p)
	}
}

func TestCameraZoom(t *testing.T) {
	c := NewCamera(640, 480)
	c.Zoom = 2
	c.Update()

	p := c.Project(V(10, 0))
	if !vecAlmostEqual(p, V(340, 240)) {
		t.Errorf("zoomed point: got %v, want (340, 240)", p)
	}
}

func TestCameraRotation(t *testing.T) {
	c := NewCamera(640, 480)
	c.Rotation = math32.Pi / 2
	c.Update()

	// A quarter turn of the camera swings world +X to screen -Y.
	p := c.Project(V(10, 0))
	if !vecAlmostEqual(p, V(320, 230)) {
		t.Errorf("rotated point: got %v, want (320, 230)", p)
	}
}

func TestCameraViewportResize(t *testing.T) {
	c := NewCamera(640, 480)
	c.SetViewportSize(800, 600)
	c.Update()

	p := c.Project(V(0, 0))
	if !vecAlmostEqual(p, V(400, 300)) {
		t.Errorf("after resize: got %v, want (400, 300)", p)
	}
}

func TestCameraUpdateIsExplicit(t *testing.T) {
	c := NewCamera(640, 480)
	before := c.AsMatrix()

	c.Position = V(500, 500)
	if c.AsMatrix() != before {
		t.Error("matrix changed without Update")
	}
	c.Update()
	if c.AsMatrix() == before {
		t.Error("matrix unchanged after Update")
	}
}

func TestCameraProjectUnprojectRoundTrip(t *testing.T) {
	c := NewCamera(640, 480)
	c.Position = V(-30, 75)
	c.Rotation = 0.6
	c.Zoom = 2.5
	c.Update()

	for _, world := range []Vec2{V(0, 0), V(100, -200), V(-3.5, 7.25)} {
		back := c.Unproject(c.Project(world))
		if !vecAlmostEqual(back, world) {
			t.Errorf("round trip of %v: got %v", world, back)
		}
	}
}

func TestCameraZeroZoomDoesNotPanic(t *testing.T) {
	c := NewCamera(640, 480)
	c.Zoom = 0
	c.Update()

	// Degenerate matrix inverts to identity rather than exploding.
	_ = c.Unproject(V(320, 240))
	_, _ = c.VisibleRect()
}

func TestCameraVisibleRect(t *testing.T) {
	c := NewCamera(640, 480)
	minV, maxV := c.VisibleRect()
	if !vecAlmostEqual(minV, V(-320, -240)) || !vecAlmostEqual(maxV, V(320, 240)) {
		t.Errorf("visible rect: got %v..%v", minV, maxV)
	}

	c.Zoom = 2
	c.Update()
	minV, maxV = c.VisibleRect()
	if !vecAlmostEqual(minV, V(-160, -120)) || !vecAlmostEqual(maxV, V(160, 120)) {
		t.Errorf("zoomed visible rect: got %v..%v", minV, maxV)
	}
}
