package graphics

// Camera is a 2D view transform: a position, rotation and zoom over a
// viewport, producing a matrix for [Context.SetTransformMatrix].
//
// Fields are mutated directly; the matrix is only recomputed when
// [Camera.Update] is called. This two-phase contract avoids rebuilding
// the matrix on every field write, but it means a stale matrix after
// mutating fields is a caller error, not something the framework
// detects — always call Update before relying on AsMatrix for a new
// frame.
//
//	camera.Position.X += speed
//	camera.Rotation += 0.1
//	camera.Update()
//	ctx.SetTransformMatrix(camera.AsMatrix())
type Camera struct {
	// Position is the world point the camera is looking at. It maps to
	// the center of the viewport.
	Position Vec2

	// Rotation is the camera rotation in radians.
	Rotation float32

	// Zoom is the magnification. 1 is unscaled. Zero or negative values
	// are allowed and produce collapsed or inverted rendering rather
	// than an error, so free-form zoom controls cannot crash.
	Zoom float32

	// ViewportWidth is the logical viewport width used to center the
	// projection. Usually the window width.
	ViewportWidth float32

	// ViewportHeight is the logical viewport height.
	ViewportHeight float32

	matrix Mat32
}

// NewCamera creates a camera looking at the origin with no rotation and
// a zoom of 1. The matrix is computed, so the camera is usable
// immediately.
func NewCamera(viewportWidth, viewportHeight float32) *Camera {
	c := &Camera{
		Zoom:           1,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
	c.Update()
	return c
}

// NewCameraWithWindowSize creates a camera with the viewport set to the
// context's current backbuffer size.
func NewCameraWithWindowSize(ctx *Context) *Camera {
	w, h := ctx.Size()
	return NewCamera(float32(w), float32(h))
}

// SetViewportSize updates the viewport dimensions, typically from a
// resize event. The matrix is not recomputed; call Update afterwards.
func (c *Camera) SetViewportSize(width, height float32) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// Update recomputes the cached matrix from the current position,
// rotation, zoom and viewport.
//
// The matrix maps world space to screen space by translating by
// -Position, rotating by -Rotation, scaling by Zoom, then translating to
// the viewport center — built as one combined matrix so composition is
// deterministic regardless of draw order.
func (c *Camera) Update() {
	c.matrix = Translate(c.ViewportWidth/2, c.ViewportHeight/2).
		Multiply(Scale(c.Zoom, c.Zoom)).
		Multiply(Rotate(-c.Rotation)).
		Multiply(Translate(-c.Position.X, -c.Position.Y))
}

// AsMatrix returns the matrix computed by the last Update call. It does
// not recompute.
func (c *Camera) AsMatrix() Mat32 {
	return c.matrix
}

// Project converts a world position to a screen position, using the last
// computed matrix.
func (c *Camera) Project(world Vec2) Vec2 {
	return c.matrix.TransformPoint(world)
}

// Unproject converts a screen position to a world position, using the
// last computed matrix. Useful for picking under the mouse cursor.
func (c *Camera) Unproject(screen Vec2) Vec2 {
	return c.matrix.Invert().TransformPoint(screen)
}

// VisibleRect returns the world-space corners of the viewport as min and
// max points of the axis-aligned bounding box, using the last computed
// matrix. With rotation active the box covers more than is visible.
func (c *Camera) VisibleRect() (minV, maxV Vec2) {
	inv := c.matrix.Invert()
	corners := [4]Vec2{
		inv.TransformPoint(Vec2{}),
		inv.TransformPoint(Vec2{X: c.ViewportWidth}),
		inv.TransformPoint(Vec2{Y: c.ViewportHeight}),
		inv.TransformPoint(Vec2{X: c.ViewportWidth, Y: c.ViewportHeight}),
	}
	minV, maxV = corners[0], corners[0]
	for _, p := range corners[1:] {
		if p.X < minV.X {
			minV.X = p.X
		}
		if p.Y < minV.Y {
			minV.Y = p.Y
		}
		if p.X > maxV.X {
			maxV.X = p.X
		}
		if p.Y > maxV.Y {
			maxV.Y = p.Y
		}
	}
	return minV, maxV
}
