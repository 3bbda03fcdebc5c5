package graphics

// DrawParams holds the transform and tint applied to a single draw call.
// It is a transient value object: draws read it and do not retain it.
type DrawParams struct {
	// Position is where the drawable is placed in the current coordinate
	// space (the render target, or world space when a camera transform is
	// active).
	Position Vec2

	// Origin is the pivot, in the drawable's own pixel coordinates.
	// Scaling and rotation happen around this point, and Position refers
	// to it.
	Origin Vec2

	// Scale is the horizontal and vertical scale factor. Negative values
	// flip the drawable.
	Scale Vec2

	// Rotation is the rotation around Origin, in radians.
	Rotation float32

	// Color is multiplied with the drawable's pixels.
	Color Color
}

// NewDrawParams returns DrawParams with scale 1 and a white (identity) tint.
func NewDrawParams() DrawParams {
	return DrawParams{
		Scale: Vec2{X: 1, Y: 1},
		Color: White,
	}
}

// PositionParams is shorthand for drawing at a position with defaults
// for everything else.
func PositionParams(position Vec2) DrawParams {
	p := NewDrawParams()
	p.Position = position
	return p
}

// matrix builds the model transform for the draw call:
// translate to Position, rotate, scale, then shift by -Origin.
func (p DrawParams) matrix() Mat32 {
	m := Translate(p.Position.X, p.Position.Y)
	if p.Rotation != 0 {
		m = m.Multiply(Rotate(p.Rotation))
	}
	if p.Scale.X != 1 || p.Scale.Y != 1 {
		m = m.Multiply(Scale(p.Scale.X, p.Scale.Y))
	}
	if p.Origin.X != 0 || p.Origin.Y != 0 {
		m = m.Multiply(Translate(-p.Origin.X, -p.Origin.Y))
	}
	return m
}
