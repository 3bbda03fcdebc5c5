package graphics

// Drawable is implemented by anything that can be drawn to the current
// render target: textures, canvases, and higher-level types composed of
// them.
//
// Draw must not mutate the receiver. The params fully determine the draw's
// transform and tint and are not retained. Output goes to whatever render
// target is active on ctx when Draw is called.
type Drawable interface {
	Draw(ctx *Context, params DrawParams)
}
