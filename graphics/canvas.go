package graphics

// Canvas is a texture that can be used for off-screen rendering.
//
// This is sometimes referred to as a 'render texture' or 'render target'
// in other frameworks. Canvases are useful for rendering something once
// and caching the result (e.g. a static background), or for applying a
// transform or tint to many things at once.
//
// Creating a canvas is a relatively expensive operation; create them up
// front rather than inside Update or Draw.
//
// The canvas's texture and framebuffer always refer to the same GPU
// image: drawing while the canvas is bound mutates the pixels that
// subsequent draws of the canvas read.
type Canvas struct {
	texture     *Texture
	framebuffer FramebufferResource
}

// NewCanvas creates a canvas of the given size, using the context's
// default filter mode.
//
// Returns a *PlatformError if the device cannot allocate the texture or
// framebuffer — non-positive or oversized dimensions surface here, since
// the valid range depends on the device.
func NewCanvas(ctx *Context, width, height int) (*Canvas, error) {
	texture, err := newTexture(ctx.device, width, height, ctx.defaultFilterMode, nil)
	if err != nil {
		return nil, err
	}

	framebuffer, err := ctx.device.NewFramebuffer(texture.res, true)
	if err != nil {
		texture.res.Destroy()
		return nil, platformErr("create framebuffer", err)
	}

	return &Canvas{
		texture:     texture,
		framebuffer: framebuffer,
	}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.texture.Width()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.texture.Height()
}

// Size returns the size of the canvas.
func (c *Canvas) Size() (int, int) {
	return c.texture.Size()
}

// FilterMode returns the filter mode being used by the canvas.
func (c *Canvas) FilterMode() FilterMode {
	return c.texture.FilterMode()
}

// SetFilterMode sets the filter mode used when the canvas is drawn.
// Takes effect on subsequent draws, not retroactively.
func (c *Canvas) SetFilterMode(ctx *Context, mode FilterMode) {
	c.texture.SetFilterMode(ctx, mode)
}

// Texture returns the canvas's backing texture, for use anywhere a
// regular texture is accepted.
func (c *Canvas) Texture() *Texture {
	return c.texture
}

// Draw draws the canvas's texture to the current render target. A canvas
// and a texture are interchangeable at the call site.
func (c *Canvas) Draw(ctx *Context, params DrawParams) {
	c.texture.Draw(ctx, params)
}

var _ Drawable = (*Canvas)(nil)
