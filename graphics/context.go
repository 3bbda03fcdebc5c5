package graphics

// Context holds the drawing state for a frame: the device, the active
// render target, and the current transform matrix.
//
// A Context is created once by the framework and passed to every draw
// call. It is not safe for concurrent use; all drawing happens on the
// frame goroutine.
type Context struct {
	device Device

	width  int
	height int

	defaultFilterMode FilterMode

	// canvas is the active off-screen render target, nil when drawing to
	// the backbuffer. The framebuffer resource is aliased here and inside
	// the canvas for as long as the binding lasts.
	canvas *Canvas

	transform Mat32
}

// NewContext creates a graphics context over a device with the given
// backbuffer size.
func NewContext(device Device, width, height int) *Context {
	return &Context{
		device:    device,
		width:     width,
		height:    height,
		transform: Identity(),
	}
}

// Device returns the underlying graphics device.
func (ctx *Context) Device() Device {
	return ctx.device
}

// Width returns the width of the current backbuffer.
func (ctx *Context) Width() int {
	return ctx.width
}

// Height returns the height of the current backbuffer.
func (ctx *Context) Height() int {
	return ctx.height
}

// Size returns the size of the current backbuffer.
func (ctx *Context) Size() (int, int) {
	return ctx.width, ctx.height
}

// DefaultFilterMode returns the filter mode that newly created textures
// and canvases start with.
func (ctx *Context) DefaultFilterMode() FilterMode {
	return ctx.defaultFilterMode
}

// SetDefaultFilterMode changes the filter mode for textures and canvases
// created after this call. Existing ones are unaffected.
func (ctx *Context) SetDefaultFilterMode(mode FilterMode) {
	ctx.defaultFilterMode = mode
}

// SetCanvas redirects all subsequent draw calls to the given canvas
// instead of the backbuffer. The binding is effective immediately and
// lasts until the next SetCanvas or ResetCanvas call.
//
// There is no save/restore stack: nesting canvases is the caller's
// responsibility.
func (ctx *Context) SetCanvas(canvas *Canvas) {
	if canvas == nil {
		ctx.ResetCanvas()
		return
	}
	ctx.canvas = canvas
	ctx.device.SetRenderTarget(canvas.framebuffer)
}

// ResetCanvas restores drawing to the backbuffer.
func (ctx *Context) ResetCanvas() {
	ctx.canvas = nil
	ctx.device.SetRenderTarget(nil)
}

// Canvas returns the active render target, or nil when drawing to the
// backbuffer.
func (ctx *Context) Canvas() *Canvas {
	return ctx.canvas
}

// SetTransformMatrix sets the transform applied to subsequent draw calls,
// typically a camera matrix from [Camera.AsMatrix].
func (ctx *Context) SetTransformMatrix(m Mat32) {
	ctx.transform = m
}

// ResetTransformMatrix restores the identity transform.
func (ctx *Context) ResetTransformMatrix() {
	ctx.transform = Identity()
}

// TransformMatrix returns the current draw transform.
func (ctx *Context) TransformMatrix() Mat32 {
	return ctx.transform
}

// Clear fills the current render target with a color.
func (ctx *Context) Clear(c Color) {
	ctx.device.Clear(c)
}

// Present finishes the frame's draw commands. The framework calls this at
// the end of every Draw; it is exported for headless use.
func (ctx *Context) Present() error {
	return platformErr("present frame", ctx.device.Flush())
}

// Resize resizes the backbuffer, typically in response to a window resize
// event. Cameras are not adjusted automatically: call
// [Camera.SetViewportSize] and [Camera.Update] yourself.
func (ctx *Context) Resize(width, height int) error {
	if err := ctx.device.ResizeBackbuffer(width, height); err != nil {
		return platformErr("resize backbuffer", err)
	}
	ctx.width = width
	ctx.height = height
	return nil
}

// drawTexture issues the device draw for a texture with the given params,
// composing the current transform with the per-draw model matrix.
func (ctx *Context) drawTexture(t *Texture, params DrawParams) {
	m := ctx.transform.Multiply(params.matrix())
	ctx.device.DrawTexture(t.res, m, params.Color)
}
