package graphics

import "fmt"

// FilterMode specifies the sampling strategy used when a texture is scaled
// during drawing.
type FilterMode uint8

const (
	// FilterModeNearest is nearest-neighbor sampling. Crisp pixels, the
	// right choice for pixel art.
	FilterModeNearest FilterMode = iota

	// FilterModeLinear is bilinear interpolation. Smooth scaling for
	// high-resolution art.
	FilterModeLinear
)

// String returns a human-readable name for the filter mode.
func (f FilterMode) String() string {
	switch f {
	case FilterModeNearest:
		return "Nearest"
	case FilterModeLinear:
		return "Linear"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// TextureResource is a GPU image resource created by a Device.
//
// Resources are handles: copying the interface value aliases the same
// underlying image. The framework touches resources from the frame
// goroutine only.
type TextureResource interface {
	// Filter returns the current sampling filter of the texture.
	Filter() FilterMode

	// SetFilter changes the sampling filter. Takes effect on subsequent
	// draws; already-issued draws are unaffected.
	SetFilter(mode FilterMode)

	// Pixels returns a copy of the texture contents as RGBA bytes
	// (4 bytes per pixel, row-major). May be slow on GPU devices as it
	// requires readback.
	Pixels() ([]byte, error)

	// Replace overwrites the texture contents. The pixel slice must be
	// exactly width*height*4 bytes.
	Replace(pix []byte) error

	// Destroy releases the resource. Safe to call more than once.
	Destroy()
}

// FramebufferResource is an off-screen render target wrapping one texture
// as its color attachment.
//
// The resource is shared, not cloned: the owning Canvas and the device's
// active-target slot alias the same handle, and the resource lives as long
// as the longest holder.
type FramebufferResource interface {
	// Texture returns the color attachment backing this framebuffer.
	Texture() TextureResource

	// Destroy releases the framebuffer. The attached texture is not
	// destroyed.
	Destroy()
}

// Device is the narrow contract between the graphics module and the
// underlying driver. Implementations live in internal/software (CPU) and
// backend/wgpu (GPU).
//
// A Device owns a backbuffer sized to the window. SetRenderTarget(nil)
// restores drawing to the backbuffer. All methods must be called from the
// frame goroutine.
type Device interface {
	// CreateTexture allocates a texture. If pix is nil the texture starts
	// transparent; otherwise pix must be width*height*4 RGBA bytes.
	// Fails if dimensions are non-positive or exceed MaxTextureSize.
	CreateTexture(width, height int, filter FilterMode, pix []byte) (TextureResource, error)

	// NewFramebuffer wraps a texture as a render-target attachment.
	NewFramebuffer(tex TextureResource, depthBuffer bool) (FramebufferResource, error)

	// SetRenderTarget redirects subsequent Clear/DrawTexture calls to the
	// given framebuffer. nil selects the backbuffer. Effective immediately
	// for all following draws.
	SetRenderTarget(fb FramebufferResource)

	// Clear fills the current render target with a color.
	Clear(c Color)

	// DrawTexture draws the full source texture into the current render
	// target, mapping source pixel coordinates through the affine
	// transform and modulating by tint.
	DrawTexture(tex TextureResource, transform Mat32, tint Color)

	// Flush completes all draw commands issued this frame.
	Flush() error

	// BackbufferPixels returns a copy of the backbuffer as RGBA bytes.
	BackbufferPixels() ([]byte, error)

	// ResizeBackbuffer resizes the backbuffer, discarding its contents.
	ResizeBackbuffer(width, height int) error

	// MaxTextureSize returns the largest supported texture dimension.
	MaxTextureSize() int

	// Close releases all device resources.
	Close() error
}
