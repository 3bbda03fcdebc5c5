// Package software provides a CPU implementation of the graphics device
// contract. Every texture is an *image.RGBA and draws go through
// golang.org/x/image/draw, so the package works headless — it is the
// fallback when no GPU backend is registered and the device the test
// suite runs against.
package software

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/arcade/backend"
	"github.com/gogpu/arcade/graphics"
)

// Device errors.
var (
	// ErrInvalidTextureSize is returned when texture dimensions are not
	// positive or exceed MaxTextureSize.
	ErrInvalidTextureSize = errors.New("software: invalid texture size")

	// ErrPixelSizeMismatch is returned when a pixel slice does not match
	// the texture dimensions.
	ErrPixelSizeMismatch = errors.New("software: pixel data size does not match texture")

	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("software: texture has been destroyed")

	// ErrForeignTexture is returned when a texture from another device
	// implementation is passed in.
	ErrForeignTexture = errors.New("software: texture was not created by this device")
)

// maxTextureSize mirrors a common GPU limit so software and GPU devices
// reject the same inputs.
const maxTextureSize = 16384

func init() {
	backend.Register(backend.DeviceSoftware, func(width, height int) (graphics.Device, error) {
		return New(width, height)
	})
}

// Device is a CPU-backed graphics device.
type Device struct {
	backbuffer *image.RGBA
	target     *image.RGBA // current render target, aliases backbuffer or a texture
	closed     bool
}

var _ graphics.Device = (*Device)(nil)

// New creates a software device with a backbuffer of the given size.
func New(width, height int) (*Device, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	bb := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Device{backbuffer: bb, target: bb}, nil
}

// texture is the software TextureResource: pixels plus a filter mode.
type texture struct {
	img       *image.RGBA
	filter    graphics.FilterMode
	destroyed bool
}

// Filter returns the current sampling filter.
func (t *texture) Filter() graphics.FilterMode {
	return t.filter
}

// SetFilter changes the sampling filter used by subsequent draws.
func (t *texture) SetFilter(mode graphics.FilterMode) {
	t.filter = mode
}

// Pixels returns a copy of the texture contents.
func (t *texture) Pixels() ([]byte, error) {
	if t.destroyed {
		return nil, ErrTextureDestroyed
	}
	out := make([]byte, len(t.img.Pix))
	copy(out, t.img.Pix)
	return out, nil
}

// Replace overwrites the texture contents.
func (t *texture) Replace(pix []byte) error {
	if t.destroyed {
		return ErrTextureDestroyed
	}
	if len(pix) != len(t.img.Pix) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrPixelSizeMismatch, len(pix), len(t.img.Pix))
	}
	copy(t.img.Pix, pix)
	return nil
}

// Destroy marks the texture unusable. Memory is reclaimed by the GC.
func (t *texture) Destroy() {
	t.destroyed = true
}

// framebuffer wraps a texture as a render target. The same *framebuffer
// is aliased by the owning canvas and by the device's target slot while
// bound.
type framebuffer struct {
	tex *texture
}

// Texture returns the color attachment.
func (f *framebuffer) Texture() graphics.TextureResource {
	return f.tex
}

// Destroy releases the framebuffer. The attached texture is untouched.
func (f *framebuffer) Destroy() {}

// CreateTexture allocates a texture. pix may be nil for a transparent
// texture.
func (d *Device) CreateTexture(width, height int, filter graphics.FilterMode, pix []byte) (graphics.TextureResource, error) {
	if width <= 0 || height <= 0 || width > maxTextureSize || height > maxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if pix != nil {
		if len(pix) != len(img.Pix) {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrPixelSizeMismatch, len(pix), len(img.Pix))
		}
		copy(img.Pix, pix)
	}
	return &texture{img: img, filter: filter}, nil
}

// NewFramebuffer wraps a texture as a render-target attachment. The
// software device has no depth buffers, so depthBuffer is accepted and
// ignored.
func (d *Device) NewFramebuffer(tex graphics.TextureResource, depthBuffer bool) (graphics.FramebufferResource, error) {
	_ = depthBuffer
	t, ok := tex.(*texture)
	if !ok {
		return nil, ErrForeignTexture
	}
	if t.destroyed {
		return nil, ErrTextureDestroyed
	}
	return &framebuffer{tex: t}, nil
}

// SetRenderTarget selects the framebuffer that subsequent draws write
// to; nil selects the backbuffer.
func (d *Device) SetRenderTarget(fb graphics.FramebufferResource) {
	if fb == nil {
		d.target = d.backbuffer
		return
	}
	if f, ok := fb.(*framebuffer); ok {
		d.target = f.tex.img
	}
}

// Clear fills the current render target with a color.
func (d *Device) Clear(c graphics.Color) {
	col := c.NRGBA()
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	b := d.target.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := d.target.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			d.target.Pix[i+0] = rgba.R
			d.target.Pix[i+1] = rgba.G
			d.target.Pix[i+2] = rgba.B
			d.target.Pix[i+3] = rgba.A
			i += 4
		}
	}
}

// DrawTexture draws tex into the current render target through the
// affine transform, choosing the interpolator from the texture's filter
// mode.
func (d *Device) DrawTexture(tex graphics.TextureResource, transform graphics.Mat32, tint graphics.Color) {
	t, ok := tex.(*texture)
	if !ok || t.destroyed {
		return
	}

	src := t.img
	if tint != graphics.White {
		src = tinted(src, tint)
	}

	aff := f64.Aff3{
		float64(transform.A), float64(transform.B), float64(transform.C),
		float64(transform.D), float64(transform.E), float64(transform.F),
	}

	var interp xdraw.Interpolator
	switch t.filter {
	case graphics.FilterModeLinear:
		interp = xdraw.BiLinear
	default:
		interp = xdraw.NearestNeighbor
	}
	interp.Transform(d.target, aff, src, src.Bounds(), xdraw.Over, nil)
}

// tinted returns a copy of src with every pixel modulated by the tint
// color. Pixels are alpha-premultiplied, so each channel scales
// independently.
func tinted(src *image.RGBA, tint graphics.Color) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i+0] = mul8(src.Pix[i+0], tint.R*tint.A)
		out.Pix[i+1] = mul8(src.Pix[i+1], tint.G*tint.A)
		out.Pix[i+2] = mul8(src.Pix[i+2], tint.B*tint.A)
		out.Pix[i+3] = mul8(src.Pix[i+3], tint.A)
	}
	return out
}

func mul8(v byte, f float32) byte {
	if f <= 0 {
		return 0
	}
	r := float32(v) * f
	if r > 255 {
		return 255
	}
	return byte(r)
}

// Flush completes the frame. The software device draws synchronously, so
// this is a no-op.
func (d *Device) Flush() error {
	return nil
}

// BackbufferPixels returns a copy of the backbuffer contents.
func (d *Device) BackbufferPixels() ([]byte, error) {
	out := make([]byte, len(d.backbuffer.Pix))
	copy(out, d.backbuffer.Pix)
	return out, nil
}

// ResizeBackbuffer resizes the backbuffer, discarding its contents. If
// the backbuffer is the current render target it stays the target.
func (d *Device) ResizeBackbuffer(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	wasTarget := d.target == d.backbuffer
	d.backbuffer = image.NewRGBA(image.Rect(0, 0, width, height))
	if wasTarget {
		d.target = d.backbuffer
	}
	return nil
}

// MaxTextureSize returns the largest supported texture dimension.
func (d *Device) MaxTextureSize() int {
	return maxTextureSize
}

// Close releases the device. Idempotent.
func (d *Device) Close() error {
	d.closed = true
	return nil
}
