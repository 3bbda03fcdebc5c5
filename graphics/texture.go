package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Image formats for NewTexture.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Texture owns a GPU image and can be drawn to the current render target.
//
// Texture values are cheap handles: copying one aliases the same
// underlying image, so a texture and the canvas it came from always stay
// consistent.
type Texture struct {
	res    TextureResource
	width  int
	height int
}

// NewTexture loads a texture from an image file. PNG, JPEG and BMP are
// supported.
//
// Returns a *PlatformError if the file cannot be read or decoded, or if
// the device cannot allocate the texture.
func NewTexture(ctx *Context, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, platformErr("load texture", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, platformErr("decode texture", fmt.Errorf("%s: %w", path, err))
	}
	return NewTextureFromImage(ctx, img)
}

// NewTextureFromImage creates a texture from a decoded image. The image is
// copied; later changes to it do not affect the texture.
func NewTextureFromImage(ctx *Context, img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return NewTextureFromData(ctx, bounds.Dx(), bounds.Dy(), rgba.Pix)
}

// NewTextureFromData creates a texture from raw RGBA pixel data. pix must
// be exactly width*height*4 bytes.
func NewTextureFromData(ctx *Context, width, height int, pix []byte) (*Texture, error) {
	return newTexture(ctx.device, width, height, ctx.defaultFilterMode, pix)
}

// newTexture allocates a device texture; pix may be nil for an empty
// (transparent) texture.
func newTexture(device Device, width, height int, filter FilterMode, pix []byte) (*Texture, error) {
	res, err := device.CreateTexture(width, height, filter, pix)
	if err != nil {
		return nil, platformErr("create texture", err)
	}
	return &Texture{res: res, width: width, height: height}, nil
}

// Width returns the width of the texture.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture.
func (t *Texture) Height() int {
	return t.height
}

// Size returns the size of the texture.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

// FilterMode returns the filter mode being used by the texture.
func (t *Texture) FilterMode() FilterMode {
	return t.res.Filter()
}

// SetFilterMode sets the filter mode used by subsequent draws of this
// texture. Draws already issued are unaffected.
func (t *Texture) SetFilterMode(ctx *Context, mode FilterMode) {
	_ = ctx // filter state lives on the device resource
	t.res.SetFilter(mode)
}

// Data returns a copy of the texture contents as RGBA bytes. On GPU
// devices this requires readback and is slow; avoid calling it per frame.
func (t *Texture) Data(ctx *Context) ([]byte, error) {
	_ = ctx
	pix, err := t.res.Pixels()
	return pix, platformErr("read texture", err)
}

// ReplaceData overwrites the texture contents with raw RGBA pixel data.
// pix must be exactly Width*Height*4 bytes.
func (t *Texture) ReplaceData(ctx *Context, pix []byte) error {
	_ = ctx
	return platformErr("replace texture data", t.res.Replace(pix))
}

// Destroy releases the texture's device resource. Safe to call more than
// once; operations on a destroyed texture fail with a *PlatformError.
func (t *Texture) Destroy() {
	t.res.Destroy()
}

// Draw draws the texture to the current render target.
func (t *Texture) Draw(ctx *Context, params DrawParams) {
	ctx.drawTexture(t, params)
}

var _ Drawable = (*Texture)(nil)
