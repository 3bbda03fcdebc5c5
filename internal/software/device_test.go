package software

import (
	"errors"
	"testing"

	"github.com/gogpu/arcade/graphics"
)

func newDevice(t *testing.T, width, height int) *Device {
	t.Helper()
	d, err := New(width, height)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestCreateTexture(t *testing.T) {
	d := newDevice(t, 8, 8)

	pix := make([]byte, 2*3*4)
	for i := range pix {
		pix[i] = 0xff
	}
	tex, err := d.CreateTexture(2, 3, graphics.FilterModeNearest, pix)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	got, err := tex.Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	if len(got) != len(pix) {
		t.Fatalf("pixels length: got %d, want %d", len(got), len(pix))
	}
	for i, b := range got {
		if b != 0xff {
			t.Fatalf("pixel byte %d: got %#x, want 0xff", i, b)
		}
	}
}

func TestCreateTextureNilPixels(t *testing.T) {
	d := newDevice(t, 8, 8)

	tex, err := d.CreateTexture(4, 4, graphics.FilterModeNearest, nil)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	got, err := tex.Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	for i, b := range got {
		if b != 0 {
			t.Fatalf("pixel byte %d: got %#x, want transparent", i, b)
		}
	}
}

func TestCreateTextureErrors(t *testing.T) {
	d := newDevice(t, 8, 8)

	tests := []struct {
		name    string
		width   int
		height  int
		pix     []byte
		wantErr error
	}{
		{"zero width", 0, 4, nil, ErrInvalidTextureSize},
		{"negative height", 4, -1, nil, ErrInvalidTextureSize},
		{"oversized", maxTextureSize + 1, 4, nil, ErrInvalidTextureSize},
		{"short pixels", 2, 2, make([]byte, 3), ErrPixelSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.CreateTexture(tt.width, tt.height, graphics.FilterModeNearest, tt.pix)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTextureDestroy(t *testing.T) {
	d := newDevice(t, 8, 8)

	tex, err := d.CreateTexture(2, 2, graphics.FilterModeNearest, nil)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	tex.Destroy()
	tex.Destroy() // idempotent

	if _, err := tex.Pixels(); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("Pixels after destroy: got %v, want ErrTextureDestroyed", err)
	}
	if err := tex.Replace(make([]byte, 2*2*4)); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("Replace after destroy: got %v, want ErrTextureDestroyed", err)
	}
}

func TestClearFillsTarget(t *testing.T) {
	d := newDevice(t, 2, 2)

	d.Clear(graphics.RGB(1, 0, 0))
	pix, err := d.BackbufferPixels()
	if err != nil {
		t.Fatalf("BackbufferPixels: %v", err)
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 255 || pix[i+1] != 0 || pix[i+2] != 0 || pix[i+3] != 255 {
			t.Fatalf("pixel %d: got %v, want opaque red", i/4, pix[i:i+4])
		}
	}
}

func TestDrawTextureIdentity(t *testing.T) {
	d := newDevice(t, 2, 2)

	src := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	tex, err := d.CreateTexture(2, 2, graphics.FilterModeNearest, src)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	d.Clear(graphics.Black)
	d.DrawTexture(tex, graphics.Identity(), graphics.White)

	pix, err := d.BackbufferPixels()
	if err != nil {
		t.Fatalf("BackbufferPixels: %v", err)
	}
	for i := range src {
		if pix[i] != src[i] {
			t.Fatalf("byte %d: got %d, want %d", i, pix[i], src[i])
		}
	}
}

func TestDrawTextureTint(t *testing.T) {
	d := newDevice(t, 1, 1)

	tex, err := d.CreateTexture(1, 1, graphics.FilterModeNearest, []byte{255, 255, 255, 255})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	d.Clear(graphics.Black)
	d.DrawTexture(tex, graphics.Identity(), graphics.RGB(1, 0, 0))

	pix, err := d.BackbufferPixels()
	if err != nil {
		t.Fatalf("BackbufferPixels: %v", err)
	}
	if pix[0] < 250 || pix[1] > 5 || pix[2] > 5 {
		t.Errorf("tinted pixel: got %v, want red", pix[:4])
	}
}

func TestRenderTargetIsolation(t *testing.T) {
	d := newDevice(t, 2, 2)

	tex, err := d.CreateTexture(2, 2, graphics.FilterModeNearest, nil)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	fb, err := d.NewFramebuffer(tex, false)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}

	d.Clear(graphics.Black)
	d.SetRenderTarget(fb)
	d.Clear(graphics.RGB(0, 1, 0))
	d.SetRenderTarget(nil)

	texPix, err := tex.Pixels()
	if err != nil {
		t.Fatalf("texture pixels: %v", err)
	}
	if texPix[1] != 255 {
		t.Errorf("texture pixel: got %v, want green", texPix[:4])
	}

	back, err := d.BackbufferPixels()
	if err != nil {
		t.Fatalf("backbuffer pixels: %v", err)
	}
	if back[1] != 0 {
		t.Errorf("backbuffer pixel: got %v, want black", back[:4])
	}
}

func TestNewFramebufferForeignTexture(t *testing.T) {
	d := newDevice(t, 2, 2)

	if _, err := d.NewFramebuffer(foreignTexture{}, false); !errors.Is(err, ErrForeignTexture) {
		t.Errorf("error: got %v, want ErrForeignTexture", err)
	}
}

// foreignTexture is a TextureResource from no device at all.
type foreignTexture struct{}

func (foreignTexture) Filter() graphics.FilterMode        { return graphics.FilterModeNearest }
func (foreignTexture) SetFilter(graphics.FilterMode)      {}
func (foreignTexture) Pixels() ([]byte, error)            { return nil, nil }
func (foreignTexture) Replace([]byte) error               { return nil }
func (foreignTexture) Destroy()                           {}

func TestResizeBackbuffer(t *testing.T) {
	d := newDevice(t, 2, 2)

	if err := d.ResizeBackbuffer(4, 1); err != nil {
		t.Fatalf("ResizeBackbuffer: %v", err)
	}
	pix, err := d.BackbufferPixels()
	if err != nil {
		t.Fatalf("BackbufferPixels: %v", err)
	}
	if len(pix) != 4*1*4 {
		t.Errorf("length: got %d, want 16", len(pix))
	}

	// Resizing while a canvas is bound must keep the canvas bound.
	tex, err := d.CreateTexture(2, 2, graphics.FilterModeNearest, nil)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	fb, err := d.NewFramebuffer(tex, false)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	d.SetRenderTarget(fb)
	if err := d.ResizeBackbuffer(8, 8); err != nil {
		t.Fatalf("ResizeBackbuffer: %v", err)
	}
	d.Clear(graphics.RGB(1, 1, 1))
	texPix, err := tex.Pixels()
	if err != nil {
		t.Fatalf("texture pixels: %v", err)
	}
	if texPix[0] != 255 {
		t.Errorf("canvas binding lost across resize: got %v", texPix[:4])
	}
}

func TestMaxTextureSize(t *testing.T) {
	d := newDevice(t, 2, 2)
	if d.MaxTextureSize() != maxTextureSize {
		t.Errorf("MaxTextureSize: got %d, want %d", d.MaxTextureSize(), maxTextureSize)
	}
}
