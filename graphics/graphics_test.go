package graphics_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/arcade/graphics"
	"github.com/gogpu/arcade/internal/software"
)

// newTestContext creates a graphics context over the software device.
func newTestContext(t *testing.T, width, height int) *graphics.Context {
	t.Helper()
	device, err := software.New(width, height)
	if err != nil {
		t.Fatalf("create software device: %v", err)
	}
	t.Cleanup(func() { device.Close() })
	return graphics.NewContext(device, width, height)
}

// solidPixels builds width*height RGBA pixels of one color.
func solidPixels(width, height int, r, g, b, a byte) []byte {
	pix := make([]byte, width*height*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
	return pix
}

func TestNewTextureFromData(t *testing.T) {
	ctx := newTestContext(t, 64, 64)

	tex, err := graphics.NewTextureFromData(ctx, 4, 2, solidPixels(4, 2, 255, 0, 0, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}
	if w, h := tex.Size(); w != 4 || h != 2 {
		t.Errorf("size: got %dx%d, want 4x2", w, h)
	}

	data, err := tex.Data(ctx)
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if len(data) != 4*2*4 {
		t.Fatalf("data length: got %d, want 32", len(data))
	}
	if data[0] != 255 || data[1] != 0 || data[2] != 0 || data[3] != 255 {
		t.Errorf("first pixel: got %v, want red", data[:4])
	}
}

func TestNewTextureFromDataInvalidSize(t *testing.T) {
	ctx := newTestContext(t, 64, 64)

	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graphics.NewTextureFromData(ctx, tt.width, tt.height, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			var perr *graphics.PlatformError
			if !errors.As(err, &perr) {
				t.Errorf("error type: got %T, want *PlatformError", err)
			}
		})
	}
}

func TestTextureReplaceDataMismatch(t *testing.T) {
	ctx := newTestContext(t, 64, 64)

	tex, err := graphics.NewTextureFromData(ctx, 2, 2, solidPixels(2, 2, 0, 0, 0, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}
	if err := tex.ReplaceData(ctx, make([]byte, 7)); err == nil {
		t.Error("expected error for short pixel data")
	}
	if err := tex.ReplaceData(ctx, solidPixels(2, 2, 0, 255, 0, 255)); err != nil {
		t.Errorf("valid replace failed: %v", err)
	}
}

func TestTextureFilterMode(t *testing.T) {
	ctx := newTestContext(t, 64, 64)

	tex, err := graphics.NewTextureFromData(ctx, 2, 2, solidPixels(2, 2, 0, 0, 0, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}
	if got := tex.FilterMode(); got != graphics.FilterModeNearest {
		t.Errorf("default filter: got %v, want nearest", got)
	}

	tex.SetFilterMode(ctx, graphics.FilterModeLinear)
	if got := tex.FilterMode(); got != graphics.FilterModeLinear {
		t.Errorf("after set: got %v, want linear", got)
	}
}

func TestDefaultFilterModeAppliesToNewTextures(t *testing.T) {
	ctx := newTestContext(t, 64, 64)
	ctx.SetDefaultFilterMode(graphics.FilterModeLinear)

	tex, err := graphics.NewTextureFromData(ctx, 2, 2, solidPixels(2, 2, 0, 0, 0, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}
	if got := tex.FilterMode(); got != graphics.FilterModeLinear {
		t.Errorf("filter: got %v, want linear", got)
	}
}

func TestCanvasCreation(t *testing.T) {
	ctx := newTestContext(t, 64, 64)

	canvas, err := graphics.NewCanvas(ctx, 32, 16)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	if w, h := canvas.Size(); w != 32 || h != 16 {
		t.Errorf("size: got %dx%d, want 32x16", w, h)
	}
	if canvas.Texture() == nil {
		t.Error("canvas has no backing texture")
	}
}

func TestCanvasInvalidSize(t *testing.T) {
	ctx := newTestContext(t, 64, 64)

	_, err := graphics.NewCanvas(ctx, 0, 16)
	if err == nil {
		t.Fatal("expected error for zero width")
	}
	var perr *graphics.PlatformError
	if !errors.As(err, &perr) {
		t.Errorf("error type: got %T, want *PlatformError", err)
	}
}

func TestSetCanvasRedirectsDrawing(t *testing.T) {
	ctx := newTestContext(t, 8, 8)

	canvas, err := graphics.NewCanvas(ctx, 8, 8)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}

	// Clear the backbuffer black, then the canvas red.
	ctx.Clear(graphics.Black)
	ctx.SetCanvas(canvas)
	if ctx.Canvas() != canvas {
		t.Fatal("Canvas() should return the bound canvas")
	}
	ctx.Clear(graphics.RGB(1, 0, 0))
	ctx.ResetCanvas()
	if ctx.Canvas() != nil {
		t.Fatal("Canvas() should be nil after reset")
	}
	if err := ctx.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	// Canvas is red.
	data, err := canvas.Texture().Data(ctx)
	if err != nil {
		t.Fatalf("canvas data: %v", err)
	}
	if data[0] != 255 || data[1] != 0 || data[2] != 0 {
		t.Errorf("canvas pixel: got %v, want red", data[:4])
	}

	// Backbuffer stayed black.
	back, err := ctx.Device().BackbufferPixels()
	if err != nil {
		t.Fatalf("backbuffer pixels: %v", err)
	}
	if back[0] != 0 || back[1] != 0 || back[2] != 0 {
		t.Errorf("backbuffer pixel: got %v, want black", back[:4])
	}
}

func TestDrawTextureToBackbuffer(t *testing.T) {
	ctx := newTestContext(t, 4, 4)

	tex, err := graphics.NewTextureFromData(ctx, 4, 4, solidPixels(4, 4, 0, 255, 0, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}

	ctx.Clear(graphics.Black)
	tex.Draw(ctx, graphics.NewDrawParams())
	if err := ctx.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	back, err := ctx.Device().BackbufferPixels()
	if err != nil {
		t.Fatalf("backbuffer pixels: %v", err)
	}
	if back[1] != 255 {
		t.Errorf("pixel: got %v, want green", back[:4])
	}
}

func TestDrawWithPositionOffset(t *testing.T) {
	ctx := newTestContext(t, 4, 4)

	// 1x1 white texture drawn at (2, 1).
	tex, err := graphics.NewTextureFromData(ctx, 1, 1, solidPixels(1, 1, 255, 255, 255, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}

	ctx.Clear(graphics.Black)
	tex.Draw(ctx, graphics.PositionParams(graphics.V(2, 1)))
	if err := ctx.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	back, err := ctx.Device().BackbufferPixels()
	if err != nil {
		t.Fatalf("backbuffer pixels: %v", err)
	}
	idx := (1*4 + 2) * 4
	if back[idx] != 255 {
		t.Errorf("pixel at (2,1): got %v, want white", back[idx:idx+4])
	}
	if back[0] != 0 {
		t.Errorf("pixel at (0,0): got %v, want black", back[:4])
	}
}

func TestDrawableInterchangeability(t *testing.T) {
	ctx := newTestContext(t, 8, 8)

	pix := solidPixels(2, 2, 200, 80, 40, 255)
	tex, err := graphics.NewTextureFromData(ctx, 2, 2, pix)
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}
	canvas, err := graphics.NewCanvas(ctx, 2, 2)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	if err := canvas.Texture().ReplaceData(ctx, pix); err != nil {
		t.Fatalf("ReplaceData: %v", err)
	}

	// With identical backing pixels and identical params, drawing the
	// texture or the canvas must produce identical output.
	params := graphics.PositionParams(graphics.V(3, 2))
	snapshot := func(d graphics.Drawable) []byte {
		ctx.Clear(graphics.Black)
		d.Draw(ctx, params)
		if err := ctx.Present(); err != nil {
			t.Fatalf("Present: %v", err)
		}
		back, err := ctx.Device().BackbufferPixels()
		if err != nil {
			t.Fatalf("backbuffer pixels: %v", err)
		}
		return back
	}

	fromTexture := snapshot(tex)
	fromCanvas := snapshot(canvas)
	if !bytes.Equal(fromTexture, fromCanvas) {
		t.Error("texture and canvas with identical pixels drew differently")
	}
	// The draw must have landed somewhere: a fully black frame would
	// make the comparison vacuous.
	if bytes.Equal(fromTexture, solidPixels(8, 8, 0, 0, 0, 255)) {
		t.Error("nothing was drawn")
	}
}

func TestTextureDestroy(t *testing.T) {
	ctx := newTestContext(t, 8, 8)

	tex, err := graphics.NewTextureFromData(ctx, 2, 2, solidPixels(2, 2, 255, 255, 255, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}
	tex.Destroy()
	tex.Destroy() // idempotent

	if _, err := tex.Data(ctx); err == nil {
		t.Fatal("Data after Destroy should fail")
	} else {
		var perr *graphics.PlatformError
		if !errors.As(err, &perr) {
			t.Errorf("error type: got %T, want *PlatformError", err)
		}
	}
}

func TestContextResize(t *testing.T) {
	ctx := newTestContext(t, 4, 4)

	if err := ctx.Resize(8, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if w, h := ctx.Size(); w != 8 || h != 2 {
		t.Errorf("size after resize: got %dx%d, want 8x2", w, h)
	}

	back, err := ctx.Device().BackbufferPixels()
	if err != nil {
		t.Fatalf("backbuffer pixels: %v", err)
	}
	if len(back) != 8*2*4 {
		t.Errorf("backbuffer length: got %d, want %d", len(back), 8*2*4)
	}
}

func TestTransformMatrixAppliesToDraws(t *testing.T) {
	ctx := newTestContext(t, 4, 4)

	tex, err := graphics.NewTextureFromData(ctx, 1, 1, solidPixels(1, 1, 255, 255, 255, 255))
	if err != nil {
		t.Fatalf("NewTextureFromData: %v", err)
	}

	ctx.Clear(graphics.Black)
	ctx.SetTransformMatrix(graphics.Translate(3, 3))
	tex.Draw(ctx, graphics.NewDrawParams())
	ctx.ResetTransformMatrix()
	if !ctx.TransformMatrix().IsIdentity() {
		t.Error("transform not reset")
	}
	if err := ctx.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	back, err := ctx.Device().BackbufferPixels()
	if err != nil {
		t.Fatalf("backbuffer pixels: %v", err)
	}
	idx := (3*4 + 3) * 4
	if back[idx] != 255 {
		t.Errorf("pixel at (3,3): got %v, want white", back[idx:idx+4])
	}
}
