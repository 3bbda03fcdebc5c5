// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform wraps SDL2 windowing: window lifecycle, display mode
// queries, the event pump, and presenting rendered pixels to the screen.
package platform

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/arcade/internal/logging"
)

var (
	sdlInitMu sync.Mutex
	sdlInited bool
)

// initSDL initializes the SDL video subsystem once per process.
func initSDL() error {
	sdlInitMu.Lock()
	defer sdlInitMu.Unlock()

	if !sdlInited {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return fmt.Errorf("sdl init: %w", err)
		}
		sdlInited = true
	}
	return nil
}

// Config describes the initial window state.
type Config struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	Fullscreen bool
	Vsync      bool
	ShowMouse  bool
}

// Monitor describes a connected display and its current mode.
type Monitor struct {
	Name        string
	Width       int
	Height      int
	RefreshRate int
}

// Window is an SDL2 window with a streaming texture used to present
// CPU-side RGBA pixels. Not safe for concurrent use; SDL requires all
// window calls on the main thread.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int

	fullscreen bool
	vsync      bool
	showMouse  bool
	closed     bool
}

// NewWindow creates a window per cfg.
func NewWindow(cfg Config) (*Window, error) {
	if err := initSDL(); err != nil {
		return nil, err
	}

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{
		window:     window,
		fullscreen: cfg.Fullscreen,
		showMouse:  cfg.ShowMouse,
	}
	if err := w.createRenderer(cfg.Vsync); err != nil {
		window.Destroy()
		return nil, err
	}
	w.setCursor(cfg.ShowMouse)

	logging.Logger().Info("window created",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return w, nil
}

// createRenderer builds the renderer; vsync is fixed at creation, so
// toggling it recreates the renderer and drops the streaming texture.
func (w *Window) createRenderer(vsync bool) error {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(w.window, -1, flags)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	w.renderer = renderer
	w.vsync = vsync
	return nil
}

func (w *Window) setCursor(show bool) {
	state := sdl.DISABLE
	if show {
		state = sdl.ENABLE
	}
	sdl.ShowCursor(state)
	w.showMouse = show
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.window.GetTitle()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Size returns the window's drawable size in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

// SetSize resizes the window.
func (w *Window) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	w.window.SetSize(int32(width), int32(height))
	return nil
}

// Fullscreen reports whether the window is fullscreen.
func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

// SetFullscreen switches between fullscreen-desktop and windowed mode.
func (w *Window) SetFullscreen(fullscreen bool) error {
	var flags uint32
	if fullscreen {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := w.window.SetFullscreen(flags); err != nil {
		return fmt.Errorf("set fullscreen: %w", err)
	}
	w.fullscreen = fullscreen
	return nil
}

// Vsync reports whether presentation is synchronized to the display.
func (w *Window) Vsync() bool {
	return w.vsync
}

// SetVsync toggles vsync. SDL fixes vsync at renderer creation, so this
// recreates the renderer.
func (w *Window) SetVsync(vsync bool) error {
	if vsync == w.vsync {
		return nil
	}
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	return w.createRenderer(vsync)
}

// MouseVisible reports whether the cursor is shown over the window.
func (w *Window) MouseVisible() bool {
	return w.showMouse
}

// SetMouseVisible shows or hides the cursor.
func (w *Window) SetMouseVisible(visible bool) {
	w.setCursor(visible)
}

// Monitors returns the connected displays and their current modes.
func Monitors() ([]Monitor, error) {
	if err := initSDL(); err != nil {
		return nil, err
	}
	n, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return nil, fmt.Errorf("enumerate displays: %w", err)
	}
	monitors := make([]Monitor, 0, n)
	for i := 0; i < n; i++ {
		name, err := sdl.GetDisplayName(i)
		if err != nil {
			name = fmt.Sprintf("Display %d", i)
		}
		mode, err := sdl.GetCurrentDisplayMode(i)
		if err != nil {
			return nil, fmt.Errorf("display %d mode: %w", i, err)
		}
		monitors = append(monitors, Monitor{
			Name:        name,
			Width:       int(mode.W),
			Height:      int(mode.H),
			RefreshRate: int(mode.RefreshRate),
		})
	}
	return monitors, nil
}

// CurrentMonitor returns the display the window is on.
func (w *Window) CurrentMonitor() (Monitor, error) {
	idx, err := w.window.GetDisplayIndex()
	if err != nil {
		return Monitor{}, fmt.Errorf("window display: %w", err)
	}
	monitors, err := Monitors()
	if err != nil {
		return Monitor{}, err
	}
	if idx < 0 || idx >= len(monitors) {
		return Monitor{}, fmt.Errorf("window display index %d out of range", idx)
	}
	return monitors[idx], nil
}

// PollEvents drains the SDL event queue and returns the translated
// events, in arrival order.
func (w *Window) PollEvents() []Event {
	var events []Event
	for {
		e := sdl.PollEvent()
		if e == nil {
			break
		}
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			events = append(events, QuitEvent{})
		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				events = append(events, ResizedEvent{
					Width:  int(ev.Data1),
					Height: int(ev.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				events = append(events, FocusGainedEvent{})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				events = append(events, FocusLostEvent{})
			}
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			key := keyFromSDL(ev.Keysym.Sym)
			if ev.Type == sdl.KEYDOWN {
				events = append(events, KeyDownEvent{Key: key})
			} else if ev.Type == sdl.KEYUP {
				events = append(events, KeyUpEvent{Key: key})
			}
		}
	}
	return events
}

// Present uploads RGBA pixels through a streaming texture and presents
// them. The texture is recreated when the pixel dimensions change.
func (w *Window) Present(pix []byte, width, height int) error {
	if w.closed {
		return fmt.Errorf("window is closed")
	}
	if len(pix) != width*height*4 {
		return fmt.Errorf("pixel data size %d does not match %dx%d", len(pix), width, height)
	}

	if w.texture == nil || w.texW != width || w.texH != height {
		if w.texture != nil {
			w.texture.Destroy()
		}
		texture, err := w.renderer.CreateTexture(
			uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STREAMING,
			int32(width), int32(height))
		if err != nil {
			return fmt.Errorf("create streaming texture: %w", err)
		}
		w.texture = texture
		w.texW = width
		w.texH = height
	}

	texPix, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock texture: %w", err)
	}
	rowSize := width * 4
	for row := 0; row < height; row++ {
		src := pix[row*rowSize : (row+1)*rowSize]
		dst := texPix[row*pitch : row*pitch+rowSize]
		copy(dst, src)
	}
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clear renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Destroy releases the window and its renderer.
func (w *Window) Destroy() {
	if w.closed {
		return
	}
	w.closed = true
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
