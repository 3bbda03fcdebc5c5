package arcade

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/arcade/backend"
	"github.com/gogpu/arcade/graphics"
	"github.com/gogpu/arcade/internal/platform"

	// The software device is always registered so backend.Default has a
	// fallback; the GPU device registers when its package is imported.
	_ "github.com/gogpu/arcade/internal/software"
)

// ErrContextClosed is returned when using a Context after Close.
var ErrContextClosed = errors.New("arcade: context has been closed")

// targetFrameTime caps the frame rate when vsync is off.
const targetFrameTime = time.Second / 60

// Context owns the window, the graphics device and the run loop. Create
// one with [NewContext], drive it with [Context.Run], and release it
// with [Context.Close].
//
// A Context must be created and used on the main goroutine: the
// underlying windowing layer requires it.
type Context struct {
	window     *Window
	gfx        *graphics.Context
	device     graphics.Device
	ownsDevice bool

	quitOnEscape bool
	running      bool
	closed       bool
}

// NewContext creates a window of the given size and a graphics device
// for it. The best available device backend is used: GPU first, with
// software as the fallback. Options override the defaults; a
// [WithSettings] option replaces title, width and height.
func NewContext(title string, width, height int, opts ...ContextOption) (*Context, error) {
	cfg := config{settings: DefaultSettings()}
	cfg.settings.Title = title
	cfg.settings.Width = width
	cfg.settings.Height = height
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.settings.validate(); err != nil {
		return nil, err
	}

	win, err := platform.NewWindow(platform.Config{
		Title:      cfg.settings.Title,
		Width:      cfg.settings.Width,
		Height:     cfg.settings.Height,
		Resizable:  cfg.settings.Resizable,
		Fullscreen: cfg.settings.Fullscreen,
		Vsync:      cfg.settings.Vsync,
		ShowMouse:  cfg.settings.ShowMouse,
	})
	if err != nil {
		return nil, displayModeErr("create window", err)
	}

	// Fullscreen windows can come up at a different drawable size than
	// requested; the backbuffer must match the window.
	bw, bh := win.Size()

	device := cfg.device
	ownsDevice := false
	if device == nil {
		if cfg.deviceBackend != "" {
			factory, err := backend.Get(cfg.deviceBackend)
			if err != nil {
				win.Destroy()
				return nil, fmt.Errorf("arcade: %w", err)
			}
			device, err = factory(bw, bh)
			if err != nil {
				win.Destroy()
				return nil, fmt.Errorf("arcade: backend %q: %w", cfg.deviceBackend, err)
			}
		} else {
			device, err = backend.Default(bw, bh)
			if err != nil {
				win.Destroy()
				return nil, fmt.Errorf("arcade: no graphics device: %w", err)
			}
		}
		ownsDevice = true
	}

	gfx := graphics.NewContext(device, bw, bh)
	gfx.SetDefaultFilterMode(cfg.settings.filter())

	logger().Info("context created",
		"title", cfg.settings.Title,
		"width", bw, "height", bh,
		"backends", backend.Available())

	return &Context{
		window:       &Window{w: win},
		gfx:          gfx,
		device:       device,
		ownsDevice:   ownsDevice,
		quitOnEscape: cfg.quitOnEscape,
	}, nil
}

// Window returns the window controller.
func (c *Context) Window() *Window {
	return c.window
}

// Graphics returns the graphics context used for drawing.
func (c *Context) Graphics() *graphics.Context {
	return c.gfx
}

// Quit stops the run loop after the current frame.
func (c *Context) Quit() {
	c.running = false
}

// Run drives the game loop until the state returns an error, the window
// is closed, or [Context.Quit] is called. Events are delivered first,
// then Update, then Draw, then the frame is presented.
func (c *Context) Run(state State) error {
	if c.closed {
		return ErrContextClosed
	}
	c.running = true
	defer func() { c.running = false }()

	handler, _ := state.(EventHandler)
	last := time.Now()

	for c.running {
		frameStart := time.Now()

		for _, event := range c.window.w.PollEvents() {
			if err := c.handleEvent(event); err != nil {
				return err
			}
			if handler != nil {
				if err := handler.Event(c, event); err != nil {
					return err
				}
			}
		}
		if !c.running {
			break
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if err := state.Update(c, dt); err != nil {
			return err
		}
		if err := state.Draw(c, c.gfx); err != nil {
			return err
		}
		if err := c.present(); err != nil {
			return err
		}

		// Vsync paces the loop through Present; without it, sleep off
		// the rest of the frame budget.
		if !c.window.Vsync() {
			if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
				time.Sleep(targetFrameTime - elapsed)
			}
		}
	}
	return nil
}

// handleEvent applies framework-level event behavior before the state
// sees the event.
func (c *Context) handleEvent(event Event) error {
	switch e := event.(type) {
	case Quit:
		c.running = false
	case Resized:
		if err := c.gfx.Resize(e.Width, e.Height); err != nil {
			return err
		}
	case KeyPressed:
		if c.quitOnEscape && e.Key == KeyEscape {
			c.running = false
		}
	}
	return nil
}

// present flushes pending draws and pushes the backbuffer to the window.
func (c *Context) present() error {
	if err := c.gfx.Present(); err != nil {
		return err
	}
	pix, err := c.device.BackbufferPixels()
	if err != nil {
		return err
	}
	w, h := c.gfx.Size()
	if err := c.window.w.Present(pix, w, h); err != nil {
		return displayModeErr("present frame", err)
	}
	return nil
}

// Close releases the graphics device (when owned by the context) and the
// window. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.running = false

	var err error
	if c.ownsDevice && c.device != nil {
		if cerr := c.device.Close(); cerr != nil {
			err = cerr
			logger().Warn("device close failed", "error", cerr)
		}
	}
	c.device = nil
	if c.window != nil && c.window.w != nil {
		c.window.w.Destroy()
	}
	return err
}
