package arcade

import "github.com/gogpu/arcade/internal/platform"

// Monitor describes a connected display and its current mode.
type Monitor = platform.Monitor

// Monitors returns the connected displays. The slice is ordered by
// platform display index. Enumeration failures surface as a
// *PlatformError.
func Monitors() ([]Monitor, error) {
	monitors, err := platform.Monitors()
	if err != nil {
		return nil, platformErr("enumerate monitors", err)
	}
	return monitors, nil
}

// Window controls the OS window hosting the game. Obtain it from
// [Context.Window]. All methods must be called from the goroutine
// running the game loop.
type Window struct {
	w *platform.Window
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.w.Title()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.w.SetTitle(title)
}

// Size returns the window's drawable size in pixels.
func (w *Window) Size() (int, int) {
	return w.w.Size()
}

// SetSize resizes the window. The backbuffer follows via the resize
// event on the next frame.
func (w *Window) SetSize(width, height int) error {
	return displayModeErr("set window size", w.w.SetSize(width, height))
}

// Fullscreen reports whether the window is fullscreen.
func (w *Window) Fullscreen() bool {
	return w.w.Fullscreen()
}

// SetFullscreen switches between fullscreen and windowed mode.
func (w *Window) SetFullscreen(fullscreen bool) error {
	return displayModeErr("set fullscreen", w.w.SetFullscreen(fullscreen))
}

// Vsync reports whether presentation is synchronized to the display.
func (w *Window) Vsync() bool {
	return w.w.Vsync()
}

// SetVsync toggles display synchronization.
func (w *Window) SetVsync(vsync bool) error {
	return displayModeErr("set vsync", w.w.SetVsync(vsync))
}

// MouseVisible reports whether the cursor is shown over the window.
func (w *Window) MouseVisible() bool {
	return w.w.MouseVisible()
}

// SetMouseVisible shows or hides the cursor over the window.
func (w *Window) SetMouseVisible(visible bool) {
	w.w.SetMouseVisible(visible)
}

// CurrentMonitor returns the display the window is currently on. Query
// failures surface as a *PlatformError.
func (w *Window) CurrentMonitor() (Monitor, error) {
	m, err := w.w.CurrentMonitor()
	if err != nil {
		return Monitor{}, platformErr("query current monitor", err)
	}
	return m, nil
}
