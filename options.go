package arcade

import "github.com/gogpu/arcade/graphics"

// config holds the resolved context configuration.
type config struct {
	settings      Settings
	device        graphics.Device
	quitOnEscape  bool
	deviceBackend string
}

// ContextOption configures a Context at creation time.
type ContextOption func(*config)

// Resizable makes the window resizable by the user.
func Resizable(resizable bool) ContextOption {
	return func(c *config) { c.settings.Resizable = resizable }
}

// Fullscreen starts the window in fullscreen mode.
func Fullscreen(fullscreen bool) ContextOption {
	return func(c *config) { c.settings.Fullscreen = fullscreen }
}

// Vsync synchronizes presentation with the display refresh rate.
// Enabled by default.
func Vsync(vsync bool) ContextOption {
	return func(c *config) { c.settings.Vsync = vsync }
}

// ShowMouse controls cursor visibility over the window. Visible by
// default.
func ShowMouse(show bool) ContextOption {
	return func(c *config) { c.settings.ShowMouse = show }
}

// QuitOnEscape stops the run loop when the escape key is pressed.
func QuitOnEscape(quit bool) ContextOption {
	return func(c *config) { c.quitOnEscape = quit }
}

// DefaultFilterMode sets the filter mode new textures default to.
func DefaultFilterMode(mode graphics.FilterMode) ContextOption {
	return func(c *config) {
		if mode == graphics.FilterModeLinear {
			c.settings.FilterMode = "linear"
		} else {
			c.settings.FilterMode = "nearest"
		}
	}
}

// WithDevice uses the given graphics device instead of the registry's
// best available backend. The caller keeps ownership: Close does not
// close a device installed this way.
func WithDevice(device graphics.Device) ContextOption {
	return func(c *config) { c.device = device }
}

// WithBackend forces a specific registered backend by name instead of
// the registry's priority order.
func WithBackend(name string) ContextOption {
	return func(c *config) { c.deviceBackend = name }
}

// WithSettings applies a full Settings value, typically from
// [LoadSettings]. Title, width and height passed to [NewContext] are
// overridden by the settings value.
func WithSettings(s Settings) ContextOption {
	return func(c *config) { c.settings = s }
}
