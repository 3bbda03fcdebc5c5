// Package backend selects the graphics device implementation used by the
// framework.
//
// Device backends register themselves from init() functions. The software
// device is always registered; import the wgpu package to add GPU
// rendering:
//
//	import _ "github.com/gogpu/arcade/backend/wgpu"
package backend

import (
	"errors"

	"github.com/gogpu/arcade/graphics"
)

// Device backend name constants.
const (
	// DeviceSoftware is the name of the CPU-based device.
	DeviceSoftware = "software"
	// DeviceWGPU is the name of the GPU device (gogpu/wgpu).
	DeviceWGPU = "wgpu"
)

// Common backend errors.
var (
	// ErrNotAvailable is returned when a requested backend is not registered.
	ErrNotAvailable = errors.New("backend: not available")

	// ErrNoBackends is returned by Default when nothing is registered.
	ErrNoBackends = errors.New("backend: no device backends registered")
)

// DeviceFactory creates a device with a backbuffer of the given size.
type DeviceFactory func(width, height int) (graphics.Device, error)
