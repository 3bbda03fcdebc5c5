//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is the optional interface a gpucontext.DeviceProvider
// implements to expose its HAL handles for sharing.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// NewDeviceFromProvider creates a device that renders on an existing GPU
// device owned by provider, so the application and the framework share
// one adapter instead of each opening their own. The shared device is not
// destroyed on Close.
func NewDeviceFromProvider(provider gpucontext.DeviceProvider, width, height int) (*Device, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider %T does not expose HAL handles", provider)
	}
	halDev, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider device is not a hal.Device")
	}
	halQueue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider queue is not a hal.Queue")
	}

	d := &Device{
		device:   halDev,
		queue:    halQueue,
		external: true,
	}
	if err := d.setup(width, height); err != nil {
		return nil, err
	}
	return d, nil
}
