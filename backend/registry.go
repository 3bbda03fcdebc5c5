package backend

import (
	"fmt"
	"sync"

	"github.com/gogpu/arcade/graphics"
)

// registry holds registered device factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]DeviceFactory)
	// Priority order for device selection (first available wins).
	// The GPU device is preferred; software is the fallback.
	priority = []string{DeviceWGPU, DeviceSoftware}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in device packages.
// If a factory with the same name is already registered, it is replaced.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a factory from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get returns the factory registered under name.
func Get(name string) (DeviceFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAvailable, name)
	}
	return factory, nil
}

// Default creates a device using the best available backend, trying each
// in priority order (wgpu before software). A backend whose factory fails
// is skipped, so a machine without a GPU falls through to software.
func Default(width, height int) (graphics.Device, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var lastErr error
	for _, name := range priority {
		factory, ok := factories[name]
		if !ok {
			continue
		}
		device, err := factory(width, height)
		if err != nil {
			lastErr = fmt.Errorf("backend %q: %w", name, err)
			continue
		}
		return device, nil
	}

	// Fallback: anything registered outside the priority list.
	for name, factory := range factories {
		if inPriority(name) {
			continue
		}
		device, err := factory(width, height)
		if err != nil {
			lastErr = fmt.Errorf("backend %q: %w", name, err)
			continue
		}
		return device, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackends
}

func inPriority(name string) bool {
	for _, p := range priority {
		if p == name {
			return true
		}
	}
	return false
}
