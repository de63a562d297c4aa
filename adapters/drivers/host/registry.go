// Package hostdrv abstracts the host applications artists work in.
// Implementations live under adapters/drivers/host/<name> and register
// themselves from init().
package hostdrv

import (
	"errors"
	"sort"

	"github.com/kompox/pipeops/domain"
)

// ErrRenderNotSupported is returned by drivers whose host cannot render locally.
var ErrRenderNotSupported = errors.New("host does not support local rendering")

// RenderRequest is re-exported for drivers.
type RenderRequest = domain.RenderRequest

// Driver is a host application binding.
type Driver interface {
	domain.Host
	domain.Renderer
}

// Settings configure a driver instance, e.g. "scene" and tool overrides.
type Settings map[string]string

// driverFactory is a constructor function for a host driver.
type driverFactory func(settings Settings) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}

// Names returns the registered driver names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
