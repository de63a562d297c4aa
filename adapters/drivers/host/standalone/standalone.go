// Package standalone is the host of the tray publisher: files are published
// as they are, without a running application.
package standalone

import (
	"context"

	hostdrv "github.com/kompox/pipeops/adapters/drivers/host"
	"github.com/kompox/pipeops/domain/model"
)

// Name is the host identifier.
const Name = "traypublisher"

type driver struct {
	scene string
}

func init() {
	hostdrv.Register(Name, func(settings hostdrv.Settings) (hostdrv.Driver, error) {
		return &driver{scene: settings["scene"]}, nil
	})
}

func (d *driver) Name() string { return Name }

// Ls returns the containers of the optional scene sidecar.
func (d *driver) Ls(_ context.Context) ([]model.Container, error) {
	if d.scene == "" {
		return nil, nil
	}
	return hostdrv.ReadContainers(hostdrv.SidecarPath(d.scene))
}

func (d *driver) Render(context.Context, hostdrv.RenderRequest) error {
	return hostdrv.ErrRenderNotSupported
}
