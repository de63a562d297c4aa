// Package aftereffects binds Adobe After Effects through its aerender
// command line renderer.
package aftereffects

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	hostdrv "github.com/kompox/pipeops/adapters/drivers/host"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
	"github.com/kompox/pipeops/internal/media"
)

// Name is the host identifier.
const Name = "aftereffects"

// Settings keys understood by the driver.
const (
	SettingScene    = "scene"    // .aep project file
	SettingAERender = "aerender" // aerender executable override
)

type driver struct {
	scene    string
	aerender string
	runner   media.Runner
}

func init() {
	hostdrv.Register(Name, func(settings hostdrv.Settings) (hostdrv.Driver, error) {
		return New(settings, media.ExecRunner{})
	})
}

// New returns an After Effects driver running aerender through runner.
func New(settings hostdrv.Settings, runner media.Runner) (hostdrv.Driver, error) {
	scene := settings[SettingScene]
	if scene == "" {
		return nil, errors.New("aftereffects: scene setting is required")
	}
	return &driver{scene: scene, aerender: settings[SettingAERender], runner: runner}, nil
}

func (d *driver) Name() string { return Name }

// Ls returns the containers recorded next to the project file.
func (d *driver) Ls(_ context.Context) ([]model.Container, error) {
	return hostdrv.ReadContainers(hostdrv.SidecarPath(d.scene))
}

// Render renders one composition of the project into the staging directory.
func (d *driver) Render(ctx context.Context, req hostdrv.RenderRequest) error {
	if req.CompID == "" {
		return errors.New("aftereffects: composition is required")
	}
	if req.FileName == "" {
		return errors.New("aftereffects: output file name is required")
	}
	exe := d.aerender
	if exe == "" {
		var err error
		if exe, err = media.ToolPath("aerender"); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(req.StagingDir, 0o755); err != nil {
		return fmt.Errorf("failed to create staging dir: %w", err)
	}
	args := []string{
		exe,
		"-project", d.scene,
		"-comp", req.CompID,
		"-output", filepath.Join(req.StagingDir, req.FileName),
		"-sound", "OFF",
	}
	logging.FromContext(ctx).Info(ctx, "rendering composition", "comp", req.CompID, "staging_dir", req.StagingDir)
	if _, err := d.runner.Run(ctx, args); err != nil {
		return fmt.Errorf("aerender failed: %w", err)
	}
	return nil
}
