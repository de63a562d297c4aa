package standalone

import (
	"context"
	"errors"
	"testing"

	hostdrv "github.com/kompox/pipeops/adapters/drivers/host"
)

func TestDriver(t *testing.T) {
	factory, ok := hostdrv.GetDriverFactory(Name)
	if !ok {
		t.Fatal("traypublisher driver not registered")
	}
	drv, err := factory(hostdrv.Settings{})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if got, err := drv.Ls(ctx); err != nil || len(got) != 0 {
		t.Errorf("Ls() = %v, %v", got, err)
	}
	if err := drv.Render(ctx, hostdrv.RenderRequest{}); !errors.Is(err, hostdrv.ErrRenderNotSupported) {
		t.Errorf("Render() = %v, want ErrRenderNotSupported", err)
	}
}
