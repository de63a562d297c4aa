package publish

import (
	"context"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/colorspace"
	"github.com/kompox/pipeops/internal/logging"
)

// ColorspaceAttribute is the instance attribute holding the user's choice.
const ColorspaceAttribute = "colorspace"

// CollectColorspace applies an explicitly chosen colorspace to every
// representation of an instance. It is disabled without a colour config.
type CollectColorspace struct {
	Config *colorspace.Config
}

func (c *CollectColorspace) Label() string  { return "Choose representation colorspace" }
func (c *CollectColorspace) Order() float64 { return CollectorOrder + 0.49 }
func (c *CollectColorspace) Hosts() []string {
	return []string{"traypublisher"}
}
func (c *CollectColorspace) Families() []string {
	return []string{"render", "plate", "reference", "image", "online"}
}
func (c *CollectColorspace) Enabled() bool { return c.Config != nil }

// Items lists the values users may choose from; the empty value keeps the
// representations untouched.
func (c *CollectColorspace) Items() []colorspace.Item {
	items := []colorspace.Item{{Value: "", Label: "Don't override"}}
	if c.Config != nil {
		items = append(items, c.Config.Items()...)
	}
	return items
}

func (c *CollectColorspace) Process(ctx context.Context, inst *Instance) error {
	value := inst.Attributes[ColorspaceAttribute]
	if value == "" {
		return nil
	}
	name, err := c.Config.Resolve(value)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug(ctx, "explicit colorspace set", "colorspace", name)
	for _, rep := range inst.Representations {
		rep.Colorspace = &model.ColorspaceData{Colorspace: name, ConfigPath: c.Config.Path}
	}
	return nil
}
