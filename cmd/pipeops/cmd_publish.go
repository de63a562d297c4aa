package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/adapters/drivers/host/aftereffects"
	"github.com/kompox/pipeops/adapters/drivers/host/standalone"
	"github.com/kompox/pipeops/internal/colorspace"
	"github.com/kompox/pipeops/internal/media"
	"github.com/kompox/pipeops/usecase/publish"
)

func newCmdPublish() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Run publish plugins over collected instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringP("file", "f", "", "Instance file (YAML)")
	cmd.PersistentFlags().Int("parallel", 2, "Instances processed concurrently")
	cmd.AddCommand(newCmdPublishRenderLocal(), newCmdPublishColorspace())
	return cmd
}

// runPublish loads the instance file and runs plugins over it.
func runPublish(cmd *cobra.Command, operation, host string, plugins ...publish.Plugin) (err error) {
	file := flagString(cmd, "file")
	if file == "" {
		return fmt.Errorf("instance file required (-f)")
	}
	f, err := publish.LoadInstances(file)
	if err != nil {
		return err
	}
	if f.Host != "" && f.Host != host {
		return fmt.Errorf("instance file is for host %q, not %q", f.Host, host)
	}
	parallel, _ := cmd.Flags().GetInt("parallel")

	ctx, cleanup := withCmdRunLogger(cmd.Context(), operation, file)
	defer func() { cleanup(err) }()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Hour)
	defer cancel()

	u := &publish.UseCase{Host: host, Plugins: plugins, Parallelism: parallel}
	out, err := u.Publish(ctx, &publish.PublishInput{Instances: f.Instances})
	if err != nil {
		return err
	}
	return printJSON(cmd, out)
}

func newCmdPublishRenderLocal() *cobra.Command {
	var scene string
	c := &cobra.Command{
		Use:   "render-local",
		Short: "Render After Effects render queue items locally and extract representations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := buildHostDriver(aftereffects.Name, scene)
			if err != nil {
				return err
			}
			var ffmpeg string
			if cliEnv != nil {
				ffmpeg = cliEnv.Tools.FFmpeg
			}
			return runPublish(cmd, "publish.render-local", aftereffects.Name,
				&publish.ExtractLocalRender{Renderer: drv, Runner: media.ExecRunner{}, FFmpeg: ffmpeg},
			)
		},
	}
	c.Flags().StringVar(&scene, "scene", "", "After Effects project (.aep) to render")
	_ = c.MarkFlagRequired("scene")
	return c
}

func newCmdPublishColorspace() *cobra.Command {
	var configPath string
	var showItems bool
	c := &cobra.Command{
		Use:   "colorspace",
		Short: "Apply explicitly chosen colorspaces to tray publisher instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collector := &publish.CollectColorspace{}
			if configPath != "" {
				cfg, err := colorspace.Load(configPath)
				if err != nil {
					return err
				}
				collector.Config = cfg
			}
			if showItems {
				return printJSONLines(cmd, collector.Items())
			}
			return runPublish(cmd, "publish.colorspace", standalone.Name, collector)
		},
	}
	c.Flags().StringVar(&configPath, "config", "", "Colour config (YAML); without it the collector is disabled")
	c.Flags().BoolVar(&showItems, "items", false, "List the selectable colorspaces and exit")
	return c
}
