package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/usecase/container"
)

func newCmdContainer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "container",
		Short: "Check scene containers against the project database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdContainerIsLatest(), newCmdContainerOutdated())
	return cmd
}

func newCmdContainerIsLatest() *cobra.Command {
	return &cobra.Command{
		Use:   "is-latest <representation-id>",
		Short: "Report whether a representation belongs to the latest version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := buildContainerUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			out, err := u.IsLatest(ctx, &container.IsLatestInput{RepresentationID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

func newCmdContainerOutdated() *cobra.Command {
	var host, scene string
	var list bool
	c := &cobra.Command{
		Use:   "outdated",
		Short: "Check whether the scene has outdated containers",
		Long: `Check the containers loaded in a scene. Containers are read from the
<scene>.containers.yml sidecar written by the host integration.

Exits with an error status when any container is outdated, unless --list is
given, in which case every outdated container is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			u, err := buildContainerUseCase(cmd)
			if err != nil {
				return err
			}
			drv, err := buildHostDriver(host, scene)
			if err != nil {
				return err
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "container.outdated", scene)
			defer func() { cleanup(err) }()
			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if list {
				out, err := u.ListOutdated(ctx, &container.ListOutdatedInput{Host: drv})
				if err != nil {
					return err
				}
				return printJSON(cmd, out)
			}
			out, err := u.AnyOutdated(ctx, &container.AnyOutdatedInput{Host: drv})
			if err != nil {
				return err
			}
			if err := printJSON(cmd, out); err != nil {
				return err
			}
			if out.Outdated {
				return fmt.Errorf("scene %s has outdated containers", scene)
			}
			return nil
		},
	}
	c.Flags().StringVar(&host, "host", "", "Host driver (aftereffects|traypublisher)")
	c.Flags().StringVar(&scene, "scene", "", "Scene file whose containers are checked")
	c.Flags().BoolVar(&list, "list", false, "List every outdated container")
	_ = c.MarkFlagRequired("host")
	_ = c.MarkFlagRequired("scene")
	return c
}
