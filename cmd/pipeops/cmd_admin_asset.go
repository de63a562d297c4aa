package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/usecase/asset"
)

type assetSpec struct {
	ProjectID string   `yaml:"projectId"`
	Name      string   `yaml:"name"`
	Silo      string   `yaml:"silo,omitempty"`
	Tasks     []string `yaml:"tasks,omitempty"`
}

func newCmdAdminAsset() *cobra.Command {
	return adminGroup("asset", "Manage Asset records",
		newCmdAdminAssetList(),
		newCmdAdminAssetGet(),
		newCmdAdminAssetCreate(),
		newCmdAdminAssetDelete(),
	)
}

func newCmdAdminAssetList() *cobra.Command {
	var projectID string
	c := &cobra.Command{Use: "list", Short: "List assets", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildAssetUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		out, err := u.List(ctx, &asset.ListInput{ProjectID: projectID})
		if err != nil {
			return err
		}
		return printJSONLines(cmd, out.Assets)
	}}
	c.Flags().StringVar(&projectID, "project", "", "Only list assets of this project ID")
	return c
}

func newCmdAdminAssetGet() *cobra.Command {
	return &cobra.Command{Use: "get <id>", Short: "Get an asset", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildAssetUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		out, err := u.Get(ctx, &asset.GetInput{AssetID: args[0]})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Asset)
	}}
}

func newCmdAdminAssetCreate() *cobra.Command {
	var file string
	c := &cobra.Command{Use: "create", Short: "Create an asset (from spec file)", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) (err error) {
		var spec assetSpec
		if err := readSpec(cmd, file, &spec); err != nil {
			return err
		}
		u, err := buildAssetUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.asset.create", spec.Name)
		defer func() { cleanup(err) }()
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		out, err := u.Create(ctx, &asset.CreateInput{ProjectID: spec.ProjectID, Name: spec.Name, Silo: spec.Silo, Tasks: spec.Tasks})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Asset)
	}}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to asset spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminAssetDelete() *cobra.Command {
	return &cobra.Command{Use: "delete <id>", Short: "Delete an asset", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) (err error) {
		u, err := buildAssetUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.asset.delete", args[0])
		defer func() { cleanup(err) }()
		if _, err := u.Delete(ctx, &asset.DeleteInput{AssetID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	}}
}
