package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	versionuc "github.com/kompox/pipeops/usecase/version"
)

type versionSpec struct {
	AssetID string `yaml:"assetId"`
	Name    int    `yaml:"name,omitempty"`
	Author  string `yaml:"author,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

func newCmdAdminVersion() *cobra.Command {
	return adminGroup("version", "Manage Version records",
		newCmdAdminVersionList(),
		newCmdAdminVersionGet(),
		newCmdAdminVersionCreate(),
		newCmdAdminVersionDelete(),
	)
}

func newCmdAdminVersionList() *cobra.Command {
	var assetID string
	c := &cobra.Command{Use: "list", Short: "List versions", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildVersionUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		out, err := u.List(ctx, &versionuc.ListInput{AssetID: assetID})
		if err != nil {
			return err
		}
		return printJSONLines(cmd, out.Versions)
	}}
	c.Flags().StringVar(&assetID, "asset", "", "Only list versions of this asset ID")
	return c
}

func newCmdAdminVersionGet() *cobra.Command {
	var latest bool
	c := &cobra.Command{Use: "get <id>", Short: "Get a version", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildVersionUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if latest {
			out, err := u.Latest(ctx, &versionuc.LatestInput{AssetID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Version)
		}
		out, err := u.Get(ctx, &versionuc.GetInput{VersionID: args[0]})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Version)
	}}
	c.Flags().BoolVar(&latest, "latest", false, "Treat the argument as an asset ID and get its latest version")
	return c
}

func newCmdAdminVersionCreate() *cobra.Command {
	var file string
	c := &cobra.Command{Use: "create", Short: "Create a version (from spec file)", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) (err error) {
		var spec versionSpec
		if err := readSpec(cmd, file, &spec); err != nil {
			return err
		}
		u, err := buildVersionUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.version.create", spec.AssetID)
		defer func() { cleanup(err) }()
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		out, err := u.Create(ctx, &versionuc.CreateInput{AssetID: spec.AssetID, Name: spec.Name, Author: spec.Author, Comment: spec.Comment})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Version)
	}}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to version spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminVersionDelete() *cobra.Command {
	return &cobra.Command{Use: "delete <id>", Short: "Delete a version", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) (err error) {
		u, err := buildVersionUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.version.delete", args[0])
		defer func() { cleanup(err) }()
		if _, err := u.Delete(ctx, &versionuc.DeleteInput{VersionID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	}}
}
