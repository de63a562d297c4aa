package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/usecase/representation"
)

type representationSpec struct {
	VersionID  string                `yaml:"versionId"`
	Name       string                `yaml:"name"`
	Ext        string                `yaml:"ext,omitempty"`
	Files      []string              `yaml:"files,omitempty"`
	StagingDir string                `yaml:"stagingDir,omitempty"`
	Tags       []string              `yaml:"tags,omitempty"`
	FrameStart int                   `yaml:"frameStart,omitempty"`
	FrameEnd   int                   `yaml:"frameEnd,omitempty"`
	Colorspace *model.ColorspaceData `yaml:"colorspaceData,omitempty"`
}

func newCmdAdminRepresentation() *cobra.Command {
	return adminGroup("representation", "Manage Representation records",
		newCmdAdminRepresentationList(),
		newCmdAdminRepresentationGet(),
		newCmdAdminRepresentationCreate(),
		newCmdAdminRepresentationDelete(),
	)
}

func newCmdAdminRepresentationList() *cobra.Command {
	var versionID string
	c := &cobra.Command{Use: "list", Short: "List representations", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildRepresentationUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		out, err := u.List(ctx, &representation.ListInput{VersionID: versionID})
		if err != nil {
			return err
		}
		return printJSONLines(cmd, out.Representations)
	}}
	c.Flags().StringVar(&versionID, "version", "", "Only list representations of this version ID")
	return c
}

func newCmdAdminRepresentationGet() *cobra.Command {
	return &cobra.Command{Use: "get <id>", Short: "Get a representation", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildRepresentationUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		out, err := u.Get(ctx, &representation.GetInput{RepresentationID: args[0]})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Representation)
	}}
}

func newCmdAdminRepresentationCreate() *cobra.Command {
	var file string
	c := &cobra.Command{Use: "create", Short: "Create a representation (from spec file)", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) (err error) {
		var spec representationSpec
		if err := readSpec(cmd, file, &spec); err != nil {
			return err
		}
		u, err := buildRepresentationUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.representation.create", spec.VersionID)
		defer func() { cleanup(err) }()
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		out, err := u.Create(ctx, &representation.CreateInput{
			VersionID:  spec.VersionID,
			Name:       spec.Name,
			Ext:        spec.Ext,
			Files:      spec.Files,
			StagingDir: spec.StagingDir,
			Tags:       spec.Tags,
			FrameStart: spec.FrameStart,
			FrameEnd:   spec.FrameEnd,
			Colorspace: spec.Colorspace,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Representation)
	}}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to representation spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminRepresentationDelete() *cobra.Command {
	return &cobra.Command{Use: "delete <id>", Short: "Delete a representation", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) (err error) {
		u, err := buildRepresentationUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.representation.delete", args[0])
		defer func() { cleanup(err) }()
		if _, err := u.Delete(ctx, &representation.DeleteInput{RepresentationID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	}}
}
