package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/usecase/project"
)

type projectSpec struct {
	Name     string `yaml:"name"`
	Code     string `yaml:"code,omitempty"`
	Root     string `yaml:"root,omitempty"`
	Template struct {
		Work    string `yaml:"work,omitempty"`
		Publish string `yaml:"publish,omitempty"`
	} `yaml:"template,omitempty"`
	Apps []struct {
		Name  string `yaml:"name"`
		Label string `yaml:"label,omitempty"`
	} `yaml:"apps,omitempty"`
}

func (s *projectSpec) config() model.ProjectConfig {
	cfg := model.ProjectConfig{Template: model.ProjectTemplate{Work: s.Template.Work, Publish: s.Template.Publish}}
	for _, a := range s.Apps {
		cfg.Apps = append(cfg.Apps, model.ProjectApp{Name: a.Name, Label: a.Label})
	}
	return cfg
}

func newCmdAdminProject() *cobra.Command {
	return adminGroup("project", "Manage Project records",
		newCmdAdminProjectList(),
		newCmdAdminProjectGet(),
		newCmdAdminProjectCreate(),
		newCmdAdminProjectDelete(),
	)
}

func newCmdAdminProjectList() *cobra.Command {
	return &cobra.Command{Use: "list", Short: "List projects", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildProjectUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		out, err := u.List(ctx, &project.ListInput{})
		if err != nil {
			return err
		}
		return printJSONLines(cmd, out.Projects)
	}}
}

func newCmdAdminProjectGet() *cobra.Command {
	var byName bool
	c := &cobra.Command{Use: "get <id>", Short: "Get a project", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildProjectUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		in := &project.GetInput{ProjectID: args[0]}
		if byName {
			in = &project.GetInput{Name: args[0]}
		}
		out, err := u.Get(ctx, in)
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Project)
	}}
	c.Flags().BoolVar(&byName, "name", false, "Treat the argument as the project name")
	return c
}

func newCmdAdminProjectCreate() *cobra.Command {
	var file string
	c := &cobra.Command{Use: "create", Short: "Create a project (from spec file)", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) (err error) {
		var spec projectSpec
		if err := readSpec(cmd, file, &spec); err != nil {
			return err
		}
		u, err := buildProjectUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.project.create", spec.Name)
		defer func() { cleanup(err) }()
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		out, err := u.Create(ctx, &project.CreateInput{Name: spec.Name, Code: spec.Code, Root: spec.Root, Config: spec.config()})
		if err != nil {
			return err
		}
		return printJSON(cmd, out.Project)
	}}
	c.Flags().StringVarP(&file, "file", "f", "", "Path to project spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

func newCmdAdminProjectDelete() *cobra.Command {
	return &cobra.Command{Use: "delete <id>", Short: "Delete a project", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) (err error) {
		u, err := buildProjectUseCase(cmd)
		if err != nil {
			return err
		}
		ctx, cleanup := withCmdRunLogger(cmd.Context(), "admin.project.delete", args[0])
		defer func() { cleanup(err) }()
		if _, err := u.Delete(ctx, &project.DeleteInput{ProjectID: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	}}
}
