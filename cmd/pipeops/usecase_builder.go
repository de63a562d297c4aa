package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	hostdrv "github.com/kompox/pipeops/adapters/drivers/host"
	"github.com/kompox/pipeops/adapters/drivers/host/aftereffects"
	"github.com/kompox/pipeops/config/pipeopsenv"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/usecase/action"
	"github.com/kompox/pipeops/usecase/asset"
	"github.com/kompox/pipeops/usecase/container"
	"github.com/kompox/pipeops/usecase/project"
	"github.com/kompox/pipeops/usecase/representation"
	versionuc "github.com/kompox/pipeops/usecase/version"
	"github.com/kompox/pipeops/usecase/workfile"
)

func buildProjectUseCase(cmd *cobra.Command) (*project.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &project.UseCase{Repos: &project.Repos{Project: repos.Project}}, nil
}

func buildAssetUseCase(cmd *cobra.Command) (*asset.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &asset.UseCase{Repos: &asset.Repos{Project: repos.Project, Asset: repos.Asset}}, nil
}

func buildVersionUseCase(cmd *cobra.Command) (*versionuc.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &versionuc.UseCase{Repos: &versionuc.Repos{Asset: repos.Asset, Version: repos.Version}}, nil
}

func buildRepresentationUseCase(cmd *cobra.Command) (*representation.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &representation.UseCase{Repos: &representation.Repos{Version: repos.Version, Representation: repos.Representation}}, nil
}

// buildContainerUseCase creates the container use case.
func buildContainerUseCase(cmd *cobra.Command) (*container.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	return &container.UseCase{Repos: &container.Repos{Version: repos.Version, Representation: repos.Representation}}, nil
}

// buildSessionStore returns the session store from --session-file or the
// resolved .pipeops directory.
func buildSessionStore(cmd *cobra.Command) (domain.SessionStore, error) {
	path := flagString(cmd, "session-file")
	var root string
	if cliEnv != nil {
		if path == "" {
			path = cliEnv.SessionFile()
		}
		root = cliEnv.ExpandVars(cliEnv.Session.Root)
	}
	if path == "" {
		return nil, fmt.Errorf("no %s directory found; pass --session-file", pipeopsenv.DirName)
	}
	return &pipeopsenv.FileSessionStore{Path: path, Root: root}, nil
}

// buildWorkfileUseCase creates the workfile use case with its session store.
func buildWorkfileUseCase(cmd *cobra.Command) (*workfile.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	sessions, err := buildSessionStore(cmd)
	if err != nil {
		return nil, err
	}
	return &workfile.UseCase{Repos: &workfile.Repos{Project: repos.Project}, Sessions: sessions}, nil
}

// buildActionUseCase creates the action use case for a platform session.
func buildActionUseCase(cmd *cobra.Command, session domain.CollabSession, templates string) (*action.UseCase, error) {
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	if templates == "" && cliEnv != nil {
		templates = cliEnv.Studio.Templates
	}
	return &action.UseCase{
		Repos:    &action.Repos{Project: repos.Project},
		Session:  session,
		Launcher: &action.Launcher{TemplatesDir: templates},
	}, nil
}

// buildHostDriver instantiates a registered host driver for scene.
func buildHostDriver(name, scene string) (hostdrv.Driver, error) {
	if name == "" {
		return nil, errors.New("host is required (--host)")
	}
	factory, ok := hostdrv.GetDriverFactory(name)
	if !ok {
		return nil, fmt.Errorf("unknown host %q (available: %v)", name, hostdrv.Names())
	}
	settings := hostdrv.Settings{"scene": scene}
	if cliEnv != nil && cliEnv.Tools.AERender != "" {
		settings[aftereffects.SettingAERender] = cliEnv.Tools.AERender
	}
	return factory(settings)
}
