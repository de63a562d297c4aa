package container

import (
	"context"
	"fmt"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
)

// AnyOutdatedInput names the host whose scene is inspected.
type AnyOutdatedInput struct {
	Host domain.Host
}

// AnyOutdatedOutput reports whether the scene has outdated content.
type AnyOutdatedOutput struct {
	Outdated bool `json:"outdated"`
}

// AnyOutdated returns whether the current scene has any outdated content.
// Each representation is checked once; the first outdated one ends the scan.
func (u *UseCase) AnyOutdated(ctx context.Context, in *AnyOutdatedInput) (*AnyOutdatedOutput, error) {
	containers, err := lsHost(ctx, in)
	if err != nil {
		return nil, err
	}
	checked := make(map[string]struct{}, len(containers))
	for _, c := range containers {
		if _, ok := checked[c.Representation]; ok {
			continue
		}
		res, err := u.IsLatest(ctx, &IsLatestInput{RepresentationID: c.Representation})
		if err != nil {
			return nil, err
		}
		if !res.Latest {
			return &AnyOutdatedOutput{Outdated: true}, nil
		}
		checked[c.Representation] = struct{}{}
	}
	return &AnyOutdatedOutput{Outdated: false}, nil
}

// OutdatedContainer is a loaded container whose version is not the latest.
type OutdatedContainer struct {
	Container     model.Container `json:"container"`
	Version       int             `json:"version"`
	LatestVersion int             `json:"latest_version"`
}

// ListOutdatedInput names the host whose scene is inspected.
type ListOutdatedInput struct {
	Host domain.Host
}

// ListOutdatedOutput lists every outdated container of the scene.
type ListOutdatedOutput struct {
	Outdated []OutdatedContainer `json:"outdated"`
	Checked  int                 `json:"checked"`
}

// ListOutdated reports every container that does not reference the latest
// version. Containers sharing a representation share one lookup.
func (u *UseCase) ListOutdated(ctx context.Context, in *ListOutdatedInput) (*ListOutdatedOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("no host registered")
	}
	containers, err := lsHost(ctx, &AnyOutdatedInput{Host: in.Host})
	if err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)
	results := map[string]*IsLatestOutput{}
	out := &ListOutdatedOutput{Outdated: []OutdatedContainer{}}
	for _, c := range containers {
		res, ok := results[c.Representation]
		if !ok {
			res, err = u.IsLatest(ctx, &IsLatestInput{RepresentationID: c.Representation})
			if err != nil {
				return nil, err
			}
			results[c.Representation] = res
			out.Checked++
		}
		if !res.Latest {
			logger.Debug(ctx, "container outdated", "container", c.Name, "version", res.Version, "latest", res.LatestVersion)
			out.Outdated = append(out.Outdated, OutdatedContainer{Container: c, Version: res.Version, LatestVersion: res.LatestVersion})
		}
	}
	return out, nil
}

func lsHost(ctx context.Context, in *AnyOutdatedInput) ([]model.Container, error) {
	if in == nil || in.Host == nil {
		return nil, fmt.Errorf("no host registered")
	}
	containers, err := in.Host.Ls(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers of host %s: %w", in.Host.Name(), err)
	}
	return containers, nil
}
