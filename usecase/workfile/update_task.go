package workfile

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
	"github.com/kompox/pipeops/internal/pather"
)

// contextKeys are the session keys derived from a work file path.
var contextKeys = []string{"asset", "task", "app"}

// UpdateTaskInput carries the path of the current scene.
type UpdateTaskInput struct {
	// Path is the saved scene file. Empty means the scene is unsaved.
	Path string `json:"path"`
}

// UpdateTaskOutput reports what changed.
type UpdateTaskOutput struct {
	// Context holds every field parsed from the path (nil if not parsed).
	Context map[string]string `json:"context,omitempty"`
	// Changes holds the session keys that were updated.
	Changes map[string]string `json:"changes,omitempty"`
	// Updated is true when the session was written.
	Updated bool `json:"updated"`
}

// UpdateTaskFromPath updates the session context from the scene path.
//
// When nothing differs from the current session no update happens. When
// the scene is unsaved or the path does not match the project's work
// template the problem is logged and nil is returned.
func (u *UseCase) UpdateTaskFromPath(ctx context.Context, in *UpdateTaskInput) (*UpdateTaskOutput, error) {
	logger := logging.FromContext(ctx)
	out := &UpdateTaskOutput{}
	if in == nil || in.Path == "" {
		logger.Warn(ctx, "Can't update the current task. Scene is not saved.")
		return out, nil
	}

	session, err := u.Sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	project, err := u.currentProject(ctx, session)
	if err != nil {
		return nil, err
	}

	root := session.Root
	if root == "" {
		root = project.Root
	}
	// Pin {root} to the registered root so a path under another root never matches.
	template := pather.Format(project.Config.Template.Work, map[string]string{"root": root})
	parsed, err := pather.Parse(template, in.Path)
	if err != nil {
		var pe *pather.ParseError
		if errors.As(err, &pe) {
			logger.Error(ctx, "Can't update the current task. Unable to parse the task for path",
				"path", in.Path, "pattern", template)
			return out, nil
		}
		return nil, err
	}
	out.Context = parsed

	changes := map[string]string{}
	for _, key := range contextKeys {
		v, ok := parsed[key]
		if !ok {
			logger.Warn(ctx, "Work template has no field for session key", "key", key, "pattern", template)
			continue
		}
		if session.Get(key) != v {
			changes[key] = v
		}
	}
	if len(changes) == 0 {
		return out, nil
	}

	logger.Info(ctx, "Updating work task", "context", parsed)
	for k, v := range changes {
		session.Set(k, v)
	}
	if err := u.Sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	out.Changes = maps.Clone(changes)
	out.Updated = true
	return out, nil
}

// currentProject resolves the session's project. Without a project name a
// database holding exactly one project is used.
func (u *UseCase) currentProject(ctx context.Context, session *model.Session) (*model.Project, error) {
	if session.Project != "" {
		p, err := u.Repos.Project.FindByName(ctx, session.Project)
		if err != nil {
			return nil, fmt.Errorf("failed to find project %q: %w", session.Project, err)
		}
		return p, nil
	}
	projects, err := u.Repos.Project.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) != 1 {
		return nil, fmt.Errorf("session has no project and database holds %d projects: %w", len(projects), model.ErrProjectNotFound)
	}
	return projects[0], nil
}
