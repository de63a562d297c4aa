package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/internal/logging"
)

// RegisterAllInput is the hub every action is registered on.
type RegisterAllInput struct {
	Hub domain.EventHub
}

// RegisterAllOutput lists the registered action identifiers with their variant.
type RegisterAllOutput struct {
	Actions []string `json:"actions"`
}

// RegisterAll registers one action per application identifier enabled in
// any project of the database. The first variant seen names the launcher.
func (u *UseCase) RegisterAll(ctx context.Context, in *RegisterAllInput) (*RegisterAllOutput, error) {
	projects, err := u.Repos.Project.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	out := &RegisterAllOutput{}
	seen := map[string]bool{}
	for _, p := range projects {
		for _, app := range p.Config.Apps {
			id, variant, _ := strings.Cut(app.Name, "_")
			if seen[id] {
				continue
			}
			seen[id] = true
			label := app.Label
			if label == "" {
				label = id
			}
			a, err := u.NewAppAction(AppActionInput{
				Label:      label,
				Identifier: id,
				Executable: app.Name,
				Variant:    variant,
			})
			if err != nil {
				return nil, fmt.Errorf("project %s app %s: %w", p.Name, app.Name, err)
			}
			if err := a.Register(in.Hub); err != nil {
				return nil, err
			}
			logging.FromContext(ctx).Debug(ctx, "registered action", "app", app.Name)
			out.Actions = append(out.Actions, app.Name)
		}
	}
	return out, nil
}
