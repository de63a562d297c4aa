package action

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
)

// Topics of the collaboration platform's action protocol.
const (
	TopicDiscover = "ftrack.action.discover"
	TopicLaunch   = "ftrack.action.launch"
)

// AppActionInput describes an application launch action.
type AppActionInput struct {
	Label       string `json:"label"`
	Identifier  string `json:"identifier"`
	Executable  string `json:"executable"`
	Variant     string `json:"variant,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	// Interface optionally returns form items to show before launching.
	// A non-empty result is sent instead of launching.
	Interface func(ctx context.Context, entities []model.EntityRef, ev *model.Event) []map[string]any `json:"-"`
}

// AppAction launches an application for the entity selected on the
// collaboration platform.
type AppAction struct {
	AppActionInput
	uc *UseCase
}

// ActionItem is one entry of a discover reply.
type ActionItem struct {
	Label            string `json:"label"`
	Variant          string `json:"variant"`
	Description      string `json:"description"`
	ActionIdentifier string `json:"actionIdentifier"`
	Icon             string `json:"icon"`
}

// ItemsReply is sent for accepted discovers and for interfaces.
type ItemsReply[T any] struct {
	Items []T `json:"items"`
}

// ReplyItems lets the hub merge the items of several actions.
func (r ItemsReply[T]) ReplyItems() []any {
	out := make([]any, len(r.Items))
	for i, it := range r.Items {
		out[i] = it
	}
	return out
}

// Result is the outcome of a launch.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewAppAction validates in and returns the action.
func (u *UseCase) NewAppAction(in AppActionInput) (*AppAction, error) {
	switch {
	case in.Label == "":
		return nil, errors.New("action missing label")
	case in.Identifier == "":
		return nil, errors.New("action missing identifier")
	case in.Executable == "":
		return nil, errors.New("action missing executable")
	}
	return &AppAction{AppActionInput: in, uc: u}, nil
}

// Register subscribes the action to the discover and launch topics.
func (a *AppAction) Register(hub domain.EventHub) error {
	discover := fmt.Sprintf("topic=%s and source.user.username=%s", TopicDiscover, a.uc.Session.APIUser())
	if _, err := hub.Subscribe(discover, a.handleDiscover); err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", a.Identifier, err)
	}
	launch := fmt.Sprintf("topic=%s and data.actionIdentifier=%s", TopicLaunch, a.Identifier)
	if _, err := hub.Subscribe(launch, a.handleLaunch); err != nil {
		return fmt.Errorf("failed to subscribe %s: %w", a.Identifier, err)
	}
	return nil
}

func (a *AppAction) handleDiscover(ctx context.Context, ev *model.Event) (any, error) {
	entities, err := a.translateEvent(ctx, ev)
	if err != nil {
		return nil, err
	}
	ok, err := a.Discover(ctx, entities)
	if err != nil || !ok {
		return nil, err
	}
	return ItemsReply[ActionItem]{Items: []ActionItem{{
		Label:            a.Label,
		Variant:          a.Variant,
		Description:      a.Description,
		ActionIdentifier: a.Identifier,
		Icon:             a.Icon,
	}}}, nil
}

// Discover reports whether the action applies to the selection: the
// selected entity's project must exist in the project database with the
// action's application enabled.
func (a *AppAction) Discover(ctx context.Context, entities []model.EntityRef) (bool, error) {
	if len(entities) == 0 {
		return false, nil
	}
	project, err := a.collabProject(ctx, entities[0])
	if err != nil {
		return false, err
	}
	p, err := a.uc.Repos.Project.FindByName(ctx, project.FullName)
	if errors.Is(err, model.ErrProjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return slices.Contains(p.Config.AppIdentifiers(), a.Identifier), nil
}

// collabProject returns the project of ref, or ref itself when it is a project.
func (a *AppAction) collabProject(ctx context.Context, ref model.EntityRef) (*model.Entity, error) {
	e, err := a.uc.Session.Get(ctx, ref.Type, ref.ID)
	if err != nil {
		return nil, err
	}
	if e.Type == "Project" {
		return e, nil
	}
	return a.uc.Session.Get(ctx, "Project", e.ProjectID)
}

func (a *AppAction) handleLaunch(ctx context.Context, ev *model.Event) (any, error) {
	entities, err := a.translateEvent(ctx, ev)
	if err != nil {
		return nil, err
	}
	if a.Interface != nil {
		if items := a.Interface(ctx, entities, ev); len(items) > 0 {
			return ItemsReply[map[string]any]{Items: items}, nil
		}
	}
	res, err := a.Launch(ctx, entities)
	if err != nil {
		return nil, err
	}
	return a.handleResult(ctx, res)
}

// handleResult normalises a launch outcome into a Result.
// Accepted shapes are bool, Result and a map carrying success and message.
func (a *AppAction) handleResult(ctx context.Context, res any) (any, error) {
	switch v := res.(type) {
	case bool:
		return Result{Success: v, Message: a.Label + " launched successfully."}, nil
	case Result:
		return v, nil
	case map[string]any:
		for _, key := range []string{"success", "message"} {
			if _, ok := v[key]; !ok {
				return nil, fmt.Errorf("Missing required key: %s.", key)
			}
		}
		return v, nil
	}
	logging.FromContext(ctx).Error(ctx, "Invalid result type must be bool or dictionary!", "type", fmt.Sprintf("%T", res))
	return res, nil
}

// translateEvent converts the event selection to entity references.
func (a *AppAction) translateEvent(ctx context.Context, ev *model.Event) ([]model.EntityRef, error) {
	schemas, err := a.uc.Session.Schemas(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.EntityRef
	for _, sel := range ev.Selection() {
		typ, _ := sel["entityType"].(string)
		resolved, err := entityType(schemas, typ)
		if err != nil {
			return nil, err
		}
		id, _ := sel["entityId"].(string)
		out = append(out, model.EntityRef{Type: resolved, ID: id})
	}
	return out, nil
}

// entityType maps a selection entity type to a schema id. The type is
// lower cased with underscores removed, then matched against schema
// aliases before schema ids.
func entityType(schemas []model.Schema, typ string) (string, error) {
	norm := strings.ToLower(strings.ReplaceAll(typ, "_", ""))
	for _, s := range schemas {
		if s.AliasFor != "" && strings.ToLower(s.AliasFor) == norm {
			return s.ID, nil
		}
	}
	for _, s := range schemas {
		if strings.ToLower(s.ID) == norm {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("Unable to translate entity type: %s.", norm)
}
