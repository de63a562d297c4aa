package domain

import (
	"context"

	"github.com/kompox/pipeops/domain/model"
)

// Host is the host application an artist works in.
type Host interface {
	// Name returns the host identifier (e.g. "aftereffects").
	Name() string
	// Ls lists containers loaded in the current scene.
	Ls(ctx context.Context) ([]model.Container, error)
}

// SessionStore reads and writes the current work context.
type SessionStore interface {
	Load(ctx context.Context) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
}

// RenderRequest asks the host to render one composition into a staging directory.
type RenderRequest struct {
	StagingDir string
	CompID     string
	// FileName is the output module file name, e.g. "sh010_comp.[####].png".
	FileName string
}

// Renderer renders compositions of the open scene.
type Renderer interface {
	// Render returns when the host has finished writing the output files.
	Render(ctx context.Context, req RenderRequest) error
}

// EventHandler handles a delivered event. A non-nil reply is sent back to
// the emitter.
type EventHandler func(ctx context.Context, ev *model.Event) (any, error)

// EventHub delivers events to subscribers selected by expressions such as
// "topic=ftrack.action.launch and data.actionIdentifier=maya".
type EventHub interface {
	Subscribe(expr string, handler EventHandler) (string, error)
	Publish(ctx context.Context, ev *model.Event) (any, error)
}

// CollabSession is a connection to the collaboration platform.
type CollabSession interface {
	APIUser() string
	Schemas(ctx context.Context) ([]model.Schema, error)
	Get(ctx context.Context, entityType, id string) (*model.Entity, error)
}

// ItemReply is a reply carrying a list of items. When several subscribers
// answer one event with item replies, the hub merges their items into one
// reply, as the platform does for action discovery.
type ItemReply interface {
	ReplyItems() []any
}
