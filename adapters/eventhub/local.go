// Package eventhub delivers collaboration platform events to subscribers,
// in process or over HTTP.
package eventhub

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
)

type subscription struct {
	id      string
	expr    Expr
	handler domain.EventHandler
}

// Local is an in-process hub. Handlers run synchronously in the order
// they subscribed.
type Local struct {
	mu   sync.RWMutex
	subs []subscription
}

var _ domain.EventHub = (*Local)(nil)

func NewLocal() *Local {
	return &Local{}
}

// Subscribe registers handler for events matching expr and returns the
// subscription id.
func (h *Local) Subscribe(expr string, handler domain.EventHandler) (string, error) {
	x, err := ParseExpr(expr)
	if err != nil {
		return "", err
	}
	if handler == nil {
		return "", errors.New("nil event handler")
	}
	id := uuid.NewString()
	h.mu.Lock()
	h.subs = append(h.subs, subscription{id: id, expr: x, handler: handler})
	h.mu.Unlock()
	return id, nil
}

// Unsubscribe removes a subscription. It reports whether it existed.
func (h *Local) Unsubscribe(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Subscriptions returns the expressions currently subscribed.
func (h *Local) Subscriptions() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, len(h.subs))
	for i, s := range h.subs {
		out[i] = s.expr.String()
	}
	return out
}

// Items is the merged reply of several subscribers answering with item
// lists.
type Items struct {
	Items []any `json:"items"`
}

func (r Items) ReplyItems() []any { return r.Items }

// Publish delivers ev to every matching subscriber. When every non-nil
// reply is a domain.ItemReply and there are several, their items are merged
// in subscription order into an Items reply; otherwise the first non-nil
// reply is returned. Handler errors are logged and joined; they do not stop
// delivery to the remaining subscribers.
func (h *Local) Publish(ctx context.Context, ev *model.Event) (any, error) {
	if ev == nil {
		return nil, errors.New("nil event")
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	h.mu.RLock()
	var targets []subscription
	for _, s := range h.subs {
		if s.expr.Match(ev) {
			targets = append(targets, s)
		}
	}
	h.mu.RUnlock()

	logger := logging.FromContext(ctx).With("event", ev.ID, "topic", ev.Topic)
	logger.Debug(ctx, "publishing event", "subscribers", len(targets))
	var replies []any
	var errs []error
	for _, s := range targets {
		r, err := s.handler(ctx, ev)
		if err != nil {
			logger.Warn(ctx, "event handler failed", "subscription", s.expr.String(), "error", err)
			errs = append(errs, err)
			continue
		}
		if r != nil {
			replies = append(replies, r)
		}
	}
	return mergeReplies(replies), errors.Join(errs...)
}

func mergeReplies(replies []any) any {
	switch len(replies) {
	case 0:
		return nil
	case 1:
		return replies[0]
	}
	merged := Items{Items: []any{}}
	for _, r := range replies {
		ir, ok := r.(domain.ItemReply)
		if !ok {
			return replies[0]
		}
		merged.Items = append(merged.Items, ir.ReplyItems()...)
	}
	return merged
}
