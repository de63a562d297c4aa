package eventhub

import (
	"fmt"
	"strings"

	"github.com/kompox/pipeops/domain/model"
)

// Term is one key=value condition of a subscription expression.
type Term struct {
	Key   string
	Value string
}

// Expr is a parsed subscription expression: terms joined by "and".
type Expr []Term

// ParseExpr parses expressions such as
// "topic=ftrack.action.discover and source.user.username=admin".
func ParseExpr(s string) (Expr, error) {
	var out Expr
	for _, part := range splitAnd(s) {
		part = strings.TrimSpace(part)
		key, value, ok := strings.Cut(part, "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid subscription term %q in %q", part, s)
		}
		out = append(out, Term{Key: key, Value: strings.Trim(value, `"`)})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty subscription expression")
	}
	return out, nil
}

// splitAnd splits on the word "and" surrounded by white space.
func splitAnd(s string) []string {
	fields := strings.Fields(s)
	var parts []string
	var cur []string
	for _, f := range fields {
		if strings.EqualFold(f, "and") {
			parts = append(parts, strings.Join(cur, " "))
			cur = nil
			continue
		}
		cur = append(cur, f)
	}
	if len(cur) > 0 || len(parts) > 0 {
		parts = append(parts, strings.Join(cur, " "))
	}
	return parts
}

// Match reports whether every term holds for ev.
func (x Expr) Match(ev *model.Event) bool {
	for _, t := range x {
		v, ok := lookup(ev, t.Key)
		if !ok || v != t.Value {
			return false
		}
	}
	return true
}

func (x Expr) String() string {
	parts := make([]string, len(x))
	for i, t := range x {
		parts[i] = t.Key + "=" + t.Value
	}
	return strings.Join(parts, " and ")
}

// lookup resolves a dotted key against the event.
func lookup(ev *model.Event, key string) (string, bool) {
	switch key {
	case "id":
		return ev.ID, true
	case "topic":
		return ev.Topic, true
	case "source.user.username":
		return ev.Source.User.Username, true
	}
	rest, ok := strings.CutPrefix(key, "data.")
	if !ok {
		return "", false
	}
	var cur any = ev.Data
	for _, seg := range strings.Split(rest, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		if cur, ok = m[seg]; !ok {
			return "", false
		}
	}
	switch v := cur.(type) {
	case string:
		return v, true
	case nil:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}
