package model

// Event is a message exchanged with the collaboration platform's event hub.
type Event struct {
	ID     string         `json:"id,omitempty"`
	Topic  string         `json:"topic"`
	Source EventSource    `json:"source"`
	Data   map[string]any `json:"data,omitempty"`
}

// EventSource identifies who emitted an event.
type EventSource struct {
	User EventUser `json:"user"`
}

type EventUser struct {
	Username string `json:"username"`
}

// Selection returns the entities selected when the event was emitted.
// Entries that are not objects are skipped.
func (e *Event) Selection() []map[string]any {
	raw, _ := e.Data["selection"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// EntityRef is a translated selection entry.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Schema describes an entity type of the collaboration platform.
// AliasFor names the lower case type it stands in for, if any.
type Schema struct {
	ID       string `json:"id" yaml:"id"`
	AliasFor string `json:"alias_for,omitempty" yaml:"aliasFor,omitempty"`
}

// Entity is a record fetched from the collaboration platform.
type Entity struct {
	Type      string `json:"type" yaml:"type"`
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	FullName  string `json:"full_name,omitempty" yaml:"fullName,omitempty"`
	ProjectID string `json:"project_id,omitempty" yaml:"projectId,omitempty"`
	ParentID  string `json:"parent_id,omitempty" yaml:"parentId,omitempty"`
}
