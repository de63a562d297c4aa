package publish

import (
	"context"
	"slices"
)

// Plugin processes one instance at one stage of publishing.
type Plugin interface {
	Label() string
	Order() float64
	// Hosts limits the plugin to the named hosts. Empty means any host.
	Hosts() []string
	// Families limits the plugin to instances of the named families.
	// "*" or empty means any family.
	Families() []string
	Process(ctx context.Context, inst *Instance) error
}

// Toggle is implemented by plugins that may be switched off by settings.
type Toggle interface {
	Enabled() bool
}

// applies reports whether p should process inst published from host.
func applies(p Plugin, host string, inst *Instance) bool {
	if t, ok := p.(Toggle); ok && !t.Enabled() {
		return false
	}
	if hosts := p.Hosts(); len(hosts) > 0 && !slices.Contains(hosts, "*") && !slices.Contains(hosts, host) {
		return false
	}
	families := p.Families()
	if len(families) == 0 || slices.Contains(families, "*") {
		return true
	}
	for _, f := range inst.AllFamilies() {
		if slices.Contains(families, f) {
			return true
		}
	}
	return false
}
