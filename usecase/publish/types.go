package publish

import (
	"slices"
	"sort"
)

// Plugin orders. Plugins run in ascending order; offsets within a stage
// position a plugin relative to its neighbours.
const (
	CollectorOrder  = 0.0
	ValidatorOrder  = 1.0
	ExtractorOrder  = 2.0
	IntegratorOrder = 3.0
)

// UseCase runs publish plugins over instances.
type UseCase struct {
	// Host is the name of the host the instances come from.
	Host    string
	Plugins []Plugin
	// Parallelism bounds the number of instances processed at once.
	// Zero or negative means one at a time.
	Parallelism int
}

// ordered returns the plugins sorted by order, stable for equal orders.
func (u *UseCase) ordered() []Plugin {
	out := slices.Clone(u.Plugins)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}
