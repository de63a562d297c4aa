package version

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for version use cases.
type Repos struct {
	Asset   domain.AssetRepository
	Version domain.VersionRepository
}

// UseCase wires repositories needed for version use cases.
type UseCase struct {
	Repos *Repos
}
