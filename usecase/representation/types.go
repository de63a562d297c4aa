package representation

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for representation use cases.
type Repos struct {
	Version        domain.VersionRepository
	Representation domain.RepresentationRepository
}

// UseCase wires repositories needed for representation use cases.
type UseCase struct {
	Repos *Repos
}
