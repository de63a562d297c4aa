package container

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for container use cases.
type Repos struct {
	Version        domain.VersionRepository
	Representation domain.RepresentationRepository
}

// UseCase checks loaded containers against the project database.
type UseCase struct {
	Repos *Repos
}
