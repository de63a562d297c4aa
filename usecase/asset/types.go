package asset

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for asset use cases.
type Repos struct {
	Project domain.ProjectRepository
	Asset   domain.AssetRepository
}

// UseCase wires repositories needed for asset use cases.
type UseCase struct {
	Repos *Repos
}
