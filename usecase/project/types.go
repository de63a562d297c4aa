package project

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for project use cases.
type Repos struct {
	Project domain.ProjectRepository
}

// UseCase wires repositories needed for project use cases.
type UseCase struct {
	Repos *Repos
}
