package workfile

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for work-file use cases.
type Repos struct {
	Project domain.ProjectRepository
}

// UseCase keeps the artist's work context in sync with the scene on disk.
type UseCase struct {
	Repos    *Repos
	Sessions domain.SessionStore
}
