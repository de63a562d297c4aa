package action

import "github.com/kompox/pipeops/domain"

// Repos holds repositories needed for action use cases.
type Repos struct {
	Project domain.ProjectRepository
}

// UseCase builds and registers application launch actions.
type UseCase struct {
	Repos    *Repos
	Session  domain.CollabSession
	Launcher *Launcher
}
