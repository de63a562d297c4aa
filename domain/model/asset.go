package model

import "time"

// Asset is a shot, character, prop or any other publishable entity of a project.
type Asset struct {
	ID        string
	ProjectID string // references Project
	Name      string
	Silo      string // e.g. "assets", "film"
	Tasks     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
