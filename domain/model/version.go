package model

import "time"

// Version is a numbered revision of an asset's published output.
// Name is the version number; the highest Name under one asset is the latest.
type Version struct {
	ID        string
	AssetID   string // references Asset
	Name      int
	Author    string
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
