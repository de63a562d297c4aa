package rdb

import "time"

// ProjectRecord is the RDB persistence model for domain Project.
// Table name: projects
type ProjectRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Name      string    `gorm:"type:text;not null;uniqueIndex"`
	Code      string    `gorm:"type:text"`
	Root      string    `gorm:"type:text"`
	Config    string    `gorm:"type:text"` // JSON encoded model.ProjectConfig
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProjectRecord) TableName() string { return "projects" }

// AssetRecord persistence model
type AssetRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	ProjectID string    `gorm:"type:text;not null;index"` // references Project
	Name      string    `gorm:"type:text;not null"`
	Silo      string    `gorm:"type:text"`
	Tasks     string    `gorm:"type:text"` // JSON encoded []string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (AssetRecord) TableName() string { return "assets" }

// VersionRecord persistence model
type VersionRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	AssetID   string    `gorm:"type:text;not null;index:idx_versions_asset_name"` // references Asset
	Name      int       `gorm:"not null;index:idx_versions_asset_name"`
	Author    string    `gorm:"type:text"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (VersionRecord) TableName() string { return "versions" }

// RepresentationRecord persistence model
type RepresentationRecord struct {
	ID         string    `gorm:"primaryKey;type:text;not null"`
	VersionID  string    `gorm:"type:text;not null;index"` // references Version
	Name       string    `gorm:"type:text;not null"`
	Ext        string    `gorm:"type:text"`
	Files      string    `gorm:"type:text"` // JSON encoded []string
	StagingDir string    `gorm:"type:text"`
	Tags       string    `gorm:"type:text"` // JSON encoded []string
	FrameStart int       `gorm:"not null;default:0"`
	FrameEnd   int       `gorm:"not null;default:0"`
	Colorspace string    `gorm:"type:text"` // JSON encoded model.ColorspaceData
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (RepresentationRecord) TableName() string { return "representations" }
