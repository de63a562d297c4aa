package model

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectInvalid  = errors.New("project invalid")

	ErrAssetNotFound = errors.New("asset not found")
	ErrAssetInvalid  = errors.New("asset invalid")

	ErrVersionNotFound = errors.New("version not found")
	ErrVersionInvalid  = errors.New("version invalid")

	ErrRepresentationNotFound = errors.New("representation not found")
	ErrRepresentationInvalid  = errors.New("representation invalid")

	ErrEntityNotFound = errors.New("entity not found")
)
