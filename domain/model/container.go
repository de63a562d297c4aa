package model

// Container is an in-scene reference to a previously loaded representation.
type Container struct {
	Name           string `json:"name" yaml:"name"`
	Namespace      string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Loader         string `json:"loader,omitempty" yaml:"loader,omitempty"`
	Representation string `json:"representation" yaml:"representation"` // Representation ID
}
