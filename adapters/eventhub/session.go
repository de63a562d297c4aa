package eventhub

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"gopkg.in/yaml.v3"
)

// sessionFile is the YAML layout read by LoadSession.
type sessionFile struct {
	APIUser  string         `yaml:"apiUser"`
	Schemas  []model.Schema `yaml:"schemas"`
	Entities []model.Entity `yaml:"entities"`
}

// FileSession serves collaboration platform data from a YAML file, for
// running actions without a platform connection.
type FileSession struct {
	user     string
	schemas  []model.Schema
	entities map[string]model.Entity // key: lower(type) + "/" + id
	byID     map[string]model.Entity
}

// TypedContext is the generic type of hierarchical entities in selections.
const TypedContext = "TypedContext"

var _ domain.CollabSession = (*FileSession)(nil)

// LoadSession reads a session file. apiUser overrides the file's user
// when not empty.
func LoadSession(path, apiUser string) (*FileSession, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var f sessionFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}
	if apiUser != "" {
		f.APIUser = apiUser
	}
	return NewSession(f.APIUser, f.Schemas, f.Entities)
}

// NewSession builds a session from in-memory data.
func NewSession(apiUser string, schemas []model.Schema, entities []model.Entity) (*FileSession, error) {
	s := &FileSession{user: apiUser, schemas: schemas, entities: map[string]model.Entity{}, byID: map[string]model.Entity{}}
	for i, e := range entities {
		if e.Type == "" || e.ID == "" {
			return nil, fmt.Errorf("entities[%d]: type and id are required", i)
		}
		s.entities[entityKey(e.Type, e.ID)] = e
		s.byID[e.ID] = e
	}
	return s, nil
}

func entityKey(typ, id string) string {
	return strings.ToLower(typ) + "/" + id
}

func (s *FileSession) APIUser() string { return s.user }

func (s *FileSession) Schemas(context.Context) ([]model.Schema, error) {
	return s.schemas, nil
}

func (s *FileSession) Get(_ context.Context, entityType, id string) (*model.Entity, error) {
	e, ok := s.entities[entityKey(entityType, id)]
	if !ok && strings.EqualFold(entityType, TypedContext) {
		e, ok = s.byID[id]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", model.ErrEntityNotFound, entityType, id)
	}
	return &e, nil
}
