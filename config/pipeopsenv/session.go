package pipeopsenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
)

// Session environment variables. When set they override the session file.
const (
	EnvProject = "AVALON_PROJECT"
	EnvAsset   = "AVALON_ASSET"
	EnvTask    = "AVALON_TASK"
	EnvApp     = "AVALON_APP"
	EnvWorkdir = "AVALON_WORKDIR"
)

// FileSessionStore keeps the work context in a YAML file.
type FileSessionStore struct {
	Path string
	// Root is the registered root; it is reported when the file has none.
	Root string
}

// Load reads the session file, then applies AVALON_* environment overrides.
// A missing file yields an empty session.
func (s *FileSessionStore) Load(_ context.Context) (*model.Session, error) {
	sess := &model.Session{}
	data, err := os.ReadFile(s.Path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, sess); err != nil {
			return nil, fmt.Errorf("parsing session file %q: %w", s.Path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("reading session file %q: %w", s.Path, err)
	}
	for key, env := range map[string]string{"project": EnvProject, "asset": EnvAsset, "task": EnvTask, "app": EnvApp} {
		if v := os.Getenv(env); v != "" {
			sess.Set(key, v)
		}
	}
	if v := os.Getenv(EnvWorkdir); v != "" {
		sess.Workdir = v
	}
	if sess.Root == "" {
		sess.Root = s.Root
	}
	return sess, nil
}

// Save writes the session file atomically.
func (s *FileSessionStore) Save(_ context.Context, sess *model.Session) error {
	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing session file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("replacing session file %q: %w", s.Path, err)
	}
	return nil
}

var _ domain.SessionStore = (*FileSessionStore)(nil)
