package action

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
)

// Launcher locates and starts studio launcher scripts found under
// <TemplatesDir>/bin/<os>/.
type Launcher struct {
	TemplatesDir string
	// GOOS selects the launcher directory; runtime.GOOS when empty.
	GOOS string
	// PathExt lists executable extensions separated by the path list
	// separator; $PATHEXT when empty.
	PathExt string
	// Start runs path with env without waiting for it; a detached
	// subprocess when nil.
	Start func(ctx context.Context, path string, env []string) error
}

// Find returns the launcher for executable, trying each extension in turn.
func (l *Launcher) Find(executable string) (string, bool) {
	goos := l.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	dir := filepath.Join(strings.Trim(l.TemplatesDir, `"`), "bin", goos)
	pathExt := l.PathExt
	if pathExt == "" {
		pathExt = os.Getenv("PATHEXT")
	}
	exts := []string{""}
	if pathExt != "" {
		exts = strings.Split(pathExt, string(os.PathListSeparator))
	}
	for _, ext := range exts {
		p := filepath.Join(dir, executable+ext)
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if goos != "windows" && info.Mode().Perm()&0o111 == 0 {
			continue
		}
		return p, true
	}
	return "", false
}

func (l *Launcher) start(ctx context.Context, path string, env []string) error {
	if l.Start != nil {
		return l.Start(ctx, path, env)
	}
	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	cmd.Env = append(os.Environ(), env...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}
	return cmd.Process.Release()
}

// Launch starts the application launcher for the first selected entity,
// with the work context exported as AVALON_* variables.
func (a *AppAction) Launch(ctx context.Context, entities []model.EntityRef) (any, error) {
	logger := logging.FromContext(ctx)
	logger.Info(ctx, "action started", "label", a.Label, "identifier", a.Identifier)
	if len(entities) == 0 {
		return nil, errors.New("no entity selected")
	}
	l := a.uc.Launcher
	if l == nil || l.TemplatesDir == "" {
		return nil, errors.New("studio templates directory is not configured")
	}
	env, err := a.workEnv(ctx, entities[0])
	if err != nil {
		return nil, err
	}
	path, ok := l.Find(a.Executable)
	if !ok {
		return Result{Success: false, Message: "We didn't find launcher for " + a.Label}, nil
	}
	logger.Info(ctx, "launching", "path", path, "env", strings.Join(env, " "))
	if err := l.start(ctx, path, env); err != nil {
		return nil, err
	}
	return Result{Success: true, Message: "Launching " + a.Label}, nil
}

// workEnv derives AVALON_PROJECT, AVALON_ASSET and AVALON_TASK from ref.
func (a *AppAction) workEnv(ctx context.Context, ref model.EntityRef) ([]string, error) {
	s := a.uc.Session
	entity, err := s.Get(ctx, ref.Type, ref.ID)
	if err != nil {
		return nil, err
	}
	project, err := a.collabProject(ctx, ref)
	if err != nil {
		return nil, err
	}
	env := []string{"AVALON_PROJECT=" + project.FullName}
	switch entity.Type {
	case "Project":
	case "Task":
		env = append(env, "AVALON_TASK="+entity.Name)
		if entity.ParentID != "" {
			parent, err := s.Get(ctx, "TypedContext", entity.ParentID)
			if err != nil {
				return nil, err
			}
			env = append(env, "AVALON_ASSET="+parent.Name)
		}
	default:
		env = append(env, "AVALON_ASSET="+entity.Name)
	}
	return env, nil
}
