package pipeopsenv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	RootEnvKey = "PIPEOPS_ROOT"
	DirEnvKey  = "PIPEOPS_DIR"
)

// Directory and file names
const (
	DirName            = ".pipeops"
	ConfigFileName     = "config.yml"
	SessionFileName    = "session.yml"
	DefaultProjectFile = "project.yml"
)

// ErrNotFound is returned by Resolve when no .pipeops directory is found.
var ErrNotFound = errors.New(".pipeops directory not found")

// Env holds the resolved PIPEOPS_ROOT, PIPEOPS_DIR and the contents of
// .pipeops/config.yml.
type Env struct {
	Root    string // Resolved PIPEOPS_ROOT (studio or project directory)
	Dir     string // Resolved PIPEOPS_DIR (typically $PIPEOPS_ROOT/.pipeops)
	Version int
	Store   Store
	Logging Logging
	Session Session
	Tools   Tools
	Studio  Studio
}

// Store selects the project database.
type Store struct {
	URL string `yaml:"url,omitempty"` // db-url, e.g. file:$PIPEOPS_ROOT/project.yml or sqlite:$PIPEOPS_DIR/pipeops.db
}

// Logging represents the logging configuration from .pipeops/config.yml
type Logging struct {
	Dir           string `yaml:"dir,omitempty"`           // Log directory (default: $PIPEOPS_DIR/logs)
	Format        string `yaml:"format,omitempty"`        // human (default), text, json
	Level         string `yaml:"level,omitempty"`         // DEBUG, INFO (default), WARN, ERROR
	Output        string `yaml:"output,omitempty"`        // "-" (default), "none", "context" (one file per day and work context), or a file path
	RetentionDays int    `yaml:"retentionDays,omitempty"` // Days to retain log files (default: 7)
}

// Session configures where the current work context is kept.
type Session struct {
	File string `yaml:"file,omitempty"` // default: $PIPEOPS_DIR/session.yml
	Root string `yaml:"root,omitempty"` // registered root formatted into {root}
}

// Tools overrides external executables.
type Tools struct {
	FFmpeg   string `yaml:"ffmpeg,omitempty"`
	AERender string `yaml:"aerender,omitempty"`
}

// Studio holds settings of the action server.
type Studio struct {
	Templates string `yaml:"templates,omitempty"` // directory containing bin/<os>/<launcher>
	APIUser   string `yaml:"apiUser,omitempty"`
}

type configFile struct {
	Version int     `yaml:"version"`
	Store   Store   `yaml:"store,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
	Session Session `yaml:"session,omitempty"`
	Tools   Tools   `yaml:"tools,omitempty"`
	Studio  Studio  `yaml:"studio,omitempty"`
}

// Resolve discovers PIPEOPS_ROOT and PIPEOPS_DIR, then loads .pipeops/config.yml.
//
// Resolution order for PIPEOPS_ROOT:
//  1. root parameter (from --pipeops-root flag or PIPEOPS_ROOT env)
//  2. Upward search from workDir for a parent containing .pipeops/
//
// PIPEOPS_DIR defaults to $PIPEOPS_ROOT/.pipeops.
func Resolve(root, dir, workDir string) (*Env, error) {
	if root == "" {
		found, err := searchForRoot(workDir)
		if err != nil {
			return nil, fmt.Errorf("searching for %s directory: %w", DirName, err)
		}
		if found == "" {
			return nil, fmt.Errorf("%w in ancestors of %q", ErrNotFound, workDir)
		}
		root = found
	}

	root, err := absDir(root, RootEnvKey)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = filepath.Join(root, DirName)
	}
	dir, err = absDir(dir, DirEnvKey)
	if err != nil {
		return nil, err
	}

	e := &Env{Root: root, Dir: dir}
	if err := e.loadConfigFile(); err != nil {
		return nil, err
	}
	return e, nil
}

func absDir(p, what string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s to absolute path: %w", what, err)
	}
	abs = filepath.Clean(abs)
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%s %q does not exist: %w", what, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s %q is not a directory", what, abs)
	}
	return abs, nil
}

// searchForRoot returns the nearest ancestor of startDir (inclusive) that
// contains a .pipeops directory, or "" when none does.
func searchForRoot(startDir string) (string, error) {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}
	for {
		info, err := os.Stat(filepath.Join(current, DirName))
		if err == nil && info.IsDir() {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// loadConfigFile loads .pipeops/config.yml. A missing file is not an error.
func (e *Env) loadConfigFile() error {
	configPath := filepath.Join(e.Dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %q: %w", configPath, err)
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parsing config file %q: %w", configPath, err)
	}

	e.Version = cf.Version
	e.Store = Store{URL: e.ExpandVars(cf.Store.URL)}
	e.Logging = cf.Logging
	e.Logging.Dir = e.ExpandVars(cf.Logging.Dir)
	e.Session = Session{File: e.ExpandVars(cf.Session.File), Root: e.ExpandVars(cf.Session.Root)}
	e.Tools = Tools{FFmpeg: e.ExpandVars(cf.Tools.FFmpeg), AERender: e.ExpandVars(cf.Tools.AERender)}
	e.Studio = Studio{Templates: e.ExpandVars(cf.Studio.Templates), APIUser: cf.Studio.APIUser}
	return nil
}

// ExpandVars replaces $PIPEOPS_ROOT and $PIPEOPS_DIR in the given string.
func (e *Env) ExpandVars(s string) string {
	s = strings.ReplaceAll(s, "$"+RootEnvKey, e.Root)
	s = strings.ReplaceAll(s, "$"+DirEnvKey, e.Dir)
	return s
}

// LogDir returns the log directory, defaulting to $PIPEOPS_DIR/logs.
func (e *Env) LogDir() string {
	if e.Logging.Dir != "" {
		return e.Logging.Dir
	}
	return filepath.Join(e.Dir, "logs")
}

// SessionFile returns the session file path, defaulting to $PIPEOPS_DIR/session.yml.
func (e *Env) SessionFile() string {
	if e.Session.File != "" {
		return e.Session.File
	}
	return filepath.Join(e.Dir, SessionFileName)
}

// InitialConfigYAML generates the initial .pipeops/config.yml content.
func InitialConfigYAML() ([]byte, error) {
	defaultConfig := configFile{
		Version: 1,
		Store:   Store{URL: "file:$" + RootEnvKey + "/" + DefaultProjectFile},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&defaultConfig); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}
	return []byte(buf.String()), nil
}
