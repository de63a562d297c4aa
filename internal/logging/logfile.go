package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logFilePrefix = "pipeops-"
	logFileSuffix = ".log"
)

// LogFileConfig selects where CLI logs go.
type LogFileConfig struct {
	// Output is "-" for stderr, "none" to discard, "" for a file named by
	// LogFileName under Dir, or a path (relative paths are under Dir).
	Output string
	Dir    string
	// Context is the artist's work context, e.g. "demo/sh010/comp".
	Context string
}

// LogFile is the destination of CLI log output. Files are opened in
// append mode so every command run in one work context on one day lands
// in the same file.
type LogFile struct {
	Path string // empty for stderr or discarded output
	w    io.Writer
	f    *os.File
}

// OpenLogFile opens the destination described by cfg.
func OpenLogFile(cfg LogFileConfig, now time.Time) (*LogFile, error) {
	var path string
	switch out := strings.ToLower(cfg.Output); {
	case out == "none":
		return &LogFile{w: io.Discard}, nil
	case out == "-":
		return &LogFile{w: os.Stderr}, nil
	case out == "":
		path = filepath.Join(cfg.Dir, LogFileName(now, cfg.Context))
	case filepath.IsAbs(cfg.Output):
		path = cfg.Output
	default:
		path = filepath.Join(cfg.Dir, cfg.Output)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", path, err)
	}
	return &LogFile{Path: path, w: f, f: f}, nil
}

func (lf *LogFile) Writer() io.Writer { return lf.w }

func (lf *LogFile) Close() error {
	if lf.f == nil {
		return nil
	}
	return lf.f.Close()
}

// LogFileName returns "pipeops-<YYYYMMDD>-<context>.log" for the UTC day of
// t. Context path separators become dots and other characters outside
// [A-Za-z0-9_-] become dashes; an empty context is "cli".
func LogFileName(t time.Time, context string) string {
	return logFilePrefix + t.UTC().Format("20060102") + "-" + fileContext(context) + logFileSuffix
}

func fileContext(s string) string {
	var b strings.Builder
	for _, r := range strings.Trim(s, "/\\") {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == '/' || r == '\\':
			b.WriteByte('.')
		default:
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "cli"
	}
	return b.String()
}

// PruneLogFiles removes pipeops log files in dir not modified within
// retention of now and returns the names removed. Other files are left
// alone. A missing dir is not an error.
func PruneLogFiles(dir string, retention time.Duration, now time.Time) ([]string, error) {
	if retention <= 0 {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading log directory %q: %w", dir, err)
	}
	cutoff := now.Add(-retention)
	var removed []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, logFileSuffix) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err == nil {
			removed = append(removed, name)
		}
	}
	return removed, nil
}
