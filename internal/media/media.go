// Package media runs external media tools such as ffmpeg.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kompox/pipeops/internal/logging"
)

// ToolPathEnvPrefix prefixes the environment variables overriding tool
// locations, e.g. PIPEOPS_FFMPEG_PATH.
const ToolPathEnvPrefix = "PIPEOPS_"

// ExitError reports a tool that ran and exited unsuccessfully.
type ExitError struct {
	Args   []string
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	out := strings.TrimSpace(e.Output)
	if len(out) > 512 {
		out = "..." + out[len(out)-512:]
	}
	return fmt.Sprintf("%s exited with code %d: %s", filepath.Base(e.Args[0]), e.Code, out)
}

// ToolPath resolves the executable of a media tool. The environment variable
// PIPEOPS_<NAME>_PATH wins; it may point at the executable or at a directory
// containing it. Otherwise the tool is looked up in PATH.
func ToolPath(name string) (string, error) {
	key := ToolPathEnvPrefix + strings.ToUpper(name) + "_PATH"
	if v := os.Getenv(key); v != "" {
		info, err := os.Stat(v)
		if err != nil {
			return "", fmt.Errorf("%s=%q: %w", key, v, err)
		}
		if info.IsDir() {
			return exec.LookPath(filepath.Join(v, name))
		}
		return v, nil
	}
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH (set %s): %w", name, key, err)
	}
	return p, nil
}

// Runner executes a command line. args[0] is the executable.
type Runner interface {
	Run(ctx context.Context, args []string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Env []string // extra KEY=VALUE entries appended to the process environment
	Dir string
}

// Run starts args and waits for it, returning the combined output.
// A non-zero exit is reported as *ExitError.
func (r ExecRunner) Run(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("empty command line")
	}
	logger := logging.FromContext(ctx)
	logger.Debug(ctx, "running subprocess", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	out := buf.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &ExitError{Args: args, Code: exitErr.ExitCode(), Output: out}
		}
		return out, fmt.Errorf("failed to run %s: %w", args[0], err)
	}
	logger.Debug(ctx, "subprocess completed", "output", strings.TrimSpace(out))
	return out, nil
}

// ThumbnailArgs returns the ffmpeg arguments that scale the first frame of
// input to a 300 pixel wide JPEG at output.
func ThumbnailArgs(ffmpeg, input, output string) []string {
	return []string{
		ffmpeg, "-y",
		"-i", input,
		"-vf", "scale=300:-1",
		"-vframes", "1",
		output,
	}
}
