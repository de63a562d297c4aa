package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kompox/pipeops/config/pipeopsenv"
	"github.com/kompox/pipeops/internal/logging"
	"github.com/kompox/pipeops/internal/naming"
)

// cliEnv is the resolved .pipeops environment; nil when none was found.
var cliEnv *pipeopsenv.Env

// logFile is the log file opened by setupLogger, if any.
var logFile *logging.LogFile

// findFlag looks a flag up on cmd and its parents.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	if f := findFlag(cmd, name); f != nil {
		return f.Value.String()
	}
	return ""
}

// setupEnv resolves PIPEOPS_ROOT/PIPEOPS_DIR. A missing .pipeops directory
// is not an error unless a root was given explicitly.
func setupEnv(cmd *cobra.Command) error {
	root := flagString(cmd, "pipeops-root")
	dir := flagString(cmd, "pipeops-dir")
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	env, err := pipeopsenv.Resolve(root, dir, wd)
	if err != nil {
		if root == "" && errors.Is(err, pipeopsenv.ErrNotFound) {
			cliEnv = nil
			return nil
		}
		return err
	}
	cliEnv = env
	return nil
}

// setupLogger builds the context logger. Flags win over environment
// variables, which win over .pipeops/config.yml.
func setupLogger(cmd *cobra.Command) error {
	var cfg pipeopsenv.Logging
	if cliEnv != nil {
		cfg = cliEnv.Logging
	}
	format := firstNonEmpty(flagString(cmd, "log-format"), os.Getenv("PIPEOPS_LOG_FORMAT"), cfg.Format, "human")
	levelStr := firstNonEmpty(flagString(cmd, "log-level"), os.Getenv("PIPEOPS_LOG_LEVEL"), cfg.Level)
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if cliEnv != nil && cfg.Output != "" && cfg.Output != "-" {
		out := cfg.Output
		if out == logOutputContext {
			out = ""
		}
		now := time.Now()
		lf, err := logging.OpenLogFile(logging.LogFileConfig{
			Output:  out,
			Dir:     cliEnv.LogDir(),
			Context: logContext(cmd),
		}, now)
		if err != nil {
			return err
		}
		logFile = lf
		w = lf.Writer()
		if lf.Path != "" {
			days := cfg.RetentionDays
			if days == 0 {
				days = 7
			}
			_, _ = logging.PruneLogFiles(cliEnv.LogDir(), time.Duration(days)*24*time.Hour, now)
		}
	}

	l, err := logging.NewWithWriter(format, level, w)
	if err != nil {
		return err
	}
	if runID, err := naming.NewRunID(); err == nil {
		l = l.With("runId", runID)
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), l))
	return nil
}

// logOutputContext in logging.output selects one log file per day and
// work context.
const logOutputContext = "context"

// logContext is "<project>/<asset>/<task>" of the current session, with
// empty parts left out.
func logContext(cmd *cobra.Command) string {
	store, err := buildSessionStore(cmd)
	if err != nil {
		return ""
	}
	s, err := store.Load(cmd.Context())
	if err != nil {
		return ""
	}
	var parts []string
	for _, p := range []string{s.Project, s.Asset, s.Task} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
