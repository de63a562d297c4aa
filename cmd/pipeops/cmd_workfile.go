package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/internal/logging"
	"github.com/kompox/pipeops/usecase/workfile"
)

func newCmdWorkfile() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workfile",
		Short: "Keep the work context in sync with saved scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("session-file", "", "Session file (default $PIPEOPS_DIR/session.yml)")
	cmd.AddCommand(newCmdWorkfileUpdateTask(), newCmdWorkfileWatch(), newCmdWorkfileSession())
	return cmd
}

func newCmdWorkfileUpdateTask() *cobra.Command {
	return &cobra.Command{
		Use:   "update-task [scene-path]",
		Short: "Update the session asset/task/app from a scene path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			u, err := buildWorkfileUseCase(cmd)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			ctx, cleanup := withCmdRunLogger(cmd.Context(), "workfile.update-task", path)
			defer func() { cleanup(err) }()
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			out, err := u.UpdateTaskFromPath(ctx, &workfile.UpdateTaskInput{Path: path})
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

func newCmdWorkfileWatch() *cobra.Command {
	var exts []string
	var debounce time.Duration
	c := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a work directory and update the session on every scene save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			u, err := buildWorkfileUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cleanup := withCmdRunLogger(ctx, "workfile.watch", args[0])
			defer func() { cleanup(err) }()
			logger := logging.FromContext(ctx)
			return u.Watch(ctx, &workfile.WatchInput{
				Dir:        args[0],
				Extensions: exts,
				Debounce:   debounce,
				OnUpdate: func(path string, out *workfile.UpdateTaskOutput, err error) {
					if err != nil {
						logger.Warn(ctx, "update failed", "path", path, "error", err)
						return
					}
					if out != nil && out.Updated {
						logger.Info(ctx, "session updated", "path", path, "changes", out.Changes)
					}
				},
			})
		},
	}
	c.Flags().StringSliceVar(&exts, "ext", nil, "Scene file extensions to watch (default: common DCC scene formats)")
	c.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Quiet period before a save is processed")
	return c
}

func newCmdWorkfileSession() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the current work context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildSessionStore(cmd)
			if err != nil {
				return err
			}
			s, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	}
}
