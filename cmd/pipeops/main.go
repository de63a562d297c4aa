package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/kompox/pipeops/adapters/drivers/host/aftereffects"
	_ "github.com/kompox/pipeops/adapters/drivers/host/standalone"
	"github.com/kompox/pipeops/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pipeops",
		Short:   "Pipeline integration CLI",
		Long:    "Pipeline integration CLI: project database, work files, publishing and platform actions",
		Version: currentBuild().String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("db-url", os.Getenv("PIPEOPS_DB_URL"), "Database URL (env PIPEOPS_DB_URL) (file:/path/to/project.yml | sqlite:/path/to.db); defaults to store.url of .pipeops/config.yml, then file:project.yml")
	pf.String("log-format", "", "Log format (human|text|json) (env PIPEOPS_LOG_FORMAT)")
	pf.String("log-level", "", "Log level (DEBUG|INFO|WARN|ERROR) (env PIPEOPS_LOG_LEVEL)")
	pf.String("pipeops-root", os.Getenv("PIPEOPS_ROOT"), "Studio or project root containing .pipeops/ (env PIPEOPS_ROOT)")
	pf.String("pipeops-dir", os.Getenv("PIPEOPS_DIR"), "Configuration directory (env PIPEOPS_DIR, default $PIPEOPS_ROOT/.pipeops)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		if c.Name() == "init" {
			return nil
		}
		if err := setupEnv(c); err != nil {
			return err
		}
		return setupLogger(c)
	}
	cmd.PersistentPostRunE = func(c *cobra.Command, _ []string) error {
		return closeLogFile()
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdAdmin())
	cmd.AddCommand(newCmdContainer())
	cmd.AddCommand(newCmdWorkfile())
	cmd.AddCommand(newCmdPublish())
	cmd.AddCommand(newCmdAction())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		_ = closeLogFile()
		os.Exit(1)
	}
}
