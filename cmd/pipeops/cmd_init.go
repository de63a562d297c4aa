package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/config/pipeopsenv"
)

func newCmdInit() *cobra.Command {
	var force bool
	var dir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a .pipeops directory",
		Long: `Initialize a .pipeops directory with a default config.yml.

The directory given with -C is created when missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, dir, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing .pipeops/config.yml")
	cmd.Flags().StringVarP(&dir, "chdir", "C", "", "Directory to initialize (default: current directory)")
	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	cfgDir := filepath.Join(dir, pipeopsenv.DirName)
	configPath := filepath.Join(cfgDir, pipeopsenv.ConfigFileName)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists (use -f to overwrite)", configPath)
		}
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", cfgDir, err)
	}
	data, err := pipeopsenv.InitialConfigYAML()
	if err != nil {
		return fmt.Errorf("generating default config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized pipeops in %s\n", cfgDir)
	return nil
}
