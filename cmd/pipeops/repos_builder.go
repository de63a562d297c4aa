package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/kompox/pipeops/adapters/store/inmem"
	"github.com/kompox/pipeops/adapters/store/rdb"
	"github.com/kompox/pipeops/config/pipeopscfg"
	"github.com/kompox/pipeops/config/pipeopsenv"
	"github.com/kompox/pipeops/domain"
)

// reposCache caches repositories per db-url so every use case built in one
// process sees the same in-memory records for file: databases.
var (
	reposCache   = map[string]*domain.Repositories{}
	reposCacheMu sync.Mutex
)

// getDBURL returns the db-url flag, then store.url of .pipeops/config.yml,
// then file:project.yml.
func getDBURL(cmd *cobra.Command) string {
	if v := flagString(cmd, "db-url"); v != "" {
		return v
	}
	if cliEnv != nil && cliEnv.Store.URL != "" {
		return cliEnv.ExpandVars(cliEnv.Store.URL)
	}
	return "file:" + pipeopsenv.DefaultProjectFile
}

// buildRepos creates repositories from db-url.
// file: URLs load a project.yml into the memory store; sqlite: URLs open GORM.
func buildRepos(cmd *cobra.Command) (*domain.Repositories, error) {
	dbURL := getDBURL(cmd)

	switch {
	case strings.HasPrefix(dbURL, "file:"):
		reposCacheMu.Lock()
		defer reposCacheMu.Unlock()
		if cached, ok := reposCache[dbURL]; ok {
			return cached, nil
		}
		filePath := strings.TrimPrefix(dbURL, "file:")
		if filePath == "" {
			return nil, fmt.Errorf("file path is required for file: URL")
		}
		cfg, err := pipeopscfg.Load(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load project database from %s: %w", filePath, err)
		}
		store := inmem.NewStore()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		if err := store.LoadFromConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("failed to load project database into store: %w", err)
		}
		repos := store.Repositories()
		reposCache[dbURL] = repos
		return repos, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &domain.Repositories{
			Project:        rdb.NewProjectRepository(db),
			Asset:          rdb.NewAssetRepository(db),
			Version:        rdb.NewVersionRepository(db),
			Representation: rdb.NewRepresentationRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}
