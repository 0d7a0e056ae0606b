package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"survivalist-gamedata/core/config"
	"survivalist-gamedata/core/database"
	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/logger"
	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/runner"
	"survivalist-gamedata/core/storage"
	"survivalist-gamedata/feature/items"
	"survivalist-gamedata/feature/publish"
	"survivalist-gamedata/feature/recipes"
	"survivalist-gamedata/feature/snapshot"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Extract equipment and liquid items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipelines(cmd.Context(), items.FeatureName)
	},
}

// recipesCmd represents the recipes command
var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Extract crafting recipes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipelines(cmd.Context(), recipes.FeatureName)
	},
}

// session is everything one extraction run needs.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	runID   string
	version string
	mgr     *runner.Manager
}

// loadConfig makes sure a config file exists, then loads and validates it.
func loadConfig() (*config.Config, *zap.Logger, error) {
	created, err := config.EnsureFile(configDir)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if created {
		logg.Warn("Default config.yaml created", zap.String("dir", configDir))
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, logg, nil
}

func newSession() (*session, error) {
	cfg, logg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logg = logger.WithRunID(logg, runID)

	version, err := gamedata.ReadVersion(cfg.VersionPath())
	if err != nil {
		return nil, err
	}
	logg.Info("Extracting game data", zap.String("version", version), zap.Strings("dirs", cfg.Dirs))

	src := gamedata.NewSource(cfg.Config)
	expander := markup.NewExpander(cfg.Replacements)

	mgr := runner.NewManager(logg)
	mgr.Register(items.NewService(cfg.GameItems, src, expander, logg))
	mgr.Register(recipes.NewService(cfg.Recipes, src, expander, logg))

	return &session{cfg: cfg, logger: logg, runID: runID, version: version, mgr: mgr}, nil
}

// runPipelines runs the named features, or every enabled one when no
// name is given, then publishes and snapshots the results.
func runPipelines(parent context.Context, names ...string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	var results []*runner.Result
	if len(names) == 0 {
		results, err = s.mgr.RunAll(ctx, s.version)
		if err != nil {
			return err
		}
	} else {
		for _, name := range names {
			res, err := s.mgr.RunOne(ctx, name, s.version)
			if err != nil {
				return err
			}
			results = append(results, res)
		}
	}

	if err := s.publish(ctx, results); err != nil {
		return err
	}
	if err := s.snapshot(ctx, results); err != nil {
		return err
	}

	s.logger.Info("Extraction finished", zap.Int("features", len(results)))
	return nil
}

func (s *session) publish(ctx context.Context, results []*runner.Result) error {
	if !s.cfg.Storage.Enabled {
		return nil
	}

	store, err := storage.NewClient(s.cfg.Storage)
	if err != nil {
		return err
	}
	svc := publish.NewService(store, s.cfg.Storage.Bucket, s.cfg.Storage.Prefix, s.logger)

	var files []string
	for _, res := range results {
		files = append(files, res.Files...)
	}
	if _, err := svc.Publish(ctx, s.version, files); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (s *session) snapshot(ctx context.Context, results []*runner.Result) error {
	if !s.cfg.Database.Enabled {
		return nil
	}

	db, err := database.Connect(s.cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	svc := snapshot.NewService(db, s.logger)
	if err := svc.Migrate(ctx); err != nil {
		return err
	}
	for _, res := range results {
		if _, err := svc.Save(ctx, s.runID, s.version, res); err != nil {
			return fmt.Errorf("snapshot %s: %w", res.Feature, err)
		}
	}
	return nil
}

func init() {
	RootCmd.AddCommand(itemsCmd)
	RootCmd.AddCommand(recipesCmd)
}
