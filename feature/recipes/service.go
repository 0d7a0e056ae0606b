package recipes

import (
	"context"
	"fmt"

	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/runner"
	"survivalist-gamedata/core/tabular"

	"go.uber.org/zap"
)

// FeatureName is the name the recipes pipeline registers under.
const FeatureName = "recipes"

// Service runs the recipes pipeline.
type Service struct {
	cfg      Config
	source   *gamedata.Source
	expander *markup.Expander
	logger   *zap.Logger
}

// NewService creates a new recipes service.
func NewService(cfg Config, source *gamedata.Source, expander *markup.Expander, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		source:   source,
		expander: expander,
		logger:   logger.With(zap.String("feature", FeatureName)),
	}
}

// Name implements runner.Feature.
func (s *Service) Name() string { return FeatureName }

// IsEnabled implements runner.Feature.
func (s *Service) IsEnabled() bool { return !s.cfg.Disabled }

// Run loads, normalizes and sorts every recipe, then writes the CSV and
// the markup file for the given version.
func (s *Service) Run(ctx context.Context, version string) (*runner.Result, error) {
	records, err := Load(s.source, s.logger)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	rows, err := Process(records, s.logger)
	if err != nil {
		return nil, fmt.Errorf("normalize recipes: %w", err)
	}
	Sort(rows, s.cfg.OrderBy)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	header := s.cfg.CSVFields
	if len(header) == 0 {
		header = tabular.Header(rows, nil)
	}
	csvPath := gamedata.OutputPath(s.cfg.CSVFile, version)
	s.logger.Info("Writing CSV", zap.String("file", csvPath))
	if err := tabular.WriteCSVFile(csvPath, header, rows); err != nil {
		return nil, err
	}

	steamPath := gamedata.OutputPath(s.cfg.SteamFile, version)
	s.logger.Info("Writing SteamML", zap.String("file", steamPath))
	writer := markup.NewWriter(s.expander, s.logger)
	writer.IDField = "UniqueID"
	if s.cfg.SkipDeprecated {
		writer.Skip = isDeprecated
	}
	counts, err := writer.WriteFile(steamPath, s.cfg.SteamTables.Build(), rows)
	if err != nil {
		return nil, err
	}

	res := &runner.Result{
		Feature:    FeatureName,
		Loaded:     len(records),
		Matched:    counts.Matched,
		Skipped:    counts.Skipped,
		Files:      []string{csvPath, steamPath},
		Rows:       rows,
		NameField:  "UniqueID",
		GroupField: "SkillType",
	}

	s.logger.Info("Matched recipes with a table",
		zap.Int("matched", counts.Matched),
		zap.Int("deprecated_skipped", counts.Skipped),
	)
	if !res.Reconciled() {
		s.logger.Warn("Only some recipes have been saved/skipped. Are there new SkillTypes or RecipeTypes?",
			zap.Int("saved", counts.Total()),
			zap.Int("loaded", res.Loaded),
		)
	}

	return res, nil
}
