package items

import (
	"context"
	"fmt"

	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/runner"
	"survivalist-gamedata/core/tabular"

	"go.uber.org/zap"
)

// FeatureName is the name the items pipeline registers under.
const FeatureName = "items"

// Service runs the items pipeline.
type Service struct {
	cfg      Config
	source   *gamedata.Source
	expander *markup.Expander
	logger   *zap.Logger
}

// NewService creates a new items service.
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

// Run loads, normalizes and sorts every item, then writes the CSV and the
// markup file for the given version.
func (s *Service) Run(ctx context.Context, version string) (*runner.Result, error) {
	records, err := Load(s.source, s.cfg.SkipFiles, s.logger)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	rows, err := Process(records, s.logger)
	if err != nil {
		return nil, fmt.Errorf("normalize items: %w", err)
	}
	Sort(rows)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	csvPath := gamedata.OutputPath(s.cfg.CSVFile, version)
	s.logger.Info("Writing CSV", zap.String("file", csvPath))
	if err := tabular.WriteCSVFile(csvPath, tabular.Header(rows, s.cfg.RemoveKeys), rows); err != nil {
		return nil, err
	}

	steamPath := gamedata.OutputPath(s.cfg.SteamFile, version)
	s.logger.Info("Writing SteamML", zap.String("file", steamPath))
	writer := markup.NewWriter(s.expander, s.logger)
	writer.IDField = "NativeName"
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
		NameField:  "NativeName",
		GroupField: "Category",
	}

	s.logger.Info("Matched items with a table", zap.Int("matched", counts.Matched), zap.Int("loaded", res.Loaded))
	if !res.Reconciled() {
		s.logger.Warn("Only some items have been saved. Are there new categories?",
			zap.Int("saved", counts.Total()),
			zap.Int("loaded", res.Loaded),
		)
	}

	return res, nil
}
