package runner

import (
	"context"
	"fmt"

	"survivalist-gamedata/core/tabular"

	"go.uber.org/zap"
)

// Feature is one extraction pipeline.
type Feature interface {
	// Name returns the unique feature name (e.g. "items").
	Name() string
	// IsEnabled reports whether the feature should run.
	IsEnabled() bool
	// Run executes the pipeline for the given game version.
	Run(ctx context.Context, version string) (*Result, error)
}

// Result summarizes one pipeline run.
type Result struct {
	// Feature is the name of the feature that produced the result.
	Feature string
	// Loaded is the number of raw records read.
	Loaded int
	// Matched is the number of table placements written.
	Matched int
	// Skipped is the number of placements deliberately left out.
	Skipped int
	// Files lists the written output files.
	Files []string
	// Rows are the canonical rows in output order.
	Rows []tabular.Row
	// NameField and GroupField identify a row for snapshots.
	NameField  string
	GroupField string
}

// Reconciled reports whether every loaded record was placed or skipped.
func (r *Result) Reconciled() bool {
	return r.Matched+r.Skipped == r.Loaded
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register adds a feature. Features run in registration order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Get returns the feature with the given name.
func (m *Manager) Get(name string) (Feature, bool) {
	for _, f := range m.features {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// RunAll runs every enabled feature and stops at the first failure.
func (m *Manager) RunAll(ctx context.Context, version string) ([]*Result, error) {
	var results []*Result
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}
		res, err := m.run(ctx, f, version)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunOne runs a single feature by name, regardless of its enabled flag.
func (m *Manager) RunOne(ctx context.Context, name, version string) (*Result, error) {
	f, ok := m.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown feature %q", name)
	}
	return m.run(ctx, f, version)
}

func (m *Manager) run(ctx context.Context, f Feature, version string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("operation cancelled: %w", err)
	}
	m.logger.Info("Running feature", zap.String("feature", f.Name()), zap.String("version", version))
	res, err := f.Run(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	return res, nil
}
