package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"survivalist-gamedata/core/runner"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const batchSize = 200

// Service stores pipeline results in the snapshot database.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the snapshot table.
func (s *Service) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&GamedataRecord{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	return nil
}

// Save replaces the rows stored for the result's feature and version.
func (s *Service) Save(ctx context.Context, runID, version string, res *runner.Result) (int, error) {
	records := make([]GamedataRecord, 0, len(res.Rows))
	for _, row := range res.Rows {
		data, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("encode %s row: %w", res.Feature, err)
		}
		records = append(records, GamedataRecord{
			RunID:   runID,
			Version: version,
			Kind:    res.Feature,
			Name:    row[res.NameField],
			Group:   row[res.GroupField],
			Data:    string(data),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("version = ? AND kind = ?", version, res.Feature).Delete(&GamedataRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous snapshot: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(records, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Saved snapshot",
		zap.String("feature", res.Feature),
		zap.String("version", version),
		zap.Int("rows", len(records)),
	)
	return len(records), nil
}

// Count returns the number of rows stored for a feature and version.
func (s *Service) Count(ctx context.Context, version, kind string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&GamedataRecord{}).
		Where("version = ? AND kind = ?", version, kind).
		Count(&n).Error
	return n, err
}
