package snapshot

import "time"

// GamedataRecord is one canonical row stored for a game version.
type GamedataRecord struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	RunID     string    `gorm:"column:run_id;size:36;index"`
	Version   string    `gorm:"column:version;size:64;index:idx_version_kind"`
	Kind      string    `gorm:"column:kind;size:32;index:idx_version_kind"`
	Name      string    `gorm:"column:name;size:255"`
	Group     string    `gorm:"column:group_name;size:255"` // Category or SkillType
	Data      string    `gorm:"column:data;type:text"`      // row as JSON
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName implements gorm's tabler.
func (GamedataRecord) TableName() string {
	return "gamedata_records"
}
