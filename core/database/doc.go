// Package database manages the optional connection to the snapshot store.
//
// It uses GORM with either the MySQL driver (shared wiki/tooling databases)
// or SQLite (a local file next to the extracts). The connection is only
// opened when database.enabled is set.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
