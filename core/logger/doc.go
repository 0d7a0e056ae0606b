// Package logger provides a structured logging facility based on Zap.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console (default, colored levels)
//
// # Run correlation
//
// Every extraction run gets an ID. WithRunID attaches it to the logger so the
// lines of one run (including its snapshot rows in the database) can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Found items", zap.Int("count", n))
package logger
