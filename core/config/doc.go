// Package config provides configuration management for survivalist-gamedata.
//
// Settings come from config.yaml in the config directory, an optional .env
// file next to it and environment variables. Viper handles the flat,
// case-insensitive settings (log, storage, database, base_dir,
// version_file, gamedata_dirs) with defaults taken from `default` struct
// tags and environment overrides such as LOG_LEVEL or STORAGE_ENABLED.
//
// The pipeline sections (replacements, recipes, game_items) hold
// case-sensitive field names and ordered column mappings, which viper
// would lowercase and reorder, so they are decoded from the same file
// with yaml.v3.
//
// # Usage
//
//	if created, err := config.EnsureFile("."); err == nil && created {
//	    log.Println("default config.yaml written")
//	}
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
