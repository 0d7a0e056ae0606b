package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"survivalist-gamedata/core/database"
	"survivalist-gamedata/core/gamedata"
	"survivalist-gamedata/core/logger"
	"survivalist-gamedata/core/markup"
	"survivalist-gamedata/core/storage"
	"survivalist-gamedata/feature/items"
	"survivalist-gamedata/feature/recipes"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "config.yaml"

//go:embed default.yaml
var defaultConfig []byte

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Gamedata locates the game files and the version file.
	gamedata.Config `mapstructure:",squash" yaml:",inline"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log" yaml:"log"`
	// Storage holds configuration for publishing to object storage.
	Storage storage.Config `mapstructure:"storage" yaml:"storage"`
	// Database holds configuration for the snapshot database.
	Database database.Config `mapstructure:"database" yaml:"database"`

	// The sections below are case-sensitive and ordered, so they are
	// decoded with yaml.v3 instead of viper.

	// Replacements are applied in order after name expansion.
	Replacements markup.Replacements `mapstructure:"-" yaml:"replacements"`
	// Recipes configures the recipes pipeline.
	Recipes recipes.Config `mapstructure:"-" yaml:"recipes"`
	// GameItems configures the items pipeline.
	GameItems items.Config `mapstructure:"-" yaml:"game_items"`
}

// sections mirrors the yaml-decoded part of Config.
type sections struct {
	Replacements markup.Replacements `yaml:"replacements"`
	Recipes      recipes.Config      `yaml:"recipes"`
	GameItems    items.Config        `yaml:"game_items"`
}

// LoadConfig loads configuration from dir/config.yaml, the .env file and
// environment variables.
func LoadConfig(dir string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	var s sections
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	config.Replacements = s.Replacements
	config.Recipes = s.Recipes
	config.GameItems = s.GameItems
	config.Recipes.SetDefaults()

	return &config, nil
}

// EnsureFile writes the default configuration to dir when no config file
// exists there yet. It reports whether a file was created.
func EnsureFile(dir string) (bool, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}

// Validate fails on the first missing or inconsistent setting.
func (c *Config) Validate() error {
	if len(c.Dirs) == 0 {
		return errors.New("gamedata_dirs must list at least one directory")
	}
	if c.VersionFile == "" {
		return errors.New("version_file is required")
	}
	if c.Database.Enabled && !c.Database.IsValidDriver() {
		return fmt.Errorf("database.driver %q is not supported", c.Database.Driver)
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return errors.New("storage.bucket is required when storage is enabled")
	}
	if !c.GameItems.Disabled {
		if err := c.GameItems.Validate(); err != nil {
			return err
		}
	}
	if !c.Recipes.Disabled {
		if err := c.Recipes.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes the effective configuration as YAML. Secrets are omitted.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag or explicitly ignored
		if tag == "" || tag == "-" {
			continue
		}

		// Squashed structs share the parent's prefix
		if strings.HasSuffix(tag, ",squash") {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), prefix)
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
