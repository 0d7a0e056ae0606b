package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" yaml:"level" default:"info"`
	// Format is the log encoding (json or console).
	Format string `mapstructure:"format" yaml:"format" default:"console"`
}
