package storage

// Config holds configuration for the storage provider outputs are
// published to.
type Config struct {
	// Enabled turns publishing on.
	Enabled bool `mapstructure:"enabled" yaml:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" yaml:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" yaml:"-" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" yaml:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to publish into.
	Bucket string `mapstructure:"bucket" yaml:"bucket" default:"gamedata"`
	// Prefix is prepended to every object key.
	Prefix string `mapstructure:"prefix" yaml:"prefix" default:"extracts"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" yaml:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" default:"30"`
}
