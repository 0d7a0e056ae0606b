package database

// Config holds configuration for the snapshot database connection.
type Config struct {
	// Enabled turns the snapshot store on.
	Enabled bool `mapstructure:"enabled" yaml:"enabled" default:"false"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" yaml:"driver" default:"mysql"`
	// Host is the database host.
	Host string `mapstructure:"host" yaml:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" yaml:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" yaml:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" yaml:"-" default:""`
	// Name is the database name, or the database file for sqlite.
	Name string `mapstructure:"name" yaml:"name" default:"gamedata"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds" default:"30"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverMySQL, DriverSQLite:
		return true
	default:
		return false
	}
}
