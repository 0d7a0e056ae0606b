package gamedata

// Config locates the game's install data.
type Config struct {
	// BaseDir is the game install (or snapshot) root.
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir" default:"."`
	// VersionFile is read relative to BaseDir unless absolute.
	VersionFile string `mapstructure:"version_file" yaml:"version_file" default:"version.txt"`
	// Dirs are the gamedata directories below BaseDir, scanned in order.
	Dirs []string `mapstructure:"gamedata_dirs" yaml:"gamedata_dirs"`
}
