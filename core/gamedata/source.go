package gamedata

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// VersionPlaceholder is replaced by the game version in output paths.
const VersionPlaceholder = "{version}"

// Source resolves files inside the configured gamedata directories.
type Source struct {
	baseDir string
	dirs    []string
}

// NewSource creates a source from the configuration.
func NewSource(cfg Config) *Source {
	return &Source{baseDir: cfg.BaseDir, dirs: cfg.Dirs}
}

// Glob returns the files matching pattern inside sub of every gamedata
// directory, directory by directory, each directory's matches sorted.
func (s *Source) Glob(sub, pattern string) ([]string, error) {
	var out []string
	for _, dir := range s.dirs {
		matches, err := filepath.Glob(filepath.Join(s.baseDir, dir, sub, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s/%s: %w", sub, pattern, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// Existing returns name inside every gamedata directory where it exists.
func (s *Source) Existing(name string) ([]string, error) {
	var out []string
	for _, dir := range s.dirs {
		path := filepath.Join(s.baseDir, dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		out = append(out, path)
	}
	return out, nil
}

// VersionPath returns the resolved version file path.
func (c Config) VersionPath() string {
	if filepath.IsAbs(c.VersionFile) {
		return c.VersionFile
	}
	return filepath.Join(c.BaseDir, c.VersionFile)
}

// ReadVersion returns the first line of the version file, trimmed.
func ReadVersion(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open version file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read version file: %w", err)
		}
		return "", fmt.Errorf("version file %s is empty", path)
	}
	version := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
	if version == "" {
		return "", fmt.Errorf("version file %s is empty", path)
	}
	return version, nil
}

// OutputPath fills the version placeholder of an output file template.
func OutputPath(template, version string) string {
	return strings.ReplaceAll(template, VersionPlaceholder, version)
}
