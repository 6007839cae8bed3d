package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the single source of truth for the directories the pipeline
// touches. All relative config entries resolve against the working
// directory.
type Paths struct {
	DataDir   string
	OutputDir string
	CacheDir  string
	LogsDir   string
}

// NewPaths resolves the configured directories to absolute paths.
func NewPaths(cfg *Config) (*Paths, error) {
	resolve := func(dir string) (string, error) {
		if filepath.IsAbs(dir) {
			return dir, nil
		}
		return filepath.Abs(dir)
	}

	var p Paths
	var err error
	if p.DataDir, err = resolve(cfg.Paths.DataDir); err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	if p.OutputDir, err = resolve(cfg.Paths.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to resolve output dir: %w", err)
	}
	if p.CacheDir, err = resolve(cfg.Paths.CacheDir); err != nil {
		return nil, fmt.Errorf("failed to resolve cache dir: %w", err)
	}
	if p.LogsDir, err = resolve(cfg.Paths.LogsDir); err != nil {
		return nil, fmt.Errorf("failed to resolve logs dir: %w", err)
	}
	return &p, nil
}

// EnsureDirectories creates every required directory.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.OutputDir, p.CacheDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// OutputPath returns the full path of a named file in the output directory.
func (p *Paths) OutputPath(name string) string {
	return filepath.Join(p.OutputDir, name)
}

// CachePath returns the full path of a named file in the cache directory.
func (p *Paths) CachePath(name string) string {
	return filepath.Join(p.CacheDir, name)
}

// LogPath returns the full path of a named file in the logs directory.
func (p *Paths) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
