package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"localize/internal/app"
	"localize/internal/domain"
	"localize/internal/settings"
)

type Config struct {
	SourceRoot      string
	DestinationRoot string
	Folders         []string
	Verbose         bool
	NoTUI           bool
	ExtensionOnly   bool
	SettingsFile    string
}

// ApplyFallbacks fills empty fields from environment variables, then from
// the persisted settings. Flag values set by the caller win.
func (c *Config) ApplyFallbacks(saved settings.Settings) {
	if c.SourceRoot == "" {
		c.SourceRoot = envOrEmpty("LOCALIZE_SOURCE_ROOT")
	}
	if c.DestinationRoot == "" {
		c.DestinationRoot = envOrEmpty("LOCALIZE_DESTINATION_ROOT")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("LOCALIZE_VERBOSE")
	}
	if c.SourceRoot == "" {
		c.SourceRoot = saved.SourceRoot
	}
	if c.DestinationRoot == "" {
		c.DestinationRoot = saved.DestinationRoot
	}
}

// Job builds the transfer job described by the configuration.
func (c Config) Job() domain.Job {
	return domain.Job{
		Folders:         c.Folders,
		SourceRoot:      c.SourceRoot,
		DestinationRoot: c.DestinationRoot,
	}
}

// Validate fails fast before any job starts: both roots must be set, the
// source root must be an existing directory, and every folder must be an
// existing directory under the source root.
func (c Config) Validate(fsys app.FileSystem) error {
	if c.SourceRoot == "" {
		return errors.New("source root is required")
	}
	if c.DestinationRoot == "" {
		return errors.New("destination root is required")
	}
	if err := requireDir(fsys, c.SourceRoot); err != nil {
		return fmt.Errorf("source root: %w", err)
	}

	job := c.Job()
	for _, folder := range c.Folders {
		if err := requireDir(fsys, folder); err != nil {
			return fmt.Errorf("folder %s: %w", folder, err)
		}
		if _, err := job.RelativeTo(folder); err != nil {
			return err
		}
	}
	return nil
}

func requireDir(fsys app.FileSystem, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
