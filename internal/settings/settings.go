// Package settings persists the two root paths between runs.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const fileName = "localize.json"

// Settings is the flat record written to disk.
type Settings struct {
	SourceRoot      string `json:"source_root"`
	DestinationRoot string `json:"destination_root"`
}

// Store reads and writes Settings at a single file path, fixed at
// construction.
type Store struct {
	path string
}

func NewStore(path string) Store {
	return Store{path: path}
}

// DefaultPath is the well-known settings location in the platform temp
// directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), fileName)
}

// Load returns the persisted settings. A missing, unreadable, or corrupt
// file yields the zero value; the settings are never worth failing a run
// over.
func (s Store) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Settings{}
	}
	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Settings{}
	}
	return loaded
}

// Save overwrites the settings file wholesale.
func (s Store) Save(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
