package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Job is one localization run: an ordered list of source folders plus the
// two roots used to map source paths into the destination tree. Folders are
// processed in the order given; duplicates are kept as-is.
type Job struct {
	Folders         []string
	SourceRoot      string
	DestinationRoot string
}

// TargetFor maps a path under the source root to its mirrored location
// under the destination root.
func (j Job) TargetFor(sourcePath string) (string, error) {
	rel, err := j.RelativeTo(sourcePath)
	if err != nil {
		return "", err
	}
	return filepath.Join(j.DestinationRoot, rel), nil
}

// RelativeTo returns sourcePath relative to the source root. Paths outside
// the source root are rejected rather than mapped to a ".." target.
func (j Job) RelativeTo(sourcePath string) (string, error) {
	rel, err := filepath.Rel(j.SourceRoot, sourcePath)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside source root %s", sourcePath, j.SourceRoot)
	}
	return rel, nil
}

// MigratedName returns the path a source folder is renamed to after all of
// its files have been copied: the same parent, with the folder name prefixed
// by an underscore.
func MigratedName(folder string) string {
	return filepath.Join(filepath.Dir(folder), "_"+filepath.Base(folder))
}
