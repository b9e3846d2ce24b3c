package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"localize/internal/logging"
)

// Scanner enumerates the files the worker will copy.
type Scanner struct {
	FS FileSystem
	// ExtensionOnly restores the legacy matching rule: only names carrying
	// an extension are counted and copied, so dotfiles and extension-less
	// files are silently excluded. Off by default; every regular file counts.
	ExtensionOnly bool
	Logger        logging.Logger
}

// Files returns every matching file under folder, recursively, in
// lexicographic path order.
func (s Scanner) Files(folder string) ([]string, error) {
	if s.FS == nil {
		return nil, errors.New("scanner requires FS")
	}

	var files []string
	err := s.FS.WalkDir(folder, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if s.ExtensionOnly && !hasExtension(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	s.Logger.Verbosef("%d files found in %s", len(files), folder)
	return files, nil
}

// Total counts the matching files across all folders up front, so progress
// can be reported against a fixed denominator.
func (s Scanner) Total(folders []string) (int, error) {
	total := 0
	for _, folder := range folders {
		files, err := s.Files(folder)
		if err != nil {
			return 0, err
		}
		total += len(files)
	}
	return total, nil
}

// TotalSize sums the sizes of all regular files under folder. The size
// preview ignores the extension filter; it reports what is on disk.
func (s Scanner) TotalSize(folder string) (int64, error) {
	var size int64
	err := s.FS.WalkDir(folder, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	return size, err
}

// hasExtension reports whether name has a non-empty extension with at least
// one character before the dot, matching the old *.* glob: "render.exr" yes,
// "Makefile" and ".cache" no.
func hasExtension(name string) bool {
	ext := filepath.Ext(name)
	return ext != "" && ext != name
}
