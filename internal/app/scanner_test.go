package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type mockFS struct {
	entries  []mockEntry
	walkErrs map[string]error
	copyErrs map[string]error
	removed  map[string]bool

	copies  [][2]string
	mkdirs  []string
	renames [][2]string
}

type mockEntry struct {
	path    string
	isDir   bool
	size    int64
	modTime time.Time
}

func (m *mockFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	if err := m.walkErrs[root]; err != nil {
		return err
	}
	if m.removed[root] {
		return fs.ErrNotExist
	}
	for _, entry := range m.entries {
		if entry.path != root && !strings.HasPrefix(entry.path, root+string(filepath.Separator)) {
			continue
		}
		dirEntry := mockDirEntry{name: filepath.Base(entry.path), isDir: entry.isDir, size: entry.size}
		if err := fn(entry.path, dirEntry, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	for _, entry := range m.entries {
		if entry.path == path {
			return mockFileInfo{name: filepath.Base(path), isDir: entry.isDir, size: entry.size, modTime: entry.modTime}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) Exists(path string) (bool, error) {
	_, err := m.Stat(path)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if err := m.copyErrs[src]; err != nil {
		return err
	}
	m.copies = append(m.copies, [2]string{src, dst})
	return nil
}

func (m *mockFS) Rename(oldPath, newPath string) error {
	if m.removed == nil {
		m.removed = map[string]bool{}
	}
	m.removed[oldPath] = true
	m.renames = append(m.renames, [2]string{oldPath, newPath})
	return nil
}

type mockDirEntry struct {
	name  string
	isDir bool
	size  int64
}

func (m mockDirEntry) Name() string      { return m.name }
func (m mockDirEntry) IsDir() bool       { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: m.name, size: m.size}, nil
}

type mockFileInfo struct {
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return m.size }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return m.modTime }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }

func TestScannerSortsLexicographically(t *testing.T) {
	folder := filepath.Join("/src", "shot01")
	mock := &mockFS{
		entries: []mockEntry{
			{path: folder, isDir: true},
			{path: filepath.Join(folder, "b.exr")},
			{path: filepath.Join(folder, "sub"), isDir: true},
			{path: filepath.Join(folder, "sub", "c.exr")},
			{path: filepath.Join(folder, "a.exr")},
		},
	}

	scanner := Scanner{FS: mock}
	files, err := scanner.Files(folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(folder, "a.exr"),
		filepath.Join(folder, "b.exr"),
		filepath.Join(folder, "sub", "c.exr"),
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i, f := range files {
		if f != want[i] {
			t.Fatalf("file %d: expected %s, got %s", i, want[i], f)
		}
	}
}

func TestScannerExtensionOnlyExcludesBareNames(t *testing.T) {
	folder := filepath.Join("/src", "shot01")
	mock := &mockFS{
		entries: []mockEntry{
			{path: folder, isDir: true},
			{path: filepath.Join(folder, "frame.0001.exr")},
			{path: filepath.Join(folder, "Makefile")},
			{path: filepath.Join(folder, ".cache")},
		},
	}

	scanner := Scanner{FS: mock, ExtensionOnly: true}
	files, err := scanner.Files(folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "frame.0001.exr" {
		t.Fatalf("expected only frame.0001.exr, got %v", files)
	}

	scanner.ExtensionOnly = false
	files, err = scanner.Files(folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected all 3 files without the filter, got %v", files)
	}
}

func TestScannerTotalSpansFolders(t *testing.T) {
	a := filepath.Join("/src", "a")
	b := filepath.Join("/src", "b")
	mock := &mockFS{
		entries: []mockEntry{
			{path: a, isDir: true},
			{path: filepath.Join(a, "one.exr")},
			{path: b, isDir: true},
			{path: filepath.Join(b, "two.exr")},
			{path: filepath.Join(b, "three.exr")},
		},
	}

	scanner := Scanner{FS: mock}
	total, err := scanner.Total([]string{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3, got %d", total)
	}
}

func TestScannerTotalPropagatesWalkFailure(t *testing.T) {
	broken := filepath.Join("/src", "broken")
	walkErr := errors.New("permission denied")
	mock := &mockFS{walkErrs: map[string]error{broken: walkErr}}

	scanner := Scanner{FS: mock}
	if _, err := scanner.Total([]string{broken}); !errors.Is(err, walkErr) {
		t.Fatalf("expected walk error, got %v", err)
	}
}

func TestScannerTotalSize(t *testing.T) {
	folder := filepath.Join("/src", "shot01")
	mock := &mockFS{
		entries: []mockEntry{
			{path: folder, isDir: true},
			{path: filepath.Join(folder, "a.exr"), size: 1024},
			{path: filepath.Join(folder, "Makefile"), size: 512},
		},
	}

	scanner := Scanner{FS: mock, ExtensionOnly: true}
	size, err := scanner.TotalSize(folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Size preview counts everything on disk, filter or not.
	if size != 1536 {
		t.Fatalf("expected 1536, got %d", size)
	}
}
