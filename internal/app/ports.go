package app

import "io/fs"

// FileSystem is the only surface through which the core touches the disk.
type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm fs.FileMode) error
	// CopyFile copies content and metadata (mode, modification time) to dst,
	// creating parent directories and overwriting an existing file.
	CopyFile(src, dst string) error
	Rename(oldPath, newPath string) error
}
