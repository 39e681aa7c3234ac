package types

import (
	"io/fs"
)

// FS is the read-only filesystem view the driver works against.
// Everything that stats, walks or reads pattern lists goes through it so
// tests can run on an in-memory filesystem.
type FS interface {
	// Stat follows symlinks
	Stat(name string) (fs.FileInfo, error)

	ReadFile(name string) ([]byte, error)

	// ReadDir returns entries sorted by filename
	ReadDir(name string) ([]fs.DirEntry, error)
}
