package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/clangfmt/pkg/filesystem"
	"github.com/arthur-debert/clangfmt/pkg/types"
	"github.com/spf13/afero"
)

// Env is an in-memory repository rooted at Root
type Env struct {
	Root string
	Mem  afero.Fs
	FS   types.FS

	t *testing.T
}

// NewEnv creates an empty repository at root
func NewEnv(t *testing.T, root string) *Env {
	t.Helper()

	mem := afero.NewMemMapFs()
	if err := mem.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", root, err)
	}
	return &Env{
		Root: root,
		Mem:  mem,
		FS:   filesystem.NewAferoFS(mem),
		t:    t,
	}
}

// Path joins rel onto the root
func (e *Env) Path(rel string) string {
	return filepath.Join(e.Root, rel)
}

// WriteFile creates a file, and its parent directories, under the root
func (e *Env) WriteFile(rel, content string) string {
	e.t.Helper()
	path := e.Path(rel)
	if err := e.Mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(e.Mem, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

// WithFileTree creates a complete file tree under the root
func (e *Env) WithFileTree(tree FileTree) {
	e.t.Helper()
	e.createFileTree(e.Root, tree)
}

// FileTree represents a directory structure for testing. Values are file
// contents (string) or nested directories (FileTree).
type FileTree map[string]interface{}

func (e *Env) createFileTree(base string, tree FileTree) {
	e.t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(base, name)

		switch v := content.(type) {
		case string:
			if err := afero.WriteFile(e.Mem, fullPath, []byte(v), 0644); err != nil {
				e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := e.Mem.MkdirAll(fullPath, 0755); err != nil {
				e.t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			e.createFileTree(fullPath, v)
		default:
			e.t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
