package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("explicit root wins over env", func(t *testing.T) {
		t.Setenv(EnvRoot, "/from/env")

		p, err := New(Options{Root: "/explicit/root"})
		require.NoError(t, err)
		assert.Equal(t, "/explicit/root", p.Root())
		assert.Equal(t, SourceExplicit, p.Source())
	})

	t.Run("env root", func(t *testing.T) {
		t.Setenv(EnvRoot, "/from/env")

		p, err := New(Options{})
		require.NoError(t, err)
		assert.Equal(t, "/from/env", p.Root())
		assert.Equal(t, SourceEnv, p.Source())
	})

	t.Run("tilde expansion", func(t *testing.T) {
		homeDir, err := os.UserHomeDir()
		require.NoError(t, err)

		p, err := New(Options{Root: "~/src/maya-usd"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(homeDir, "src", "maya-usd"), p.Root())
	})

	t.Run("git work tree containing the executable", func(t *testing.T) {
		t.Setenv(EnvRoot, "")
		repoDir := t.TempDir()
		_, err := git.PlainInit(repoDir, false)
		require.NoError(t, err)

		binDir := filepath.Join(repoDir, "tools", "deep", "bin")
		require.NoError(t, os.MkdirAll(binDir, 0755))
		exe := filepath.Join(binDir, "clangfmt")
		require.NoError(t, os.WriteFile(exe, []byte{}, 0755))

		p, err := New(Options{Executable: exe})
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(repoDir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(p.Root())
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, SourceGit, p.Source())
	})

	t.Run("falls back to two levels above the executable", func(t *testing.T) {
		t.Setenv(EnvRoot, "")
		base := t.TempDir()
		binDir := filepath.Join(base, "test", "bin")
		require.NoError(t, os.MkdirAll(binDir, 0755))
		exe := filepath.Join(binDir, "clangfmt")
		require.NoError(t, os.WriteFile(exe, []byte{}, 0755))

		p, err := New(Options{Executable: exe})
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(base)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(p.Root())
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, SourceExecutable, p.Source())
	})
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
		want string
	}{
		{"file under root", "/repo", "/repo/lib/usd/utils/SIMD.h", "./lib/usd/utils/SIMD.h"},
		{"file at root", "/repo", "/repo/a.cpp", "./a.cpp"},
		{"unclean path", "/repo", "/repo/lib/../src/b.cpp", "./src/b.cpp"},
		{"outside root", "/repo", "/other/c.cpp", "./../other/c.cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPath(tt.root, tt.path))
		})
	}
}

func TestMatchPath_RelativeInputResolvesAgainstCwd(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, "./src/a.cpp", MatchPath(cwd, "src/a.cpp"))
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"under root", "/repo/src/a.cpp", "src/a.cpp"},
		{"root itself", "/repo", "."},
		{"sibling with common prefix", "/repository/a.cpp", "/repository/a.cpp"},
		{"outside root", "/tmp/x.cpp", "/tmp/x.cpp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayPath("/repo", tt.path))
		})
	}
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandHome(""))
	assert.Equal(t, homeDir, expandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), expandHome("~/x"))
	assert.Equal(t, "~other/x", expandHome("~other/x"))
	assert.Equal(t, "/abs", expandHome("/abs"))
}
