// Test Type: Unit Test
// Description: Tests for the include/exclude filter and pattern list loading

package patterns_test

import (
	"testing"

	"github.com/arthur-debert/clangfmt/pkg/config"
	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/filesystem"
	"github.com/arthur-debert/clangfmt/pkg/patterns"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPatternsConfig() config.PatternsConfig {
	return config.PatternsConfig{
		IncludeFile:   ".clang-format-include",
		ExcludeFile:   ".clang-format-ignore",
		IncludeSyntax: "regex",
		ExcludeSyntax: "glob",
	}
}

func writeFiles(t *testing.T, mem afero.Fs, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
}

func TestFilter_Passes(t *testing.T) {
	include := patterns.MustCompile(patterns.SyntaxRegex, `.*\.cpp$`)
	exclude := patterns.MustCompile(patterns.SyntaxRegex, `.*c\.cpp$`)
	filter := patterns.NewFilter("/repo", include, exclude)

	assert.True(t, filter.Passes("/repo/dir/a.cpp"))
	assert.False(t, filter.Passes("/repo/dir/b.txt"), "not included")
	assert.False(t, filter.Passes("/repo/dir/c.cpp"), "excluded")
}

func TestFilter_MatchPathIsRootRelative(t *testing.T) {
	include := patterns.MustCompile(patterns.SyntaxRegex, `^\./lib/`)
	exclude := patterns.MustCompile(patterns.SyntaxGlob)
	filter := patterns.NewFilter("/work/repo", include, exclude)

	assert.True(t, filter.Passes("/work/repo/lib/a.cpp"))
	assert.False(t, filter.Passes("/work/repo/src/lib/a.cpp"))
}

func TestLoadFilter(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/repo/.clang-format-include": "# sources\n\\.(cpp|h)$\n",
		"/repo/.clang-format-ignore":  "./external/*\n*_generated.h\n",
	})

	filter, err := patterns.LoadFilter(filesystem.NewAferoFS(mem), "/repo", defaultPatternsConfig())
	require.NoError(t, err)

	assert.True(t, filter.Passes("/repo/lib/usd/utils/SIMD.h"))
	assert.True(t, filter.Passes("/repo/src/plugin.cpp"))
	assert.False(t, filter.Passes("/repo/external/gtest/gtest.cpp"))
	assert.False(t, filter.Passes("/repo/lib/schema_generated.h"))
	assert.False(t, filter.Passes("/repo/package.py"))
}

func TestLoadFilter_MissingLists(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing include list", map[string]string{"/repo/.clang-format-ignore": ""}},
		{"missing exclude list", map[string]string{"/repo/.clang-format-include": `\.cpp$`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			writeFiles(t, mem, tt.files)

			_, err := patterns.LoadFilter(filesystem.NewAferoFS(mem), "/repo", defaultPatternsConfig())
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
		})
	}
}

func TestLoadFilter_BadPattern(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/repo/.clang-format-include": "(unclosed\n",
		"/repo/.clang-format-ignore":  "",
	})

	_, err := patterns.LoadFilter(filesystem.NewAferoFS(mem), "/repo", defaultPatternsConfig())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, "/repo/.clang-format-include", errors.GetErrorDetails(err)["path"])
}

func TestLoadFilter_BadSyntax(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/repo/.clang-format-include": `\.cpp$`,
		"/repo/.clang-format-ignore":  "",
	})
	cfg := defaultPatternsConfig()
	cfg.ExcludeSyntax = "pcre"

	_, err := patterns.LoadFilter(filesystem.NewAferoFS(mem), "/repo", cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoadFilter_GitIgnore(t *testing.T) {
	mem := afero.NewMemMapFs()
	writeFiles(t, mem, map[string]string{
		"/repo/.clang-format-include": `\.cpp$`,
		"/repo/.clang-format-ignore":  "",
		"/repo/.gitignore":            "build/\n/out\ngen\n*.tmp.cpp\n",
	})
	fsys := filesystem.NewAferoFS(mem)

	t.Run("disabled by default", func(t *testing.T) {
		filter, err := patterns.LoadFilter(fsys, "/repo", defaultPatternsConfig())
		require.NoError(t, err)
		assert.True(t, filter.Passes("/repo/scratch.tmp.cpp"))
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := defaultPatternsConfig()
		cfg.RespectGitignore = true

		filter, err := patterns.LoadFilter(fsys, "/repo", cfg)
		require.NoError(t, err)
		assert.False(t, filter.Passes("/repo/scratch.tmp.cpp"))
		assert.True(t, filter.Passes("/repo/src/main.cpp"))
	})

	t.Run("directory rules cover their contents", func(t *testing.T) {
		cfg := defaultPatternsConfig()
		cfg.RespectGitignore = true

		filter, err := patterns.LoadFilter(fsys, "/repo", cfg)
		require.NoError(t, err)
		assert.False(t, filter.Passes("/repo/build/a.cpp"))
		assert.False(t, filter.Passes("/repo/sub/build/a.cpp"))
		assert.False(t, filter.Passes("/repo/sub/build/deep/a.cpp"))
		assert.False(t, filter.Passes("/repo/out/a.cpp"))
		assert.False(t, filter.Passes("/repo/gen/a.cpp"))
		assert.True(t, filter.Passes("/repo/sub/out/a.cpp"))
		assert.True(t, filter.Passes("/repo/src/building.cpp"))
	})

	t.Run("enabled without a gitignore file", func(t *testing.T) {
		bare := afero.NewMemMapFs()
		writeFiles(t, bare, map[string]string{
			"/repo/.clang-format-include": `\.cpp$`,
			"/repo/.clang-format-ignore":  "",
		})
		cfg := defaultPatternsConfig()
		cfg.RespectGitignore = true

		filter, err := patterns.LoadFilter(filesystem.NewAferoFS(bare), "/repo", cfg)
		require.NoError(t, err)
		assert.True(t, filter.Passes("/repo/scratch.tmp.cpp"))
	})
}
