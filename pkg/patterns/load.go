package patterns

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/clangfmt/pkg/config"
	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/logging"
	"github.com/arthur-debert/clangfmt/pkg/types"
	gitignore "github.com/monochromegane/go-gitignore"
)

// GitIgnoreFile is read from the root when respect_gitignore is set
const GitIgnoreFile = ".gitignore"

// LoadFilter reads the include and exclude lists from root and compiles
// them. A missing list is a configuration error: running with an
// accidental empty selection would silently format nothing.
func LoadFilter(fsys types.FS, root string, cfg config.PatternsConfig) (*Filter, error) {
	logger := logging.GetLogger("patterns")

	include, err := LoadPatternSet(fsys, filepath.Join(root, cfg.IncludeFile), cfg.IncludeSyntax)
	if err != nil {
		return nil, err
	}
	exclude, err := LoadPatternSet(fsys, filepath.Join(root, cfg.ExcludeFile), cfg.ExcludeSyntax)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("include", include.Len()).
		Str("includeSyntax", string(include.Syntax())).
		Int("exclude", exclude.Len()).
		Str("excludeSyntax", string(exclude.Syntax())).
		Msg("Loaded pattern sets")

	filter := NewFilter(root, include, exclude)

	if cfg.RespectGitignore {
		path := filepath.Join(root, GitIgnoreFile)
		data, err := fsys.ReadFile(path)
		switch {
		case err == nil:
			filter.WithGitIgnore(gitignore.NewGitIgnoreFromReader(root, bytes.NewReader(data)))
			logger.Debug().Str("path", path).Msg("Filtering with .gitignore")
		case os.IsNotExist(err):
			logger.Debug().Str("path", path).Msg("No .gitignore at root")
		default:
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
		}
	}

	return filter, nil
}

// LoadPatternSet reads one pattern list file and compiles it
func LoadPatternSet(fsys types.FS, path, syntaxName string) (*PatternSet, error) {
	syntax, err := ParseSyntax(syntaxName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid pattern syntax").
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read pattern list %s", path).
			WithDetail("path", path)
	}

	set, err := Compile(syntax, ParseLines(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid pattern in %s", path).
			WithDetail("path", path)
	}
	return set, nil
}
