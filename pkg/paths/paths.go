package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/logging"
	"github.com/go-git/go-git/v5"
)

// Environment variable names
const (
	// EnvRoot overrides repository root discovery
	EnvRoot = "CLANGFMT_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// RootSource records which discovery step produced the root
type RootSource string

const (
	SourceExplicit   RootSource = "explicit"
	SourceEnv        RootSource = "env"
	SourceGit        RootSource = "git"
	SourceExecutable RootSource = "executable"
)

// Options controls root resolution
type Options struct {
	// Root is an explicit root; it wins over everything else
	Root string

	// Executable is the path of the running binary. Defaults to
	// os.Executable().
	Executable string
}

// Paths provides the root-relative path handling for a run
type Paths interface {
	Root() string
	Source() RootSource
}

type paths struct {
	root   string
	source RootSource
}

// New resolves the repository root
func New(opts Options) (Paths, error) {
	root, source, err := findRoot(opts)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for root %s", root)
	}

	logger := logging.GetLogger("paths")
	logger.Debug().
		Str("root", absRoot).
		Str("source", string(source)).
		Msg("Resolved repository root")

	return &paths{root: filepath.Clean(absRoot), source: source}, nil
}

func findRoot(opts Options) (string, RootSource, error) {
	if opts.Root != "" {
		return expandHome(opts.Root), SourceExplicit, nil
	}

	if root := os.Getenv(EnvRoot); root != "" {
		return expandHome(root), SourceEnv, nil
	}

	exe := opts.Executable
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return "", "", errors.Wrap(err, errors.ErrRootNotFound, "cannot locate the clangfmt executable")
		}
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	exeDir := filepath.Dir(exe)

	if gitRoot, err := findGitRoot(exeDir); err == nil {
		return gitRoot, SourceGit, nil
	}

	// <root>/test/bin/clangfmt
	return filepath.Dir(filepath.Dir(exeDir)), SourceExecutable, nil
}

// findGitRoot returns the work tree root of the repository containing dir
func findGitRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	root := wt.Filesystem.Root()
	if root == "" {
		return "", errors.New(errors.ErrRootNotFound, "git work tree root is empty")
	}
	return root, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

func (p *paths) Root() string {
	return p.root
}

func (p *paths) Source() RootSource {
	return p.source
}

// MatchPath returns the form patterns are tested against: relative to the
// root, forward slashes, "./" prefix. Paths outside the root keep their
// "../" segments.
func MatchPath(root, path string) string {
	rel, err := filepath.Rel(root, absolute(path))
	if err != nil {
		return filepath.ToSlash(path)
	}
	return "./" + filepath.ToSlash(rel)
}

// DisplayPath returns path relative to the root when it lies under it,
// "." for the root itself, and path unchanged otherwise
func DisplayPath(root, path string) string {
	abs := absolute(path)
	if abs == root {
		return "."
	}
	if strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return abs[len(root)+1:]
	}
	return path
}

func absolute(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
