package patterns

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/clangfmt/pkg/paths"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Filter is the include/exclude predicate applied to every file, whether
// it was named on the command line or found by walking a directory.
type Filter struct {
	root    string
	include Matcher
	exclude Matcher
	ignore  gitignore.IgnoreMatcher
}

// NewFilter builds a filter anchored at root
func NewFilter(root string, include, exclude Matcher) *Filter {
	return &Filter{
		root:    root,
		include: include,
		exclude: exclude,
		ignore:  gitignore.DummyIgnoreMatcher(false),
	}
}

// WithGitIgnore additionally drops files the matcher ignores
func (f *Filter) WithGitIgnore(m gitignore.IgnoreMatcher) *Filter {
	if m != nil {
		f.ignore = m
	}
	return f
}

// Passes reports whether path should be formatted
func (f *Filter) Passes(path string) bool {
	matchPath := paths.MatchPath(f.root, path)
	if !f.include.Matches(matchPath) || f.exclude.Matches(matchPath) {
		return false
	}
	return !f.ignored(path)
}

// ignored also tests every directory between the root and path, since
// a rule such as "build/" only matches the directory itself
func (f *Filter) ignored(path string) bool {
	if f.ignore.Match(path, false) {
		return true
	}
	rel, err := filepath.Rel(f.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	for dir := filepath.Dir(rel); dir != "."; dir = filepath.Dir(dir) {
		if f.ignore.Match(filepath.Join(f.root, dir), true) {
			return true
		}
	}
	return false
}
