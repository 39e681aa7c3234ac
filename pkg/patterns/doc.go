// Package patterns decides which files the formatter runs on.
//
// Two pattern lists are read from the repository root, one pattern per
// line: an include list and an exclude list. Each list compiles into a
// PatternSet, a single predicate that matches when any of its patterns
// does. A file is a candidate when the include set matches it and the
// exclude set does not.
//
// # Match Path
//
// Patterns are never tested against the path as the user typed it. The
// path is made relative to the repository root, converted to forward
// slashes and prefixed with "./":
//
//	/work/repo/lib/usd/utils/SIMD.h  ->  ./lib/usd/utils/SIMD.h
//
// so `^\./lib/` anchors the same way whether the file was named on the
// command line or found by walking a directory.
//
// # Syntaxes
//
//   - regex: RE2 expressions, searched anywhere in the match path.
//     `\.(cpp|h)$` selects C++ sources.
//   - glob: fnmatch globs. `*` also crosses `/`, and the glob must match
//     through to the end of the path. `./external/*` excludes everything
//     below external/.
//   - doublestar: `**`-aware globs matched against the whole match path.
//     `./external/**/*.cpp`.
//
// Blank lines and lines starting with # are ignored. A list with no
// patterns matches nothing.
package patterns
