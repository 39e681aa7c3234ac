// Package paths anchors clangfmt to a repository root.
//
// Every pattern test and every display path is computed relative to that
// root, and the root itself must not depend on where the command was
// launched from. It is resolved in this order:
//
//   - an explicit root (the --root flag)
//   - CLANGFMT_ROOT
//   - the git work tree that contains the clangfmt executable
//   - two levels above the executable's directory (the binary is
//     installed as <root>/test/bin/clangfmt)
//
// The current working directory is never consulted.
//
// # Usage
//
//	p, err := paths.New(paths.Options{})
//	if err != nil {
//	    return err
//	}
//
//	root := p.Root()                               // /work/maya-usd
//	paths.MatchPath(root, "/work/maya-usd/lib/a.h")   // ./lib/a.h
//	paths.DisplayPath(root, "/work/maya-usd/lib/a.h") // lib/a.h
package paths
