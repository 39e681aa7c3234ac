package patterns

import (
	"fmt"
	"strings"
)

// Syntax selects how the lines of a pattern list are interpreted
type Syntax string

const (
	// SyntaxRegex treats each line as an RE2 regular expression
	SyntaxRegex Syntax = "regex"
	// SyntaxGlob treats each line as an fnmatch glob
	SyntaxGlob Syntax = "glob"
	// SyntaxDoublestar treats each line as a ** aware path glob
	SyntaxDoublestar Syntax = "doublestar"
)

// ParseSyntax parses a syntax name from configuration
func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(s))) {
	case SyntaxRegex, "re", "":
		return SyntaxRegex, nil
	case SyntaxGlob, "fnmatch":
		return SyntaxGlob, nil
	case SyntaxDoublestar, "**":
		return SyntaxDoublestar, nil
	default:
		return "", fmt.Errorf("unknown pattern syntax: %q", s)
	}
}
