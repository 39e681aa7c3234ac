package patterns

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher is the single operation the driver needs from a pattern list
type Matcher interface {
	Matches(path string) bool
}

// PatternSet is an ordered list of patterns compiled into one predicate
// that matches when any pattern matches. It is immutable once compiled.
type PatternSet struct {
	syntax   Syntax
	patterns []string

	// re holds the alternation for regex and glob syntaxes
	re *regexp.Regexp
}

// PatternError reports the first pattern in a list that failed to compile
type PatternError struct {
	Pattern string
	Line    int
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %d %q: %v", e.Line, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Compile builds a PatternSet from patterns in the given syntax
func Compile(syntax Syntax, patterns []string) (*PatternSet, error) {
	set := &PatternSet{
		syntax:   syntax,
		patterns: append([]string(nil), patterns...),
	}
	if len(patterns) == 0 {
		return set, nil
	}

	switch syntax {
	case SyntaxRegex, SyntaxGlob:
		alternatives := make([]string, len(patterns))
		for i, p := range patterns {
			expr := p
			if syntax == SyntaxGlob {
				expr = translateGlob(p)
			}
			// Compile each one alone so errors point at a line
			if _, err := regexp.Compile(expr); err != nil {
				return nil, &PatternError{Pattern: p, Line: i + 1, Err: err}
			}
			alternatives[i] = "(?:" + expr + ")"
		}
		re, err := regexp.Compile(strings.Join(alternatives, "|"))
		if err != nil {
			return nil, err
		}
		set.re = re
	case SyntaxDoublestar:
		for i, p := range patterns {
			if !doublestar.ValidatePattern(p) {
				return nil, &PatternError{Pattern: p, Line: i + 1, Err: doublestar.ErrBadPattern}
			}
		}
	default:
		return nil, fmt.Errorf("unknown pattern syntax: %q", syntax)
	}

	return set, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(syntax Syntax, patterns ...string) *PatternSet {
	set, err := Compile(syntax, patterns)
	if err != nil {
		panic(err)
	}
	return set
}

// Matches reports whether any pattern matches the match path
func (s *PatternSet) Matches(path string) bool {
	if len(s.patterns) == 0 {
		return false
	}
	if s.re != nil {
		return s.re.MatchString(path)
	}
	for _, p := range s.patterns {
		// Patterns were validated in Compile
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// Syntax returns the syntax the set was compiled with
func (s *PatternSet) Syntax() Syntax {
	return s.syntax
}

// Patterns returns a copy of the source patterns
func (s *PatternSet) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Len returns the number of patterns
func (s *PatternSet) Len() int {
	return len(s.patterns)
}

// ParseLines splits a pattern list into patterns. Blank lines and lines
// starting with # are skipped, and trailing whitespace is trimmed.
func ParseLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
