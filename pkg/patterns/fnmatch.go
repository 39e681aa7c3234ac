package patterns

import (
	"regexp"
	"strings"
)

// translateGlob converts an fnmatch glob into a regular expression that must
// match through to the end of the input. `*` matches any run of characters,
// including "/".
func translateGlob(pattern string) string {
	var b strings.Builder
	n := len(pattern)

	for i := 0; i < n; {
		c := pattern[i]
		i++

		switch c {
		case '*':
			// Consecutive stars collapse into one
			for i < n && pattern[i] == '*' {
				i++
			}
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i
			if j < n && pattern[j] == '!' {
				j++
			}
			if j < n && pattern[j] == ']' {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				// Unterminated class is a literal bracket
				b.WriteString(`\[`)
				continue
			}
			class := pattern[i:j]
			i = j + 1

			class = strings.ReplaceAll(class, `\`, `\\`)
			class = strings.ReplaceAll(class, `[`, `\[`)
			switch {
			case strings.HasPrefix(class, "!"):
				class = "^" + class[1:]
			case strings.HasPrefix(class, "^"):
				class = `\` + class
			}
			b.WriteString("[")
			b.WriteString(class)
			b.WriteString("]")
		default:
			b.WriteString(regexp.QuoteMeta(pattern[i-1 : i]))
		}
	}

	return `(?s:` + b.String() + `)\z`
}
