package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

// GlamourRenderer renders markdown topics for the terminal. Without Color
// it uses the notty style, which writes no escape sequences.
type GlamourRenderer struct {
	Color bool
	// Width wraps rendered text; zero keeps glamour's default
	Width int
}

// NewGlamourRenderer returns a renderer that styles output only when
// color is true. Callers pass the same decision the run output uses, so
// NO_COLOR and ASCII-only terminals get plain help too.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	return &GlamourRenderer{Color: color}
}

// Render returns content unchanged for non-markdown topics and when
// glamour fails
func (r *GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(styles.NoTTYStyle),
		glamour.WithColorProfile(termenv.Ascii),
	}
	if r.Color {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
