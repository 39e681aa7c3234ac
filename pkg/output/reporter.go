package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/clangfmt/pkg/output/styles"
	"github.com/arthur-debert/clangfmt/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Reporter receives progress and results from the driver
type Reporter interface {
	// Status replaces the transient progress line
	Status(text string)
	// Info prints a permanent progress line
	Info(text string)
	// Altered reports a file whose mtime changed
	Altered(displayPath string)
	// Done reports the final result
	Done(result *types.RunResult)
}

// New returns the reporter for a resolved format
func New(format Format, w io.Writer) Reporter {
	switch format {
	case FormatJSON:
		return NewJSONReporter(w)
	case FormatTerminal:
		return NewTerminalReporter(w)
	default:
		return NewPlainReporter(w)
	}
}

// TextReporter prints human readable lines
type TextReporter struct {
	w         io.Writer
	transient bool
	styled    bool

	// width of the last status line, so a shorter one can blank it out
	lastWidth int
	onStatus  bool
}

// NewTerminalReporter rewrites the status line in place
func NewTerminalReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w, transient: true, styled: ColorEnabled()}
}

// NewPlainReporter ignores status updates and never styles
func NewPlainReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// WithColor overrides color detection
func (r *TextReporter) WithColor(enabled bool) *TextReporter {
	r.styled = enabled
	return r
}

func (r *TextReporter) render(style, text string) string {
	if !r.styled {
		return text
	}
	return styles.GetStyle(style).Render(text)
}

func (r *TextReporter) Status(text string) {
	if !r.transient {
		return
	}
	width := lipgloss.Width(text)
	line := r.render("Status", text)
	if extra := r.lastWidth - width; extra > 0 {
		line += strings.Repeat(" ", extra)
	}
	_, _ = fmt.Fprint(r.w, "\r"+line)
	r.lastWidth = width
	r.onStatus = true
}

func (r *TextReporter) println(text string) {
	if r.onStatus {
		_, _ = fmt.Fprintln(r.w)
		r.onStatus = false
	}
	_, _ = fmt.Fprintln(r.w, text)
}

func (r *TextReporter) Info(text string) {
	r.println(text)
}

func (r *TextReporter) Altered(displayPath string) {
	r.println(r.render("Altered", fmt.Sprintf(MsgFileAltered, displayPath)))
}

func (r *TextReporter) Done(result *types.RunResult) {
	r.println(r.render("Summary", fmt.Sprintf(MsgDoneSummary, result.Altered)))
}

// JSONReporter prints only the final result
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSONReporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) Status(string)  {}
func (r *JSONReporter) Info(string)    {}
func (r *JSONReporter) Altered(string) {}

func (r *JSONReporter) Done(result *types.RunResult) {
	out := *result
	if out.AlteredPaths == nil {
		out.AlteredPaths = []string{}
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

// NopReporter discards everything
type NopReporter struct{}

func (NopReporter) Status(string)         {}
func (NopReporter) Info(string)           {}
func (NopReporter) Altered(string)        {}
func (NopReporter) Done(*types.RunResult) {}
