// Test Type: Unit Test
// Description: Tests for the reporters

package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/clangfmt/pkg/output"
	"github.com/arthur-debert/clangfmt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalReporter_StatusRewritesLine(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewTerminalReporter(&buf).WithColor(false)

	r.Status("Checked 10 - Found 2 - ./src/long_name.cpp")
	r.Status("Checked 11 - Found 2 - ./a.h")

	out := buf.String()
	assert.Equal(t,
		"\rChecked 10 - Found 2 - ./src/long_name.cpp"+
			"\rChecked 11 - Found 2 - ./a.h"+strings.Repeat(" ", 14),
		out)
}

func TestTerminalReporter_LineAfterStatusStartsNewLine(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewTerminalReporter(&buf).WithColor(false)

	r.Status("File 1/2 (50.0%) - a.cpp")
	r.Altered("a.cpp")
	r.Info("next")

	assert.Equal(t,
		"\rFile 1/2 (50.0%) - a.cpp\nFile altered: a.cpp\nnext\n",
		buf.String())
}

func TestPlainReporter_DropsStatus(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewPlainReporter(&buf)

	r.Info("Finding files...")
	r.Status("Checked 1 - Found 1 - ./a.cpp")
	r.Altered("a.cpp")
	r.Done(&types.RunResult{Considered: 1, Altered: 1, AlteredPaths: []string{"a.cpp"}})

	assert.Equal(t,
		"Finding files...\nFile altered: a.cpp\nDone - altered 1 files\n",
		buf.String())
}

func TestJSONReporter_Done(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewJSONReporter(&buf)

	r.Info("ignored")
	r.Status("ignored")
	r.Altered("ignored")
	r.Done(&types.RunResult{Checked: 3, Considered: 2})

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(3), got["checked"])
	assert.Equal(t, float64(2), got["considered"])
	assert.Equal(t, float64(0), got["altered"])
	assert.Equal(t, []interface{}{}, got["altered_paths"])
}

func TestNew_PicksReporterForFormat(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &output.JSONReporter{}, output.New(output.FormatJSON, &buf))
	assert.IsType(t, &output.TextReporter{}, output.New(output.FormatTerminal, &buf))
	assert.IsType(t, &output.TextReporter{}, output.New(output.FormatText, &buf))
}

func TestNopReporter(t *testing.T) {
	var r output.Reporter = output.NopReporter{}
	assert.NotPanics(t, func() {
		r.Status("x")
		r.Info("x")
		r.Altered("x")
		r.Done(&types.RunResult{})
	})
}
