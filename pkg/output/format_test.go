package output_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/clangfmt/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    output.Format
		wantErr bool
	}{
		{"", output.FormatAuto, false},
		{"auto", output.FormatAuto, false},
		{"term", output.FormatTerminal, false},
		{"TERMINAL", output.FormatTerminal, false},
		{"text", output.FormatText, false},
		{"plain", output.FormatText, false},
		{"json", output.FormatJSON, false},
		{"xml", output.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", output.FormatAuto.String())
	assert.Equal(t, "term", output.FormatTerminal.String())
	assert.Equal(t, "text", output.FormatText.String())
	assert.Equal(t, "json", output.FormatJSON.String())
	assert.Equal(t, "unknown", output.Format(42).String())
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, output.FormatText, output.DetectFormat(f))
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, output.ColorEnabled())
}
