package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/clangfmt/pkg/cobrax/topics"
	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/patterns.md":      {Data: []byte("# Patterns\n\nInclude and exclude lists")},
		"help/configuration.md": {Data: []byte("# Configuration")},
		"help/notes.txt":        {Data: []byte("plain notes")},
		"help/ignored.json":     {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	tm := topics.New(testFS(), "help")
	require.NoError(t, tm.Load())

	assert.Equal(t, []string{"configuration", "notes", "patterns"}, tm.ListTopics())

	topic, ok := tm.GetTopic("patterns")
	require.True(t, ok)
	assert.Equal(t, "help/patterns.md", topic.FilePath)
	assert.Contains(t, topic.Content, "Include and exclude")

	_, ok = tm.GetTopic("ignored")
	assert.False(t, ok)

	_, ok = tm.GetTopic("--patterns")
	assert.True(t, ok, "flag-style names resolve")
}

func TestTopicManager_CustomExtensions(t *testing.T) {
	tm := topics.NewWithOptions(testFS(), "help", topics.Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Load())

	assert.Equal(t, []string{"ignored"}, tm.ListTopics())
}

func TestTopicManager_MissingDir(t *testing.T) {
	tm := topics.New(testFS(), "nope")
	require.NoError(t, tm.Load())
	assert.Empty(t, tm.ListTopics())
}

func TestTopicManager_Render(t *testing.T) {
	tm := topics.New(testFS(), "help")
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	require.NoError(t, tm.Render(&buf, "notes"))
	assert.Equal(t, "plain notes", buf.String())

	err := tm.Render(&buf, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "configuration, notes, patterns")
}

func TestGlamourRenderer_PassesThroughNonMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer(true)
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func TestGlamourRenderer_RendersMarkdown(t *testing.T) {
	r := &topics.GlamourRenderer{Width: 60}
	out := r.Render("# Title\n\nSome text", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some text")
	assert.False(t, strings.HasPrefix(out, "# Title\n\nSome text"), "markdown is rendered")
}

func TestGlamourRenderer_NoColorWritesNoEscapes(t *testing.T) {
	r := topics.NewGlamourRenderer(false)
	out := r.Render("# Title\n\nSome **bold** and `code`\n\n- item", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "\x1b[")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# Title", topics.PlainRenderer{}.Render("# Title", ".md"))
}

func TestInitialize_AppendsTopicsToHelp(t *testing.T) {
	cmd := &cobra.Command{Use: "clangfmt", Run: func(*cobra.Command, []string) {}}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	_, err := topics.Initialize(cmd, testFS(), "help")
	require.NoError(t, err)

	require.NoError(t, cmd.Help())
	out := buf.String()
	assert.Contains(t, out, "Help topics:")
	assert.Contains(t, out, "  patterns")
	assert.Contains(t, out, "clangfmt --topic <name>")
}
