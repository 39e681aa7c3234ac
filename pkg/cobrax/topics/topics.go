// Package topics provides topic-based help for a Cobra command.
// Topics are markdown or text files read from an fs.FS, usually an
// embedded directory shipped inside the binary.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/spf13/cobra"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys         fs.FS
	dir          string
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a TopicManager over dir inside fsys
func New(fsys fs.FS, dir string) *TopicManager {
	return NewWithOptions(fsys, dir, Options{})
}

// NewWithOptions creates a new TopicManager with custom options
func NewWithOptions(fsys fs.FS, dir string, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		dir:        dir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	return tm
}

// Load scans the topics directory. A missing directory yields no topics.
func (tm *TopicManager) Load() error {
	if _, err := fs.Stat(tm.fsys, tm.dir); err != nil {
		return nil
	}

	return fs.WalkDir(tm.fsys, tm.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{
			Name:     name,
			FilePath: p,
			Content:  string(content),
		}
		return nil
	})
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, exists := tm.topics[name]
	return topic, exists
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes the rendered topic to w
func (tm *TopicManager) Render(w io.Writer, name string) error {
	topic, exists := tm.GetTopic(name)
	if !exists {
		return errors.Newf(errors.ErrInvalidInput, "unknown help topic %q (available: %s)",
			name, strings.Join(tm.ListTopics(), ", ")).
			WithDetail("topic", name)
	}
	_, err := fmt.Fprint(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
	return err
}

// Initialize loads topics and lists them at the end of the command's help
func Initialize(rootCmd *cobra.Command, fsys fs.FS, dir string) (*TopicManager, error) {
	return InitializeWithOptions(rootCmd, fsys, dir, Options{})
}

// InitializeWithOptions is Initialize with custom options
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, dir string, opts Options) (*TopicManager, error) {
	tm := NewWithOptions(fsys, dir, opts)
	if err := tm.Load(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.originalHelp = rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		tm.originalHelp(cmd, args)

		names := tm.ListTopics()
		if len(names) == 0 {
			return
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "\nHelp topics:")
		for _, name := range names {
			_, _ = fmt.Fprintf(out, "  %s\n", name)
		}
		_, _ = fmt.Fprintf(out, "\nUse '%s --topic <name>' to read a topic.\n", rootCmd.Name())
	})

	return tm, nil
}
