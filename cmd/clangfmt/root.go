package clangfmt

import (
	"embed"
	"io"
	"os"

	"github.com/arthur-debert/clangfmt/internal/version"
	"github.com/arthur-debert/clangfmt/pkg/cobrax/topics"
	"github.com/arthur-debert/clangfmt/pkg/config"
	"github.com/arthur-debert/clangfmt/pkg/driver"
	"github.com/arthur-debert/clangfmt/pkg/errors"
	"github.com/arthur-debert/clangfmt/pkg/executor"
	"github.com/arthur-debert/clangfmt/pkg/filesystem"
	"github.com/arthur-debert/clangfmt/pkg/logging"
	"github.com/arthur-debert/clangfmt/pkg/output"
	"github.com/arthur-debert/clangfmt/pkg/paths"
	"github.com/arthur-debert/clangfmt/pkg/patterns"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

type rootOptions struct {
	verbosity   int
	root        string
	configFile  string
	format      string
	printConfig bool
	topic       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "clangfmt [flags] [paths...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.root, "root", "", MsgFlagRoot)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.BoolVar(&opts.printConfig, "print-config", false, MsgFlagPrintConfig)
	flags.StringVar(&opts.topic, "topic", "", MsgFlagTopic)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	tm, err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(output.ColorEnabled()),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if opts.topic != "" {
			if tm == nil {
				return errors.New(errors.ErrInternal, "help topics unavailable")
			}
			return tm.Render(cmd.OutOrStdout(), opts.topic)
		}
		return run(cmd, args, opts)
	}

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger := logging.GetLogger("cmd")
	done := logging.LogOperationStart(logger, "format")
	defer done()

	p, err := paths.New(paths.Options{Root: opts.root})
	if err != nil {
		return err
	}
	logger.Debug().Str("root", p.Root()).Str("source", string(p.Source())).Msg("Resolved root")

	cfg, err := config.Load(config.LoadOptions{Root: p.Root(), File: opts.configFile})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.printConfig {
		rendered, err := config.Render(cfg)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	format, err := resolveFormat(opts.format, out)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	filter, err := patterns.LoadFilter(fsys, p.Root(), cfg.Patterns)
	if err != nil {
		return err
	}

	// keep stdout pure JSON
	childOut := out
	if format == output.FormatJSON {
		childOut = cmd.ErrOrStderr()
	}

	d, err := driver.New(driver.Options{
		FS: fsys,
		Runner: executor.New(executor.Options{
			Stdout: childOut,
			Stderr: cmd.ErrOrStderr(),
		}),
		Reporter:   output.New(format, out),
		Selector:   filter,
		Root:       p.Root(),
		Executable: cfg.Formatter.Executable,
		Args:       cfg.Formatter.Args,
		Progress:   opts.verbosity > 0,
		Interval:   cfg.Progress.Interval,
	})
	if err != nil {
		return err
	}

	_, err = d.Run(cmd.Context(), args)
	return err
}

// resolveFormat parses the --format value and resolves auto against the
// actual output stream
func resolveFormat(value string, out io.Writer) (output.Format, error) {
	format, err := output.ParseFormat(value)
	if err != nil {
		return format, errors.Wrap(err, errors.ErrInvalidInput, MsgErrFormat).WithDetail("format", value)
	}
	if format != output.FormatAuto {
		return format, nil
	}
	if f, ok := out.(*os.File); ok {
		return output.DetectFormat(f), nil
	}
	return output.FormatText, nil
}
