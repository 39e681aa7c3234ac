package clangfmt

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "Run clang-format in place over a repository"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v progress, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot        = "Repository root (default: CLANGFMT_ROOT or the git tree holding the binary)"
	MsgFlagConfig      = "Extra config file, layered over the root config"
	MsgFlagFormat      = "Output format: auto, term, text or json (live status lines from -v need term; auto picks text off a terminal)"
	MsgFlagPrintConfig = "Print the effective configuration and exit"
	MsgFlagTopic       = "Show a help topic and exit"

	// Error messages
	MsgErrFormat = "invalid --format value"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
