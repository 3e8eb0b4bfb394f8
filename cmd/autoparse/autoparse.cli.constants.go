package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagInput  = "input"
	FlagScope  = "scope"
	FlagOutput = "output"
)

// Flag names - short form
const (
	FlagInputShort  = "i"
	FlagScopeShort  = "s"
	FlagOutputShort = "o"
)

// Flag default values
const (
	FlagDefaultInput  = "-" // stdin
	FlagDefaultOutput = "-" // stdout
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// File permissions for output files
const (
	FilePermissions = 0644
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgInvalidScopeFile  = "invalid scope file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidFlags      = "invalid flags"
)

// Format strings for error output
const (
	FmtErrorWithCause  = "error: %s: %v\n"
	FmtErrorWithDetail = "error: %s: %s\n"
)

// Version information - overridden at build time via ldflags
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildTime    = "unknown"
)

// Version output format
const (
	FmtVersionLine = "autoparse %s (commit %s, built %s, %s)\n"
)

// Help text templates
const (
	HelpMainUsage = `autoparse - tag substitution for rendered text buffers

Usage:
  autoparse <command> [flags]

Commands:
  render    Resolve tags in a text buffer
  version   Show version information
  help      Show help for a command

Run 'autoparse help <command>' for command details.`

	HelpRenderUsage = `autoparse render - resolve tags in a text buffer

Usage:
  autoparse render [flags]

Flags:
  -i, --input   Input file path ("-" for stdin, default)
  -s, --scope   YAML scope file with globals/session/get/post/cookie/server
  -o, --output  Output file path ("-" for stdout, default)

Examples:
  autoparse render -i page.html -s scope.yaml
  echo 'Hello <name/>!' | autoparse render -s scope.yaml`

	HelpVersionUsage = `autoparse version - show version information

Usage:
  autoparse version`

	HelpHelpUsage = `autoparse help - show help for a command

Usage:
  autoparse help [command]`
)
