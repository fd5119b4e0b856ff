package main

// CLI version
const Version = "0.1.0"

// Command name constants
const (
	CmdNameParse   = "parse"
	CmdNameList    = "list"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag name constants
const (
	FlagText        = "text"
	FlagTextShort   = "t"
	FlagContext     = "context"
	FlagContextShort = "c"
	FlagConfig      = "config"
	FlagConfigShort = "f"
)

// Exit code constants
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 3
)

// Error message constants
const (
	ErrMsgFlagParseFailed   = "flag parsing failed"
	ErrMsgReadInputFailed   = "reading input failed"
	ErrMsgContextLoadFailed = "loading context file failed"
	ErrMsgConfigLoadFailed  = "loading config file failed"
	ErrMsgEngineFailed      = "creating engine failed"
)

// Format string constants
const (
	FmtErrorWithCause  = "error: %s: %v\n"
	FmtUnknownCommand  = "unknown command: %s\n\n"
	FmtIdentifierEntry = "- %s\n"
)

// Output message constants
const (
	MsgAvailablePlaceholders = "Available placeholders:"
	MsgVersionPrefix         = "papi version "
)

// Help text
const HelpText = `papi - placeholder resolution tool

Usage:
  papi parse [-t text] [-c context.yaml] [-f config.yaml]
      Resolve placeholders in text (reads stdin when -t is omitted)
      against an optional YAML resolution context.

  papi list [-f config.yaml]
      List all registered placeholder identifiers.

  papi version
      Print the version.

  papi help
      Show this help.
`
