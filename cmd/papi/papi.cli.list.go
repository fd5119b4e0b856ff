package main

import (
	"flag"
	"fmt"
	"io"
)

func runList(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(CmdNameList, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath string
	fs.StringVar(&configPath, FlagConfig, "", "")
	fs.StringVar(&configPath, FlagConfigShort, "", "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgFlagParseFailed, err)
		return ExitCodeUsageError
	}

	engine, err := newEngine(configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeError
	}
	defer engine.Close()

	fmt.Fprintln(stdout, MsgAvailablePlaceholders)
	for _, identifier := range engine.RegisteredIdentifiers() {
		fmt.Fprintf(stdout, FmtIdentifierEntry, identifier)
	}
	return ExitCodeSuccess
}
