package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stdout, FmtUnknownCommand, args[0])
		fmt.Fprint(stdout, HelpText)
		return ExitCodeUsageError
	}
	fmt.Fprint(stdout, HelpText)
	return ExitCodeSuccess
}

func runVersion(stdout io.Writer) int {
	fmt.Fprintln(stdout, MsgVersionPrefix+Version)
	return ExitCodeSuccess
}
