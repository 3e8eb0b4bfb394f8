package main

import (
	"fmt"
	"io"
	"runtime"
)

func runVersion(args []string, stdout io.Writer) int {
	fmt.Fprintf(stdout, FmtVersionLine, buildVersion, buildCommit, buildTime, runtime.Version())
	return ExitCodeSuccess
}
