package main

import (
	"log/slog"
	"os"

	"github.com/leijurv/stgen_go/stgen"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cmd := newRootCmd(logger)
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a generation error onto the process exit status
func exitCode(err error) int {
	if stErr, ok := stgen.IsStateTableError(err); ok {
		return int(stErr.Code)
	}
	return int(stgen.ExitCodeAssertionFailure)
}
