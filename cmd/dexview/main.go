package main

import (
	"os"

	"github.com/cristianoliveira/dexview/cmd"
	"github.com/cristianoliveira/dexview/internal/colors"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/logging"
)

// errorReporter prints the error that ended the command. Can be changed for testing.
var errorReporter interface{ Report(err error) } = dexerrors.NewDefaultCLIHandler()

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the command tree and returns the process exit code.
func run(args []string, execute func() error) int {
	fields := map[string]interface{}{"args": args}
	colors.StructuredInfo("startup", "main", "started", nil, fields)
	defer func() {
		if err := deps.Close(); err != nil {
			colors.Debug("close storage: " + err.Error())
		}
		_ = logging.ShutdownGlobal()
	}()

	if err := execute(); err != nil {
		colors.StructuredError("startup", "main", "failed", err, fields)
		errorReporter.Report(err)
		return 1
	}
	colors.StructuredInfo("startup", "main", "completed", nil, fields)
	return 0
}
