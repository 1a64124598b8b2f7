// Package main is the entry point for the saio-build CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/atalink/saio-build/internal/buildmeta"
	"github.com/atalink/saio-build/pkg/cli/cmd"
	"github.com/atalink/saio-build/pkg/client/docker"
	"github.com/atalink/saio-build/pkg/utils/notify"
)

func main() {
	exitCode := runSafely(os.Args[1:], runWithArgs, os.Stderr)

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			panicMessage := fmt.Sprintf("panic recovered: %v\n%s", r, debug.Stack())
			notify.WriteMessage(notify.Message{
				Type:    notify.ErrorType,
				Content: panicMessage,
				Writer:  errWriter,
			})

			exitCode = 1
		}
	}()

	exitCode = runner(args)

	return exitCode
}

// runWithArgs executes the root command and maps its error to the process
// exit status. The build tool's exit code passes through unchanged.
func runWithArgs(args []string) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		notify.Errorf(rootCmd.ErrOrStderr(), "%v", err)

		return docker.ExitCode(err)
	}

	return 0
}
