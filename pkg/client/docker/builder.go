package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// CommandName is the container build binary resolved from PATH.
const CommandName = "docker"

// exitCodeToolNotFound mirrors the shell's exit status for a command that
// cannot be located.
const exitCodeToolNotFound = 127

// Error definitions for build invocation.
var (
	// ErrBuildToolNotFound is returned when the build binary cannot be located in PATH.
	ErrBuildToolNotFound = errors.New("build tool not found")

	// ErrBuildDefinitionMissing is returned when the named build-definition file does not exist.
	ErrBuildDefinitionMissing = errors.New("build definition file not found")
)

// ExitError reports a build invocation that ran and exited non-zero.
// The cause is opaque to the invoker; the tool's own output carries the detail.
type ExitError struct {
	// Code is the exit status of the build tool process.
	Code int

	err error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s build exited with code %d", CommandName, e.Code)
}

// Unwrap returns the underlying process error.
func (e *ExitError) Unwrap() error {
	return e.err
}

// BuildOptions configures a single image build invocation.
type BuildOptions struct {
	// Tag is the full image reference the build result is tagged with.
	Tag string
	// BuildDefinition is the build-definition file, resolved relative to the
	// working directory like the docker CLI's -f flag.
	BuildDefinition string
	// ContextDir is the build context directory.
	ContextDir string
	// Stdout receives the build tool's stdout. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives the build tool's stderr. Defaults to os.Stderr.
	Stderr io.Writer
}

// Client invokes the docker CLI to build images.
type Client struct {
	binary string
}

// NewClient creates a client that resolves the docker binary from PATH.
func NewClient() *Client {
	return &Client{
		binary: CommandName,
	}
}

// NewClientWithBinary creates a client that invokes a specific build binary.
func NewClientWithBinary(binary string) *Client {
	return &Client{
		binary: binary,
	}
}

// Build runs the container build and streams the tool's output to the
// configured writers. The invoker adds no output of its own.
//
// Returns [ErrBuildToolNotFound] if the binary cannot be located,
// [ErrBuildDefinitionMissing] if the build-definition file is absent, and an
// [*ExitError] carrying the tool's exit status for any other failure.
func (c *Client) Build(ctx context.Context, opts BuildOptions) error {
	binPath, err := exec.LookPath(c.binary)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildToolNotFound, c.binary)
	}

	_, err = os.Stat(opts.BuildDefinition)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrBuildDefinitionMissing, opts.BuildDefinition)
		}

		return fmt.Errorf("stat build definition %s: %w", opts.BuildDefinition, err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	args := []string{"build", "-t", opts.Tag, "-f", opts.BuildDefinition, opts.ContextDir}

	cmd := exec.CommandContext(ctx, binPath, args...) //nolint:gosec // docker is a trusted tool
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return &ExitError{Code: exitErr.ExitCode(), err: err}
		}

		return fmt.Errorf("run %s build: %w", CommandName, err)
	}

	return nil
}

// ExitCode maps a build error to the process exit status the CLI reports.
// The build tool's own exit status passes through unchanged; a missing tool
// maps to 127 like the shell; anything else is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, ErrBuildToolNotFound) {
		return exitCodeToolNotFound
	}

	return 1
}
