package uv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/modelenv/gpusync/pkg/logging"
)

// Runner executes resolved package-manager commands.
type Runner interface {
	// Run executes argv, streaming its output, and returns an error wrapping
	// the subprocess failure, if any. The command is attempted exactly once.
	Run(ctx context.Context, argv []string) error
}

type runner struct {
	log    logging.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner returns a Runner that streams subprocess output to the given
// writers. Nil writers default to the parent process streams.
func NewRunner(log logging.Logger, stdout, stderr io.Writer) Runner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &runner{log: log, stdout: stdout, stderr: stderr}
}

func (r *runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	r.log.Debugf("executing: %s", CommandLine(argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with code %d: %w",
				argv[0], exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
	return nil
}

// ExitCode extracts the subprocess exit code from an error returned by
// Runner.Run. Non-subprocess failures map to exit code 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
