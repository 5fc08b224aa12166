package install

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/provisor/provisor/internal/core"
)

// cmdRunner runs external commands with a deadline and classifies their
// failures into the install error taxonomy. Implements core.CommandRunner.
type cmdRunner struct{}

// NewCommandRunner returns the default command runner
func NewCommandRunner() core.CommandRunner {
	return cmdRunner{}
}

// Run executes the command and returns its combined output. A run that hits
// the deadline returns a timeout error, while a non-zero exit returns a
// non-zero-exit error carrying the exit code and the output tail.
func (r cmdRunner) Run(timeout time.Duration, name string, arg ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, arg...).CombinedOutput()
	output := string(out)
	if err == nil {
		return output, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return output, core.NewTypedError(fmt.Sprintf("Command '%s' timed out after %s", name, timeout), core.ErrTimeout)
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		msg := fmt.Sprintf("Command '%s' exited with code %d", name, exitErr.ExitCode())
		if tail := outputTail(output); tail != "" {
			msg = msg + ": " + tail
		}
		return output, core.NewTypedError(msg, core.ErrNonZeroExit)
	}
	return output, core.NewTypedError(fmt.Sprintf("Command '%s' could not be run: %s", name, err.Error()), core.ErrToolUnavailable)
}

// outputTail returns the last non-empty line of a command's output, which
// for package managers usually carries the actual failure reason
func outputTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line != "" {
			return line
		}
	}
	return ""
}
