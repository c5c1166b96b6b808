package probing

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultShell runs command strings handed to ShellRunner.
const DefaultShell = "/bin/sh"

// Runner executes a shell command string and returns its standard output.
// On any failure the output is empty and err describes the cause.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// ShellRunner runs commands through a POSIX shell.
type ShellRunner struct {
	Shell   string
	Timeout time.Duration
}

// NewShellRunner creates a runner bounded by timeout. A zero timeout waits
// for the command indefinitely.
func NewShellRunner(timeout time.Duration) *ShellRunner {
	return &ShellRunner{Shell: DefaultShell, Timeout: timeout}
}

func (r *ShellRunner) Run(ctx context.Context, command string) (string, error) {
	if command == "" {
		return "", errors.New("empty command")
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	shell := r.Shell
	if shell == "" {
		shell = DefaultShell
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	// Pipelines leave children holding stdout after the shell is killed.
	cmd.WaitDelay = time.Second

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("command %q: %w", command, ctxErr)
		}
		return "", fmt.Errorf("command %q: %w", command, err)
	}
	return string(out), nil
}
