package probing

import (
	"context"
	"errors"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if !Exists(DefaultShell) {
		t.Skipf("Skipping: %s not available", DefaultShell)
	}
}

func TestShellRunnerOutput(t *testing.T) {
	requireShell(t)
	r := NewShellRunner(5 * time.Second)

	out, err := r.Run(context.Background(), "printf '  3 ESTABLISHED\\n2 LISTEN\\n' | sort -r")
	if err != nil {
		t.Fatal(err)
	}
	if out != "2 LISTEN\n  3 ESTABLISHED\n" {
		t.Errorf("Run() = %q", out)
	}
}

func TestShellRunnerFailures(t *testing.T) {
	requireShell(t)
	r := NewShellRunner(5 * time.Second)

	tests := []struct {
		name    string
		command string
	}{
		{"non-zero exit", "echo partial; exit 3"},
		{"missing binary", "definitely-not-a-real-binary-xyz"},
		{"empty command", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Run(context.Background(), tt.command)
			if err == nil {
				t.Error("expected error")
			}
			if out != "" {
				t.Errorf("expected empty output on failure, got %q", out)
			}
		})
	}
}

func TestShellRunnerMissingShell(t *testing.T) {
	r := &ShellRunner{Shell: "/nonexistent/sh"}
	out, err := r.Run(context.Background(), "echo hi")
	if err == nil || out != "" {
		t.Errorf("Run() = %q, %v; want empty output and error", out, err)
	}
}

func TestShellRunnerTimeout(t *testing.T) {
	requireShell(t)
	r := NewShellRunner(100 * time.Millisecond)

	start := time.Now()
	out, err := r.Run(context.Background(), "sleep 5")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want DeadlineExceeded", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("timeout not enforced, took %v", elapsed)
	}
}
