package uv

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/modelenv/gpusync/pkg/logging"
	"github.com/modelenv/gpusync/pkg/profile"
)

func containsArg(args []string, arg string) bool {
	for _, a := range args {
		if a == arg {
			return true
		}
	}
	return false
}

func TestSyncArgs(t *testing.T) {
	config := NewDefaultConfig()

	p := profile.Profile{
		Name:     "rtx5090",
		Channel:  profile.ChannelNightly,
		IndexURL: "https://download.pytorch.org/whl/nightly/cu128",
		Group:    "rtx5090",
	}
	args := config.SyncArgs(p, nil)

	if args[0] != "uv" || args[1] != "sync" {
		t.Errorf("expected argv to start with uv sync, got %v", args[:2])
	}
	if !containsArg(args, "--group") || !containsArg(args, "rtx5090") {
		t.Errorf("expected --group rtx5090 in argv, got %v", args)
	}
	if !containsArg(args, "https://download.pytorch.org/whl/nightly/cu128") {
		t.Errorf("expected nightly index URL in argv, got %v", args)
	}
}

func TestSyncArgsBaseProfile(t *testing.T) {
	args := NewDefaultConfig().SyncArgs(profile.Base, nil)
	expected := []string{"uv", "sync"}
	if len(args) != len(expected) {
		t.Fatalf("expected bare uv sync for base profile, got %v", args)
	}
	for i := range expected {
		if args[i] != expected[i] {
			t.Errorf("expected argv %v, got %v", expected, args)
		}
	}
}

func TestSyncArgsExtraArgs(t *testing.T) {
	p := profile.Profile{Name: "rtx4090", Group: "rtx4090"}
	args := NewDefaultConfig().SyncArgs(p, []string{"--frozen", "--no-dev"})
	if !containsArg(args, "--frozen") || !containsArg(args, "--no-dev") {
		t.Errorf("expected extra args appended, got %v", args)
	}
	// Extra args must come after the profile arguments.
	if args[len(args)-1] != "--no-dev" {
		t.Errorf("expected extra args at the end, got %v", args)
	}
}

func TestSyncArgsCustomBinary(t *testing.T) {
	config := &Config{Binary: "/opt/uv/bin/uv"}
	args := config.SyncArgs(profile.Base, nil)
	if args[0] != "/opt/uv/bin/uv" {
		t.Errorf("expected custom binary, got %q", args[0])
	}
}

func TestCommandLine(t *testing.T) {
	line := CommandLine([]string{"uv", "sync", "--group", "rtx5090"})
	if line != "uv sync --group rtx5090" {
		t.Errorf("unexpected command line %q", line)
	}
	quoted := CommandLine([]string{"echo", "hello world"})
	if quoted != "echo 'hello world'" {
		t.Errorf("expected whitespace argument to be quoted, got %q", quoted)
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	r := NewRunner(logging.NewDiscard(), &strings.Builder{}, &strings.Builder{})
	err := r.Run(context.Background(), []string{"definitely-not-a-real-binary-xyz"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected exec.ErrNotFound, got %v", err)
	}
}

func TestRunnerEmptyCommand(t *testing.T) {
	r := NewRunner(logging.NewDiscard(), nil, nil)
	if err := r.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestExitCode(t *testing.T) {
	if code := ExitCode(nil); code != 0 {
		t.Errorf("expected exit code 0 for nil error, got %d", code)
	}
	if code := ExitCode(errors.New("some failure")); code != 1 {
		t.Errorf("expected exit code 1 for generic error, got %d", code)
	}
}
