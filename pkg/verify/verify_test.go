package verify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelenv/gpusync/pkg/logging"
)

func TestArgs(t *testing.T) {
	v := New(logging.NewDiscard(), "", nil)

	args := v.Args(Options{})
	if args[0] != "python3" {
		t.Errorf("expected default python3 binary, got %q", args[0])
	}
	if args[1] != "-c" {
		t.Errorf("expected -c invocation, got %q", args[1])
	}
	if len(args) != 3 {
		t.Errorf("expected no model argument without --load-model, got %v args", len(args))
	}
	if !strings.Contains(args[2], "import torch") {
		t.Error("expected the script to import torch")
	}
}

func TestArgsLoadModel(t *testing.T) {
	v := New(logging.NewDiscard(), "python3.12", nil)

	args := v.Args(Options{LoadModel: true})
	if args[0] != "python3.12" {
		t.Errorf("expected custom binary, got %q", args[0])
	}
	if args[len(args)-1] != DefaultModelName {
		t.Errorf("expected default model name as final argument, got %q", args[len(args)-1])
	}

	args = v.Args(Options{LoadModel: true, ModelName: "BAAI/bge-reranker-large"})
	if args[len(args)-1] != "BAAI/bge-reranker-large" {
		t.Errorf("expected custom model name, got %q", args[len(args)-1])
	}
}

func TestRunMissingInterpreter(t *testing.T) {
	v := New(logging.NewDiscard(), "definitely-not-python-xyz", &strings.Builder{})
	err := v.Run(context.Background(), Options{})
	if err == nil {
		t.Fatal("expected error for missing interpreter")
	}
	var verifyErr *Error
	if errors.As(err, &verifyErr) {
		t.Fatal("missing interpreter must not be reported as a verification failure")
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{ExitCode: 1, Output: "FAIL: CUDA is not available"}
	if !strings.Contains(err.Error(), "inspect the installation") {
		t.Errorf("expected inspection hint in error message, got %q", err.Error())
	}
}
