// Package verify confirms that the installed PyTorch stack loads and can
// reach the GPU, by driving the Python interpreter.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/modelenv/gpusync/pkg/logging"
	"github.com/modelenv/gpusync/pkg/tailbuffer"
)

// DefaultModelName is the model loaded by the optional model check.
const DefaultModelName = "BAAI/bge-reranker-base"

// outputTailSize bounds how much trailing interpreter output is kept for
// error reporting.
const outputTailSize = 4096

// script is the verification program. The optional model name arrives via
// argv to avoid quoting it into the source.
const script = `
import sys

def fail(msg):
    print("FAIL: " + msg)
    sys.exit(1)

try:
    import torch
except ImportError as exc:
    fail("PyTorch import failed: %s" % exc)

print("PyTorch version: %s" % torch.__version__)
if not torch.cuda.is_available():
    fail("CUDA is not available")
print("CUDA version: %s" % torch.version.cuda)
count = torch.cuda.device_count()
print("GPU devices: %d" % count)
for i in range(count):
    props = torch.cuda.get_device_properties(i)
    print("  GPU %d: %s (%.1f GB)" % (i, torch.cuda.get_device_name(i), props.total_memory / 1024**3))

x = torch.randn(1000, 1000).cuda()
y = torch.randn(1000, 1000).cuda()
z = torch.matmul(x, y)
print("GPU matmul check passed: %s" % (tuple(z.shape),))

if len(sys.argv) > 1:
    model_name = sys.argv[1]
    try:
        from sentence_transformers import CrossEncoder
    except ImportError as exc:
        fail("sentence-transformers import failed: %s" % exc)
    print("Loading model %s..." % model_name)
    model = CrossEncoder(model_name)
    scores = model.predict([("how do I apply for a card?", "card application process")])
    print("Model inference check passed, sample score: %.4f" % scores[0])
`

// Options control the verification pass.
type Options struct {
	// LoadModel also loads a reranker model and runs one inference.
	LoadModel bool
	// ModelName is the model to load. Empty selects DefaultModelName.
	ModelName string
}

// Verifier runs the verification program in a Python interpreter.
type Verifier struct {
	log    logging.Logger
	binary string
	stdout io.Writer
}

// New creates a Verifier. An empty binary selects "python3" from PATH and a
// nil stdout selects the parent process stream.
func New(log logging.Logger, binary string, stdout io.Writer) *Verifier {
	if binary == "" {
		binary = "python3"
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Verifier{log: log, binary: binary, stdout: stdout}
}

// Args builds the interpreter argv for the given options.
func (v *Verifier) Args(opts Options) []string {
	args := []string{v.binary, "-c", script}
	if opts.LoadModel {
		name := opts.ModelName
		if name == "" {
			name = DefaultModelName
		}
		args = append(args, name)
	}
	return args
}

// Run executes the verification program once. Failures are returned as
// *Error carrying the interpreter's exit code and trailing output.
func (v *Verifier) Run(ctx context.Context, opts Options) error {
	argv := v.Args(opts)
	v.log.Debugf("verifying with: %s -c <script>", v.binary)

	tail := tailbuffer.NewTailBuffer(outputTailSize)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = io.MultiWriter(v.stdout, tail)
	cmd.Stderr = io.MultiWriter(v.stdout, tail)

	if err := cmd.Run(); err != nil {
		output, _ := io.ReadAll(tail)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Error{
				ExitCode: exitErr.ExitCode(),
				Output:   strings.TrimSpace(string(output)),
				Err:      err,
			}
		}
		return fmt.Errorf("failed to run %s: %w", v.binary, err)
	}
	return nil
}

// Error reports a failed verification pass.
type Error struct {
	ExitCode int
	Output   string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("PyTorch verification failed (exit code %d); inspect the installation with `uv pip list`", e.ExitCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}
