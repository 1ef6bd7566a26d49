package detect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/modelenv/gpusync/pkg/logging"
)

// ErrUnavailable indicates that no detector could produce a GPU model
// string. Callers are expected to fall back to the base profile.
var ErrUnavailable = errors.New("GPU detection unavailable")

// Detector reports the model name of the primary GPU on this host.
type Detector interface {
	// Detect returns a human-readable GPU model string, or an error wrapping
	// ErrUnavailable when the host hardware cannot be queried.
	Detect(ctx context.Context) (string, error)
}

// smiDetector queries nvidia-smi for the names of installed GPUs.
type smiDetector struct {
	log    logging.Logger
	binary string
}

// NewSMIDetector returns a Detector backed by the nvidia-smi tool. An empty
// binary selects the default name resolved from PATH.
func NewSMIDetector(log logging.Logger, binary string) Detector {
	if binary == "" {
		binary = "nvidia-smi"
	}
	return &smiDetector{log: log, binary: binary}
}

func (d *smiDetector) Detect(ctx context.Context) (string, error) {
	if _, err := exec.LookPath(d.binary); err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrUnavailable, d.binary)
	}
	cmd := exec.CommandContext(ctx, d.binary,
		"--query-gpu=name", "--format=csv,noheader,nounits")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s failed: %v", ErrUnavailable, d.binary, err)
	}
	name, err := ParseSMIOutput(string(out))
	if err != nil {
		return "", err
	}
	d.log.Debugf("nvidia-smi reported GPU: %s", name)
	return name, nil
}

// ParseSMIOutput extracts the first GPU name from nvidia-smi query output.
// Multi-GPU hosts report one name per line; the first device wins.
func ParseSMIOutput(out string) (string, error) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: empty nvidia-smi output", ErrUnavailable)
}

// chain tries each detector in order and returns the first result.
type chain struct {
	log       logging.Logger
	detectors []Detector
}

// NewChain combines detectors; the first one to produce a model string wins.
func NewChain(log logging.Logger, detectors ...Detector) Detector {
	return &chain{log: log, detectors: detectors}
}

func (c *chain) Detect(ctx context.Context) (string, error) {
	for _, d := range c.detectors {
		name, err := d.Detect(ctx)
		if err == nil {
			return name, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		c.log.Debugf("detector %T: %v", d, err)
	}
	return "", ErrUnavailable
}

// Default returns the standard detector chain: nvidia-smi first, then a PCI
// bus scan.
func Default(log logging.Logger) Detector {
	return NewChain(log, NewSMIDetector(log, ""), NewPCIDetector(log))
}
