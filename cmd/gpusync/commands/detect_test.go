package commands

import (
	"fmt"
	"testing"

	"github.com/modelenv/gpusync/pkg/detect"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	runner := &recordingRunner{}
	out, err := execute(t, cannedDetector{name: "NVIDIA GeForce RTX 5090"}, runner, "detect")
	require.NoError(t, err)
	require.Contains(t, out, "GPU: NVIDIA GeForce RTX 5090")
	require.Contains(t, out, "Profile: rtx5090 (nightly channel)")
	require.Contains(t, out, "Sync command: uv sync")
	require.Empty(t, runner.argv, "detect must not execute any command")
}

func TestDetectFallback(t *testing.T) {
	detector := cannedDetector{err: fmt.Errorf("%w: no hardware", detect.ErrUnavailable)}
	out, err := execute(t, detector, &recordingRunner{}, "detect")
	require.NoError(t, err)
	require.Contains(t, out, "no supported GPU detected")
	require.Contains(t, out, "Profile: base (stable channel)")
}

func TestVerifyCommandFlags(t *testing.T) {
	cmd := newVerifyCmd()
	for _, flagName := range []string{"load-model", "model-name", "python"} {
		if cmd.Flags().Lookup(flagName) == nil {
			t.Errorf("Expected flag '--%s' not found", flagName)
		}
	}
	if cmd.Flags().Lookup("model-name").DefValue != "BAAI/bge-reranker-base" {
		t.Error("Expected the default reranker model name")
	}
}
