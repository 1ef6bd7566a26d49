// Package resolve maps a requested GPU (explicit or detected) to a
// dependency profile and the uv command that installs it.
package resolve

import (
	"context"
	"errors"

	"github.com/modelenv/gpusync/pkg/detect"
	"github.com/modelenv/gpusync/pkg/logging"
	"github.com/modelenv/gpusync/pkg/profile"
	"github.com/modelenv/gpusync/pkg/uv"
)

// Request describes one resolution. An empty GPU name selects auto-detection.
type Request struct {
	// GPU is an explicit profile name. Empty means detect.
	GPU string
	// ExtraArgs are appended to the resolved uv command.
	ExtraArgs []string
}

// Result is the outcome of a resolution. Exactly one profile is always
// chosen.
type Result struct {
	// Profile is the chosen profile, possibly the base fallback.
	Profile profile.Profile
	// Detected is the raw GPU model string reported by detection, empty when
	// the profile was requested explicitly or detection failed.
	Detected string
	// Fallback reports that detection failed or matched no table entry and
	// the base profile was substituted.
	Fallback bool
	// Command is the uv invocation that installs the profile's dependencies.
	Command []string
}

// Resolver resolves requests against an immutable profile table.
type Resolver struct {
	log      logging.Logger
	table    *profile.Table
	detector detect.Detector
	strategy profile.MatchStrategy
	uvConfig *uv.Config
}

// New creates a Resolver. A nil strategy selects keyword matching and a nil
// uvConfig selects the defaults.
func New(log logging.Logger, table *profile.Table, detector detect.Detector,
	strategy profile.MatchStrategy, uvConfig *uv.Config,
) *Resolver {
	if uvConfig == nil {
		uvConfig = uv.NewDefaultConfig()
	}
	return &Resolver{
		log:      log,
		table:    table,
		detector: detector,
		strategy: strategy,
		uvConfig: uvConfig,
	}
}

// Resolve chooses exactly one profile for the request. Explicit names that
// miss the table fail with *profile.UnknownGPUError; detection failures
// degrade to the base profile with a warning.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	if req.GPU != "" {
		p, err := r.table.Lookup(req.GPU)
		if err != nil {
			return Result{}, err
		}
		return r.result(p, "", false, req.ExtraArgs), nil
	}

	detected, err := r.detector.Detect(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		r.log.Warnf("GPU detection failed, using the base profile: %v", err)
		return r.result(profile.Base, "", true, req.ExtraArgs), nil
	}

	p, matched := r.table.Match(detected, r.strategy)
	if !matched {
		r.log.Warnf("no profile matches GPU %q, using the base profile", detected)
	}
	return r.result(p, detected, !matched, req.ExtraArgs), nil
}

// Profiles returns the table entries in resolution order, for display.
func (r *Resolver) Profiles() []profile.Profile {
	return r.table.Profiles()
}

func (r *Resolver) result(p profile.Profile, detected string, fallback bool, extraArgs []string) Result {
	return Result{
		Profile:  p,
		Detected: detected,
		Fallback: fallback,
		Command:  r.uvConfig.SyncArgs(p, extraArgs),
	}
}
