// Package uv constructs and executes uv sync invocations for a resolved GPU
// profile.
package uv

import (
	"strings"

	"github.com/modelenv/gpusync/pkg/profile"
)

// Config is the configuration for uv invocations.
type Config struct {
	// Binary is the uv executable. Defaults to "uv" from PATH.
	Binary string
	// Args are base arguments appended to every sync invocation.
	Args []string
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{Binary: "uv"}
}

// SyncArgs builds the argv for syncing the dependencies of the given
// profile. extraArgs are appended verbatim after the profile arguments.
func (c *Config) SyncArgs(p profile.Profile, extraArgs []string) []string {
	binary := c.Binary
	if binary == "" {
		binary = "uv"
	}
	args := []string{binary, "sync"}
	if p.Group != "" {
		args = append(args, "--group", p.Group)
	}
	if p.IndexURL != "" {
		args = append(args, "--extra-index-url", p.IndexURL)
	}
	args = append(args, c.Args...)
	args = append(args, extraArgs...)
	return args
}

// CommandLine renders an argv as a copy-pasteable shell command. Arguments
// containing whitespace are quoted.
func CommandLine(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		if strings.ContainsAny(arg, " \t") {
			quoted = append(quoted, "'"+arg+"'")
		} else {
			quoted = append(quoted, arg)
		}
	}
	return strings.Join(quoted, " ")
}
