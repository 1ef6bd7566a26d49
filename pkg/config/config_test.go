package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modelenv/gpusync/pkg/profile"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gpusync.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Strategy() == nil {
		t.Error("expected a default match strategy")
	}
	table := cfg.Table()
	if len(table.Profiles()) != len(profile.DefaultTable().Profiles()) {
		t.Error("expected the built-in table without user profiles")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
match = "exact"

[uv]
binary = "/opt/uv/bin/uv"
args = ["--frozen"]

[python]
binary = "python3.12"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UV.Binary != "/opt/uv/bin/uv" {
		t.Errorf("expected uv binary override, got %q", cfg.UV.Binary)
	}
	if len(cfg.UV.Args) != 1 || cfg.UV.Args[0] != "--frozen" {
		t.Errorf("expected uv args override, got %v", cfg.UV.Args)
	}
	if cfg.Python.Binary != "python3.12" {
		t.Errorf("expected python binary override, got %q", cfg.Python.Binary)
	}
	if cfg.Strategy().Name() != "exact" {
		t.Errorf("expected exact strategy, got %q", cfg.Strategy().Name())
	}
}

func TestLoadUserProfiles(t *testing.T) {
	path := writeConfig(t, `
[[profiles]]
name = "a100"
display_name = "NVIDIA A100"
channel = "stable"
index_url = "https://download.pytorch.org/whl/cu124"
group = "a100"
keywords = ["a100"]

[[profiles]]
name = "rtx4090"
display_name = "NVIDIA GeForce RTX 4090"
channel = "nightly"
index_url = "https://download.pytorch.org/whl/nightly/cu128"
group = "rtx4090"
keywords = ["rtx 4090"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table := cfg.Table()

	// New entries are consulted before built-ins.
	if table.Names()[0] != "a100" {
		t.Errorf("expected user profile first, got %v", table.Names())
	}

	// Overrides replace built-ins in place.
	p, err := table.Lookup("rtx4090")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Channel != profile.ChannelNightly {
		t.Errorf("expected override to move rtx4090 to nightly, got %s", p.Channel)
	}
	count := 0
	for _, name := range table.Names() {
		if name == "rtx4090" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected rtx4090 exactly once after override, got %d", count)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown strategy",
			content: `match = "fuzzy"`,
		},
		{
			name: "profile without name",
			content: `
[[profiles]]
channel = "stable"
`,
		},
		{
			name: "unknown channel",
			content: `
[[profiles]]
name = "x"
channel = "beta"
`,
		},
		{
			name: "duplicate profile names",
			content: `
[[profiles]]
name = "a100"
channel = "stable"

[[profiles]]
name = "A100"
channel = "nightly"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
