// Package config loads the optional gpusync configuration file. All settings
// have working defaults; the file only overrides them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/modelenv/gpusync/pkg/profile"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "gpusync.toml"

// Config mirrors the TOML file layout.
type Config struct {
	// Match selects the detection matching strategy ("keyword" or "exact").
	Match string `toml:"match"`
	// UV configures the package-manager invocation.
	UV UVConfig `toml:"uv"`
	// Python configures the verification interpreter.
	Python PythonConfig `toml:"python"`
	// Profiles are additional or overriding profile entries. They are
	// consulted before the built-in table.
	Profiles []ProfileConfig `toml:"profiles"`
}

// UVConfig overrides how uv is invoked.
type UVConfig struct {
	Binary string   `toml:"binary"`
	Args   []string `toml:"args"`
}

// PythonConfig overrides which interpreter runs verification.
type PythonConfig struct {
	Binary string `toml:"binary"`
}

// ProfileConfig is one user-defined profile table entry.
type ProfileConfig struct {
	Name        string   `toml:"name"`
	DisplayName string   `toml:"display_name"`
	Channel     string   `toml:"channel"`
	IndexURL    string   `toml:"index_url"`
	Group       string   `toml:"group"`
	Keywords    []string `toml:"keywords"`
	Description string   `toml:"description"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// Load reads the config file at path. An empty path searches the default
// locations; a missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findDefault()
		if path == "" {
			return Default(), nil
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func findDefault() string {
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, ".config", "gpusync", "config.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

func (c *Config) validate() error {
	if _, ok := profile.StrategyByName(c.Match); !ok {
		return fmt.Errorf("unknown match strategy %q", c.Match)
	}
	seen := make(map[string]bool, len(c.Profiles))
	for _, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile entry without a name")
		}
		// Lookup is case-insensitive, so duplicate detection must be too.
		lower := strings.ToLower(p.Name)
		if seen[lower] {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[lower] = true
		switch profile.Channel(p.Channel) {
		case profile.ChannelStable, profile.ChannelNightly:
		default:
			return fmt.Errorf("profile %q: unknown channel %q", p.Name, p.Channel)
		}
	}
	return nil
}

// Strategy returns the configured matching strategy.
func (c *Config) Strategy() profile.MatchStrategy {
	strategy, _ := profile.StrategyByName(c.Match)
	return strategy
}

// Table merges user-defined profiles with the built-in table. User entries
// replace built-in entries with the same name and are consulted first
// otherwise.
func (c *Config) Table() *profile.Table {
	if len(c.Profiles) == 0 {
		return profile.DefaultTable()
	}

	user := make([]profile.Profile, 0, len(c.Profiles))
	replaced := make(map[string]profile.Profile, len(c.Profiles))
	for _, p := range c.Profiles {
		converted := profile.Profile{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Channel:     profile.Channel(p.Channel),
			IndexURL:    p.IndexURL,
			Group:       p.Group,
			Keywords:    p.Keywords,
			Description: p.Description,
		}
		replaced[p.Name] = converted
		user = append(user, converted)
	}

	builtins := profile.DefaultTable().Profiles()
	overridden := make(map[string]bool, len(builtins))
	for _, builtin := range builtins {
		if _, ok := replaced[builtin.Name]; ok {
			overridden[builtin.Name] = true
		}
	}

	merged := make([]profile.Profile, 0, len(user)+len(builtins))
	for _, p := range user {
		if !overridden[p.Name] {
			merged = append(merged, p)
		}
	}
	for _, builtin := range builtins {
		if override, ok := replaced[builtin.Name]; ok {
			merged = append(merged, override)
			continue
		}
		merged = append(merged, builtin)
	}
	return profile.NewTable(merged)
}
