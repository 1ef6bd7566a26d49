package profile

import "strings"

// Channel identifies the package release stream a profile installs from.
type Channel string

const (
	// ChannelStable installs released PyTorch wheels.
	ChannelStable Channel = "stable"
	// ChannelNightly installs nightly PyTorch wheels.
	ChannelNightly Channel = "nightly"
)

// Profile is a named bundle of dependency-channel configuration for one GPU
// family.
type Profile struct {
	// Name is the symbolic profile name, e.g. "rtx5090".
	Name string
	// DisplayName is the marketing name shown to users.
	DisplayName string
	// Channel is the package release stream.
	Channel Channel
	// IndexURL is the package index the wheels are installed from. Empty for
	// the base profile, which uses the project's default index.
	IndexURL string
	// Group is the uv dependency group to sync. Empty for the base profile.
	Group string
	// Keywords are matched against detected GPU model strings.
	Keywords []string
	// Description is a one-line summary shown by list-gpus.
	Description string
}

// IsBase reports whether this is the fallback profile with no dependency
// group of its own.
func (p Profile) IsBase() bool {
	return p.Group == ""
}

// Base is the fallback profile applied when no table entry matches.
var Base = Profile{
	Name:        "base",
	DisplayName: "Base configuration",
	Channel:     ChannelStable,
	Description: "Default dependencies without a GPU-specific group",
}

// defaultProfiles is the built-in table, in resolution order. First match
// wins when a detected GPU string matches multiple entries.
var defaultProfiles = []Profile{
	{
		Name:        "rtx5090",
		DisplayName: "NVIDIA GeForce RTX 5090",
		Channel:     ChannelNightly,
		IndexURL:    "https://download.pytorch.org/whl/nightly/cu128",
		Group:       "rtx5090",
		Keywords:    []string{"rtx 5090", "geforce rtx 5090"},
		Description: "Nightly PyTorch with the latest CUDA support",
	},
	{
		Name:        "rtx4090",
		DisplayName: "NVIDIA GeForce RTX 4090",
		Channel:     ChannelStable,
		IndexURL:    "https://download.pytorch.org/whl/cu124",
		Group:       "rtx4090",
		Keywords:    []string{"rtx 4090", "geforce rtx 4090"},
		Description: "Stable PyTorch",
	},
	{
		Name:        "rtx3090",
		DisplayName: "NVIDIA GeForce RTX 3090",
		Channel:     ChannelStable,
		IndexURL:    "https://download.pytorch.org/whl/cu124",
		Group:       "rtx3090",
		Keywords:    []string{"rtx 3090", "geforce rtx 3090"},
		Description: "Stable PyTorch",
	},
	{
		Name:        "rtx2080",
		DisplayName: "NVIDIA GeForce RTX 2080",
		Channel:     ChannelStable,
		IndexURL:    "https://download.pytorch.org/whl/cu118",
		Group:       "rtx2080",
		Keywords:    []string{"rtx 2080", "geforce rtx 2080"},
		Description: "Stable PyTorch",
	},
}

// Table is an immutable, ordered set of profiles.
type Table struct {
	profiles []Profile
}

// DefaultTable returns the built-in profile table.
func DefaultTable() *Table {
	return NewTable(defaultProfiles)
}

// NewTable builds a table from the given profiles, preserving order. The
// slice is copied so callers cannot mutate the table afterwards.
func NewTable(profiles []Profile) *Table {
	return &Table{profiles: append([]Profile(nil), profiles...)}
}

// Profiles returns the table entries in resolution order.
func (t *Table) Profiles() []Profile {
	return append([]Profile(nil), t.profiles...)
}

// Names returns the profile names in resolution order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.profiles))
	for _, p := range t.profiles {
		names = append(names, p.Name)
	}
	return names
}

// Lookup finds a profile by its symbolic name, case-insensitively. A miss
// returns an UnknownGPUError naming the identifier and the valid options.
func (t *Table) Lookup(name string) (Profile, error) {
	for _, p := range t.profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, &UnknownGPUError{Name: name, Known: t.Names()}
}

// Match resolves a detected GPU model string to a profile using the given
// strategy. The second return value reports whether a table entry matched;
// when false the base profile is returned.
func (t *Table) Match(detected string, strategy MatchStrategy) (Profile, bool) {
	if strategy == nil {
		strategy = KeywordMatch
	}
	for _, p := range t.profiles {
		if strategy.Matches(detected, p) {
			return p, true
		}
	}
	return Base, false
}
