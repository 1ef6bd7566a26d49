package profile

import "strings"

// MatchStrategy decides whether a detected GPU model string belongs to a
// profile. The rule between free-form tool output and the table is kept
// pluggable so callers can tighten or loosen it.
type MatchStrategy interface {
	// Matches reports whether the detected string selects the profile.
	Matches(detected string, p Profile) bool
	// Name identifies the strategy in config files and logs.
	Name() string
}

// KeywordMatch is the default strategy: a profile matches when any of its
// keywords occurs as a case-insensitive substring of the detected string.
var KeywordMatch MatchStrategy = keywordMatch{}

type keywordMatch struct{}

func (keywordMatch) Name() string { return "keyword" }

func (keywordMatch) Matches(detected string, p Profile) bool {
	lower := strings.ToLower(detected)
	for _, kw := range p.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ExactMatch matches only when the detected string equals a keyword or the
// profile's display name, ignoring case and surrounding whitespace.
var ExactMatch MatchStrategy = exactMatch{}

type exactMatch struct{}

func (exactMatch) Name() string { return "exact" }

func (exactMatch) Matches(detected string, p Profile) bool {
	trimmed := strings.TrimSpace(detected)
	if strings.EqualFold(trimmed, p.DisplayName) {
		return true
	}
	for _, kw := range p.Keywords {
		if strings.EqualFold(trimmed, kw) {
			return true
		}
	}
	return false
}

// StrategyByName returns the strategy registered under name, defaulting to
// KeywordMatch for an empty name. Unknown names return false.
func StrategyByName(name string) (MatchStrategy, bool) {
	switch name {
	case "", "keyword":
		return KeywordMatch, true
	case "exact":
		return ExactMatch, true
	}
	return nil, false
}
