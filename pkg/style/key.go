package style

import "strings"

// Wildcard is the marker that matches any value in a [Key] field.
const Wildcard = "*"

// Key matches artifacts by their coordinates. Each field is either a
// literal string or [Wildcard]. Keys are immutable values; structural
// equality (==) identifies the same rule across configurations, so a Key
// can be used directly as a map key.
type Key struct {
	GroupID    string
	ArtifactID string
	Scope      string
	Type       string
	Version    string
}

// NewKey builds a key from coordinate fields. Empty fields become
// [Wildcard], so the same factory serves both pattern keys read from
// configuration (absent field = match anything) and candidate keys built
// from real artifact coordinates.
func NewKey(groupID, artifactID, scope, typ, version string) Key {
	return Key{
		GroupID:    orWildcard(groupID),
		ArtifactID: orWildcard(artifactID),
		Scope:      orWildcard(scope),
		Type:       orWildcard(typ),
		Version:    orWildcard(version),
	}
}

// Matches reports whether the candidate's coordinates satisfy this key's
// pattern. Every field must be [Wildcard] or exactly equal the candidate's
// field, case-sensitive. There is no partial or glob matching: the match is
// intentionally whole-field.
func (k Key) Matches(candidate Key) bool {
	return matchField(k.GroupID, candidate.GroupID) &&
		matchField(k.ArtifactID, candidate.ArtifactID) &&
		matchField(k.Scope, candidate.Scope) &&
		matchField(k.Type, candidate.Type) &&
		matchField(k.Version, candidate.Version)
}

// String returns the "group:artifact:scope:type:version" form for
// diagnostics and error messages.
func (k Key) String() string {
	return strings.Join([]string{k.GroupID, k.ArtifactID, k.Scope, k.Type, k.Version}, ":")
}

func matchField(pattern, value string) bool {
	return pattern == Wildcard || pattern == value
}

func orWildcard(s string) string {
	if s == "" {
		return Wildcard
	}
	return s
}
