package graph

import "strings"

// Artifact identifies a dependency by its coordinates.
// Group and ArtifactID follow Maven-style reverse-domain naming
// ("com.google.guava:guava"), but the engine treats all fields as opaque
// strings, so any coordinate scheme works.
type Artifact struct {
	GroupID    string   // Organization or namespace ("com.google.guava")
	ArtifactID string   // Artifact name ("guava")
	Version    string   // Resolved version ("33.0.0")
	Type       string   // Packaging type ("jar", "war", ...)
	Scopes     []string // All scopes the artifact appears in
}

// Coordinate returns the "group:artifact" form used as a node identifier.
func (a Artifact) Coordinate() string {
	return a.GroupID + ":" + a.ArtifactID
}

// ScopeLabel returns the scopes joined for display ("compile/test"),
// or the empty string when no scopes are known.
func (a Artifact) ScopeLabel() string {
	return strings.Join(a.Scopes, "/")
}

// EffectiveScope returns the scope used for style matching: the first
// declared scope, or the empty string when none is known.
func (a Artifact) EffectiveScope() string {
	if len(a.Scopes) == 0 {
		return ""
	}
	return a.Scopes[0]
}
