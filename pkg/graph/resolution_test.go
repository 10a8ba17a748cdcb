package graph

import (
	"encoding/json"
	"testing"
)

func TestNodeResolutionString(t *testing.T) {
	tests := []struct {
		name       string
		resolution NodeResolution
		want       string
	}{
		{"Included", ResolutionIncluded, "included"},
		{"OmittedForDuplicate", ResolutionOmittedForDuplicate, "omitted-for-duplicate"},
		{"OmittedForConflict", ResolutionOmittedForConflict, "omitted-for-conflict"},
		{"OmittedForCycle", ResolutionOmittedForCycle, "omitted-for-cycle"},
		{"Unknown", NodeResolution(99), "node-resolution(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resolution.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNodeResolution(t *testing.T) {
	for _, name := range ResolutionNames() {
		r, err := ParseNodeResolution(name)
		if err != nil {
			t.Fatalf("ParseNodeResolution(%q): %v", name, err)
		}
		if r.String() != name {
			t.Errorf("round trip of %q = %q", name, r.String())
		}
	}

	if _, err := ParseNodeResolution("omitted-for-vibes"); err == nil {
		t.Error("ParseNodeResolution with unknown name: expected error")
	}
}

func TestNodeResolutionJSONKeys(t *testing.T) {
	in := map[NodeResolution]string{
		ResolutionIncluded:           "solid",
		ResolutionOmittedForConflict: "dashed",
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out map[NodeResolution]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[ResolutionIncluded] != "solid" {
		t.Errorf("included = %q, want solid", out[ResolutionIncluded])
	}
	if out[ResolutionOmittedForConflict] != "dashed" {
		t.Errorf("omitted-for-conflict = %q, want dashed", out[ResolutionOmittedForConflict])
	}
}

func TestArtifact(t *testing.T) {
	a := Artifact{
		GroupID:    "com.google.guava",
		ArtifactID: "guava",
		Version:    "33.0.0",
		Type:       "jar",
		Scopes:     []string{"compile", "test"},
	}

	if got := a.Coordinate(); got != "com.google.guava:guava" {
		t.Errorf("Coordinate() = %q", got)
	}
	if got := a.ScopeLabel(); got != "compile/test" {
		t.Errorf("ScopeLabel() = %q", got)
	}
	if got := a.EffectiveScope(); got != "compile" {
		t.Errorf("EffectiveScope() = %q", got)
	}

	empty := Artifact{GroupID: "g", ArtifactID: "a"}
	if got := empty.EffectiveScope(); got != "" {
		t.Errorf("EffectiveScope() with no scopes = %q, want empty", got)
	}
	if got := empty.ScopeLabel(); got != "" {
		t.Errorf("ScopeLabel() with no scopes = %q, want empty", got)
	}
}
