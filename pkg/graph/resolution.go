package graph

import (
	"fmt"
)

// NodeResolution classifies how a dependency edge's target was resolved:
// included in the effective dependency set, or omitted for a specific reason.
type NodeResolution int

// The closed set of resolution kinds.
const (
	ResolutionIncluded NodeResolution = iota
	ResolutionOmittedForDuplicate
	ResolutionOmittedForConflict
	ResolutionOmittedForCycle
)

// resolutionNames is the single source of truth for wire names.
// Names are kebab-case to match the style resource format.
var resolutionNames = map[NodeResolution]string{
	ResolutionIncluded:            "included",
	ResolutionOmittedForDuplicate: "omitted-for-duplicate",
	ResolutionOmittedForConflict:  "omitted-for-conflict",
	ResolutionOmittedForCycle:     "omitted-for-cycle",
}

var resolutionValues = func() map[string]NodeResolution {
	m := make(map[string]NodeResolution, len(resolutionNames))
	for r, name := range resolutionNames {
		m[name] = r
	}
	return m
}()

// String returns the kebab-case wire name of the resolution.
func (r NodeResolution) String() string {
	if name, ok := resolutionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("node-resolution(%d)", int(r))
}

// Valid reports whether r is one of the defined resolution kinds.
func (r NodeResolution) Valid() bool {
	_, ok := resolutionNames[r]
	return ok
}

// ParseNodeResolution converts a wire name ("included",
// "omitted-for-conflict", ...) to its NodeResolution value.
func ParseNodeResolution(name string) (NodeResolution, error) {
	if r, ok := resolutionValues[name]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown node resolution %q", name)
}

// ResolutionNames returns all defined wire names.
// Useful for error messages listing the valid options.
func ResolutionNames() []string {
	names := make([]string, 0, len(resolutionNames))
	for r := ResolutionIncluded; r.Valid(); r++ {
		names = append(names, r.String())
	}
	return names
}

// MarshalText implements encoding.TextMarshaler so resolutions serialize as
// their wire name, including as JSON map keys.
func (r NodeResolution) MarshalText() ([]byte, error) {
	name, ok := resolutionNames[r]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown node resolution %d", int(r))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *NodeResolution) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeResolution(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
