package resource

import "embed"

//go:embed default-style.yaml
var builtin embed.FS

// BuiltIn returns the embedded default style configuration: plain boxes for
// nodes, solid black edges, and warning styles for omitted dependencies.
// Use it as the main resource and layer custom resources over it.
func BuiltIn() Resource {
	return FS(builtin, "default-style.yaml")
}
