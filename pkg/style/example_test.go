package style_test

import (
	"fmt"

	"github.com/matzehuels/depstyle/pkg/dot"
	"github.com/matzehuels/depstyle/pkg/graph"
	"github.com/matzehuels/depstyle/pkg/style"
	"github.com/matzehuels/depstyle/pkg/style/resource"
)

func ExampleLoad() {
	src := `
default-node:
  shape: box
  color: black
node-styles:
  - group: com.google.guava
    node:
      shape: ellipse
      fill-color: gold
edge-styles-by-resolution:
  omitted-for-conflict:
    style: dashed
    color: red
`
	cfg, err := style.Load(resource.Bytes("styles.yaml", []byte(src)))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// A matched rule renders the full custom style
	fmt.Println(cfg.NodeAttributes("com.google.guava", "guava", "33.0.0", "jar", "compile", "compile"))

	// An unmatched artifact falls back to the default node: label only
	fmt.Println(cfg.NodeAttributes("org.slf4j", "slf4j-api", "2.0.9", "jar", "compile", "compile"))

	// Edge styling by resolution kind
	fmt.Println(cfg.EdgeAttributes(graph.ResolutionOmittedForConflict, "compile"))
	// Output:
	// [label="com.google.guava\nguava\n33.0.0\ncompile", shape="ellipse", fillcolor="gold"]
	// [label="org.slf4j\nslf4j-api\n2.0.9\ncompile"]
	// [style="dashed", color="red"]
}

func ExampleLoad_overrides() {
	main := `
default-node:
  shape: box
  color: black
`
	team := `
default-node:
  style: rounded
`
	cfg, err := style.Load(
		resource.Bytes("main.yaml", []byte(main)),
		resource.Bytes("team.yaml", []byte(team)),
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	// The override keeps the box variant, so unset fields inherit
	fmt.Println(cfg.DefaultNodeAttributes())
	// Output:
	// [shape="box", style="rounded", color="black"]
}

func ExampleConfiguration() {
	src := `
default-node:
  shape: box
default-edge:
  color: black
edge-styles-by-scope:
  test:
    style: dashed
`
	cfg, err := style.Load(resource.Bytes("styles.yaml", []byte(src)))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	app := graph.Artifact{GroupID: "com.example", ArtifactID: "app", Version: "1.0.0", Type: "jar", Scopes: []string{"compile"}}
	lib := graph.Artifact{GroupID: "junit", ArtifactID: "junit", Version: "4.13", Type: "jar", Scopes: []string{"test"}}

	w := dot.NewGraphWriter("deps")
	w.DefaultNode(cfg.DefaultNodeAttributes())
	w.DefaultEdge(cfg.DefaultEdgeAttributes())
	for _, a := range []graph.Artifact{app, lib} {
		w.Node(a.Coordinate(), cfg.NodeAttributes(a.GroupID, a.ArtifactID, a.Version, a.Type, a.ScopeLabel(), a.EffectiveScope()))
	}
	w.Edge(app.Coordinate(), lib.Coordinate(), cfg.EdgeAttributes(graph.ResolutionIncluded, lib.EffectiveScope()))

	fmt.Print(w.String())
	// Output:
	// digraph "deps" {
	//   node [shape="box"];
	//   edge [color="black"];
	//   "com.example:app" [label="com.example\napp\n1.0.0\ncompile"];
	//   "junit:junit" [label="junit\njunit\n4.13\ntest"];
	//   "com.example:app" -> "junit:junit" [style="dashed"];
	// }
}
