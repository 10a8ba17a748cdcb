// Package dot builds Graphviz DOT attribute lists and graph text.
//
// The style engine answers per-entity queries with an [AttributeBuilder]:
// an ordered set of (name, value) pairs that renders directly into DOT
// attribute syntax:
//
//	attrs := dot.NewAttributeBuilder().Shape("box").FillColor("#ffeb3b")
//	fmt.Println(attrs) // [shape="box", fillcolor="#ffeb3b"]
//
// [GraphWriter] assembles whole digraphs from node and edge attribute sets:
//
//	w := dot.NewGraphWriter("dependencies")
//	w.DefaultNode(nodeDefaults)
//	w.Node("com.example:app", appAttrs)
//	w.Edge("com.example:app", "com.example:lib", edgeAttrs)
//	fmt.Println(w.String())
//
// The package only produces DOT text. Layout and image rendering are the
// consumer's concern (e.g. piping the output through Graphviz).
package dot
