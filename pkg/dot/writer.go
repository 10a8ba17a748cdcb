package dot

import (
	"bytes"
	"fmt"
)

// GraphWriter assembles a DOT digraph from styled nodes and edges.
//
// Statements are emitted in call order, so set graph-wide defaults with
// [GraphWriter.DefaultNode] and [GraphWriter.DefaultEdge] before adding
// nodes and edges.
type GraphWriter struct {
	buf bytes.Buffer
}

// NewGraphWriter starts a digraph with the given name.
func NewGraphWriter(name string) *GraphWriter {
	w := &GraphWriter{}
	fmt.Fprintf(&w.buf, "digraph %s {\n", quote(name))
	return w
}

// DefaultNode emits graph-wide node defaults (`node [...]`).
func (w *GraphWriter) DefaultNode(attrs *AttributeBuilder) {
	if !attrs.IsEmpty() {
		fmt.Fprintf(&w.buf, "  node %s;\n", attrs)
	}
}

// DefaultEdge emits graph-wide edge defaults (`edge [...]`).
func (w *GraphWriter) DefaultEdge(attrs *AttributeBuilder) {
	if !attrs.IsEmpty() {
		fmt.Fprintf(&w.buf, "  edge %s;\n", attrs)
	}
}

// Node emits a node statement with its attribute list.
func (w *GraphWriter) Node(id string, attrs *AttributeBuilder) {
	if attrs.IsEmpty() {
		fmt.Fprintf(&w.buf, "  %s;\n", quote(id))
		return
	}
	fmt.Fprintf(&w.buf, "  %s %s;\n", quote(id), attrs)
}

// Edge emits an edge statement with its attribute list.
func (w *GraphWriter) Edge(from, to string, attrs *AttributeBuilder) {
	if attrs.IsEmpty() {
		fmt.Fprintf(&w.buf, "  %s -> %s;\n", quote(from), quote(to))
		return
	}
	fmt.Fprintf(&w.buf, "  %s -> %s %s;\n", quote(from), quote(to), attrs)
}

// String closes the digraph and returns the complete DOT source.
// The writer can keep accumulating statements after a call to String.
func (w *GraphWriter) String() string {
	return w.buf.String() + "}\n"
}
