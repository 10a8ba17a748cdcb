package dot

import (
	"strconv"
	"strings"
)

// Attribute is a single DOT attribute as a (name, value) pair.
type Attribute struct {
	Name  string
	Value string
}

// AttributeBuilder collects DOT attributes in insertion order.
// Setting an attribute that is already present overwrites its value in
// place, so later style layers win without reordering the output.
//
// The zero value is not usable; create builders with [NewAttributeBuilder].
type AttributeBuilder struct {
	attrs []Attribute
	index map[string]int
}

// NewAttributeBuilder creates an empty attribute builder.
func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{index: make(map[string]int)}
}

// Add sets an arbitrary attribute. Chainable.
func (b *AttributeBuilder) Add(name, value string) *AttributeBuilder {
	if i, ok := b.index[name]; ok {
		b.attrs[i].Value = value
		return b
	}
	b.index[name] = len(b.attrs)
	b.attrs = append(b.attrs, Attribute{Name: name, Value: value})
	return b
}

// AddAll copies every attribute from other into b, in other's order.
func (b *AttributeBuilder) AddAll(other *AttributeBuilder) *AttributeBuilder {
	for _, a := range other.attrs {
		b.Add(a.Name, a.Value)
	}
	return b
}

// Shape sets the node shape ("box", "ellipse", "polygon").
func (b *AttributeBuilder) Shape(shape string) *AttributeBuilder {
	return b.Add("shape", shape)
}

// Style sets the line style ("solid", "dashed", "dotted", "rounded").
func (b *AttributeBuilder) Style(style string) *AttributeBuilder {
	return b.Add("style", style)
}

// Color sets the outline (node) or line (edge) color.
func (b *AttributeBuilder) Color(color string) *AttributeBuilder {
	return b.Add("color", color)
}

// FillColor sets the node fill color.
func (b *AttributeBuilder) FillColor(color string) *AttributeBuilder {
	return b.Add("fillcolor", color)
}

// FontName sets the label font.
func (b *AttributeBuilder) FontName(font string) *AttributeBuilder {
	return b.Add("fontname", font)
}

// FontSize sets the label font size in points.
func (b *AttributeBuilder) FontSize(size int) *AttributeBuilder {
	return b.Add("fontsize", strconv.Itoa(size))
}

// FontColor sets the label font color.
func (b *AttributeBuilder) FontColor(color string) *AttributeBuilder {
	return b.Add("fontcolor", color)
}

// Sides sets the number of sides for polygon-shaped nodes.
func (b *AttributeBuilder) Sides(sides int) *AttributeBuilder {
	return b.Add("sides", strconv.Itoa(sides))
}

// Label sets the display label. Newlines render as DOT line breaks.
func (b *AttributeBuilder) Label(label string) *AttributeBuilder {
	return b.Add("label", label)
}

// Get returns the value of a named attribute, if present.
func (b *AttributeBuilder) Get(name string) (string, bool) {
	i, ok := b.index[name]
	if !ok {
		return "", false
	}
	return b.attrs[i].Value, true
}

// Attributes returns the attribute pairs in insertion order.
// The returned slice is a copy and safe to retain.
func (b *AttributeBuilder) Attributes() []Attribute {
	out := make([]Attribute, len(b.attrs))
	copy(out, b.attrs)
	return out
}

// IsEmpty reports whether no attributes are set.
func (b *AttributeBuilder) IsEmpty() bool {
	return len(b.attrs) == 0
}

// String renders the attributes as a DOT attribute list, e.g.
// `[shape="box", color="red"]`. An empty builder renders as "".
func (b *AttributeBuilder) String() string {
	if len(b.attrs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range b.attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Name)
		sb.WriteByte('=')
		sb.WriteString(quote(a.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// quote wraps a value in DOT double quotes, escaping quotes, backslashes,
// and newlines (which Graphviz renders as line breaks).
func quote(v string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
