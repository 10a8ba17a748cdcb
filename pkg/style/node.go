package style

import (
	"strings"

	"github.com/matzehuels/depstyle/pkg/dot"
)

// Node shapes form a closed variant set. A NodeStyle's shape decides which
// of its fields are meaningful (sides only applies to polygons) and gates
// merging: only same-shape styles merge field by field.
const (
	ShapeBox     = "box"
	ShapeEllipse = "ellipse"
	ShapePolygon = "polygon"
)

var nodeShapes = map[string]bool{
	ShapeBox:     true,
	ShapeEllipse: true,
	ShapePolygon: true,
}

// ValidShape reports whether shape names one of the defined node variants.
// The empty string is valid and means "inherit the prior variant".
func ValidShape(shape string) bool {
	return shape == "" || nodeShapes[shape]
}

// defaultLabelTemplate renders coordinates one per line. Lines whose
// placeholders resolve to nothing are dropped.
const defaultLabelTemplate = "{group}\n{artifact}\n{version}\n{scopes}"

// NodeStyle holds the visual attributes of a graph node. Every field is
// optional; an unset field means "inherit/default" and contributes nothing
// to the rendered attribute set.
type NodeStyle struct {
	Shape     string `yaml:"shape,omitempty" toml:"shape,omitempty" json:"shape,omitempty"`
	Style     string `yaml:"style,omitempty" toml:"style,omitempty" json:"style,omitempty"`
	Color     string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	FillColor string `yaml:"fill-color,omitempty" toml:"fill-color,omitempty" json:"fill-color,omitempty"`
	FontName  string `yaml:"font-name,omitempty" toml:"font-name,omitempty" json:"font-name,omitempty"`
	FontSize  *int   `yaml:"font-size,omitempty" toml:"font-size,omitempty" json:"font-size,omitempty"`
	FontColor string `yaml:"font-color,omitempty" toml:"font-color,omitempty" json:"font-color,omitempty"`
	Label     string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Sides     *int   `yaml:"sides,omitempty" toml:"sides,omitempty" json:"sides,omitempty"`
}

// effectiveShape returns the style's variant, defaulting to box.
func (n *NodeStyle) effectiveShape() string {
	if n.Shape == "" {
		return ShapeBox
	}
	return n.Shape
}

// clone returns an independent copy of n.
func (n *NodeStyle) clone() *NodeStyle {
	c := *n
	if n.FontSize != nil {
		v := *n.FontSize
		c.FontSize = &v
	}
	if n.Sides != nil {
		v := *n.Sides
		c.Sides = &v
	}
	return &c
}

// Merge overlays other's set fields onto n; fields other leaves unset keep
// n's value. When other names a different shape variant, n is replaced
// wholesale: switching variants discards the prior variant's attributes.
func (n *NodeStyle) Merge(other *NodeStyle) {
	if other == nil {
		return
	}
	if other.Shape != "" && other.Shape != n.effectiveShape() {
		*n = *other.clone()
		return
	}
	mergeString(&n.Shape, other.Shape)
	mergeString(&n.Style, other.Style)
	mergeString(&n.Color, other.Color)
	mergeString(&n.FillColor, other.FillColor)
	mergeString(&n.FontName, other.FontName)
	mergeInt(&n.FontSize, other.FontSize)
	mergeString(&n.FontColor, other.FontColor)
	mergeString(&n.Label, other.Label)
	mergeInt(&n.Sides, other.Sides)
}

// Attributes renders the style's variant and explicit fields.
// Used for graph-wide node defaults and for custom-styled nodes.
func (n *NodeStyle) Attributes() *dot.AttributeBuilder {
	b := dot.NewAttributeBuilder().Shape(n.effectiveShape())
	if n.effectiveShape() == ShapePolygon && n.Sides != nil {
		b.Sides(*n.Sides)
	}
	if n.Style != "" {
		b.Style(n.Style)
	}
	if n.Color != "" {
		b.Color(n.Color)
	}
	if n.FillColor != "" {
		b.FillColor(n.FillColor)
	}
	if n.FontName != "" {
		b.FontName(n.FontName)
	}
	if n.FontSize != nil {
		b.FontSize(*n.FontSize)
	}
	if n.FontColor != "" {
		b.FontColor(n.FontColor)
	}
	return b
}

// ArtifactAttributes renders the attribute set for one artifact's node.
// The label comes from the style's template (or the default template) with
// {group}, {artifact}, {version}, and {scopes} substituted. When custom is
// true the node matched a non-default rule and the full style attribute set
// is included so the node stands out from graph-wide defaults.
func (n *NodeStyle) ArtifactAttributes(groupID, artifactID, version, scopes string, custom bool) *dot.AttributeBuilder {
	b := dot.NewAttributeBuilder().Label(n.renderLabel(groupID, artifactID, version, scopes))
	if custom {
		b.AddAll(n.Attributes())
	}
	return b
}

func (n *NodeStyle) renderLabel(groupID, artifactID, version, scopes string) string {
	tmpl := n.Label
	if tmpl == "" {
		tmpl = defaultLabelTemplate
	}
	label := strings.NewReplacer(
		"{group}", groupID,
		"{artifact}", artifactID,
		"{version}", version,
		"{scopes}", scopes,
	).Replace(tmpl)

	// Drop lines that resolved to nothing
	var kept []string
	for _, line := range strings.Split(label, "\n") {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergeInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}
