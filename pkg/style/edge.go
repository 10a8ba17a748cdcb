package style

import "github.com/matzehuels/depstyle/pkg/dot"

// EdgeStyle holds the visual attributes of a dependency edge. Edges have no
// variant polymorphism, so merging is a plain field-wise overlay. Every
// field is optional; unset fields contribute nothing to the attribute set.
type EdgeStyle struct {
	Style     string `yaml:"style,omitempty" toml:"style,omitempty" json:"style,omitempty"`
	Color     string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	FontName  string `yaml:"font-name,omitempty" toml:"font-name,omitempty" json:"font-name,omitempty"`
	FontSize  *int   `yaml:"font-size,omitempty" toml:"font-size,omitempty" json:"font-size,omitempty"`
	FontColor string `yaml:"font-color,omitempty" toml:"font-color,omitempty" json:"font-color,omitempty"`
}

// Merge overlays other's set fields onto e; fields other leaves unset keep
// e's value.
func (e *EdgeStyle) Merge(other *EdgeStyle) {
	if other == nil {
		return
	}
	mergeString(&e.Style, other.Style)
	mergeString(&e.Color, other.Color)
	mergeString(&e.FontName, other.FontName)
	mergeInt(&e.FontSize, other.FontSize)
	mergeString(&e.FontColor, other.FontColor)
}

// Attributes renders the style's explicit fields. Edge attributes never
// depend on a specific artifact, so there is no per-artifact variant.
func (e *EdgeStyle) Attributes() *dot.AttributeBuilder {
	b := dot.NewAttributeBuilder()
	if e.Style != "" {
		b.Style(e.Style)
	}
	if e.Color != "" {
		b.Color(e.Color)
	}
	if e.FontName != "" {
		b.FontName(e.FontName)
	}
	if e.FontSize != nil {
		b.FontSize(*e.FontSize)
	}
	if e.FontColor != "" {
		b.FontColor(e.FontColor)
	}
	return b
}
