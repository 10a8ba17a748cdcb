package style

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depstyle/pkg/errors"
	"github.com/matzehuels/depstyle/pkg/graph"
)

// document is the wire form of a style configuration. The same struct
// serves YAML and TOML resources and the diagnostic JSON dump; all keys are
// kebab-case and unknown keys are ignored (absent fields stay unset).
type document struct {
	DefaultNode          *NodeStyle            `yaml:"default-node" toml:"default-node" json:"default-node,omitempty"`
	DefaultEdge          *EdgeStyle            `yaml:"default-edge" toml:"default-edge" json:"default-edge,omitempty"`
	NodeStyles           []ruleEntry           `yaml:"node-styles" toml:"node-styles" json:"node-styles,omitempty"`
	EdgeScopeStyles      map[string]*EdgeStyle `yaml:"edge-styles-by-scope" toml:"edge-styles-by-scope" json:"edge-styles-by-scope,omitempty"`
	EdgeResolutionStyles map[string]*EdgeStyle `yaml:"edge-styles-by-resolution" toml:"edge-styles-by-resolution" json:"edge-styles-by-resolution,omitempty"`
}

// ruleEntry pairs match keys with a node style. Absent key fields are
// wildcards. Entries are an ordered list because declaration order is match
// order.
type ruleEntry struct {
	Group    string     `yaml:"group,omitempty" toml:"group,omitempty" json:"group,omitempty"`
	Artifact string     `yaml:"artifact,omitempty" toml:"artifact,omitempty" json:"artifact,omitempty"`
	Scope    string     `yaml:"scope,omitempty" toml:"scope,omitempty" json:"scope,omitempty"`
	Type     string     `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Version  string     `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
	Node     *NodeStyle `yaml:"node" toml:"node" json:"node"`
}

// decodeDocument parses a style resource. TOML is selected by the resource
// name's extension; everything else decodes as YAML, which also accepts
// JSON (so [Configuration.ToJSON] output reloads as-is). Decode faults are
// fatal and carry the resource identity plus the source position where the
// decoder provides one.
func decodeDocument(name string, data []byte) (*document, error) {
	var doc document

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if err := toml.Unmarshal(data, &doc); err != nil {
			var perr toml.ParseError
			if stderrors.As(err, &perr) {
				return nil, errors.Wrap(errors.ErrCodeMalformedConfig, err,
					"unable to read style configuration %s: line %d: %s", name, perr.Position.Line, perr.Message)
			}
			return nil, errors.Wrap(errors.ErrCodeMalformedConfig, err, "unable to read style configuration %s", name)
		}
		return &doc, nil
	}

	// yaml.v3 errors already carry "line N" positions
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedConfig, err, "unable to read style configuration %s", name)
	}
	return &doc, nil
}

// configuration validates the document and builds a Configuration from it.
func (d *document) configuration() (*Configuration, error) {
	cfg := NewConfiguration()

	if d.DefaultNode != nil {
		if err := validateShape(d.DefaultNode.Shape, "default-node"); err != nil {
			return nil, err
		}
		cfg.defaultNode = d.DefaultNode
	}
	if d.DefaultEdge != nil {
		cfg.defaultEdge = d.DefaultEdge
	}

	for i, entry := range d.NodeStyles {
		if entry.Node == nil {
			return nil, errors.New(errors.ErrCodeMalformedConfig, "node-styles entry %d has no node style", i)
		}
		if err := validateShape(entry.Node.Shape, fmt.Sprintf("node-styles entry %d", i)); err != nil {
			return nil, err
		}
		cfg.addNodeRule(NewKey(entry.Group, entry.Artifact, entry.Scope, entry.Type, entry.Version), entry.Node)
	}

	for scope, edge := range d.EdgeScopeStyles {
		if edge != nil {
			cfg.edgeScopeStyles[scope] = edge
		}
	}

	for name, edge := range d.EdgeResolutionStyles {
		resolution, err := graph.ParseNodeResolution(name)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidResolution,
				"unknown node resolution %q (valid: %s)", name, strings.Join(graph.ResolutionNames(), ", "))
		}
		if edge != nil {
			cfg.edgeResolutionStyles[resolution] = edge
		}
	}

	return cfg, nil
}

func validateShape(shape, where string) error {
	if ValidShape(shape) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidShape,
		"unknown node shape %q in %s (valid: %s, %s, %s)",
		shape, where, ShapeBox, ShapeEllipse, ShapePolygon)
}

// document converts the configuration back to wire form for serialization.
func (c *Configuration) document() *document {
	d := &document{
		DefaultNode: c.defaultNode,
		DefaultEdge: c.defaultEdge,
	}

	for _, rule := range c.nodeRules {
		d.NodeStyles = append(d.NodeStyles, ruleEntry{
			Group:    literalField(rule.key.GroupID),
			Artifact: literalField(rule.key.ArtifactID),
			Scope:    literalField(rule.key.Scope),
			Type:     literalField(rule.key.Type),
			Version:  literalField(rule.key.Version),
			Node:     rule.node,
		})
	}

	if len(c.edgeScopeStyles) > 0 {
		d.EdgeScopeStyles = make(map[string]*EdgeStyle, len(c.edgeScopeStyles))
		for scope, edge := range c.edgeScopeStyles {
			d.EdgeScopeStyles[scope] = edge
		}
	}

	if len(c.edgeResolutionStyles) > 0 {
		d.EdgeResolutionStyles = make(map[string]*EdgeStyle, len(c.edgeResolutionStyles))
		for resolution, edge := range c.edgeResolutionStyles {
			d.EdgeResolutionStyles[resolution.String()] = edge
		}
	}

	return d
}

// literalField maps the wildcard marker back to "absent" for serialization.
func literalField(v string) string {
	if v == Wildcard {
		return ""
	}
	return v
}

// ToJSON serializes the effective configuration for diagnostics and
// debugging. The output is a straight field-by-field dump of the merged
// state; reloading it through [Load] yields a configuration that answers
// all queries identically.
func (c *Configuration) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c.document(), "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize style configuration")
	}
	return string(data), nil
}
