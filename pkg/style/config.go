package style

import (
	"github.com/matzehuels/depstyle/pkg/dot"
	"github.com/matzehuels/depstyle/pkg/graph"
)

// Configuration is the effective style configuration for one graph run:
// a default node style, a default edge style, an ordered list of node style
// rules, and edge styles keyed by dependency scope and node resolution.
//
// A Configuration is built by [Load] (or [NewConfiguration] plus [Merge])
// and is read-only afterwards. Queries are safe for concurrent use once
// loading is complete; Merge is not safe to call concurrently with queries.
type Configuration struct {
	defaultNode *NodeStyle
	defaultEdge *EdgeStyle

	// Node rules keep declaration order because matching is
	// first-match-wins. The index map detects structurally equal keys in
	// O(1) during merge; it never drives iteration.
	nodeRules []nodeRule
	ruleIndex map[Key]int

	edgeScopeStyles      map[string]*EdgeStyle
	edgeResolutionStyles map[graph.NodeResolution]*EdgeStyle
}

type nodeRule struct {
	key  Key
	node *NodeStyle
}

// NewConfiguration creates an empty configuration: a plain box default
// node, an empty default edge, and no rules.
func NewConfiguration() *Configuration {
	return &Configuration{
		defaultNode:          &NodeStyle{},
		defaultEdge:          &EdgeStyle{},
		ruleIndex:            make(map[Key]int),
		edgeScopeStyles:      make(map[string]*EdgeStyle),
		edgeResolutionStyles: make(map[graph.NodeResolution]*EdgeStyle),
	}
}

// DefaultNodeAttributes renders the graph-wide node defaults.
func (c *Configuration) DefaultNodeAttributes() *dot.AttributeBuilder {
	return c.defaultNode.Attributes()
}

// DefaultEdgeAttributes renders the graph-wide edge defaults.
func (c *Configuration) DefaultEdgeAttributes() *dot.AttributeBuilder {
	return c.defaultEdge.Attributes()
}

// NodeAttributes resolves the attribute set for one artifact's node.
//
// A candidate key is built from (groupID, artifactID, effectiveScope, typ,
// version) and scanned against the node rules in declaration order; the
// first matching rule wins, regardless of specificity. With no match the
// default node style applies. The scopes argument is the display label for
// the {scopes} placeholder and plays no part in matching.
func (c *Configuration) NodeAttributes(groupID, artifactID, version, typ, scopes, effectiveScope string) *dot.AttributeBuilder {
	candidate := NewKey(groupID, artifactID, effectiveScope, typ, version)

	node := c.defaultNode
	custom := false
	for _, rule := range c.nodeRules {
		if rule.key.Matches(candidate) {
			node = rule.node
			custom = true
			break
		}
	}

	return node.ArtifactAttributes(groupID, artifactID, version, scopes, custom)
}

// EdgeAttributes resolves the attribute set for one dependency edge from
// its resolution kind and the target artifact's scope.
//
// Scope styles win over the INCLUDED resolution but never over an omission:
// an edge omitted for a conflict keeps its conflict style even when the
// target scope has a style of its own. With no style registered either way
// the result is an empty attribute set.
func (c *Configuration) EdgeAttributes(resolution graph.NodeResolution, targetScope string) *dot.AttributeBuilder {
	edge := c.edgeResolutionStyles[resolution]

	if resolution == graph.ResolutionIncluded {
		if scoped, ok := c.edgeScopeStyles[targetScope]; ok {
			edge = scoped
		}
	}

	if edge == nil {
		return dot.NewAttributeBuilder()
	}
	return edge.Attributes()
}

// Merge overlays override onto c, in place. Called once per override, in
// argument order, by [Load]. Merge consumes override: the two
// configurations share style entities afterwards and override must not be
// used again.
//
// Node entities are a closed variant set, so a plain field merge would be
// unsafe across variants. The double merge first overlays c's fields onto
// the override (filling fields the override left unset), then adopts the
// override's entity: the override's variant always wins, and same-variant
// fields inherit from the prior style.
func (c *Configuration) Merge(override *Configuration) {
	c.defaultNode.Merge(override.defaultNode)
	override.defaultNode.Merge(c.defaultNode)
	c.defaultNode = override.defaultNode

	c.defaultEdge.Merge(override.defaultEdge)

	for _, rule := range override.nodeRules {
		c.addNodeRule(rule.key, rule.node)
	}

	for resolution, edge := range override.edgeResolutionStyles {
		if existing, ok := c.edgeResolutionStyles[resolution]; ok {
			existing.Merge(edge)
		} else {
			c.edgeResolutionStyles[resolution] = edge
		}
	}

	for scope, edge := range override.edgeScopeStyles {
		if existing, ok := c.edgeScopeStyles[scope]; ok {
			existing.Merge(edge)
		} else {
			c.edgeScopeStyles[scope] = edge
		}
	}
}

// addNodeRule appends a rule, or double-merges into the existing rule when
// the key is already present. Consolidation keeps the key's original
// position so an override cannot demote a rule in match order.
func (c *Configuration) addNodeRule(key Key, node *NodeStyle) {
	if i, ok := c.ruleIndex[key]; ok {
		c.nodeRules[i].node = doubleMerge(c.nodeRules[i].node, node)
		return
	}
	c.ruleIndex[key] = len(c.nodeRules)
	c.nodeRules = append(c.nodeRules, nodeRule{key: key, node: node})
}

// doubleMerge combines two node styles of a polymorphic variant set and
// returns the surviving entity: the override's variant wins, and fields the
// override left unset inherit from base when the variants match.
func doubleMerge(base, override *NodeStyle) *NodeStyle {
	base.Merge(override)
	override.Merge(base)
	return override
}
