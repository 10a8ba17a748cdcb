// Package style resolves visual styling for dependency-graph nodes and
// edges from a layered, overridable rule configuration.
//
// # Overview
//
// A [Configuration] owns a default node style, a default edge style, an
// ordered list of node style rules, and edge styles keyed by dependency
// scope and by [graph.NodeResolution]. [Load] builds one effective
// configuration from a main resource plus zero or more overrides; graph
// writers then ask it for attribute sets, one query per node or edge:
//
//	cfg, err := style.Load(resource.BuiltIn(), resource.File("team-styles.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	attrs := cfg.NodeAttributes("com.google.guava", "guava", "33.0.0", "jar", "compile", "compile")
//	edge := cfg.EdgeAttributes(graph.ResolutionOmittedForConflict, "compile")
//
// # Rule Matching
//
// Node rules pair a [Key] pattern with a [NodeStyle]. Matching is
// first-match-wins in declaration order, not most-specific-wins: a broad
// rule declared before a narrow one shadows it silently. Key fields match
// whole values only; the sole pattern syntax is the "*" wildcard (the
// default for absent fields).
//
// # Merging
//
// Overrides merge field by field, override wins. Node styles are a closed
// variant set (box, ellipse, polygon), so defaults and same-key rules go
// through a double merge: an override that keeps the variant inherits every
// field it leaves unset, while an override that changes the variant
// replaces the prior style wholesale. Rules the override adds extend match
// order after all pre-existing rules; rules it repeats merge in place
// without moving.
//
// # Resource Format
//
// Resources are YAML (or JSON, or TOML by ".toml" extension) documents with
// kebab-case keys:
//
//	default-node:
//	  shape: box
//	  color: black
//	default-edge:
//	  style: solid
//	node-styles:
//	  - group: com.example
//	    scope: test
//	    node:
//	      shape: ellipse
//	      fill-color: "#ffeb3b"
//	edge-styles-by-scope:
//	  test:
//	    style: dashed
//	edge-styles-by-resolution:
//	  omitted-for-conflict:
//	    style: dashed
//	    color: red
//
// Unknown or absent fields stay unset; unset fields contribute nothing to
// the rendered attribute sets, leaving the consumer's defaults in force.
//
// # Concurrency
//
// Loading is synchronous and single-threaded. A loaded configuration is
// effectively immutable: queries are safe for concurrent use, but callers
// must not merge into a configuration that is concurrently being queried.
package style
