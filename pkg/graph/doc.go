// Package graph provides the shared vocabulary for dependency graphs.
//
// This package defines the types the style engine and its callers agree on
// when talking about a resolved dependency graph:
//
//   - [Artifact]: the coordinate tuple identifying a dependency node
//     (group, artifact, version, type, scopes)
//   - [NodeResolution]: why an edge's target ended up in (or out of) the
//     effective dependency set
//
// # Node Resolution
//
// Dependency resolvers classify every edge by how its target was resolved:
//
//	graph.ResolutionIncluded             // part of the effective set
//	graph.ResolutionOmittedForDuplicate  // same version seen earlier
//	graph.ResolutionOmittedForConflict   // lost a version conflict
//	graph.ResolutionOmittedForCycle      // would create a cycle
//
// Resolutions have a fixed kebab-case wire name ("included",
// "omitted-for-conflict", ...) used as map keys in style configurations and
// in the diagnostic JSON dump. Use [ParseNodeResolution] to convert a wire
// name back to the enum.
//
// # Concurrency
//
// All types in this package are immutable values and safe for concurrent use.
package graph
