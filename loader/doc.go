// Package loader reads and writes graph files for the multipath engine.
//
// Supported encodings are cytoscape-style JSON elements, a YAML rendering of
// Document, HCL vertex/edge blocks, and symmetric adjacency matrices. Every
// decoder yields a Document; Build validates it and produces a *core.Graph
// whose edge IDs match the file, so enumerated paths can be traced back to
// their source lines.
//
// Validation is stricter than the core graph: endpoints must be declared,
// every edge needs an explicit non-negative weight, and self-loops are refused.
package loader
