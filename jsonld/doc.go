// Package jsonld implements the JSON-LD document model and its bidirectional
// conversion to and from the rdf package's triple model.
//
// A Document pairs a body Object with a context Object. Parse builds documents
// from raw JSON-LD text (compacting against an empty context and enforcing a
// strict keyword allowlist); Format serializes them back, compacting against
// the document context. ToGraph and FromGraph project documents onto RDF
// graphs and back, solving the graph-to-tree nesting problem for the reverse
// direction.
//
// All transformations are pure: they operate on locally owned trees and can be
// invoked concurrently without coordination. Documents should be treated as
// immutable once built.
package jsonld
