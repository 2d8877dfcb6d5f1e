// Package rdf provides a compact in-memory RDF model for the JSON-LD bridge.
//
// It exposes the term types (IRI, BlankNode, Literal), an insertion-ordered
// Graph with a namespace table and wildcard matching, a NodeFactory for
// constructing terms, and a Turtle encoder for the graphs the bridge builds.
//
// The model is request-scoped: a Graph is constructed once per conversion,
// serialized, and discarded. Nothing in this package is safe for concurrent
// mutation; concurrent conversions must each build their own Graph.
package rdf
