package rdf

import "errors"

var (
	// ErrInvalidIRI indicates an invalid IRI was encountered.
	ErrInvalidIRI = errors.New("rdf: invalid IRI")
	// ErrNamedGraph indicates a named graph was passed to a triple-only encoder.
	ErrNamedGraph = errors.New("rdf: named graphs are not supported by this encoding")
)
