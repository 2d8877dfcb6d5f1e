package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateIRI validates an IRI string for use as a subject, predicate, or
// object node. The bridge requires absolute IRIs (or prefixed names, which
// parse as scheme:rest).
//
// This is a structural check, not full RFC 3987 compliance: it requires a
// scheme, rejects raw control characters and angle brackets, and relies on
// url.Parse for the rest.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("%w: empty IRI", ErrInvalidIRI)
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidIRI, iri, err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("%w: relative IRI: %s", ErrInvalidIRI, iri)
	}
	first := parsed.Scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("%w: scheme must start with a letter: %s", ErrInvalidIRI, iri)
	}
	for i, r := range iri {
		if r < 0x20 {
			return fmt.Errorf("%w: control character at position %d: %s", ErrInvalidIRI, i, iri)
		}
		if r == '<' || r == '>' || r == '"' || r == '{' || r == '}' || r == '|' || r == '\\' {
			return fmt.Errorf("%w: character %q at position %d must be percent-encoded: %s", ErrInvalidIRI, r, i, iri)
		}
	}
	return nil
}

// IsIRIString reports whether s validates as an IRI.
func IsIRIString(s string) bool {
	return ValidateIRI(s) == nil
}

// SplitNamespace splits an IRI into a namespace part and a local name at the
// last '#' or '/'. Returns the whole IRI as namespace and an empty local name
// if no separator is found.
func SplitNamespace(iri string) (namespace, local string) {
	idx := strings.LastIndexAny(iri, "#/")
	if idx < 0 || idx == len(iri)-1 {
		return iri, ""
	}
	return iri[:idx+1], iri[idx+1:]
}
