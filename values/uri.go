package values

import (
	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/rdf"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// URIValue is a URI value content.
type URIValue struct {
	ValueBase
	Value string
}

func validateURI(raw string) (string, error) {
	if err := rdf.ValidateIRI(raw); err != nil {
		return "", jsonld.BadRequestf("invalid URI value %q", raw)
	}
	return raw, nil
}

func uriValueFromJSONLD(obj *jsonld.Object) (*URIValue, error) {
	uri, err := jsonld.RequireObjectWith(obj, vocabulary.URIValueAsURI, func(o *jsonld.Object) (string, error) {
		return jsonld.DatatypeValueLiteral(o, vocabulary.XSDAnyURI, validateURI)
	})
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &URIValue{ValueBase: ValueBase{Comment: comment}, Value: uri}, nil
}

// Type returns the complex-rendition class IRI.
func (v *URIValue) Type() string { return vocabulary.URIValue }

// String returns the canonical string form.
func (v *URIValue) String() string { return v.Value }

// ToJSONLD renders the value in the given schema rendition.
func (v *URIValue) ToJSONLD(schema Schema) jsonld.Value {
	literal := jsonld.DatatypeValue(v.Value, vocabulary.XSDAnyURI)
	if schema == SchemaSimple {
		return literal
	}
	return complexObject(vocabulary.URIValue, v.Comment).
		Set(vocabulary.URIValueAsURI, literal)
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *URIValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*URIValue)
	return ok && o.Value == v.Value
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *URIValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*URIValue)
	return ok && o.Value == v.Value && o.Comment == v.Comment
}
