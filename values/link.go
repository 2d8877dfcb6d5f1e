package values

import (
	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// LinkValue is a reified link to another resource.
type LinkValue struct {
	ValueBase
	// TargetIRI identifies the link's target resource.
	TargetIRI string
}

func linkValueFromJSONLD(obj *jsonld.Object) (*LinkValue, error) {
	targetIRI, err := jsonld.RequireObjectWith(obj, vocabulary.LinkValueHasTargetIRI, func(o *jsonld.Object) (string, error) {
		return jsonld.ToIRI(o, validateURI)
	})
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &LinkValue{ValueBase: ValueBase{Comment: comment}, TargetIRI: targetIRI}, nil
}

// Type returns the complex-rendition class IRI.
func (v *LinkValue) Type() string { return vocabulary.LinkValue }

// String returns the canonical string form.
func (v *LinkValue) String() string { return v.TargetIRI }

// ToJSONLD renders the value in the given schema rendition. The simple form
// is a direct IRI reference to the target; the reification is a complex-only
// concern.
func (v *LinkValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.IRIObject(v.TargetIRI)
	}
	return complexObject(vocabulary.LinkValue, v.Comment).
		Set(vocabulary.LinkValueHasTargetIRI, jsonld.IRIObject(v.TargetIRI))
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *LinkValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*LinkValue)
	return ok && o.TargetIRI == v.TargetIRI
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *LinkValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*LinkValue)
	return ok && o.TargetIRI == v.TargetIRI && o.Comment == v.Comment
}
