package values

import (
	"strconv"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// BooleanValue is a boolean value content.
type BooleanValue struct {
	ValueBase
	Value bool
}

func booleanValueFromJSONLD(obj *jsonld.Object) (*BooleanValue, error) {
	b, err := obj.RequireBoolean(vocabulary.BooleanValueAsBoolean)
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &BooleanValue{ValueBase: ValueBase{Comment: comment}, Value: b}, nil
}

// Type returns the complex-rendition class IRI.
func (v *BooleanValue) Type() string { return vocabulary.BooleanValue }

// String returns the canonical string form.
func (v *BooleanValue) String() string { return strconv.FormatBool(v.Value) }

// ToJSONLD renders the value in the given schema rendition.
func (v *BooleanValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.Boolean{Value: v.Value}
	}
	return complexObject(vocabulary.BooleanValue, v.Comment).
		Set(vocabulary.BooleanValueAsBoolean, jsonld.Boolean{Value: v.Value})
}

// WouldDuplicateOtherValue is always true against another boolean: a resource
// should never carry two instances of one boolean property.
func (v *BooleanValue) WouldDuplicateOtherValue(other Content) bool {
	_, ok := other.(*BooleanValue)
	return ok
}

// WouldDuplicateCurrentVersion requires the flag and the comment to match.
func (v *BooleanValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*BooleanValue)
	return ok && o.Value == v.Value && o.Comment == v.Comment
}
