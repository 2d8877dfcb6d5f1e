package values

import (
	"regexp"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ColorValue is a color value content, stored as a "#rrggbb" hex triplet.
type ColorValue struct {
	ValueBase
	Value string
}

func validateColor(raw string) (string, error) {
	if !colorPattern.MatchString(raw) {
		return "", jsonld.BadRequestf("invalid color value %q", raw)
	}
	return raw, nil
}

func colorValueFromJSONLD(obj *jsonld.Object) (*ColorValue, error) {
	color, err := jsonld.RequireStringWith(obj, vocabulary.ColorValueAsColor, validateColor)
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &ColorValue{ValueBase: ValueBase{Comment: comment}, Value: color}, nil
}

// Type returns the complex-rendition class IRI.
func (v *ColorValue) Type() string { return vocabulary.ColorValue }

// String returns the canonical string form.
func (v *ColorValue) String() string { return v.Value }

// ToJSONLD renders the value in the given schema rendition.
func (v *ColorValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.DatatypeValue(v.Value, vocabulary.SimpleColor)
	}
	return complexObject(vocabulary.ColorValue, v.Comment).
		Set(vocabulary.ColorValueAsColor, jsonld.String{Value: v.Value})
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *ColorValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*ColorValue)
	return ok && o.Value == v.Value
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *ColorValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*ColorValue)
	return ok && o.Value == v.Value && o.Comment == v.Comment
}
