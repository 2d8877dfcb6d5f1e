package values

import (
	"regexp"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

var geonamePattern = regexp.MustCompile(`^[0-9]+$`)

// GeonameValue is a GeoNames identifier value content.
type GeonameValue struct {
	ValueBase
	Code string
}

func validateGeonameCode(raw string) (string, error) {
	if !geonamePattern.MatchString(raw) {
		return "", jsonld.BadRequestf("invalid geoname code %q", raw)
	}
	return raw, nil
}

func geonameValueFromJSONLD(obj *jsonld.Object) (*GeonameValue, error) {
	code, err := jsonld.RequireStringWith(obj, vocabulary.GeonameValueAsGeonameCode, validateGeonameCode)
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &GeonameValue{ValueBase: ValueBase{Comment: comment}, Code: code}, nil
}

// Type returns the complex-rendition class IRI.
func (v *GeonameValue) Type() string { return vocabulary.GeonameValue }

// String returns the canonical string form.
func (v *GeonameValue) String() string { return v.Code }

// ToJSONLD renders the value in the given schema rendition.
func (v *GeonameValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.DatatypeValue(v.Code, vocabulary.SimpleGeoname)
	}
	return complexObject(vocabulary.GeonameValue, v.Comment).
		Set(vocabulary.GeonameValueAsGeonameCode, jsonld.String{Value: v.Code})
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *GeonameValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*GeonameValue)
	return ok && o.Code == v.Code
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *GeonameValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*GeonameValue)
	return ok && o.Code == v.Code && o.Comment == v.Comment
}
