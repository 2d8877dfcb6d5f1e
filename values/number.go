package values

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// IntValue is an integer value content.
type IntValue struct {
	ValueBase
	Value int64
}

func intValueFromJSONLD(obj *jsonld.Object) (*IntValue, error) {
	n, err := obj.RequireInt(vocabulary.IntValueAsInt)
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &IntValue{ValueBase: ValueBase{Comment: comment}, Value: n}, nil
}

// Type returns the complex-rendition class IRI.
func (v *IntValue) Type() string { return vocabulary.IntValue }

// String returns the canonical string form.
func (v *IntValue) String() string { return strconv.FormatInt(v.Value, 10) }

// ToJSONLD renders the value in the given schema rendition.
func (v *IntValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.Int{Value: v.Value}
	}
	return complexObject(vocabulary.IntValue, v.Comment).
		Set(vocabulary.IntValueAsInt, jsonld.Int{Value: v.Value})
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *IntValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*IntValue)
	return ok && o.Value == v.Value
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *IntValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*IntValue)
	return ok && o.Value == v.Value && o.Comment == v.Comment
}

// DecimalValue is an arbitrary-precision decimal value content.
type DecimalValue struct {
	ValueBase
	Value decimal.Decimal
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, jsonld.BadRequestf("invalid decimal value %q", raw)
	}
	return d, nil
}

func decimalValueFromJSONLD(obj *jsonld.Object) (*DecimalValue, error) {
	d, err := jsonld.RequireObjectWith(obj, vocabulary.DecimalValueAsDecimal, func(o *jsonld.Object) (decimal.Decimal, error) {
		return jsonld.DatatypeValueLiteral(o, vocabulary.XSDDecimal, parseDecimal)
	})
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &DecimalValue{ValueBase: ValueBase{Comment: comment}, Value: d}, nil
}

// Type returns the complex-rendition class IRI.
func (v *DecimalValue) Type() string { return vocabulary.DecimalValue }

// String returns the canonical string form, with trailing zeros stripped.
func (v *DecimalValue) String() string { return v.Value.String() }

// ToJSONLD renders the value in the given schema rendition.
func (v *DecimalValue) ToJSONLD(schema Schema) jsonld.Value {
	literal := jsonld.DatatypeValue(v.Value.String(), vocabulary.XSDDecimal)
	if schema == SchemaSimple {
		return literal
	}
	return complexObject(vocabulary.DecimalValue, v.Comment).
		Set(vocabulary.DecimalValueAsDecimal, literal)
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *DecimalValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*DecimalValue)
	return ok && o.Value.Equal(v.Value)
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *DecimalValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*DecimalValue)
	return ok && o.Value.Equal(v.Value) && o.Comment == v.Comment
}
