package values

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// IntervalValue is a time-interval value content with decimal endpoints.
type IntervalValue struct {
	ValueBase
	Start decimal.Decimal
	End   decimal.Decimal
}

// NewIntervalValue builds an interval, rejecting one whose start exceeds its
// end.
func NewIntervalValue(start, end decimal.Decimal, comment string) (*IntervalValue, error) {
	if start.GreaterThan(end) {
		return nil, jsonld.BadRequestf("interval start %s is greater than its end %s", start, end)
	}
	return &IntervalValue{ValueBase: ValueBase{Comment: comment}, Start: start, End: end}, nil
}

func intervalValueFromJSONLD(obj *jsonld.Object) (*IntervalValue, error) {
	start, err := jsonld.RequireObjectWith(obj, vocabulary.IntervalValueHasStart, func(o *jsonld.Object) (decimal.Decimal, error) {
		return jsonld.DatatypeValueLiteral(o, vocabulary.XSDDecimal, parseDecimal)
	})
	if err != nil {
		return nil, err
	}
	end, err := jsonld.RequireObjectWith(obj, vocabulary.IntervalValueHasEnd, func(o *jsonld.Object) (decimal.Decimal, error) {
		return jsonld.DatatypeValueLiteral(o, vocabulary.XSDDecimal, parseDecimal)
	})
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return NewIntervalValue(start, end, comment)
}

// Type returns the complex-rendition class IRI.
func (v *IntervalValue) Type() string { return vocabulary.IntervalValue }

// String returns the canonical string form "start/end".
func (v *IntervalValue) String() string {
	return fmt.Sprintf("%s/%s", v.Start, v.End)
}

// ToJSONLD renders the value in the given schema rendition.
func (v *IntervalValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.DatatypeValue(v.String(), vocabulary.SimpleInterval)
	}
	return complexObject(vocabulary.IntervalValue, v.Comment).
		Set(vocabulary.IntervalValueHasStart, jsonld.DatatypeValue(v.Start.String(), vocabulary.XSDDecimal)).
		Set(vocabulary.IntervalValueHasEnd, jsonld.DatatypeValue(v.End.String(), vocabulary.XSDDecimal))
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *IntervalValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*IntervalValue)
	return ok && o.Start.Equal(v.Start) && o.End.Equal(v.End)
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *IntervalValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*IntervalValue)
	return ok && o.Start.Equal(v.Start) && o.End.Equal(v.End) && o.Comment == v.Comment
}
