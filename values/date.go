package values

import (
	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/values/calendar"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// DateValue is a date-range value content. Start and end are stored as Julian
// Day Numbers with independent precision and era tags and a shared calendar;
// the human-readable calendar dates are derived from the JDNs on demand.
type DateValue struct {
	ValueBase
	Calendar       calendar.Name
	StartJDN       int
	EndJDN         int
	StartPrecision calendar.Precision
	EndPrecision   calendar.Precision
	StartEra       calendar.Era
	EndEra         calendar.Era
}

// NewDateValue builds a date value from a pair of calendar dates. Both dates
// must be valid in the same calendar, and the start period must not begin
// after the end period ends.
func NewDateValue(start, end calendar.Date, comment string) (*DateValue, error) {
	if start.Calendar != end.Calendar {
		return nil, jsonld.BadRequestf("start and end dates use different calendars: %s, %s", start.Calendar, end.Calendar)
	}
	startJDN, err := start.StartJDN()
	if err != nil {
		return nil, jsonld.BadRequestf("%v", err)
	}
	endJDN, err := end.EndJDN()
	if err != nil {
		return nil, jsonld.BadRequestf("%v", err)
	}
	if startJDN > endJDN {
		return nil, jsonld.BadRequestf("start date %s is after end date %s", start, end)
	}
	return &DateValue{
		ValueBase:      ValueBase{Comment: comment},
		Calendar:       start.Calendar,
		StartJDN:       startJDN,
		EndJDN:         endJDN,
		StartPrecision: start.Precision(),
		EndPrecision:   end.Precision(),
		StartEra:       start.Era,
		EndEra:         end.Era,
	}, nil
}

// DateValueFromString parses the compact range form accepted by the simple
// rendition, e.g. "GREGORIAN:2017-01-27 CE:2017-02-01 CE".
func DateValueFromString(s string) (*DateValue, error) {
	start, end, err := calendar.ParseDateRange(s)
	if err != nil {
		return nil, jsonld.BadRequestf("%v", err)
	}
	return NewDateValue(start, end, "")
}

func dateValueFromJSONLD(obj *jsonld.Object) (*DateValue, error) {
	cal, err := jsonld.RequireStringWith(obj, vocabulary.DateValueHasCalendar, func(raw string) (calendar.Name, error) {
		name, err := calendar.ParseName(raw)
		if err != nil {
			return "", jsonld.BadRequestf("%v", err)
		}
		return name, nil
	})
	if err != nil {
		return nil, err
	}
	start, err := datePartFromJSONLD(obj, cal,
		vocabulary.DateValueHasStartYear, vocabulary.DateValueHasStartMonth,
		vocabulary.DateValueHasStartDay, vocabulary.DateValueHasStartEra)
	if err != nil {
		return nil, err
	}
	end := start
	if obj.Has(vocabulary.DateValueHasEndYear) {
		end, err = datePartFromJSONLD(obj, cal,
			vocabulary.DateValueHasEndYear, vocabulary.DateValueHasEndMonth,
			vocabulary.DateValueHasEndDay, vocabulary.DateValueHasEndEra)
		if err != nil {
			return nil, err
		}
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return NewDateValue(start, end, comment)
}

func datePartFromJSONLD(obj *jsonld.Object, cal calendar.Name, yearKey, monthKey, dayKey, eraKey string) (calendar.Date, error) {
	d := calendar.Date{Calendar: cal}
	year, err := obj.RequireInt(yearKey)
	if err != nil {
		return calendar.Date{}, err
	}
	d.Year = int(year)
	if month, ok, err := obj.MaybeInt(monthKey); err != nil {
		return calendar.Date{}, err
	} else if ok {
		d.Month = int(month)
	}
	if day, ok, err := obj.MaybeInt(dayKey); err != nil {
		return calendar.Date{}, err
	} else if ok {
		d.Day = int(day)
	}
	if eraRaw, ok, err := obj.MaybeString(eraKey); err != nil {
		return calendar.Date{}, err
	} else if ok {
		era, err := calendar.ParseEra(eraRaw)
		if err != nil {
			return calendar.Date{}, jsonld.BadRequestf("%v", err)
		}
		d.Era = era
	}
	if err := d.Validate(); err != nil {
		return calendar.Date{}, jsonld.BadRequestf("%v", err)
	}
	return d, nil
}

// StartDate derives the start calendar date from the stored JDN.
func (v *DateValue) StartDate() calendar.Date {
	d, _ := calendar.FromJDN(v.Calendar, v.StartJDN, v.StartPrecision)
	return d
}

// EndDate derives the end calendar date from the stored JDN.
func (v *DateValue) EndDate() calendar.Date {
	d, _ := calendar.FromJDN(v.Calendar, v.EndJDN, v.EndPrecision)
	return d
}

// Type returns the complex-rendition class IRI.
func (v *DateValue) Type() string { return vocabulary.DateValue }

// String returns the compact range form, the canonical string of a date.
func (v *DateValue) String() string {
	return calendar.RangeString(v.StartDate(), v.EndDate())
}

// ToJSONLD renders the value in the given schema rendition. The complex form
// exposes the derived start and end dates field by field plus the canonical
// string; the simple form is a single datatype literal of the range string.
func (v *DateValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.DatatypeValue(v.String(), vocabulary.SimpleDate)
	}
	obj := complexObject(vocabulary.DateValue, v.Comment).
		Set(vocabulary.DateValueHasCalendar, jsonld.String{Value: string(v.Calendar)})
	start := v.StartDate()
	end := v.EndDate()
	setDatePart(obj, start,
		vocabulary.DateValueHasStartYear, vocabulary.DateValueHasStartMonth,
		vocabulary.DateValueHasStartDay, vocabulary.DateValueHasStartEra)
	setDatePart(obj, end,
		vocabulary.DateValueHasEndYear, vocabulary.DateValueHasEndMonth,
		vocabulary.DateValueHasEndDay, vocabulary.DateValueHasEndEra)
	obj.Set(vocabulary.ValueAsString, jsonld.String{Value: v.String()})
	return obj
}

func setDatePart(obj *jsonld.Object, d calendar.Date, yearKey, monthKey, dayKey, eraKey string) {
	obj.Set(yearKey, jsonld.Int{Value: int64(d.Year)})
	if d.Month != 0 {
		obj.Set(monthKey, jsonld.Int{Value: int64(d.Month)})
	}
	if d.Day != 0 {
		obj.Set(dayKey, jsonld.Int{Value: int64(d.Day)})
	}
	if d.Era != calendar.EraNone {
		obj.Set(eraKey, jsonld.String{Value: d.Era.String()})
	}
}

func (v *DateValue) sameDate(o *DateValue) bool {
	return o.Calendar == v.Calendar &&
		o.StartJDN == v.StartJDN && o.EndJDN == v.EndJDN &&
		o.StartPrecision == v.StartPrecision && o.EndPrecision == v.EndPrecision &&
		o.StartEra == v.StartEra && o.EndEra == v.EndEra
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *DateValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*DateValue)
	return ok && v.sameDate(o)
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *DateValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*DateValue)
	return ok && v.sameDate(o) && o.Comment == v.Comment
}
