package values

import (
	"context"
	"testing"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/values/calendar"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

func TestDateValueFromString(t *testing.T) {
	v := mustDateValue(t, "GREGORIAN:2017-01-27 CE:2017-02-01 CE")
	if v.Calendar != calendar.Gregorian {
		t.Errorf("Calendar = %s", v.Calendar)
	}
	if v.StartJDN != 2457781 {
		t.Errorf("StartJDN = %d, want 2457781", v.StartJDN)
	}
	if v.EndJDN != 2457786 {
		t.Errorf("EndJDN = %d, want 2457786", v.EndJDN)
	}
	if v.StartPrecision != calendar.PrecisionDay || v.EndPrecision != calendar.PrecisionDay {
		t.Errorf("precision = (%v, %v)", v.StartPrecision, v.EndPrecision)
	}
	if got := v.String(); got != "GREGORIAN:2017-01-27 CE:2017-02-01 CE" {
		t.Errorf("String = %q", got)
	}
}

// TestDateValueSpansPeriods: a year-precision date covers the whole year, so
// its end JDN is the year's last day.
func TestDateValueSpansPeriods(t *testing.T) {
	v := mustDateValue(t, "GREGORIAN:2017 CE")
	start := v.StartDate()
	end := v.EndDate()
	if start != (calendar.Date{Calendar: calendar.Gregorian, Year: 2017, Era: calendar.EraCE}) {
		t.Errorf("StartDate = %v", start)
	}
	if end != start {
		t.Errorf("EndDate = %v, want %v", end, start)
	}
	lastDay, err := calendar.FromJDN(calendar.Gregorian, v.EndJDN, calendar.PrecisionDay)
	if err != nil {
		t.Fatalf("FromJDN: %v", err)
	}
	want := calendar.Date{Calendar: calendar.Gregorian, Year: 2017, Month: 12, Day: 31, Era: calendar.EraCE}
	if lastDay != want {
		t.Errorf("end of year = %v, want %v", lastDay, want)
	}
}

func TestNewDateValueValidation(t *testing.T) {
	gregorian := calendar.Date{Calendar: calendar.Gregorian, Year: 2017, Era: calendar.EraCE}
	julian := calendar.Date{Calendar: calendar.Julian, Year: 2017, Era: calendar.EraCE}
	if _, err := NewDateValue(gregorian, julian, ""); !jsonld.IsBadRequest(err) {
		t.Errorf("mixed calendars: %v, want BadRequestError", err)
	}
	earlier := calendar.Date{Calendar: calendar.Gregorian, Year: 2016, Era: calendar.EraCE}
	if _, err := NewDateValue(gregorian, earlier, ""); !jsonld.IsBadRequest(err) {
		t.Errorf("reversed range: %v, want BadRequestError", err)
	}
	// A start inside the end period is fine: 2017-01-27 to the whole of 2017.
	day := calendar.Date{Calendar: calendar.Gregorian, Year: 2017, Month: 1, Day: 27, Era: calendar.EraCE}
	if _, err := NewDateValue(day, gregorian, ""); err != nil {
		t.Errorf("day within year range: unexpected error: %v", err)
	}
}

// TestDateValueComplexFields checks the field-by-field complex rendition.
func TestDateValueComplexFields(t *testing.T) {
	v := mustDateValue(t, "GREGORIAN:2017-01-27 CE:2017-02 CE")
	obj, ok := v.ToJSONLD(SchemaComplex).(*jsonld.Object)
	if !ok {
		t.Fatal("complex rendition is not an object")
	}
	checks := []struct {
		key  string
		want int64
	}{
		{vocabulary.DateValueHasStartYear, 2017},
		{vocabulary.DateValueHasStartMonth, 1},
		{vocabulary.DateValueHasStartDay, 27},
		{vocabulary.DateValueHasEndYear, 2017},
		{vocabulary.DateValueHasEndMonth, 2},
	}
	for _, tc := range checks {
		got, err := obj.RequireInt(tc.key)
		if err != nil || got != tc.want {
			t.Errorf("%s = (%d, %v), want %d", tc.key, got, err, tc.want)
		}
	}
	if obj.Has(vocabulary.DateValueHasEndDay) {
		t.Error("month-precision end carries a day")
	}
	if cal, _ := obj.RequireString(vocabulary.DateValueHasCalendar); cal != "GREGORIAN" {
		t.Errorf("calendar = %q", cal)
	}
	if era, _ := obj.RequireString(vocabulary.DateValueHasStartEra); era != "CE" {
		t.Errorf("start era = %q", era)
	}
	if s, _ := obj.RequireString(vocabulary.ValueAsString); s != v.String() {
		t.Errorf("canonical string = %q, want %q", s, v.String())
	}
}

// TestDateValueFromJSONLDDefaultsEnd: a structured date without end fields
// covers exactly the start period.
func TestDateValueFromJSONLDDefaultsEnd(t *testing.T) {
	obj := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.DateValue}).
		Set(vocabulary.DateValueHasCalendar, jsonld.String{Value: "JULIAN"}).
		Set(vocabulary.DateValueHasStartYear, jsonld.Int{Value: 800}).
		Set(vocabulary.DateValueHasStartEra, jsonld.String{Value: "CE"})
	content, err := FromJSONLD(context.Background(), obj, testDeps())
	if err != nil {
		t.Fatalf("FromJSONLD: %v", err)
	}
	v, ok := content.(*DateValue)
	if !ok {
		t.Fatalf("content = %T, want *DateValue", content)
	}
	if v.String() != "JULIAN:0800 CE" {
		t.Errorf("String = %q", v.String())
	}
	if v.StartPrecision != calendar.PrecisionYear || v.EndPrecision != calendar.PrecisionYear {
		t.Errorf("precision = (%v, %v)", v.StartPrecision, v.EndPrecision)
	}
}

func TestDateValueFromJSONLDRejectsBadDates(t *testing.T) {
	base := func() *jsonld.Object {
		return jsonld.NewObject().
			Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.DateValue}).
			Set(vocabulary.DateValueHasCalendar, jsonld.String{Value: "GREGORIAN"}).
			Set(vocabulary.DateValueHasStartYear, jsonld.Int{Value: 2017}).
			Set(vocabulary.DateValueHasStartEra, jsonld.String{Value: "CE"})
	}
	tests := []struct {
		name string
		obj  *jsonld.Object
	}{
		{"day without month", base().Set(vocabulary.DateValueHasStartDay, jsonld.Int{Value: 5})},
		{"missing era", base().Set(vocabulary.DateValueHasStartEra, jsonld.String{Value: ""})},
		{"bad calendar", base().Set(vocabulary.DateValueHasCalendar, jsonld.String{Value: "MAYAN"})},
		{"era on Islamic date", jsonld.NewObject().
			Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.DateValue}).
			Set(vocabulary.DateValueHasCalendar, jsonld.String{Value: "ISLAMIC"}).
			Set(vocabulary.DateValueHasStartYear, jsonld.Int{Value: 1439}).
			Set(vocabulary.DateValueHasStartEra, jsonld.String{Value: "CE"})},
	}
	for _, tc := range tests {
		if _, err := FromJSONLD(context.Background(), tc.obj, testDeps()); !jsonld.IsBadRequest(err) {
			t.Errorf("%s: FromJSONLD = %v, want BadRequestError", tc.name, err)
		}
	}
}

// TestDateDuplicateChecks: dates compare by canonical JDN representation, so
// the same span expressed twice is a duplicate.
func TestDateDuplicateChecks(t *testing.T) {
	a := mustDateValue(t, "GREGORIAN:2017-01-27 CE")
	b := mustDateValue(t, "GREGORIAN:2017-01-27 CE")
	c := mustDateValue(t, "GREGORIAN:2017-01-28 CE")
	if !a.WouldDuplicateOtherValue(b) {
		t.Error("identical dates are not duplicates")
	}
	if a.WouldDuplicateOtherValue(c) {
		t.Error("different dates are duplicates")
	}
	// Same span, different precision: a year and its first day differ.
	year := mustDateValue(t, "GREGORIAN:2017 CE")
	if a.WouldDuplicateOtherValue(year) {
		t.Error("day and year precision compare equal")
	}
}
