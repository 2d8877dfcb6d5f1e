package values

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

type fakeMappings map[string]*Mapping

func (m fakeMappings) GetMapping(_ context.Context, iri string) (*Mapping, error) {
	if mapping, ok := m[iri]; ok {
		return mapping, nil
	}
	return nil, errors.New("mapping not found")
}

type fakeFiles map[string]FileMetadata

func (f fakeFiles) GetFileMetadata(_ context.Context, url string) (FileMetadata, error) {
	if meta, ok := f[url]; ok {
		return meta, nil
	}
	return FileMetadata{}, errors.New("file not found")
}

const (
	testMappingIRI = "http://example.org/mappings/standard"
	testFileURL    = "http://example.org/tmp/upload1"
)

func testDeps() Dependencies {
	return Dependencies{
		Mappings: fakeMappings{
			testMappingIRI: {IRI: testMappingIRI, Label: "standard mapping"},
		},
		Files: fakeFiles{
			testFileURL: {
				OriginalFilename: "hamlet.jpg",
				InternalFilename: "abc123.jpg",
				MimeType:         "image/jpeg",
				Width:            640,
				Height:           480,
			},
		},
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func mustDateValue(t *testing.T, s string) *DateValue {
	t.Helper()
	v, err := DateValueFromString(s)
	if err != nil {
		t.Fatalf("DateValueFromString(%q): %v", s, err)
	}
	return v
}

// TestComplexRoundTrips renders each value type in the complex rendition and
// reconstructs it, checking that nothing is lost.
func TestComplexRoundTrips(t *testing.T) {
	ctx := context.Background()
	deps := testDeps()
	interval, err := NewIntervalValue(mustDecimal(t, "0"), mustDecimal(t, "60.5"), "an hour, roughly")
	if err != nil {
		t.Fatalf("NewIntervalValue: %v", err)
	}
	contents := []Content{
		&TextValue{Text: "Hamlet", Language: "en"},
		&TextValue{ValueBase: ValueBase{Comment: "noted"}, Text: "plain"},
		&IntValue{Value: 42},
		&DecimalValue{Value: mustDecimal(t, "1.5")},
		&BooleanValue{Value: true},
		mustDateValue(t, "GREGORIAN:2017-01-27 CE:2017-02-01 CE"),
		mustDateValue(t, "ISLAMIC:1439"),
		interval,
		&ColorValue{Value: "#ff3300"},
		&URIValue{Value: "http://example.org/thing"},
		&GeonameValue{Code: "2661604"},
		&ListValue{NodeIRI: "http://example.org/lists/colors/red"},
		&LinkValue{TargetIRI: "http://example.org/resources/other"},
	}
	for _, original := range contents {
		rendered, ok := original.ToJSONLD(SchemaComplex).(*jsonld.Object)
		if !ok {
			t.Fatalf("%s: complex rendition is not an object", original.Type())
		}
		back, err := FromJSONLD(ctx, rendered, deps)
		if err != nil {
			t.Fatalf("%s: FromJSONLD: %v", original.Type(), err)
		}
		if !back.WouldDuplicateCurrentVersion(original) {
			t.Errorf("%s: round trip changed the value: %v vs %v", original.Type(), back, original)
		}
		again, ok := back.ToJSONLD(SchemaComplex).(*jsonld.Object)
		if !ok || !again.Equal(rendered) {
			t.Errorf("%s: re-rendered form differs", original.Type())
		}
	}
}

func TestTextValueWithMarkupRoundTrip(t *testing.T) {
	ctx := context.Background()
	deps := testDeps()
	obj := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.TextValue}).
		Set(vocabulary.TextValueAsXML, jsonld.String{Value: "<p>Hello <b>world</b></p>"}).
		Set(vocabulary.TextValueHasMapping, jsonld.IRIObject(testMappingIRI))
	content, err := FromJSONLD(ctx, obj, deps)
	if err != nil {
		t.Fatalf("FromJSONLD: %v", err)
	}
	text, ok := content.(*TextValue)
	if !ok {
		t.Fatalf("content = %T, want *TextValue", content)
	}
	if !text.HasMarkup() {
		t.Error("HasMarkup = false")
	}
	if text.Text != "Hello world" {
		t.Errorf("derived text = %q, want %q", text.Text, "Hello world")
	}
	if text.Mapping == nil || text.Mapping.Label != "standard mapping" {
		t.Errorf("mapping = %v", text.Mapping)
	}
	rendered := text.ToJSONLD(SchemaComplex).(*jsonld.Object)
	if xml, _ := rendered.RequireString(vocabulary.TextValueAsXML); xml != "<p>Hello <b>world</b></p>" {
		t.Errorf("re-rendered XML = %q", xml)
	}
}

func TestTextValueRejectsMixedForms(t *testing.T) {
	ctx := context.Background()
	deps := testDeps()
	both := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.TextValue}).
		Set(vocabulary.ValueAsString, jsonld.String{Value: "plain"}).
		Set(vocabulary.TextValueAsXML, jsonld.String{Value: "<p>x</p>"})
	if _, err := FromJSONLD(ctx, both, deps); !jsonld.IsBadRequest(err) {
		t.Errorf("both forms: %v, want BadRequestError", err)
	}
	neither := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.TextValue})
	if _, err := FromJSONLD(ctx, neither, deps); !jsonld.IsBadRequest(err) {
		t.Errorf("neither form: %v, want BadRequestError", err)
	}
}

func TestTextValueMappingLookupFailure(t *testing.T) {
	ctx := context.Background()
	deps := testDeps()
	obj := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.TextValue}).
		Set(vocabulary.TextValueAsXML, jsonld.String{Value: "<p>x</p>"}).
		Set(vocabulary.TextValueHasMapping, jsonld.IRIObject("http://example.org/mappings/unknown"))
	_, err := FromJSONLD(ctx, obj, deps)
	if !jsonld.IsLookupFailure(err) {
		t.Errorf("FromJSONLD = %v, want LookupError", err)
	}
}

func TestStillImageFileValue(t *testing.T) {
	ctx := context.Background()
	deps := testDeps()
	obj := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.StillImageFileValue}).
		Set(vocabulary.FileValueAsURL, jsonld.DatatypeValue(testFileURL, vocabulary.XSDAnyURI))
	content, err := FromJSONLD(ctx, obj, deps)
	if err != nil {
		t.Fatalf("FromJSONLD: %v", err)
	}
	img, ok := content.(*StillImageFileValue)
	if !ok {
		t.Fatalf("content = %T, want *StillImageFileValue", content)
	}
	if img.Filename != "abc123.jpg" || img.MimeType != "image/jpeg" || img.DimX != 640 || img.DimY != 480 {
		t.Errorf("metadata not applied: %+v", img)
	}
	rendered := img.ToJSONLD(SchemaComplex).(*jsonld.Object)
	if x, err := rendered.RequireInt(vocabulary.StillImageFileValueHasDimX); err != nil || x != 640 {
		t.Errorf("dimX = (%d, %v)", x, err)
	}

	// Unknown temporary URL propagates as a lookup failure.
	obj = jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.TextFileValue}).
		Set(vocabulary.FileValueAsURL, jsonld.DatatypeValue("http://example.org/tmp/unknown", vocabulary.XSDAnyURI))
	if _, err := FromJSONLD(ctx, obj, deps); !jsonld.IsLookupFailure(err) {
		t.Errorf("FromJSONLD = %v, want LookupError", err)
	}
}

func TestFromJSONLDRejectsUnknownType(t *testing.T) {
	obj := jsonld.NewObject().Set(jsonld.KeywordType, jsonld.String{Value: "http://example.org/NotAValue"})
	_, err := FromJSONLD(context.Background(), obj, testDeps())
	if !jsonld.IsBadRequest(err) {
		t.Errorf("FromJSONLD = %v, want BadRequestError", err)
	}
}

// TestSimpleRenditions checks that the simple schema collapses each value to a
// single scalar or datatype literal.
func TestSimpleRenditions(t *testing.T) {
	date := mustDateValue(t, "JULIAN:0044-03-15 BCE")
	interval, err := NewIntervalValue(mustDecimal(t, "0"), mustDecimal(t, "60.5"), "")
	if err != nil {
		t.Fatalf("NewIntervalValue: %v", err)
	}
	tests := []struct {
		content Content
		want    jsonld.Value
	}{
		{&IntValue{Value: 42}, jsonld.Int{Value: 42}},
		{&BooleanValue{Value: true}, jsonld.Boolean{Value: true}},
		{&TextValue{Text: "Hamlet", Language: "en"}, jsonld.StringWithLang("Hamlet", "en")},
		{&TextValue{Text: "plain"}, jsonld.String{Value: "plain"}},
		{&DecimalValue{Value: mustDecimal(t, "1.5")}, jsonld.DatatypeValue("1.5", vocabulary.XSDDecimal)},
		{date, jsonld.DatatypeValue("JULIAN:0044-03-15 BCE", vocabulary.SimpleDate)},
		{interval, jsonld.DatatypeValue("0/60.5", vocabulary.SimpleInterval)},
		{&ColorValue{Value: "#ff3300"}, jsonld.DatatypeValue("#ff3300", vocabulary.SimpleColor)},
		{&GeonameValue{Code: "2661604"}, jsonld.DatatypeValue("2661604", vocabulary.SimpleGeoname)},
		{&URIValue{Value: "http://example.org/x"}, jsonld.DatatypeValue("http://example.org/x", vocabulary.XSDAnyURI)},
		{&LinkValue{TargetIRI: "http://example.org/other"}, jsonld.IRIObject("http://example.org/other")},
		{&ListValue{NodeIRI: "http://example.org/node", NodeLabel: "red"}, jsonld.String{Value: "red"}},
	}
	for _, tc := range tests {
		got := tc.content.ToJSONLD(SchemaSimple)
		if !got.Equal(tc.want) {
			t.Errorf("%s: simple rendition = %v, want %v", tc.content.Type(), got, tc.want)
		}
	}
}

// TestBooleanDuplicateRules: any other boolean is a duplicate regardless of its
// flag, but a new version only collapses when flag and comment both match.
func TestBooleanDuplicateRules(t *testing.T) {
	a := &BooleanValue{Value: true}
	b := &BooleanValue{Value: false}
	if !a.WouldDuplicateOtherValue(b) {
		t.Error("WouldDuplicateOtherValue = false for two booleans")
	}
	if a.WouldDuplicateCurrentVersion(b) {
		t.Error("WouldDuplicateCurrentVersion = true for different flags")
	}
	if !a.WouldDuplicateCurrentVersion(&BooleanValue{Value: true}) {
		t.Error("WouldDuplicateCurrentVersion = false for identical booleans")
	}
}

// TestDuplicateChecksIgnoreComments: comments are excluded from redundancy
// checks between sibling values, but count for new-version checks.
func TestDuplicateChecksIgnoreComments(t *testing.T) {
	a := &IntValue{ValueBase: ValueBase{Comment: "first"}, Value: 7}
	b := &IntValue{ValueBase: ValueBase{Comment: "second"}, Value: 7}
	if !a.WouldDuplicateOtherValue(b) {
		t.Error("WouldDuplicateOtherValue = false for equal values with different comments")
	}
	if a.WouldDuplicateCurrentVersion(b) {
		t.Error("WouldDuplicateCurrentVersion = true despite different comments")
	}
	if a.WouldDuplicateOtherValue(&IntValue{Value: 8}) {
		t.Error("WouldDuplicateOtherValue = true for different values")
	}
	if a.WouldDuplicateOtherValue(&BooleanValue{Value: true}) {
		t.Error("WouldDuplicateOtherValue = true across value types")
	}
}

func TestColorValidation(t *testing.T) {
	obj := jsonld.NewObject().
		Set(jsonld.KeywordType, jsonld.String{Value: vocabulary.ColorValue}).
		Set(vocabulary.ColorValueAsColor, jsonld.String{Value: "red"})
	_, err := FromJSONLD(context.Background(), obj, testDeps())
	if !jsonld.IsBadRequest(err) {
		t.Fatalf("FromJSONLD = %v, want BadRequestError", err)
	}
	if !strings.Contains(err.Error(), "red") {
		t.Errorf("error %q does not embed the offending value", err)
	}
}

func TestIntervalRejectsReversedEndpoints(t *testing.T) {
	_, err := NewIntervalValue(mustDecimal(t, "2"), mustDecimal(t, "1"), "")
	if !jsonld.IsBadRequest(err) {
		t.Errorf("NewIntervalValue = %v, want BadRequestError", err)
	}
}

func TestNewValueIRI(t *testing.T) {
	const resource = "http://example.org/resources/r1"
	first := NewValueIRI(resource)
	second := NewValueIRI(resource)
	if !strings.HasPrefix(first, resource+"/values/") {
		t.Errorf("NewValueIRI = %q", first)
	}
	if first == second {
		t.Error("NewValueIRI produced the same IRI twice")
	}
}
