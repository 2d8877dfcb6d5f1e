package jsonld

import "testing"

func TestArrayEqualityIgnoresOrder(t *testing.T) {
	a := NewArray(String{Value: "x"}, Int{Value: 1}, Boolean{Value: true})
	b := NewArray(Boolean{Value: true}, String{Value: "x"}, Int{Value: 1})
	if !a.Equal(b) {
		t.Error("arrays with the same elements in different order are not equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("hash differs for permuted arrays")
	}
}

func TestArrayInequality(t *testing.T) {
	a := NewArray(String{Value: "x"}, String{Value: "x"})
	b := NewArray(String{Value: "x"}, String{Value: "y"})
	if a.Equal(b) {
		t.Error("arrays with different elements compare equal")
	}
	if a.Equal(NewArray(String{Value: "x"})) {
		t.Error("arrays of different lengths compare equal")
	}
	// Multiplicity matters even though order does not.
	c := NewArray(String{Value: "x"}, String{Value: "y"})
	d := NewArray(String{Value: "y"}, String{Value: "y"})
	if c.Equal(d) {
		t.Error("arrays with different multiplicities compare equal")
	}
}

func TestObjectEqualityIgnoresInsertionOrder(t *testing.T) {
	a := NewObject().Set("one", Int{Value: 1}).Set("two", Int{Value: 2})
	b := NewObject().Set("two", Int{Value: 2}).Set("one", Int{Value: 1})
	if !a.Equal(b) {
		t.Error("objects with the same mapping in different insertion order are not equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("hash differs for the same mapping in different insertion order")
	}
	if a.Equal(NewObject().Set("one", Int{Value: 1})) {
		t.Error("objects with different key sets compare equal")
	}
}

func TestObjectPreservesKeyOrder(t *testing.T) {
	o := NewObject().Set("b", Int{Value: 1}).Set("a", Int{Value: 2}).Set("b", Int{Value: 3})
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Keys = %v, want [b a]", keys)
	}
	if v, _ := o.Get("b"); !v.Equal(Int{Value: 3}) {
		t.Errorf("Set on an existing key did not replace the value: %v", v)
	}
}

// TestStructuralShapesAreExclusive verifies that the IRI-reference,
// language-string, and datatype-literal shapes are mutually exclusive.
func TestStructuralShapesAreExclusive(t *testing.T) {
	shapes := []struct {
		name                 string
		obj                  *Object
		iri, lang, datatyped bool
	}{
		{"IRI reference", IRIObject("http://example.org/a"), true, false, false},
		{"language string", StringWithLang("Hamlet", "en"), false, true, false},
		{"datatype literal", DatatypeValue("1.5", "http://www.w3.org/2001/XMLSchema#decimal"), false, false, true},
		{"entity object", NewObject().Set(KeywordID, String{Value: "http://example.org/a"}).Set("p", Int{Value: 1}), false, false, false},
		{"empty object", NewObject(), false, false, false},
	}
	for _, tc := range shapes {
		if got := tc.obj.IsIRI(); got != tc.iri {
			t.Errorf("%s: IsIRI = %v, want %v", tc.name, got, tc.iri)
		}
		if got := tc.obj.IsStringWithLang(); got != tc.lang {
			t.Errorf("%s: IsStringWithLang = %v, want %v", tc.name, got, tc.lang)
		}
		if got := tc.obj.IsDatatypeValue(); got != tc.datatyped {
			t.Errorf("%s: IsDatatypeValue = %v, want %v", tc.name, got, tc.datatyped)
		}
	}
}

func TestToIRI(t *testing.T) {
	identity := func(s string) (string, error) { return s, nil }
	got, err := ToIRI(IRIObject("http://example.org/a"), identity)
	if err != nil {
		t.Fatalf("ToIRI: unexpected error: %v", err)
	}
	if got != "http://example.org/a" {
		t.Errorf("ToIRI = %q", got)
	}
	if _, err := ToIRI(StringWithLang("x", "en"), identity); !IsBadRequest(err) {
		t.Errorf("ToIRI on a language string = %v, want BadRequestError", err)
	}
}

func TestDatatypeValueLiteral(t *testing.T) {
	const decimalIRI = "http://www.w3.org/2001/XMLSchema#decimal"
	identity := func(s string) (string, error) { return s, nil }
	got, err := DatatypeValueLiteral(DatatypeValue("1.5", decimalIRI), decimalIRI, identity)
	if err != nil {
		t.Fatalf("DatatypeValueLiteral: unexpected error: %v", err)
	}
	if got != "1.5" {
		t.Errorf("DatatypeValueLiteral = %q", got)
	}
	_, err = DatatypeValueLiteral(DatatypeValue("1.5", decimalIRI), "http://www.w3.org/2001/XMLSchema#integer", identity)
	if !IsBadRequest(err) {
		t.Errorf("mismatched datatype = %v, want BadRequestError", err)
	}
	_, err = DatatypeValueLiteral(IRIObject("http://example.org/a"), decimalIRI, identity)
	if !IsBadRequest(err) {
		t.Errorf("wrong shape = %v, want BadRequestError", err)
	}
}
