package values

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// TextValue is a text value content, either plain text with an optional
// language tag, or XML markup backed by a standoff mapping. The two forms are
// mutually exclusive.
type TextValue struct {
	ValueBase
	// Text is the character content with all markup stripped.
	Text string
	// Language is the optional language tag of plain text.
	Language string
	// XML is the markup form, empty for plain text.
	XML string
	// MappingIRI identifies the standoff mapping the XML was written against.
	MappingIRI string
	// Mapping is the resolved mapping, populated during construction.
	Mapping *Mapping
	// Standoff holds the markup as out-of-band span annotations.
	Standoff []StandoffTag
}

func textValueFromJSONLD(ctx context.Context, obj *jsonld.Object, mappings MappingResolver) (*TextValue, error) {
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	plain, hasPlain, err := obj.MaybeString(vocabulary.ValueAsString)
	if err != nil {
		return nil, err
	}
	xmlText, hasXML, err := obj.MaybeString(vocabulary.TextValueAsXML)
	if err != nil {
		return nil, err
	}
	switch {
	case hasPlain && hasXML:
		return nil, jsonld.BadRequestf("a text value cannot carry both %s and %s", vocabulary.ValueAsString, vocabulary.TextValueAsXML)
	case hasPlain:
		if obj.Has(vocabulary.TextValueHasMapping) {
			return nil, jsonld.BadRequestf("%s is only allowed with %s", vocabulary.TextValueHasMapping, vocabulary.TextValueAsXML)
		}
		lang, _, err := obj.MaybeString(vocabulary.TextValueHasLanguage)
		if err != nil {
			return nil, err
		}
		return &TextValue{ValueBase: ValueBase{Comment: comment}, Text: plain, Language: lang}, nil
	case hasXML:
		mappingObj, err := obj.RequireObject(vocabulary.TextValueHasMapping)
		if err != nil {
			return nil, err
		}
		mappingIRI, err := jsonld.ToIRI(mappingObj, validateURI)
		if err != nil {
			return nil, err
		}
		mapping, err := mappings.GetMapping(ctx, mappingIRI)
		if err != nil {
			return nil, &jsonld.LookupError{Target: mappingIRI, Err: err}
		}
		text, err := textFromXML(xmlText)
		if err != nil {
			return nil, err
		}
		return &TextValue{
			ValueBase:  ValueBase{Comment: comment},
			Text:       text,
			XML:        xmlText,
			MappingIRI: mappingIRI,
			Mapping:    mapping,
		}, nil
	default:
		return nil, jsonld.BadRequestf("a text value requires either %s or %s", vocabulary.ValueAsString, vocabulary.TextValueAsXML)
	}
}

// textFromXML strips the markup from an XML fragment, keeping only character
// data.
func textFromXML(fragment string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(fragment))
	var b strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", jsonld.BadRequestf("invalid XML in text value: %v", err)
		}
		if cd, ok := tok.(xml.CharData); ok {
			b.Write(cd)
		}
	}
	return b.String(), nil
}

// HasMarkup reports whether the value carries XML markup.
func (v *TextValue) HasMarkup() bool { return v.XML != "" }

// Type returns the complex-rendition class IRI.
func (v *TextValue) Type() string { return vocabulary.TextValue }

// String returns the markup-free character content.
func (v *TextValue) String() string { return v.Text }

// ToJSONLD renders the value in the given schema rendition. The simple form
// always collapses to the markup-free text; markup and mapping only appear in
// the complex form.
func (v *TextValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		if v.Language != "" {
			return jsonld.StringWithLang(v.Text, v.Language)
		}
		return jsonld.String{Value: v.Text}
	}
	obj := complexObject(vocabulary.TextValue, v.Comment)
	if v.HasMarkup() {
		obj.Set(vocabulary.TextValueAsXML, jsonld.String{Value: v.XML}).
			Set(vocabulary.TextValueHasMapping, jsonld.IRIObject(v.MappingIRI))
		return obj
	}
	obj.Set(vocabulary.ValueAsString, jsonld.String{Value: v.Text})
	if v.Language != "" {
		obj.Set(vocabulary.TextValueHasLanguage, jsonld.String{Value: v.Language})
	}
	return obj
}

func (v *TextValue) sameText(o *TextValue) bool {
	return o.Text == v.Text && o.Language == v.Language &&
		o.XML == v.XML && o.MappingIRI == v.MappingIRI
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *TextValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*TextValue)
	return ok && v.sameText(o)
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *TextValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*TextValue)
	return ok && v.sameText(o) && o.Comment == v.Comment
}
