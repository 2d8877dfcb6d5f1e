// Package values implements the typed value contents exposed by the API: a
// closed set of variants, each knowing how to build itself from a JSON-LD
// object, render itself in the simple or complex schema rendition, and compare
// itself against other values for redundancy.
//
// Value contents are immutable: updating a value produces a new instance (a
// new version), mirroring the append-only versioning of the persisted store.
package values

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// Schema selects the API representation convention: the simple rendition
// collapses each value to a single scalar or datatype literal, the complex
// rendition exposes every sub-field as its own key.
type Schema int

const (
	// SchemaSimple is the single-literal rendition.
	SchemaSimple Schema = iota
	// SchemaComplex is the structured rendition.
	SchemaComplex
)

// Content is a typed value content. The set of implementations is closed; a
// new value type touches every conversion site by construction.
type Content interface {
	// Type returns the value's class IRI in the complex rendition.
	Type() string
	// ValueComment returns the optional free-text comment.
	ValueComment() string
	// String returns the canonical string form of the value, used for
	// sorting and duplicate detection.
	String() string
	// ToJSONLD renders the value in the given schema rendition.
	ToJSONLD(schema Schema) jsonld.Value
	// WouldDuplicateOtherValue reports whether creating this value next to
	// other on the same property would be semantically redundant. Comments
	// are ignored.
	WouldDuplicateOtherValue(other Content) bool
	// WouldDuplicateCurrentVersion reports whether this value, proposed as a
	// new version of current, changes anything at all. Comments count.
	WouldDuplicateCurrentVersion(current Content) bool

	content()
}

// ValueBase carries the fields shared by every value content.
type ValueBase struct {
	// Comment is an optional free-text comment on the value.
	Comment string
}

// ValueComment returns the comment.
func (b ValueBase) ValueComment() string { return b.Comment }

func (ValueBase) content() {}

// Dependencies holds the external collaborators some value constructions need.
// Both lookups are request/response calls that may fail; failures propagate as
// lookup errors without retries.
type Dependencies struct {
	Mappings MappingResolver
	Files    FileInfoResolver
}

// FromJSONLD constructs a value content from a complex-rendition JSON-LD
// object, dispatching on its @type. Constructions that need an external
// lookup (text with markup, image files) suspend on ctx.
func FromJSONLD(ctx context.Context, obj *jsonld.Object, deps Dependencies) (Content, error) {
	typeIRI, err := obj.RequireString(jsonld.KeywordType)
	if err != nil {
		return nil, err
	}
	switch typeIRI {
	case vocabulary.TextValue:
		return textValueFromJSONLD(ctx, obj, deps.Mappings)
	case vocabulary.IntValue:
		return intValueFromJSONLD(obj)
	case vocabulary.DecimalValue:
		return decimalValueFromJSONLD(obj)
	case vocabulary.BooleanValue:
		return booleanValueFromJSONLD(obj)
	case vocabulary.DateValue:
		return dateValueFromJSONLD(obj)
	case vocabulary.IntervalValue:
		return intervalValueFromJSONLD(obj)
	case vocabulary.ColorValue:
		return colorValueFromJSONLD(obj)
	case vocabulary.URIValue:
		return uriValueFromJSONLD(obj)
	case vocabulary.GeonameValue:
		return geonameValueFromJSONLD(obj)
	case vocabulary.ListValue:
		return listValueFromJSONLD(obj)
	case vocabulary.LinkValue:
		return linkValueFromJSONLD(obj)
	case vocabulary.StillImageFileValue:
		return stillImageFileValueFromJSONLD(ctx, obj, deps.Files)
	case vocabulary.TextFileValue:
		return textFileValueFromJSONLD(ctx, obj, deps.Files)
	default:
		return nil, jsonld.BadRequestf("unsupported value type %s", typeIRI)
	}
}

// commentFromJSONLD reads the optional comment property.
func commentFromJSONLD(obj *jsonld.Object) (string, error) {
	comment, _, err := obj.MaybeString(vocabulary.ValueHasComment)
	return comment, err
}

// complexObject starts a complex-rendition object with the value's @type and
// optional comment.
func complexObject(typeIRI, comment string) *jsonld.Object {
	obj := jsonld.NewObject().Set(jsonld.KeywordType, jsonld.String{Value: typeIRI})
	if comment != "" {
		obj.Set(vocabulary.ValueHasComment, jsonld.String{Value: comment})
	}
	return obj
}

// NewValueIRI mints a fresh value IRI under the given resource IRI. Value IRIs
// end in a base64url-encoded UUID, so every new version gets a distinct IRI.
func NewValueIRI(resourceIRI string) string {
	id := uuid.New()
	return fmt.Sprintf("%s/values/%s", resourceIRI, base64.RawURLEncoding.EncodeToString(id[:]))
}
