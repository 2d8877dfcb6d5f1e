package values

import (
	"context"

	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// StillImageFileValue is an image file value content. Construction consults
// the external file-handling service for the file's metadata.
type StillImageFileValue struct {
	ValueBase
	// URL locates the file.
	URL string
	// Filename is the file's internal name in the file store.
	Filename string
	// MimeType is the file's media type.
	MimeType string
	// DimX and DimY are the image dimensions in pixels.
	DimX int
	DimY int
}

// TextFileValue is a text file value content.
type TextFileValue struct {
	ValueBase
	URL      string
	Filename string
	MimeType string
}

// fileURLFromJSONLD reads the file URL property and resolves its metadata.
func fileURLFromJSONLD(ctx context.Context, obj *jsonld.Object, files FileInfoResolver) (string, FileMetadata, error) {
	url, err := jsonld.RequireObjectWith(obj, vocabulary.FileValueAsURL, func(o *jsonld.Object) (string, error) {
		return jsonld.DatatypeValueLiteral(o, vocabulary.XSDAnyURI, validateURI)
	})
	if err != nil {
		return "", FileMetadata{}, err
	}
	meta, err := files.GetFileMetadata(ctx, url)
	if err != nil {
		return "", FileMetadata{}, &jsonld.LookupError{Target: url, Err: err}
	}
	return url, meta, nil
}

func stillImageFileValueFromJSONLD(ctx context.Context, obj *jsonld.Object, files FileInfoResolver) (*StillImageFileValue, error) {
	url, meta, err := fileURLFromJSONLD(ctx, obj, files)
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &StillImageFileValue{
		ValueBase: ValueBase{Comment: comment},
		URL:       url,
		Filename:  meta.InternalFilename,
		MimeType:  meta.MimeType,
		DimX:      meta.Width,
		DimY:      meta.Height,
	}, nil
}

func textFileValueFromJSONLD(ctx context.Context, obj *jsonld.Object, files FileInfoResolver) (*TextFileValue, error) {
	url, meta, err := fileURLFromJSONLD(ctx, obj, files)
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &TextFileValue{
		ValueBase: ValueBase{Comment: comment},
		URL:       url,
		Filename:  meta.InternalFilename,
		MimeType:  meta.MimeType,
	}, nil
}

// Type returns the complex-rendition class IRI.
func (v *StillImageFileValue) Type() string { return vocabulary.StillImageFileValue }

// String returns the canonical string form.
func (v *StillImageFileValue) String() string { return v.URL }

// ToJSONLD renders the value in the given schema rendition.
func (v *StillImageFileValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.DatatypeValue(v.URL, vocabulary.SimpleFile)
	}
	return complexObject(vocabulary.StillImageFileValue, v.Comment).
		Set(vocabulary.FileValueAsURL, jsonld.DatatypeValue(v.URL, vocabulary.XSDAnyURI)).
		Set(vocabulary.FileValueHasFilename, jsonld.String{Value: v.Filename}).
		Set(vocabulary.StillImageFileValueHasDimX, jsonld.Int{Value: int64(v.DimX)}).
		Set(vocabulary.StillImageFileValueHasDimY, jsonld.Int{Value: int64(v.DimY)})
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *StillImageFileValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*StillImageFileValue)
	return ok && o.Filename == v.Filename
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *StillImageFileValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*StillImageFileValue)
	return ok && o.Filename == v.Filename && o.Comment == v.Comment
}

// Type returns the complex-rendition class IRI.
func (v *TextFileValue) Type() string { return vocabulary.TextFileValue }

// String returns the canonical string form.
func (v *TextFileValue) String() string { return v.URL }

// ToJSONLD renders the value in the given schema rendition.
func (v *TextFileValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		return jsonld.DatatypeValue(v.URL, vocabulary.SimpleFile)
	}
	return complexObject(vocabulary.TextFileValue, v.Comment).
		Set(vocabulary.FileValueAsURL, jsonld.DatatypeValue(v.URL, vocabulary.XSDAnyURI)).
		Set(vocabulary.FileValueHasFilename, jsonld.String{Value: v.Filename})
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *TextFileValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*TextFileValue)
	return ok && o.Filename == v.Filename
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *TextFileValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*TextFileValue)
	return ok && o.Filename == v.Filename && o.Comment == v.Comment
}
