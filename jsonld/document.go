package jsonld

// JSON-LD keywords recognized by this implementation. Any other key starting
// with '@' is rejected during parsing.
const (
	KeywordContext  = "@context"
	KeywordID       = "@id"
	KeywordType     = "@type"
	KeywordGraph    = "@graph"
	KeywordLanguage = "@language"
	KeywordValue    = "@value"
)

var recognizedKeywords = map[string]struct{}{
	KeywordContext:  {},
	KeywordID:       {},
	KeywordType:     {},
	KeywordGraph:    {},
	KeywordLanguage: {},
	KeywordValue:    {},
}

// Document pairs a JSON-LD body object with a context object (empty by
// default). Documents are constructed fresh per conversion and should be
// treated as immutable once built.
type Document struct {
	Body    *Object
	Context *Object
}

// NewDocument constructs a document. A nil context becomes an empty one.
func NewDocument(body *Object, context *Object) *Document {
	if context == nil {
		context = NewObject()
	}
	return &Document{Body: body, Context: context}
}

// RequireString looks up key in the object and fails with a BadRequestError if
// it is absent or not a plain string.
func (o *Object) RequireString(key string) (string, error) {
	v, ok := o.entries[key]
	if !ok {
		return "", BadRequestf("required key %s is missing", key)
	}
	s, ok := v.(String)
	if !ok {
		return "", BadRequestf("expected a string under key %s", key)
	}
	return s.Value, nil
}

// MaybeString looks up key and returns its string value if present, failing
// with a BadRequestError if a non-string is stored under the key.
func (o *Object) MaybeString(key string) (string, bool, error) {
	v, ok := o.entries[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(String)
	if !ok {
		return "", false, BadRequestf("expected a string under key %s", key)
	}
	return s.Value, true, nil
}

// RequireObject looks up key and fails with a BadRequestError if it is absent
// or not an object.
func (o *Object) RequireObject(key string) (*Object, error) {
	v, ok := o.entries[key]
	if !ok {
		return nil, BadRequestf("required key %s is missing", key)
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, BadRequestf("expected an object under key %s", key)
	}
	return obj, nil
}

// MaybeObject looks up key and returns the object stored under it if present.
func (o *Object) MaybeObject(key string) (*Object, bool, error) {
	v, ok := o.entries[key]
	if !ok {
		return nil, false, nil
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, false, BadRequestf("expected an object under key %s", key)
	}
	return obj, true, nil
}

// RequireArray looks up key and fails with a BadRequestError if it is absent.
// A stored value that is not already an array is wrapped in a single-element
// array: JSON-LD permits omitting the array wrapper for singletons, and this
// normalization is applied uniformly wherever arrays are read.
func (o *Object) RequireArray(key string) (*Array, error) {
	v, ok := o.entries[key]
	if !ok {
		return nil, BadRequestf("required key %s is missing", key)
	}
	return asArray(v), nil
}

// MaybeArray looks up key and returns its value as an array if present,
// applying the same singleton-wrapping normalization as RequireArray.
func (o *Object) MaybeArray(key string) (*Array, bool, error) {
	v, ok := o.entries[key]
	if !ok {
		return nil, false, nil
	}
	return asArray(v), true, nil
}

func asArray(v Value) *Array {
	if arr, ok := v.(*Array); ok {
		return arr
	}
	return &Array{Elems: []Value{v}}
}

// RequireInt looks up key and fails with a BadRequestError if it is absent or
// not an integer.
func (o *Object) RequireInt(key string) (int64, error) {
	v, ok := o.entries[key]
	if !ok {
		return 0, BadRequestf("required key %s is missing", key)
	}
	i, ok := v.(Int)
	if !ok {
		return 0, BadRequestf("expected an integer under key %s", key)
	}
	return i.Value, nil
}

// MaybeInt looks up key and returns its integer value if present.
func (o *Object) MaybeInt(key string) (int64, bool, error) {
	v, ok := o.entries[key]
	if !ok {
		return 0, false, nil
	}
	i, ok := v.(Int)
	if !ok {
		return 0, false, BadRequestf("expected an integer under key %s", key)
	}
	return i.Value, true, nil
}

// RequireBoolean looks up key and fails with a BadRequestError if it is absent
// or not a boolean.
func (o *Object) RequireBoolean(key string) (bool, error) {
	v, ok := o.entries[key]
	if !ok {
		return false, BadRequestf("required key %s is missing", key)
	}
	b, ok := v.(Boolean)
	if !ok {
		return false, BadRequestf("expected a boolean under key %s", key)
	}
	return b.Value, nil
}

// MaybeBoolean looks up key and returns its boolean value if present.
func (o *Object) MaybeBoolean(key string) (bool, bool, error) {
	v, ok := o.entries[key]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(Boolean)
	if !ok {
		return false, false, BadRequestf("expected a boolean under key %s", key)
	}
	return b.Value, true, nil
}

// RequireStringWith looks up a required string under key and applies a
// caller-supplied validation that either returns the typed value or fails.
func RequireStringWith[T any](o *Object, key string, validate func(string) (T, error)) (T, error) {
	var zero T
	raw, err := o.RequireString(key)
	if err != nil {
		return zero, err
	}
	return validate(raw)
}

// MaybeStringWith is the optional counterpart of RequireStringWith.
func MaybeStringWith[T any](o *Object, key string, validate func(string) (T, error)) (T, bool, error) {
	var zero T
	raw, ok, err := o.MaybeString(key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := validate(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// RequireObjectWith looks up a required object under key and converts it with
// the supplied function.
func RequireObjectWith[T any](o *Object, key string, convert func(*Object) (T, error)) (T, error) {
	var zero T
	obj, err := o.RequireObject(key)
	if err != nil {
		return zero, err
	}
	return convert(obj)
}

// Document-level accessors proxy to the body object.

// RequireString proxies to the body object.
func (d *Document) RequireString(key string) (string, error) {
	return d.Body.RequireString(key)
}

// MaybeString proxies to the body object.
func (d *Document) MaybeString(key string) (string, bool, error) {
	return d.Body.MaybeString(key)
}

// RequireObject proxies to the body object.
func (d *Document) RequireObject(key string) (*Object, error) {
	return d.Body.RequireObject(key)
}

// MaybeObject proxies to the body object.
func (d *Document) MaybeObject(key string) (*Object, bool, error) {
	return d.Body.MaybeObject(key)
}

// RequireArray proxies to the body object.
func (d *Document) RequireArray(key string) (*Array, error) {
	return d.Body.RequireArray(key)
}

// MaybeArray proxies to the body object.
func (d *Document) MaybeArray(key string) (*Array, bool, error) {
	return d.Body.MaybeArray(key)
}

// RequireInt proxies to the body object.
func (d *Document) RequireInt(key string) (int64, error) {
	return d.Body.RequireInt(key)
}

// MaybeInt proxies to the body object.
func (d *Document) MaybeInt(key string) (int64, bool, error) {
	return d.Body.MaybeInt(key)
}

// RequireBoolean proxies to the body object.
func (d *Document) RequireBoolean(key string) (bool, error) {
	return d.Body.RequireBoolean(key)
}

// MaybeBoolean proxies to the body object.
func (d *Document) MaybeBoolean(key string) (bool, bool, error) {
	return d.Body.MaybeBoolean(key)
}
