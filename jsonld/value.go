package jsonld

import (
	"hash/fnv"
	"sort"
	"strconv"
)

// Value is a node in a JSON-LD document tree. The set of implementations is
// closed: String, Int, Boolean, Object, and Array.
//
// Equality is structural. Array equality is order-insensitive (per JSON-LD
// semantics, element order in array contexts carries no meaning), and Hash is
// consistent with Equal for every implementation.
type Value interface {
	Equal(other Value) bool
	Hash() uint64
	isValue()
}

// String is a JSON-LD string node.
type String struct {
	Value string
}

func (String) isValue() {}

// Equal reports structural equality.
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o.Value == s.Value
}

// Hash returns a hash consistent with Equal.
func (s String) Hash() uint64 {
	return hashBytes([]byte("s:" + s.Value))
}

// Int is a JSON-LD integer node.
type Int struct {
	Value int64
}

func (Int) isValue() {}

// Equal reports structural equality.
func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && o.Value == i.Value
}

// Hash returns a hash consistent with Equal.
func (i Int) Hash() uint64 {
	return hashBytes([]byte("i:" + strconv.FormatInt(i.Value, 10)))
}

// Boolean is a JSON-LD boolean node.
type Boolean struct {
	Value bool
}

func (Boolean) isValue() {}

// Equal reports structural equality.
func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && o.Value == b.Value
}

// Hash returns a hash consistent with Equal.
func (b Boolean) Hash() uint64 {
	return hashBytes([]byte("b:" + strconv.FormatBool(b.Value)))
}

// Array is a JSON-LD array node. Element order is preserved for serialization
// but ignored by Equal and Hash: two arrays are equal when their elements can
// be matched one-to-one regardless of position.
type Array struct {
	Elems []Value
}

func (*Array) isValue() {}

// NewArray constructs an array node from the given elements.
func NewArray(elems ...Value) *Array {
	return &Array{Elems: elems}
}

// Equal reports order-insensitive equality of elements.
func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(o.Elems) != len(a.Elems) {
		return false
	}
	matched := make([]bool, len(o.Elems))
outer:
	for _, elem := range a.Elems {
		for j, candidate := range o.Elems {
			if !matched[j] && elem.Equal(candidate) {
				matched[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Hash combines element hashes commutatively so that permutations of the same
// elements hash identically.
func (a *Array) Hash() uint64 {
	var sum uint64
	for _, elem := range a.Elems {
		sum += elem.Hash()
	}
	return sum ^ hashBytes([]byte("a:"+strconv.Itoa(len(a.Elems))))
}

// Object is a JSON-LD object node: a mapping from string keys to values. Keys
// are unique; insertion order is irrelevant for equality but preserved for
// serialization.
type Object struct {
	keys    []string
	entries map[string]Value
}

func (*Object) isValue() {}

// NewObject returns an empty object node.
func NewObject() *Object {
	return &Object{entries: make(map[string]Value)}
}

// Set associates key with value, preserving first-insertion order. Setting an
// existing key replaces its value in place.
func (o *Object) Set(key string, value Value) *Object {
	if _, ok := o.entries[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.entries[key] = value
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Equal reports mapping equality, ignoring insertion order.
func (o *Object) Equal(other Value) bool {
	v, ok := other.(*Object)
	if !ok || len(v.entries) != len(o.entries) {
		return false
	}
	for key, val := range o.entries {
		otherVal, ok := v.entries[key]
		if !ok || !val.Equal(otherVal) {
			return false
		}
	}
	return true
}

// Hash traverses entries in sorted key order so that insertion order does not
// affect the result.
func (o *Object) Hash() uint64 {
	keys := o.Keys()
	sort.Strings(keys)
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, key := range keys {
		h.Write([]byte(key))
		elemHash := o.entries[key].Hash()
		for i := 0; i < 8; i++ {
			buf[i] = byte(elemHash >> (8 * i))
		}
		h.Write(buf)
	}
	return h.Sum64()
}

func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

// IsIRI reports whether the object is an IRI reference: its key set is exactly
// {@id} and the value is a string.
func (o *Object) IsIRI() bool {
	if len(o.entries) != 1 {
		return false
	}
	v, ok := o.entries[KeywordID]
	if !ok {
		return false
	}
	_, isString := v.(String)
	return isString
}

// IsStringWithLang reports whether the object is a language-tagged string: its
// key set is exactly {@value, @language} and both values are strings.
func (o *Object) IsStringWithLang() bool {
	if len(o.entries) != 2 {
		return false
	}
	v, ok := o.entries[KeywordValue]
	if !ok {
		return false
	}
	if _, isString := v.(String); !isString {
		return false
	}
	lang, ok := o.entries[KeywordLanguage]
	if !ok {
		return false
	}
	_, isString := lang.(String)
	return isString
}

// IsDatatypeValue reports whether the object is a datatype literal: its key
// set is exactly {@type, @value} with a string datatype IRI.
func (o *Object) IsDatatypeValue() bool {
	if len(o.entries) != 2 {
		return false
	}
	datatype, ok := o.entries[KeywordType]
	if !ok {
		return false
	}
	if _, isString := datatype.(String); !isString {
		return false
	}
	_, ok = o.entries[KeywordValue]
	return ok
}

// ToIRI converts an IRI-reference object into the validator's result type,
// failing with a BadRequestError if the object is not an IRI reference.
func ToIRI[T any](o *Object, validate func(string) (T, error)) (T, error) {
	var zero T
	if !o.IsIRI() {
		return zero, BadRequestf("expected an IRI reference object with a single @id key")
	}
	id := o.entries[KeywordID].(String)
	return validate(id.Value)
}

// DatatypeValueLiteral converts a datatype-literal object into the validator's
// result type, checking the object shape and the expected datatype IRI.
func DatatypeValueLiteral[T any](o *Object, expectedDatatype string, validate func(string) (T, error)) (T, error) {
	var zero T
	if !o.IsDatatypeValue() {
		return zero, BadRequestf("expected a datatype literal object with @type and @value keys")
	}
	datatype := o.entries[KeywordType].(String)
	if datatype.Value != expectedDatatype {
		return zero, BadRequestf("expected datatype %s, found %s", expectedDatatype, datatype.Value)
	}
	lexical, ok := o.entries[KeywordValue].(String)
	if !ok {
		return zero, BadRequestf("expected a string under @value for datatype %s", expectedDatatype)
	}
	return validate(lexical.Value)
}

// IRIObject constructs an IRI reference object {@id: iri}.
func IRIObject(iri string) *Object {
	return NewObject().Set(KeywordID, String{Value: iri})
}

// StringWithLang constructs a language-tagged string object
// {@value: text, @language: lang}.
func StringWithLang(text, lang string) *Object {
	return NewObject().
		Set(KeywordValue, String{Value: text}).
		Set(KeywordLanguage, String{Value: lang})
}

// DatatypeValue constructs a datatype literal object {@type: datatype,
// @value: lexical}.
func DatatypeValue(lexical, datatype string) *Object {
	return NewObject().
		Set(KeywordType, String{Value: datatype}).
		Set(KeywordValue, String{Value: lexical})
}
