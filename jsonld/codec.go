package jsonld

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
	"github.com/shopspring/decimal"

	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// FormatStyle selects the output form of a serialized document.
type FormatStyle int

const (
	// FormatCompact emits single-line JSON.
	FormatCompact FormatStyle = iota
	// FormatPretty emits indented JSON.
	FormatPretty
)

const maxExactInt = 1 << 53

// Parse converts raw JSON-LD text into a Document.
//
// The text is parsed as generic JSON, checked against the keyword allowlist,
// then compacted against an empty context to normalize @id/@type/keyword
// forms, and finally converted into the value tree. Any key starting with '@'
// that is not a recognized keyword fails with a BadRequestError naming it.
func Parse(text string) (*Document, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, BadRequestf("invalid JSON: %v", err)
	}
	rawMap, ok := raw.(map[string]any)
	if !ok {
		return nil, BadRequestf("expected a JSON object at the top level of the document")
	}
	if err := checkUnsupportedKeywords(rawMap); err != nil {
		return nil, err
	}

	context := NewObject()
	if rawContext, ok := rawMap[KeywordContext]; ok {
		converted, err := contextFromRaw(rawContext)
		if err != nil {
			return nil, err
		}
		context = converted
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	compacted, err := proc.Compact(rawMap, map[string]any{}, opts)
	if err != nil {
		return nil, BadRequestf("invalid JSON-LD: %v", err)
	}
	body, err := objectFromRaw(compacted)
	if err != nil {
		return nil, err
	}
	return NewDocument(body, context), nil
}

// checkUnsupportedKeywords walks raw JSON rejecting unrecognized '@' keys.
// The contents of @context are exempt: context keys are prefix definitions,
// not node keys.
func checkUnsupportedKeywords(raw any) error {
	switch v := raw.(type) {
	case map[string]any:
		for key, val := range v {
			if key == KeywordContext {
				continue
			}
			if strings.HasPrefix(key, "@") {
				if _, ok := recognizedKeywords[key]; !ok {
					return BadRequestf("JSON-LD keyword %s is not supported", key)
				}
			}
			if err := checkUnsupportedKeywords(val); err != nil {
				return err
			}
		}
	case []any:
		for _, elem := range v {
			if err := checkUnsupportedKeywords(elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// contextFromRaw converts a parsed @context into an Object. Only inline object
// contexts are supported; remote context URLs are rejected.
func contextFromRaw(raw any) (*Object, error) {
	ctxMap, ok := raw.(map[string]any)
	if !ok {
		return nil, BadRequestf("expected an inline object under @context")
	}
	obj := NewObject()
	keys := sortedMapKeys(ctxMap)
	for _, key := range keys {
		switch val := ctxMap[key].(type) {
		case string:
			obj.Set(key, String{Value: val})
		case map[string]any:
			nested, err := contextFromRaw(val)
			if err != nil {
				return nil, err
			}
			obj.Set(key, nested)
		case bool:
			obj.Set(key, Boolean{Value: val})
		default:
			return nil, BadRequestf("unsupported value under @context key %s", key)
		}
	}
	return obj, nil
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func objectFromRaw(raw map[string]any) (*Object, error) {
	obj := NewObject()
	for _, key := range sortedMapKeys(raw) {
		if strings.HasPrefix(key, "@") {
			if _, ok := recognizedKeywords[key]; !ok {
				return nil, BadRequestf("JSON-LD keyword %s is not supported", key)
			}
		}
		if key == KeywordContext {
			converted, err := contextFromRaw(raw[key])
			if err != nil {
				return nil, err
			}
			obj.Set(key, converted)
			continue
		}
		value, err := valueFromRaw(raw[key])
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	return obj, nil
}

func valueFromRaw(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return String{Value: v}, nil
	case bool:
		return Boolean{Value: v}, nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
			return nil, BadRequestf("expected an integer, found %v", v)
		}
		return Int{Value: int64(v)}, nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, BadRequestf("expected an integer, found %s", v.String())
		}
		return Int{Value: i}, nil
	case map[string]any:
		return objectFromRaw(v)
	case []any:
		elems := make([]Value, 0, len(v))
		for _, elem := range v {
			converted, err := valueFromRaw(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, converted)
		}
		return &Array{Elems: elems}, nil
	case nil:
		return nil, BadRequestf("null is not allowed in JSON-LD input")
	default:
		return nil, BadRequestf("unsupported JSON value %v", v)
	}
}

// Format serializes the document, compacting the body against the document's
// context. Decimal literals are normalized first so that repeated round trips
// produce identical output.
func (d *Document) Format(style FormatStyle) (string, error) {
	body := normalizeDecimals(d.Body).(*Object)

	if d.Context.Len() == 0 {
		return renderValue(body, style), nil
	}

	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	contextRaw := valueToRaw(d.Context)
	compacted, err := proc.Compact(valueToRaw(body), map[string]any{KeywordContext: contextRaw}, opts)
	if err != nil {
		return "", fmt.Errorf("JSON-LD compaction failed: %w", err)
	}
	delete(compacted, KeywordContext)
	compactBody, err := objectFromRaw(compacted)
	if err != nil {
		return "", err
	}

	out := NewObject()
	out.Set(KeywordContext, d.Context)
	for _, key := range compactBody.Keys() {
		v, _ := compactBody.Get(key)
		out.Set(key, v)
	}
	return renderValue(out, style), nil
}

// normalizeDecimals returns a copy of the value tree in which every datatype
// literal of type xsd:decimal has trailing zeros stripped from its lexical
// form.
func normalizeDecimals(v Value) Value {
	switch val := v.(type) {
	case *Object:
		out := NewObject()
		for _, key := range val.Keys() {
			entry, _ := val.Get(key)
			out.Set(key, normalizeDecimals(entry))
		}
		if out.IsDatatypeValue() {
			datatype, _ := out.Get(KeywordType)
			if datatype.(String).Value == vocabulary.XSDDecimal {
				if lexical, ok := out.entries[KeywordValue].(String); ok {
					if dec, err := decimal.NewFromString(lexical.Value); err == nil {
						out.Set(KeywordValue, String{Value: dec.String()})
					}
				}
			}
		}
		return out
	case *Array:
		elems := make([]Value, len(val.Elems))
		for i, elem := range val.Elems {
			elems[i] = normalizeDecimals(elem)
		}
		return &Array{Elems: elems}
	default:
		return v
	}
}

// valueToRaw converts the value tree into encoding/json-compatible values for
// the JSON-LD processor.
func valueToRaw(v Value) any {
	switch val := v.(type) {
	case String:
		return val.Value
	case Int:
		return float64(val.Value)
	case Boolean:
		return val.Value
	case *Array:
		out := make([]any, len(val.Elems))
		for i, elem := range val.Elems {
			out[i] = valueToRaw(elem)
		}
		return out
	case *Object:
		out := make(map[string]any, val.Len())
		for _, key := range val.Keys() {
			entry, _ := val.Get(key)
			out[key] = valueToRaw(entry)
		}
		return out
	default:
		return nil
	}
}

// renderValue emits JSON text, preserving object insertion order.
func renderValue(v Value, style FormatStyle) string {
	var sb strings.Builder
	writeValue(&sb, v, style, 0)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, style FormatStyle, depth int) {
	switch val := v.(type) {
	case String:
		writeJSONString(sb, val.Value)
	case Int:
		fmt.Fprintf(sb, "%d", val.Value)
	case Boolean:
		if val.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case *Array:
		writeArray(sb, val, style, depth)
	case *Object:
		writeObject(sb, val, style, depth)
	}
}

func writeArray(sb *strings.Builder, arr *Array, style FormatStyle, depth int) {
	if len(arr.Elems) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, elem := range arr.Elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNewlineIndent(sb, style, depth+1)
		writeValue(sb, elem, style, depth+1)
	}
	writeNewlineIndent(sb, style, depth)
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, obj *Object, style FormatStyle, depth int) {
	if obj.Len() == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteByte('{')
	for i, key := range obj.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNewlineIndent(sb, style, depth+1)
		writeJSONString(sb, key)
		sb.WriteByte(':')
		if style == FormatPretty {
			sb.WriteByte(' ')
		}
		entry, _ := obj.Get(key)
		writeValue(sb, entry, style, depth+1)
	}
	writeNewlineIndent(sb, style, depth)
	sb.WriteByte('}')
}

func writeNewlineIndent(sb *strings.Builder, style FormatStyle, depth int) {
	if style != FormatPretty {
		return
	}
	sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func writeJSONString(sb *strings.Builder, s string) {
	encoded, _ := json.Marshal(s)
	sb.Write(encoded)
}
