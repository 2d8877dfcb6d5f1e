package values

import (
	"github.com/geoknoesis/ldapi-go/jsonld"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// ListValue is a reference to a node of a hierarchical list.
type ListValue struct {
	ValueBase
	// NodeIRI identifies the referenced list node.
	NodeIRI string
	// NodeLabel is the node's label, when known. It is populated when the
	// value is read from the store, never by client input.
	NodeLabel string
}

func listValueFromJSONLD(obj *jsonld.Object) (*ListValue, error) {
	nodeIRI, err := jsonld.RequireObjectWith(obj, vocabulary.ListValueAsListNode, func(o *jsonld.Object) (string, error) {
		return jsonld.ToIRI(o, validateURI)
	})
	if err != nil {
		return nil, err
	}
	comment, err := commentFromJSONLD(obj)
	if err != nil {
		return nil, err
	}
	return &ListValue{ValueBase: ValueBase{Comment: comment}, NodeIRI: nodeIRI}, nil
}

// Type returns the complex-rendition class IRI.
func (v *ListValue) Type() string { return vocabulary.ListValue }

// String returns the node label when known, the node IRI otherwise.
func (v *ListValue) String() string {
	if v.NodeLabel != "" {
		return v.NodeLabel
	}
	return v.NodeIRI
}

// ToJSONLD renders the value in the given schema rendition. The simple form
// carries the node label as a plain string, falling back to an IRI reference
// when no label is known.
func (v *ListValue) ToJSONLD(schema Schema) jsonld.Value {
	if schema == SchemaSimple {
		if v.NodeLabel != "" {
			return jsonld.String{Value: v.NodeLabel}
		}
		return jsonld.IRIObject(v.NodeIRI)
	}
	return complexObject(vocabulary.ListValue, v.Comment).
		Set(vocabulary.ListValueAsListNode, jsonld.IRIObject(v.NodeIRI))
}

// WouldDuplicateOtherValue compares the defining fields, ignoring the comment.
func (v *ListValue) WouldDuplicateOtherValue(other Content) bool {
	o, ok := other.(*ListValue)
	return ok && o.NodeIRI == v.NodeIRI
}

// WouldDuplicateCurrentVersion additionally requires the comment to match.
func (v *ListValue) WouldDuplicateCurrentVersion(current Content) bool {
	o, ok := current.(*ListValue)
	return ok && o.NodeIRI == v.NodeIRI && o.Comment == v.Comment
}
