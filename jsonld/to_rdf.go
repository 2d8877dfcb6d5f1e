package jsonld

import (
	"strconv"

	"github.com/geoknoesis/ldapi-go/rdf"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// ToGraph converts the document body into an RDF graph. Objects carrying @id
// become IRI subjects; objects without one get fresh blank nodes from the
// factory. The context's prefix mappings become the graph's namespace table.
func ToGraph(doc *Document, factory *rdf.NodeFactory) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	for _, key := range doc.Context.Keys() {
		if v, ok := doc.Context.Get(key); ok {
			if s, isString := v.(String); isString {
				g.SetNamespace(key, s.Value)
			}
		}
	}

	if doc.Body.Has(KeywordGraph) {
		for _, key := range doc.Body.Keys() {
			if key != KeywordGraph && key != KeywordContext {
				return nil, BadRequestf("unexpected key %s next to @graph", key)
			}
		}
		entities, err := doc.Body.RequireArray(KeywordGraph)
		if err != nil {
			return nil, err
		}
		for _, elem := range entities.Elems {
			obj, ok := elem.(*Object)
			if !ok {
				return nil, BadRequestf("expected an object inside @graph")
			}
			if _, err := addEntity(g, factory, obj); err != nil {
				return nil, err
			}
		}
		return g, nil
	}

	if _, err := addEntity(g, factory, doc.Body); err != nil {
		return nil, err
	}
	return g, nil
}

// addEntity emits the statements for one JSON-LD entity object and returns its
// subject term.
func addEntity(g *rdf.Graph, factory *rdf.NodeFactory, obj *Object) (rdf.Term, error) {
	var subject rdf.Term
	if obj.Has(KeywordID) {
		id, err := obj.RequireString(KeywordID)
		if err != nil {
			return nil, err
		}
		if err := rdf.ValidateIRI(id); err != nil {
			return nil, BadRequestf("invalid @id: %s", id)
		}
		subject = factory.NewIRI(id)
	} else {
		subject = factory.NewBlankNode()
	}

	if obj.Has(KeywordType) {
		types, err := obj.RequireArray(KeywordType)
		if err != nil {
			return nil, err
		}
		for _, elem := range types.Elems {
			typeIRI, ok := elem.(String)
			if !ok {
				return nil, BadRequestf("expected a string under @type")
			}
			g.AddTriple(subject, factory.NewIRI(vocabulary.RDFType), factory.NewIRI(typeIRI.Value))
		}
	}

	for _, key := range obj.Keys() {
		switch key {
		case KeywordID, KeywordType, KeywordContext:
			continue
		case KeywordValue, KeywordLanguage, KeywordGraph:
			return nil, BadRequestf("unexpected key %s in entity object", key)
		}
		value, _ := obj.Get(key)
		predicate := factory.NewIRI(key)
		if arr, ok := value.(*Array); ok {
			for _, elem := range arr.Elems {
				if err := addObjectTerm(g, factory, subject, predicate, elem); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := addObjectTerm(g, factory, subject, predicate, value); err != nil {
			return nil, err
		}
	}
	return subject, nil
}

// addObjectTerm emits one statement for a single value in object position.
// Objects matching the IRI-reference, language-string, or datatype-literal
// shape terminate recursion; any other object is a nested entity.
func addObjectTerm(g *rdf.Graph, factory *rdf.NodeFactory, subject rdf.Term, predicate rdf.IRI, value Value) error {
	switch v := value.(type) {
	case String:
		g.AddTriple(subject, predicate, factory.NewStringLiteral(v.Value))
	case Int:
		g.AddTriple(subject, predicate, factory.NewTypedLiteral(strconv.FormatInt(v.Value, 10), factory.NewIRI(vocabulary.XSDInteger)))
	case Boolean:
		g.AddTriple(subject, predicate, factory.NewTypedLiteral(strconv.FormatBool(v.Value), factory.NewIRI(vocabulary.XSDBoolean)))
	case *Object:
		switch {
		case v.IsIRI():
			id, err := v.RequireString(KeywordID)
			if err != nil {
				return err
			}
			if err := rdf.ValidateIRI(id); err != nil {
				return BadRequestf("invalid IRI reference %s under predicate %s", id, predicate.Value)
			}
			g.AddTriple(subject, predicate, factory.NewIRI(id))
		case v.IsStringWithLang():
			text, _ := v.RequireString(KeywordValue)
			lang, _ := v.RequireString(KeywordLanguage)
			g.AddTriple(subject, predicate, factory.NewLangLiteral(text, lang))
		case v.IsDatatypeValue():
			datatype, _ := v.RequireString(KeywordType)
			lexical, err := datatypeLexical(v)
			if err != nil {
				return err
			}
			g.AddTriple(subject, predicate, factory.NewTypedLiteral(lexical, factory.NewIRI(datatype)))
		default:
			nested, err := addEntity(g, factory, v)
			if err != nil {
				return err
			}
			g.AddTriple(subject, predicate, nested)
		}
	case *Array:
		return BadRequestf("nested arrays are not allowed under predicate %s", predicate.Value)
	default:
		return BadRequestf("unsupported value under predicate %s", predicate.Value)
	}
	return nil
}

func datatypeLexical(o *Object) (string, error) {
	value, _ := o.Get(KeywordValue)
	switch v := value.(type) {
	case String:
		return v.Value, nil
	case Int:
		return strconv.FormatInt(v.Value, 10), nil
	case Boolean:
		return strconv.FormatBool(v.Value), nil
	default:
		return "", BadRequestf("expected a scalar under @value")
	}
}
