package jsonld

import (
	"sort"
	"strconv"

	"github.com/geoknoesis/ldapi-go/rdf"
	"github.com/geoknoesis/ldapi-go/vocabulary"
)

// fromGraphState is the request-scoped bookkeeping of one graph-to-document
// conversion. It is never shared between conversions.
type fromGraphState struct {
	g          *rdf.Graph
	built      map[string]*Object
	processed  map[string]bool
	inTopLevel map[string]bool
	topLevel   []string
}

func stateKey(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return "i|" + v.Value
	case rdf.BlankNode:
		return "b|" + v.ID
	default:
		return t.String()
	}
}

// FromGraph converts an RDF graph into a JSON-LD document, projecting the
// graph onto a tree.
//
// Each subject becomes an entity object. A resource referenced from another
// entity is inlined at its first reference (subjects are iterated in the
// deterministic order of Graph.Subjects, so ties break toward the
// lexicographically smaller referrer); later references fall back to plain
// @id references. Resources in reserved ontology namespaces are never inlined.
// Blank nodes must be defined exactly once and referenced at most once;
// violations fail with an InconsistentDataError. If more than one entity
// remains at the top level the body wraps them in @graph; a single entity
// becomes the body directly.
//
// The graph's namespace table becomes the document context verbatim.
func FromGraph(g *rdf.Graph) (*Document, error) {
	if g.ContainsNamedGraphs() {
		return nil, InconsistentDataf("the graph contains named graphs, which are not supported")
	}
	state := &fromGraphState{
		g:          g,
		built:      make(map[string]*Object),
		processed:  make(map[string]bool),
		inTopLevel: make(map[string]bool),
	}
	for _, subj := range g.Subjects() {
		key := stateKey(subj)
		if state.processed[key] {
			continue
		}
		if _, err := state.buildEntity(subj); err != nil {
			return nil, err
		}
		state.topLevel = append(state.topLevel, key)
		state.inTopLevel[key] = true
	}

	var remaining []*Object
	for _, key := range state.topLevel {
		if state.inTopLevel[key] {
			remaining = append(remaining, state.built[key])
		}
	}

	var body *Object
	switch len(remaining) {
	case 0:
		body = NewObject()
	case 1:
		body = remaining[0]
	default:
		elems := make([]Value, len(remaining))
		for i, obj := range remaining {
			elems[i] = obj
		}
		body = NewObject().Set(KeywordGraph, &Array{Elems: elems})
	}

	context := NewObject()
	namespaces := g.Namespaces()
	prefixes := make([]string, 0, len(namespaces))
	for prefix := range namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		context.Set(prefix, String{Value: namespaces[prefix]})
	}
	return NewDocument(body, context), nil
}

// buildEntity gathers all statements with the given subject and builds its
// entity object: @id for IRI subjects (omitted for blank nodes), @type from
// rdf:type statements, one key per remaining distinct predicate.
func (s *fromGraphState) buildEntity(subject rdf.Term) (*Object, error) {
	key := stateKey(subject)
	s.processed[key] = true
	obj := NewObject()
	s.built[key] = obj

	if iri, ok := subject.(rdf.IRI); ok {
		obj.Set(KeywordID, String{Value: iri.Value})
	}

	var typeIRIs []string
	predicateOrder := []string{}
	byPredicate := make(map[string][]rdf.Term)
	for _, st := range s.g.Find(subject, nil, nil) {
		if st.P.Value == vocabulary.RDFType {
			typeIRI, ok := st.O.(rdf.IRI)
			if !ok {
				return nil, InconsistentDataf("subject %s has an rdf:type that is not an IRI: %s", subject, st.O)
			}
			typeIRIs = append(typeIRIs, typeIRI.Value)
			continue
		}
		if _, ok := byPredicate[st.P.Value]; !ok {
			predicateOrder = append(predicateOrder, st.P.Value)
		}
		byPredicate[st.P.Value] = append(byPredicate[st.P.Value], st.O)
	}

	if len(typeIRIs) > 0 {
		sort.Strings(typeIRIs)
		if len(typeIRIs) == 1 {
			obj.Set(KeywordType, String{Value: typeIRIs[0]})
		} else {
			elems := make([]Value, len(typeIRIs))
			for i, t := range typeIRIs {
				elems[i] = String{Value: t}
			}
			obj.Set(KeywordType, &Array{Elems: elems})
		}
	}

	sort.Strings(predicateOrder)
	for _, predicate := range predicateOrder {
		objects := byPredicate[predicate]
		values := make([]Value, 0, len(objects))
		for _, term := range objects {
			value, err := s.convertTerm(term)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		if len(values) == 1 {
			obj.Set(predicate, values[0])
		} else {
			obj.Set(predicate, &Array{Elems: values})
		}
	}
	return obj, nil
}

// convertTerm converts a statement object into a JSON-LD value, inlining
// nested entities where the projection rules allow it.
func (s *fromGraphState) convertTerm(term rdf.Term) (Value, error) {
	switch v := term.(type) {
	case rdf.Literal:
		return literalToValue(v)
	case rdf.IRI:
		if vocabulary.IsOntologyEntity(v.Value) {
			return IRIObject(v.Value), nil
		}
		key := stateKey(v)
		if s.inTopLevel[key] {
			// First reference wins: pull the entity out of the top level
			// and nest it here.
			s.inTopLevel[key] = false
			return s.built[key], nil
		}
		if !s.processed[key] && s.hasStatements(v) {
			return s.buildEntity(v)
		}
		return IRIObject(v.Value), nil
	case rdf.BlankNode:
		key := stateKey(v)
		if s.inTopLevel[key] {
			s.inTopLevel[key] = false
			return s.built[key], nil
		}
		if !s.processed[key] && s.hasStatements(v) {
			return s.buildEntity(v)
		}
		return nil, InconsistentDataf("blank node %s is not defined exactly once and referenced exactly once", v)
	default:
		return nil, InconsistentDataf("unsupported term %s in object position", term)
	}
}

func (s *fromGraphState) hasStatements(subject rdf.Term) bool {
	return len(s.g.Find(subject, nil, nil)) > 0
}

// literalToValue converts an RDF literal to its JSON-LD form: language-tagged
// object, native scalar for xsd:string/int/integer/boolean, or the generic
// {@type, @value} object for every other datatype.
func literalToValue(lit rdf.Literal) (Value, error) {
	if lit.Lang != "" {
		return StringWithLang(lit.Lexical, lit.Lang), nil
	}
	switch lit.Datatype.Value {
	case "", vocabulary.XSDString:
		return String{Value: lit.Lexical}, nil
	case vocabulary.XSDInt, vocabulary.XSDInteger:
		i, err := strconv.ParseInt(lit.Lexical, 10, 64)
		if err != nil {
			return nil, InconsistentDataf("invalid integer literal %q", lit.Lexical)
		}
		return Int{Value: i}, nil
	case vocabulary.XSDBoolean:
		b, err := strconv.ParseBool(lit.Lexical)
		if err != nil {
			return nil, InconsistentDataf("invalid boolean literal %q", lit.Lexical)
		}
		return Boolean{Value: b}, nil
	default:
		return DatatypeValue(lit.Lexical, lit.Datatype.Value), nil
	}
}
