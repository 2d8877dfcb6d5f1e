package rdf

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Graph is an in-memory set of RDF statements with a namespace table.
//
// Statements are kept in insertion order (duplicates are ignored) so that
// encoding the same graph twice produces identical output. A Graph is
// request-scoped mutable state: build it, serialize it, discard it.
type Graph struct {
	statements []Statement
	seen       map[string]struct{}
	namespaces map[string]string
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen:       make(map[string]struct{}),
		namespaces: make(map[string]string),
	}
}

func statementKey(st Statement) string {
	var sb strings.Builder
	sb.WriteString(termKey(st.S))
	sb.WriteByte(' ')
	sb.WriteString(st.P.Value)
	sb.WriteByte(' ')
	sb.WriteString(termKey(st.O))
	if st.G != nil {
		sb.WriteByte(' ')
		sb.WriteString(termKey(st.G))
	}
	return sb.String()
}

func termKey(t Term) string {
	switch v := t.(type) {
	case IRI:
		return "<" + v.Value + ">"
	default:
		return t.String()
	}
}

// Add inserts a statement. Adding an already-present statement is a no-op.
func (g *Graph) Add(st Statement) {
	key := statementKey(st)
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.statements = append(g.statements, st)
}

// AddTriple inserts a statement in the default graph.
func (g *Graph) AddTriple(s Term, p IRI, o Term) {
	g.Add(Statement{S: s, P: p, O: o})
}

// Len returns the number of statements.
func (g *Graph) Len() int { return len(g.statements) }

// Statements returns a copy of all statements in insertion order.
func (g *Graph) Statements() []Statement {
	out := make([]Statement, len(g.statements))
	copy(out, g.statements)
	return out
}

// Find returns all statements matching the given pattern, in insertion order.
// A nil subject, predicate, or object matches anything.
func (g *Graph) Find(s Term, p *IRI, o Term) []Statement {
	var out []Statement
	for _, st := range g.statements {
		if s != nil && termKey(st.S) != termKey(s) {
			continue
		}
		if p != nil && st.P.Value != p.Value {
			continue
		}
		if o != nil && termKey(st.O) != termKey(o) {
			continue
		}
		out = append(out, st)
	}
	return out
}

// Subjects returns the distinct subjects of all statements in a deterministic
// order: IRIs sorted lexicographically, then blank nodes sorted by label.
func (g *Graph) Subjects() []Term {
	var iris []string
	var blanks []string
	seenIRI := make(map[string]struct{})
	seenBlank := make(map[string]struct{})
	for _, st := range g.statements {
		switch subj := st.S.(type) {
		case IRI:
			if _, ok := seenIRI[subj.Value]; !ok {
				seenIRI[subj.Value] = struct{}{}
				iris = append(iris, subj.Value)
			}
		case BlankNode:
			if _, ok := seenBlank[subj.ID]; !ok {
				seenBlank[subj.ID] = struct{}{}
				blanks = append(blanks, subj.ID)
			}
		}
	}
	sort.Strings(iris)
	sort.Strings(blanks)
	out := make([]Term, 0, len(iris)+len(blanks))
	for _, v := range iris {
		out = append(out, IRI{Value: v})
	}
	for _, id := range blanks {
		out = append(out, BlankNode{ID: id})
	}
	return out
}

// ContainsNamedGraphs reports whether any statement names a graph.
func (g *Graph) ContainsNamedGraphs() bool {
	for _, st := range g.statements {
		if st.G != nil {
			return true
		}
	}
	return false
}

// SetNamespace registers a prefix for a namespace IRI.
func (g *Graph) SetNamespace(prefix, iri string) {
	g.namespaces[prefix] = iri
}

// Namespaces returns a copy of the prefix table.
func (g *Graph) Namespaces() map[string]string {
	out := make(map[string]string, len(g.namespaces))
	for k, v := range g.namespaces {
		out[k] = v
	}
	return out
}

// NodeFactory constructs RDF terms. Blank node labels are freshly generated and
// unique across factories, so terms from different factories can be mixed in
// one graph without label collisions.
type NodeFactory struct{}

// NewNodeFactory returns a node factory.
func NewNodeFactory() *NodeFactory { return &NodeFactory{} }

// NewIRI constructs an IRI term.
func (f *NodeFactory) NewIRI(value string) IRI { return IRI{Value: value} }

// NewBlankNode constructs a blank node with a fresh label.
func (f *NodeFactory) NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// NewBlankNodeWithID constructs a blank node with the given label.
func (f *NodeFactory) NewBlankNodeWithID(id string) BlankNode {
	return BlankNode{ID: id}
}

// NewStringLiteral constructs a plain string literal.
func (f *NodeFactory) NewStringLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewLangLiteral constructs a language-tagged string literal.
func (f *NodeFactory) NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral constructs a datatype-tagged literal.
func (f *NodeFactory) NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}
