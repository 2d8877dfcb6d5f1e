package rdf

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// TurtleOptions configures Turtle encoding.
type TurtleOptions struct {
	// BaseIRI emits an @base directive when set.
	BaseIRI string
}

// EncodeTurtle writes the graph as Turtle: an @prefix header built from the
// graph's namespace table followed by one statement per line, grouped by
// subject in first-seen order. IRIs are abbreviated to prefixed names where a
// registered namespace allows it.
//
// Turtle is a triple-only format; a graph containing named-graph statements is
// rejected with ErrNamedGraph.
func EncodeTurtle(g *Graph, w io.Writer, opts TurtleOptions) error {
	if g.ContainsNamedGraphs() {
		return ErrNamedGraph
	}
	bw := bufio.NewWriter(w)
	prefixes := g.Namespaces()

	if opts.BaseIRI != "" {
		if _, err := bw.WriteString("@base <" + opts.BaseIRI + "> .\n"); err != nil {
			return err
		}
	}
	for _, prefix := range sortedPrefixKeys(prefixes) {
		label := prefix + ":"
		if prefix == "" {
			label = ":"
		}
		if _, err := bw.WriteString("@prefix " + label + " <" + prefixes[prefix] + "> .\n"); err != nil {
			return err
		}
	}
	if len(prefixes) > 0 || opts.BaseIRI != "" {
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	// Group statements by subject, keeping first-seen subject order.
	var subjects []string
	bySubject := make(map[string][]Statement)
	for _, st := range g.Statements() {
		key := termKey(st.S)
		if _, ok := bySubject[key]; !ok {
			subjects = append(subjects, key)
		}
		bySubject[key] = append(bySubject[key], st)
	}

	for _, key := range subjects {
		group := bySubject[key]
		subject := renderTerm(group[0].S, prefixes)
		for i, st := range group {
			var line string
			if i == 0 {
				line = subject + " " + renderIRITerm(st.P, prefixes) + " " + renderTerm(st.O, prefixes)
			} else {
				line = strings.Repeat(" ", len(subject)) + " " + renderIRITerm(st.P, prefixes) + " " + renderTerm(st.O, prefixes)
			}
			if i == len(group)-1 {
				line += " .\n"
			} else {
				line += " ;\n"
			}
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderIRITerm(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.Value, prefixes); ok {
		return qname
	}
	return "<" + iri.Value + ">"
}

func renderTerm(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRITerm(value, prefixes)
	case BlankNode:
		return value.String()
	case Literal:
		lexical := "\"" + escapeTurtleString(value.Lexical) + "\""
		if value.Lang != "" {
			return lexical + "@" + value.Lang
		}
		if value.Datatype.Value != "" {
			return lexical + "^^" + renderIRITerm(value.Datatype, prefixes)
		}
		return lexical
	default:
		return ""
	}
}

func abbreviateQName(iri string, prefixes map[string]string) (string, bool) {
	bestNS := ""
	bestPrefix := ""
	found := false
	for prefix, ns := range prefixes {
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		local := iri[len(ns):]
		if !isQNameLocal(local) {
			continue
		}
		if len(ns) > len(bestNS) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}

// isQNameLocal reports whether local can appear after a prefix without escaping.
func isQNameLocal(local string) bool {
	if local == "" {
		return false
	}
	for i, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-', r == '.':
			if i == 0 && r == '.' {
				return false
			}
		default:
			return false
		}
	}
	return !strings.HasSuffix(local, ".")
}

func escapeTurtleString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
