// Package vocabulary defines the IRI constants shared by the RDF bridge and the
// value model: the usual W3C namespaces plus the API value ontology in its two
// renditions (complex and simple).
package vocabulary

import "strings"

// W3C namespaces.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// Frequently used W3C terms.
const (
	RDFType   = RDFNamespace + "type"
	RDFSLabel = RDFSNamespace + "label"

	XSDString        = XSDNamespace + "string"
	XSDBoolean       = XSDNamespace + "boolean"
	XSDInt           = XSDNamespace + "int"
	XSDInteger       = XSDNamespace + "integer"
	XSDDecimal       = XSDNamespace + "decimal"
	XSDAnyURI        = XSDNamespace + "anyURI"
	XSDDateTimeStamp = XSDNamespace + "dateTimeStamp"
)

// API value ontology namespaces. The complex rendition exposes every sub-field of
// a value as its own predicate; the simple rendition collapses each value to a
// single literal.
const (
	ComplexNamespace = "https://api.geoknoesis.com/ontology/v2#"
	SimpleNamespace  = "https://api.geoknoesis.com/ontology/simple/v2#"
)

// Value class IRIs (complex rendition).
const (
	TextValue           = ComplexNamespace + "TextValue"
	IntValue            = ComplexNamespace + "IntValue"
	DecimalValue        = ComplexNamespace + "DecimalValue"
	BooleanValue        = ComplexNamespace + "BooleanValue"
	DateValue           = ComplexNamespace + "DateValue"
	IntervalValue       = ComplexNamespace + "IntervalValue"
	ColorValue          = ComplexNamespace + "ColorValue"
	URIValue            = ComplexNamespace + "UriValue"
	GeonameValue        = ComplexNamespace + "GeonameValue"
	ListValue           = ComplexNamespace + "ListValue"
	LinkValue           = ComplexNamespace + "LinkValue"
	StillImageFileValue = ComplexNamespace + "StillImageFileValue"
	TextFileValue       = ComplexNamespace + "TextFileValue"
)

// Value property IRIs (complex rendition).
const (
	ValueAsString   = ComplexNamespace + "valueAsString"
	ValueHasComment = ComplexNamespace + "valueHasComment"

	TextValueAsXML       = ComplexNamespace + "textValueAsXml"
	TextValueHasMapping  = ComplexNamespace + "textValueHasMapping"
	TextValueHasLanguage = ComplexNamespace + "textValueHasLanguage"

	IntValueAsInt             = ComplexNamespace + "intValueAsInt"
	DecimalValueAsDecimal     = ComplexNamespace + "decimalValueAsDecimal"
	BooleanValueAsBoolean     = ComplexNamespace + "booleanValueAsBoolean"
	ColorValueAsColor         = ComplexNamespace + "colorValueAsColor"
	URIValueAsURI             = ComplexNamespace + "uriValueAsUri"
	GeonameValueAsGeonameCode = ComplexNamespace + "geonameValueAsGeonameCode"
	ListValueAsListNode       = ComplexNamespace + "listValueAsListNode"
	LinkValueHasTarget        = ComplexNamespace + "linkValueHasTarget"
	LinkValueHasTargetIRI     = ComplexNamespace + "linkValueHasTargetIri"

	DateValueHasCalendar   = ComplexNamespace + "dateValueHasCalendar"
	DateValueHasStartYear  = ComplexNamespace + "dateValueHasStartYear"
	DateValueHasStartMonth = ComplexNamespace + "dateValueHasStartMonth"
	DateValueHasStartDay   = ComplexNamespace + "dateValueHasStartDay"
	DateValueHasStartEra   = ComplexNamespace + "dateValueHasStartEra"
	DateValueHasEndYear    = ComplexNamespace + "dateValueHasEndYear"
	DateValueHasEndMonth   = ComplexNamespace + "dateValueHasEndMonth"
	DateValueHasEndDay     = ComplexNamespace + "dateValueHasEndDay"
	DateValueHasEndEra     = ComplexNamespace + "dateValueHasEndEra"

	IntervalValueHasStart = ComplexNamespace + "intervalValueHasStart"
	IntervalValueHasEnd   = ComplexNamespace + "intervalValueHasEnd"

	FileValueAsURL             = ComplexNamespace + "fileValueAsUrl"
	FileValueHasFilename       = ComplexNamespace + "fileValueHasFilename"
	StillImageFileValueHasDimX = ComplexNamespace + "stillImageFileValueHasDimX"
	StillImageFileValueHasDimY = ComplexNamespace + "stillImageFileValueHasDimY"
)

// Custom datatype IRIs (simple rendition). Values without a standard XSD
// representation travel as literals of these datatypes.
const (
	SimpleDate     = SimpleNamespace + "Date"
	SimpleColor    = SimpleNamespace + "Color"
	SimpleGeoname  = SimpleNamespace + "Geoname"
	SimpleInterval = SimpleNamespace + "Interval"
	SimpleFile     = SimpleNamespace + "File"
)

// ontologyNamespaces are the namespaces whose entities are schema definitions
// rather than data. The RDF bridge never inlines a resource from one of these;
// it always emits a bare IRI reference.
var ontologyNamespaces = []string{
	RDFNamespace,
	RDFSNamespace,
	OWLNamespace,
	XSDNamespace,
	ComplexNamespace,
	SimpleNamespace,
}

// IsOntologyEntity reports whether iri names an entity in a reserved
// ontology-definition namespace.
func IsOntologyEntity(iri string) bool {
	for _, ns := range ontologyNamespaces {
		if strings.HasPrefix(iri, ns) {
			return true
		}
	}
	return false
}
