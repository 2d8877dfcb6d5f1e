package values

import "context"

// Mapping is a standoff-to-XML mapping, resolved by IRI from an external
// collaborator.
type Mapping struct {
	// IRI identifies the mapping.
	IRI string
	// Label is the mapping's human-readable label.
	Label string
}

// MappingResolver looks up standoff mappings. Implementations live outside the
// core; a failed lookup propagates to the caller as a lookup error.
type MappingResolver interface {
	GetMapping(ctx context.Context, iri string) (*Mapping, error)
}

// StandoffTag is one out-of-band markup annotation of a span within a text
// value.
type StandoffTag struct {
	// ClassIRI is the standoff tag class.
	ClassIRI string
	// StartPosition and EndPosition delimit the annotated span.
	StartPosition int
	EndPosition   int
	// UUID identifies the tag across value versions.
	UUID string
	// Attributes holds tag-specific attribute values.
	Attributes map[string]string
}

// FileMetadata describes a stored file, as reported by the external
// file-handling service.
type FileMetadata struct {
	OriginalFilename string
	InternalFilename string
	MimeType         string
	Width            int
	Height           int
}

// FileInfoResolver queries file metadata for a temporary file URL.
// Implementations live outside the core.
type FileInfoResolver interface {
	GetFileMetadata(ctx context.Context, tempFileURL string) (FileMetadata, error)
}
