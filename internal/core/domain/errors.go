package domain

import "errors"

// Domain errors represent generation failures.
// These are distinct from infrastructure errors.
//
// Two further failure names from the taxonomy, UnknownVariantTag and
// NullPayload, are raised by generated Dart code at decode time, not by the
// generator; they exist as exception types in emitted text only.
var (
	// ErrUnresolvedReference indicates a reference token names no schema in
	// the document. Fatal for the whole run, since references cross schemas.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrInvalidDocument indicates the input document is not a recognised
	// description dialect or is structurally malformed.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrMarkerConflict indicates an existing target file lacks the expected
	// identity marker or begin/end marker pair, or carries more than one
	// pair. Fatal for the affected file only, never silently overwritten.
	ErrMarkerConflict = errors.New("marker conflict")

	// ErrCacheCorrupt indicates the persisted cache record could not be
	// decoded. Recovered by treating the cache as empty; never fatal.
	ErrCacheCorrupt = errors.New("cache corrupt")

	// ErrUnknownBackend indicates no emission backend is registered under
	// the requested name.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrEmptyUnion indicates a discriminated group resolved to no variants.
	ErrEmptyUnion = errors.New("union has no variants")

	// ErrNoDiscriminator indicates union construction without a
	// discriminator property.
	ErrNoDiscriminator = errors.New("missing discriminator property")

	// ErrDuplicateVariantTag indicates two union variants share a tag.
	ErrDuplicateVariantTag = errors.New("duplicate variant tag")

	// ErrInvalidVariant indicates a union variant without a resolved class.
	ErrInvalidVariant = errors.New("invalid variant")
)
