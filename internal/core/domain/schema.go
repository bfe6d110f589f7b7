package domain

// Dialect identifies the description dialect the input document was written in.
type Dialect string

const (
	// DialectSwagger2 is OpenAPI 2.0; named schemas live under "definitions".
	DialectSwagger2 Dialect = "swagger-2.0"

	// DialectOpenAPI3 is OpenAPI 3.x; named schemas live under "components.schemas".
	DialectOpenAPI3 Dialect = "openapi-3"
)

// Kind classifies a schema node.
type Kind int

const (
	// KindObject is an object schema with named properties.
	KindObject Kind = iota

	// KindArray is a homogeneous sequence with an item schema.
	KindArray

	// KindPrimitive is a scalar type (string, integer, number, boolean).
	KindPrimitive

	// KindEnum is a primitive restricted to a fixed literal sequence.
	KindEnum

	// KindReference is a pointer-style reference to another named schema.
	KindReference

	// KindAllOf is a composition where all fragments apply.
	KindAllOf

	// KindOneOf is a composition where exactly one alternative applies.
	KindOneOf

	// KindAnyOf is a composition where one or more alternatives may apply.
	KindAnyOf
)

// String returns the kind name used in logs and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindReference:
		return "reference"
	case KindAllOf:
		return "allOf"
	case KindOneOf:
		return "oneOf"
	case KindAnyOf:
		return "anyOf"
	default:
		return "unknown"
	}
}

// Property is a named member of an object schema.
// Order matters: properties keep the declaration order of the source document.
type Property struct {
	// Name is the original property key from the document.
	Name string

	// Schema describes the property's type.
	Schema *RawSchema
}

// TagMapping pairs a discriminator literal with the schema it selects.
type TagMapping struct {
	// Tag is the discriminator literal value.
	Tag string

	// Ref is the reference token of the schema the tag selects.
	Ref string
}

// Discriminator names the property whose literal value selects the active
// alternative of a one-of/any-of group, with an optional explicit tag mapping.
type Discriminator struct {
	// PropertyName is the property carrying the tag value.
	PropertyName string

	// Mapping is the explicit tag → reference table, in declaration order.
	// Empty when the document relies on implicit discrimination.
	Mapping []TagMapping
}

// RawSchema is a dialect-agnostic schema node. It is built once per run by
// the document loader and immutable thereafter.
type RawSchema struct {
	// Kind classifies the node.
	Kind Kind

	// Type is the primitive type name for KindPrimitive and KindEnum
	// ("string", "integer", "number", "boolean").
	Type string

	// Format is the optional format qualifier (e.g. "date-time", "int64").
	Format string

	// Description is the human documentation attached to the node.
	Description string

	// Properties are the object members in declaration order.
	Properties []Property

	// Required is the set of property names the document marks required.
	Required map[string]bool

	// Nullable is the explicit nullability flag ("nullable" / "x-nullable").
	// A property is non-nullable unless this is set; absence from Required
	// never implies nullability.
	Nullable bool

	// Items is the element schema for KindArray.
	Items *RawSchema

	// AdditionalProperties is the value schema of an open object, nil when
	// additional properties are not declared.
	AdditionalProperties *RawSchema

	// EnumValues are the literals of KindEnum in declaration order.
	EnumValues []string

	// EnumNames are display-name overrides aligned with EnumValues.
	// Empty when the document provides none.
	EnumNames []string

	// Ref is the reference token for KindReference.
	Ref string

	// Fragments are the members of an allOf/oneOf/anyOf group, in order.
	Fragments []*RawSchema

	// Discriminator selects alternatives in oneOf/anyOf groups. Nil when
	// the group is undiscriminated.
	Discriminator *Discriminator

	// Source is the generic decoded form of the node (nested map[string]any,
	// []any and scalars) retained solely for content hashing.
	Source any
}

// IsMapObject reports whether the schema is an object carrying only an
// additional-properties value schema and no named properties. Such schemas
// map to a key/value map type rather than a generated class.
func (s *RawSchema) IsMapObject() bool {
	return s.Kind == KindObject && len(s.Properties) == 0 && s.AdditionalProperties != nil
}

// IsRequired reports whether the named property appears in the required set.
func (s *RawSchema) IsRequired(name string) bool {
	return s.Required[name]
}

// Document is the loaded schema index: every named schema of the input
// document in stable declaration order.
type Document struct {
	// Dialect is the detected description dialect.
	Dialect Dialect

	// Names lists schema names in declaration order. Generation, diagnostics
	// and file ordering all follow this order so runs are deterministic.
	Names []string

	// Schemas maps each name to its raw schema node.
	Schemas map[string]*RawSchema
}

// Get returns the named schema, or nil when absent.
func (d *Document) Get(name string) *RawSchema {
	return d.Schemas[name]
}
