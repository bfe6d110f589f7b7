package domain

// TypeCategory tells emission backends how values of a type cross the wire.
type TypeCategory int

const (
	// TypePrimitive casts directly (int, double, bool, String).
	TypePrimitive TypeCategory = iota

	// TypeDateTime parses from and formats to ISO 8601 strings.
	TypeDateTime

	// TypeClass round-trips through generated fromJson/toJson.
	TypeClass

	// TypeEnum round-trips through the generated enum helpers.
	TypeEnum

	// TypeList is a homogeneous sequence of Elem.
	TypeList

	// TypeMap is a string-keyed map of Elem values.
	TypeMap

	// TypeDynamic passes through untouched.
	TypeDynamic
)

// TypeRef is a target-language type descriptor produced by the type mapper.
type TypeRef struct {
	// Name is the rendered Dart type, e.g. "int", "List<Pet>", "Map<String, double>".
	Name string

	// Category drives serialization code in emission backends.
	Category TypeCategory

	// Elem is the element type for TypeList, the value type for TypeMap
	// and the wire value type for TypeEnum.
	Elem *TypeRef

	// Deps lists the generated type names this type refers to (classes and
	// enums), used by backends to emit imports. A class never lists itself:
	// self-reference must not produce a self-import.
	Deps []string
}

// Field is one member of a resolved class.
type Field struct {
	// Name is the sanitized target-language field name.
	Name string

	// Key is the original property key used for serialization.
	Key string

	// Type is the mapped target type.
	Type TypeRef

	// Required reports membership in the schema's required set.
	Required bool

	// Nullable is true only when the property schema was explicitly marked
	// nullable. Presence in the property map makes a field non-nullable by
	// default, independent of the required set.
	Nullable bool
}

// ResolvedClass is the flattened, fully-typed model of one named schema,
// produced once per name by the class model builder and read-only thereafter.
// A later resolution pass may supersede an earlier instance of the same name.
type ResolvedClass struct {
	// Name is the sanitized target class name.
	Name string

	// Doc is the documentation string, empty when the schema has none.
	Doc string

	// Fields are the class members in resolution order.
	Fields []Field

	// Source is the originating raw schema, retained for content hashing.
	Source *RawSchema
}

// FieldByKey returns the field with the given original property key, or nil.
func (c *ResolvedClass) FieldByKey(key string) *Field {
	for i := range c.Fields {
		if c.Fields[i].Key == key {
			return &c.Fields[i]
		}
	}
	return nil
}

// EnumValue is one member of a generated enumeration.
type EnumValue struct {
	// Name is the display name, resolved by override priority or sanitized
	// from the literal.
	Name string

	// Literal is the wire value from the document.
	Literal string
}

// EnumModel is the model of a generated enumeration.
type EnumModel struct {
	// Name is the sanitized target enum name.
	Name string

	// Doc is the documentation string, empty when the schema has none.
	Doc string

	// ValueType is the Dart type of the wire value ("String", "int",
	// "double", "bool"). Empty is treated as "String".
	ValueType string

	// Values are the members in declaration order.
	Values []EnumValue
}

// WrapperModel is the minimal model for an undiscriminated one-of/any-of
// group: a single loosely-typed value field with pass-through encode/decode.
// It deliberately does not attempt discrimination.
type WrapperModel struct {
	// Name is the sanitized target class name.
	Name string

	// Doc is the documentation string.
	Doc string
}
