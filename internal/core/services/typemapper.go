package services

import (
	"fmt"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
)

// TypeMapper converts a resolved field schema into a Dart type descriptor.
// Nullability is not decided here: it follows purely from the
// required-by-default rule applied by the class model builder.
type TypeMapper struct {
	resolver *Resolver
}

// NewTypeMapper creates a type mapper using resolver to validate references.
func NewTypeMapper(resolver *Resolver) *TypeMapper {
	return &TypeMapper{resolver: resolver}
}

// primitiveType maps a primitive kind to its Dart representation. Integer
// and general-numeric kinds map to distinct types even though both are
// numeric.
func primitiveType(typ, format string) domain.TypeRef {
	switch typ {
	case "integer":
		return domain.TypeRef{Name: "int", Category: domain.TypePrimitive}
	case "number":
		return domain.TypeRef{Name: "double", Category: domain.TypePrimitive}
	case "boolean":
		return domain.TypeRef{Name: "bool", Category: domain.TypePrimitive}
	case "string":
		switch format {
		case "date-time", "date":
			return domain.TypeRef{Name: "DateTime", Category: domain.TypeDateTime}
		default:
			return domain.TypeRef{Name: "String", Category: domain.TypePrimitive}
		}
	default:
		return domain.TypeRef{Name: "dynamic", Category: domain.TypeDynamic}
	}
}

// Map converts schema into a type descriptor. owner is the name of the
// schema the field belongs to; a self-reference contributes no dependency so
// the generated file never imports itself.
func (m *TypeMapper) Map(schema *domain.RawSchema, owner string) (domain.TypeRef, error) {
	dynamicRef := domain.TypeRef{Name: "dynamic", Category: domain.TypeDynamic}

	switch schema.Kind {
	case domain.KindReference:
		name, _, err := m.resolver.Resolve(schema.Ref, owner)
		if err != nil {
			return domain.TypeRef{}, err
		}
		ref := domain.TypeRef{Name: dart.ClassName(name), Category: domain.TypeClass}
		if name != owner {
			ref.Deps = []string{name}
		}
		return ref, nil

	case domain.KindArray:
		item := dynamicRef
		if schema.Items != nil {
			var err error
			item, err = m.Map(schema.Items, owner)
			if err != nil {
				return domain.TypeRef{}, err
			}
		}
		return domain.TypeRef{
			Name:     fmt.Sprintf("List<%s>", item.Name),
			Category: domain.TypeList,
			Elem:     &item,
			Deps:     item.Deps,
		}, nil

	case domain.KindObject:
		if schema.IsMapObject() {
			value, err := m.Map(schema.AdditionalProperties, owner)
			if err != nil {
				return domain.TypeRef{}, err
			}
			return domain.TypeRef{
				Name:     fmt.Sprintf("Map<String, %s>", value.Name),
				Category: domain.TypeMap,
				Elem:     &value,
				Deps:     value.Deps,
			}, nil
		}
		// Anonymous inline objects are not lifted into named classes; they
		// stay loosely typed and the linter flags them.
		return domain.TypeRef{
			Name:     "Map<String, dynamic>",
			Category: domain.TypeMap,
			Elem:     &dynamicRef,
		}, nil

	case domain.KindEnum:
		// Enums reached outside direct property position (array items,
		// map values) fall back to their primitive representation; direct
		// property enums are lifted into generated enums by the class
		// model builder before mapping.
		return primitiveType(schema.Type, schema.Format), nil

	case domain.KindPrimitive:
		return primitiveType(schema.Type, schema.Format), nil

	case domain.KindAllOf, domain.KindOneOf, domain.KindAnyOf:
		// Inline composition in field position is not expanded.
		return dynamicRef, nil

	default:
		return dynamicRef, nil
	}
}
