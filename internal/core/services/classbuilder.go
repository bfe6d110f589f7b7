package services

import (
	"fmt"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// Artifact is everything the class model builder produces for one named
// schema. Exactly one of Class, Enum, Union or Wrapper is set; InlineEnums
// carries enumerations lifted from the schema's own properties, rendered
// into the same file.
type Artifact struct {
	Name        string
	Class       *domain.ResolvedClass
	Enum        *domain.EnumModel
	Union       *domain.UnionModel
	Wrapper     *domain.WrapperModel
	InlineEnums []*domain.EnumModel
}

// ClassBuilder assembles resolved models per schema. It keeps an arena of
// named classes so mutually-referential schemas resolve to the same
// instance by name; a class built early for a union variant is superseded
// when its own declaration slot is processed.
type ClassBuilder struct {
	doc      *domain.Document
	composer *Composer
	mapper   *TypeMapper
	classes  map[string]*domain.ResolvedClass
}

// NewClassBuilder creates a class model builder over the loaded document.
func NewClassBuilder(doc *domain.Document, composer *Composer, mapper *TypeMapper) *ClassBuilder {
	return &ClassBuilder{
		doc:      doc,
		composer: composer,
		mapper:   mapper,
		classes:  make(map[string]*domain.ResolvedClass),
	}
}

// Build produces the artifact for the named schema.
func (b *ClassBuilder) Build(name string) (*Artifact, error) {
	schema := b.doc.Get(name)
	if schema == nil {
		return nil, fmt.Errorf("schema %s: %w", name, domain.ErrInvalidDocument)
	}

	switch schema.Kind {
	case domain.KindEnum:
		return &Artifact{Name: name, Enum: buildEnum(dart.ClassName(name), schema)}, nil

	case domain.KindOneOf, domain.KindAnyOf:
		return b.buildAlternatives(name, schema)

	default:
		art := &Artifact{Name: name}
		class, inline, err := b.buildClass(name, schema)
		if err != nil {
			return nil, err
		}
		art.Class = class
		art.InlineEnums = inline
		b.classes[name] = class
		logger.Dump(fmt.Sprintf("resolved class %s", name), class)
		return art, nil
	}
}

// buildAlternatives synthesizes a union when the group is discriminated and
// falls back to the minimal dynamic wrapper otherwise.
func (b *ClassBuilder) buildAlternatives(name string, schema *domain.RawSchema) (*Artifact, error) {
	plan, err := b.composer.PlanUnion(name, schema)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		logger.Debug("schema %s: no discriminator, emitting dynamic wrapper", name)
		return &Artifact{Name: name, Wrapper: &domain.WrapperModel{
			Name: dart.ClassName(name),
			Doc:  schema.Description,
		}}, nil
	}

	variants := make([]domain.UnionVariant, 0, len(plan.variants))
	for _, v := range plan.variants {
		class, err := b.classFor(v.refName)
		if err != nil {
			return nil, err
		}
		variants = append(variants, domain.UnionVariant{Tag: v.tag, Class: class})
	}
	union, err := domain.NewUnionModel(dart.ClassName(name), schema.Description, plan.property, variants)
	if err != nil {
		return nil, err
	}
	return &Artifact{Name: name, Union: union}, nil
}

// classFor returns the resolved class of a referenced schema, building and
// caching it on first use.
func (b *ClassBuilder) classFor(name string) (*domain.ResolvedClass, error) {
	if class, ok := b.classes[name]; ok {
		return class, nil
	}
	schema := b.doc.Get(name)
	if schema == nil {
		return nil, fmt.Errorf("variant %s: %w", name, domain.ErrUnresolvedReference)
	}
	class, _, err := b.buildClass(name, schema)
	if err != nil {
		return nil, err
	}
	b.classes[name] = class
	return class, nil
}

// buildClass flattens the schema and maps every property into a field.
func (b *ClassBuilder) buildClass(name string, schema *domain.RawSchema) (*domain.ResolvedClass, []*domain.EnumModel, error) {
	target := schema
	if schema.Kind == domain.KindReference {
		// A top-level alias takes the shape of its target under its own name.
		_, resolved, err := b.composer.resolver.Resolve(schema.Ref, name)
		if err != nil {
			return nil, nil, err
		}
		target = resolved
	}

	class := &domain.ResolvedClass{
		Name:   dart.ClassName(name),
		Source: schema,
	}

	if target.Kind == domain.KindPrimitive || target.Kind == domain.KindArray {
		// A named primitive or array schema becomes a single-field value
		// class so it can still round-trip through serialization.
		typ, err := b.mapper.Map(target, name)
		if err != nil {
			return nil, nil, err
		}
		class.Doc = target.Description
		class.Fields = []domain.Field{{
			Name:     "value",
			Key:      "value",
			Type:     typ,
			Required: true,
			Nullable: target.Nullable,
		}}
		return class, nil, nil
	}

	flat, err := b.composer.Flatten(name, target)
	if err != nil {
		return nil, nil, err
	}
	class.Doc = flat.description

	if len(flat.properties) == 0 && flat.additional != nil {
		// A named map object has no declared properties, only a value
		// schema. It gets the same single-field treatment as a named
		// primitive so the payload survives the round trip.
		value, err := b.mapper.Map(flat.additional, name)
		if err != nil {
			return nil, nil, err
		}
		class.Fields = []domain.Field{{
			Name: "value",
			Key:  "value",
			Type: domain.TypeRef{
				Name:     fmt.Sprintf("Map<String, %s>", value.Name),
				Category: domain.TypeMap,
				Elem:     &value,
				Deps:     value.Deps,
			},
			Required: true,
			Nullable: target.Nullable,
		}}
		return class, nil, nil
	}

	var inline []*domain.EnumModel
	used := make(map[string]bool)
	for _, prop := range flat.properties {
		var typ domain.TypeRef
		if prop.Schema.Kind == domain.KindEnum {
			enumName := dart.ClassName(name) + dart.ClassName(prop.Name)
			model := buildEnum(enumName, prop.Schema)
			inline = append(inline, model)
			typ = domain.TypeRef{
				Name:     enumName,
				Category: domain.TypeEnum,
				Elem:     &domain.TypeRef{Name: model.ValueType, Category: domain.TypePrimitive},
			}
		} else {
			typ, err = b.mapper.Map(prop.Schema, name)
			if err != nil {
				return nil, nil, err
			}
		}

		fieldName := dart.FieldName(prop.Name)
		for n := 2; used[fieldName]; n++ {
			fieldName = fmt.Sprintf("%s%d", dart.FieldName(prop.Name), n)
		}
		used[fieldName] = true

		class.Fields = append(class.Fields, domain.Field{
			Name:     fieldName,
			Key:      prop.Name,
			Type:     typ,
			Required: flat.required[prop.Name],
			Nullable: prop.Schema.Nullable,
		})
	}
	return class, inline, nil
}

// buildEnum converts an enum schema into an enumeration model. Display
// names come from the loader-selected override sequence when present,
// otherwise from a sanitized form of the literal.
func buildEnum(name string, schema *domain.RawSchema) *domain.EnumModel {
	model := &domain.EnumModel{
		Name:      name,
		Doc:       schema.Description,
		ValueType: enumValueType(schema.Type),
	}
	used := make(map[string]bool)
	for i, literal := range schema.EnumValues {
		display := ""
		if i < len(schema.EnumNames) {
			display = schema.EnumNames[i]
		}
		if display == "" {
			display = dart.EnumValueName(literal)
		} else {
			display = dart.FieldName(display)
		}
		for n := 2; used[display]; n++ {
			display = fmt.Sprintf("%s%d", dart.EnumValueName(literal), n)
		}
		used[display] = true
		model.Values = append(model.Values, domain.EnumValue{Name: display, Literal: literal})
	}
	return model
}

// enumValueType maps an enum schema's declared primitive type to the Dart
// type its wire values carry.
func enumValueType(typ string) string {
	switch typ {
	case "integer":
		return "int"
	case "number":
		return "double"
	case "boolean":
		return "bool"
	default:
		return "String"
	}
}
