// Package builtvalue emits immutable Dart models for the built_value
// package: abstract classes implementing Built with a generated Builder,
// EnumClass enumerations and wire-name annotations. Serializers come from
// the .g.dart companions produced by build_runner.
package builtvalue

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/emitters"
	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
)

const (
	builtValueImport      = "import 'package:built_value/built_value.dart';"
	serializerImport      = "import 'package:built_value/serializer.dart';"
	builtCollectionImport = "import 'package:built_collection/built_collection.dart';"
)

var _ driven.EmissionBackend = (*Backend)(nil)

// Backend renders built_value immutable Dart models.
type Backend struct{}

// New creates the builtvalue backend.
func New() *Backend {
	return &Backend{}
}

// Name implements driven.EmissionBackend.
func (b *Backend) Name() string { return "builtvalue" }

// Description implements driven.EmissionBackend.
func (b *Backend) Description() string {
	return "Immutable built_value classes with builders and serializers"
}

func partFor(typeName string) string {
	return fmt.Sprintf("part '%s.g.dart';", dart.FileName(typeName))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// builtType maps the shared type descriptor onto built_collection types,
// which the generated serializers require for lists and maps.
func builtType(t domain.TypeRef) (name string, usesCollections bool) {
	switch t.Category {
	case domain.TypeList:
		elem, _ := builtType(*t.Elem)
		return fmt.Sprintf("BuiltList<%s>", elem), true
	case domain.TypeMap:
		elem, _ := builtType(*t.Elem)
		return fmt.Sprintf("BuiltMap<String, %s>", elem), true
	default:
		return t.Name, false
	}
}

// RenderClass renders an abstract Built class with getters and wire-name
// annotations. Construction and serialization live in the .g.dart part.
func (b *Backend) RenderClass(class *domain.ResolvedClass) (*driven.Rendered, error) {
	var deps []string
	collections := false
	var out strings.Builder

	out.WriteString(emitters.DocComment(class.Doc))
	fmt.Fprintf(&out, "abstract class %s implements Built<%s, %sBuilder> {\n",
		class.Name, class.Name, class.Name)
	fmt.Fprintf(&out, "  %s._();\n\n", class.Name)
	fmt.Fprintf(&out, "  factory %s([void Function(%sBuilder) updates]) = _$%s;\n\n",
		class.Name, class.Name, class.Name)
	fmt.Fprintf(&out, "  static Serializer<%s> get serializer => _$%sSerializer;\n\n",
		class.Name, lowerFirst(class.Name))

	for _, f := range class.Fields {
		typeName, usesColl := builtType(f.Type)
		collections = collections || usesColl
		if f.Key != f.Name {
			fmt.Fprintf(&out, "  @BuiltValueField(wireName: '%s')\n", f.Key)
		}
		suffix := ""
		if f.Nullable {
			suffix = "?"
		}
		fmt.Fprintf(&out, "  %s%s get %s;\n", typeName, suffix, f.Name)
		deps = append(deps, f.Type.Deps...)
	}
	out.WriteString("}\n")

	imports := []string{builtValueImport, serializerImport}
	if collections {
		imports = append(imports, builtCollectionImport)
	}
	imports = append(imports, emitters.ImportsFor(deps)...)

	return &driven.Rendered{
		Body:    out.String(),
		Imports: imports,
		Parts:   []string{partFor(class.Name)},
	}, nil
}

// RenderEnum renders an EnumClass with wire-name constants.
func (b *Backend) RenderEnum(enum *domain.EnumModel) (*driven.Rendered, error) {
	var out strings.Builder

	out.WriteString(emitters.DocComment(enum.Doc))
	fmt.Fprintf(&out, "class %s extends EnumClass {\n", enum.Name)
	fmt.Fprintf(&out, "  const %s._(String name) : super(name);\n\n", enum.Name)
	for _, v := range enum.Values {
		// Integer enums use wireNumber; the string forms use wireName when
		// the member name differs from the literal.
		switch {
		case enum.ValueType == "int":
			fmt.Fprintf(&out, "  @BuiltValueEnumConst(wireNumber: %s)\n", v.Literal)
		case v.Name != v.Literal:
			fmt.Fprintf(&out, "  @BuiltValueEnumConst(wireName: '%s')\n", v.Literal)
		}
		fmt.Fprintf(&out, "  static const %s %s = _$%s;\n", enum.Name, v.Name, v.Name)
	}
	out.WriteString("\n")
	fmt.Fprintf(&out, "  static Serializer<%s> get serializer => _$%sSerializer;\n\n",
		enum.Name, lowerFirst(enum.Name))
	fmt.Fprintf(&out, "  static BuiltSet<%s> get values => _$%sValues;\n\n",
		enum.Name, lowerFirst(enum.Name))
	fmt.Fprintf(&out, "  static %s valueOf(String name) => _$%sValueOf(name);\n",
		enum.Name, lowerFirst(enum.Name))
	out.WriteString("}\n")

	return &driven.Rendered{
		Body:    out.String(),
		Imports: []string{builtValueImport, serializerImport, builtCollectionImport},
		Parts:   []string{partFor(enum.Name)},
	}, nil
}

// RenderUnion renders the shared tagged union shape; built_value has no
// native union support, so the tag switch stays hand-rolled.
func (b *Backend) RenderUnion(union *domain.UnionModel) (*driven.Rendered, error) {
	body, deps := emitters.TaggedUnionBody(union)
	return &driven.Rendered{
		Body:    body,
		Imports: emitters.ImportsFor(deps),
	}, nil
}

// RenderWrapper renders the dynamic wrapper.
func (b *Backend) RenderWrapper(wrapper *domain.WrapperModel) (*driven.Rendered, error) {
	return &driven.Rendered{Body: emitters.DynamicWrapperBody(wrapper)}, nil
}
