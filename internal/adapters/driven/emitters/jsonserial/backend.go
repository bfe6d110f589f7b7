// Package jsonserial emits Dart classes annotated for the json_serializable
// package: serialization code is produced by Dart's build_runner from the
// annotations, so each generated file declares a .g.dart part companion.
package jsonserial

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/emitters"
	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
)

const annotationImport = "import 'package:json_annotation/json_annotation.dart';"

// Ensure Backend implements the interface.
var _ driven.EmissionBackend = (*Backend)(nil)

// Backend renders json_serializable annotated Dart models.
type Backend struct{}

// New creates the jsonserial backend.
func New() *Backend {
	return &Backend{}
}

// Name implements driven.EmissionBackend.
func (b *Backend) Name() string { return "jsonserial" }

// Description implements driven.EmissionBackend.
func (b *Backend) Description() string {
	return "Classes annotated for json_serializable with .g.dart parts"
}

func partFor(typeName string) string {
	return fmt.Sprintf("part '%s.g.dart';", dart.FileName(typeName))
}

// RenderClass renders an annotated class delegating serialization to the
// generated _$ helpers.
func (b *Backend) RenderClass(class *domain.ResolvedClass) (*driven.Rendered, error) {
	var deps []string
	var out strings.Builder

	out.WriteString(emitters.DocComment(class.Doc))
	out.WriteString("@JsonSerializable()\n")
	fmt.Fprintf(&out, "class %s {\n", class.Name)

	fmt.Fprintf(&out, "  %s({\n", class.Name)
	for _, f := range class.Fields {
		if f.Nullable {
			fmt.Fprintf(&out, "    this.%s,\n", f.Name)
		} else {
			fmt.Fprintf(&out, "    required this.%s,\n", f.Name)
		}
	}
	out.WriteString("  });\n\n")

	fmt.Fprintf(&out, "  factory %s.fromJson(Map<String, dynamic> json) => _$%sFromJson(json);\n\n",
		class.Name, class.Name)

	for _, f := range class.Fields {
		if f.Key != f.Name {
			fmt.Fprintf(&out, "  @JsonKey(name: '%s')\n", f.Key)
		}
		fmt.Fprintf(&out, "  final %s %s;\n", emitters.FieldType(f), f.Name)
		deps = append(deps, f.Type.Deps...)
	}
	out.WriteString("\n")
	fmt.Fprintf(&out, "  Map<String, dynamic> toJson() => _$%sToJson(this);\n", class.Name)
	out.WriteString("}\n")

	return &driven.Rendered{
		Body:    out.String(),
		Imports: append([]string{annotationImport}, emitters.ImportsFor(deps)...),
		Parts:   []string{partFor(class.Name)},
	}, nil
}

// RenderEnum renders the enhanced enum with a JsonEnum annotation so
// annotated classes can embed it directly.
func (b *Backend) RenderEnum(enum *domain.EnumModel) (*driven.Rendered, error) {
	body := "@JsonEnum(valueField: 'value')\n" + emitters.EnumBody(enum)
	return &driven.Rendered{
		Body:    body,
		Imports: []string{annotationImport},
	}, nil
}

// RenderUnion renders the shared tagged union shape; json_serializable has
// no union support, so dispatch and tag switching stay hand-rolled.
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
