// Package manual emits plain Dart classes with hand-rolled fromJson/toJson
// serialization and no external package dependencies.
package manual

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/adapters/driven/emitters"
	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
)

// Ensure Backend implements the interface.
var _ driven.EmissionBackend = (*Backend)(nil)

// Backend renders manual-serialization Dart models.
type Backend struct{}

// New creates the manual backend.
func New() *Backend {
	return &Backend{}
}

// Name implements driven.EmissionBackend.
func (b *Backend) Name() string { return "manual" }

// Description implements driven.EmissionBackend.
func (b *Backend) Description() string {
	return "Plain Dart classes with hand-rolled fromJson/toJson"
}

// RenderClass renders a class with constructor, decode, fields and encode.
func (b *Backend) RenderClass(class *domain.ResolvedClass) (*driven.Rendered, error) {
	var deps []string
	var out strings.Builder

	out.WriteString(emitters.DocComment(class.Doc))
	fmt.Fprintf(&out, "class %s {\n", class.Name)

	// Constructor: non-nullable fields are required named parameters.
	fmt.Fprintf(&out, "  %s({\n", class.Name)
	for _, f := range class.Fields {
		if f.Nullable {
			fmt.Fprintf(&out, "    this.%s,\n", f.Name)
		} else {
			fmt.Fprintf(&out, "    required this.%s,\n", f.Name)
		}
	}
	out.WriteString("  });\n\n")

	fmt.Fprintf(&out, "  factory %s.fromJson(Map<String, dynamic> json) => %s(\n", class.Name, class.Name)
	for _, f := range class.Fields {
		src := fmt.Sprintf("json['%s']", f.Key)
		fmt.Fprintf(&out, "        %s: %s,\n", f.Name, emitters.FromJSONExpr(f.Type, src, f.Nullable))
	}
	out.WriteString("      );\n\n")

	for _, f := range class.Fields {
		fmt.Fprintf(&out, "  final %s %s;\n", emitters.FieldType(f), f.Name)
		deps = append(deps, f.Type.Deps...)
	}
	out.WriteString("\n")

	out.WriteString("  Map<String, dynamic> toJson() => <String, dynamic>{\n")
	for _, f := range class.Fields {
		fmt.Fprintf(&out, "        '%s': %s,\n", f.Key, emitters.ToJSONExpr(f.Type, f.Name, f.Nullable))
	}
	out.WriteString("      };\n")
	out.WriteString("}\n")

	return &driven.Rendered{
		Body:    out.String(),
		Imports: emitters.ImportsFor(deps),
	}, nil
}

// RenderEnum renders an enhanced enum.
func (b *Backend) RenderEnum(enum *domain.EnumModel) (*driven.Rendered, error) {
	return &driven.Rendered{Body: emitters.EnumBody(enum)}, nil
}

// RenderUnion renders the shared tagged union shape.
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
