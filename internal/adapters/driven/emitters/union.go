package emitters

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
)

// unionField pairs a variant with its generated field and handler name.
type unionField struct {
	variant domain.UnionVariant
	field   string
}

// unionFields derives collision-free field names for the variants, keeping
// the discriminator field name reserved.
func unionFields(u *domain.UnionModel) (tagField string, fields []unionField) {
	tagField = dart.FieldName(u.DiscriminatorProperty)
	used := map[string]bool{tagField: true}
	for _, v := range u.Variants {
		name := dart.FieldName(v.Tag)
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s%d", dart.FieldName(v.Tag), n)
		}
		used[name] = true
		fields = append(fields, unionField{variant: v, field: name})
	}
	return tagField, fields
}

// TaggedUnionBody renders the hand-rolled tagged union class: one named
// constructor and one nullable field per variant, a tag field, an
// exhaustive map dispatch whose per-variant handlers are required named
// parameters (omitting one fails at compile time in Dart), and decode code
// that throws on an unmatched tag. The second result lists the variant
// class names for import derivation.
func TaggedUnionBody(u *domain.UnionModel) (string, []string) {
	tagField, fields := unionFields(u)
	var deps []string
	for _, f := range fields {
		deps = append(deps, f.variant.Class.Name)
	}

	var b strings.Builder
	b.WriteString(DocComment(u.Doc))
	fmt.Fprintf(&b, "class %s {\n", u.Name)

	for _, f := range fields {
		fmt.Fprintf(&b, "  %s.%s(%s value)\n", u.Name, f.field, f.variant.Class.Name)
		fmt.Fprintf(&b, "      : %s = '%s'", tagField, f.variant.Tag)
		for _, other := range fields {
			if other.field == f.field {
				fmt.Fprintf(&b, ",\n        %s = value", other.field)
			} else {
				fmt.Fprintf(&b, ",\n        %s = null", other.field)
			}
		}
		b.WriteString(";\n\n")
	}

	fmt.Fprintf(&b, "  factory %s.fromJson(Map<String, dynamic> json) {\n", u.Name)
	fmt.Fprintf(&b, "    final tag = json['%s'] as String?;\n", u.DiscriminatorProperty)
	b.WriteString("    switch (tag) {\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "      case '%s':\n", f.variant.Tag)
		fmt.Fprintf(&b, "        return %s.%s(%s.fromJson(json));\n", u.Name, f.field, f.variant.Class.Name)
	}
	b.WriteString("      default:\n")
	fmt.Fprintf(&b, "        throw _UnknownVariantTagException('%s', tag);\n", u.Name)
	b.WriteString("    }\n  }\n\n")

	fmt.Fprintf(&b, "  final String %s;\n", tagField)
	for _, f := range fields {
		fmt.Fprintf(&b, "  final %s? %s;\n", f.variant.Class.Name, f.field)
	}
	b.WriteString("\n")

	b.WriteString("  /// Dispatches on the active variant. Every known variant requires a\n")
	b.WriteString("  /// handler, so adding a variant breaks callers at compile time.\n")
	b.WriteString("  T map<T>({\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "    required T Function(%s) %s,\n", f.variant.Class.Name, f.field)
	}
	b.WriteString("  }) {\n")
	fmt.Fprintf(&b, "    switch (%s) {\n", tagField)
	for _, f := range fields {
		fmt.Fprintf(&b, "      case '%s':\n", f.variant.Tag)
		fmt.Fprintf(&b, "        return %s(this.%s!);\n", f.field, f.field)
	}
	b.WriteString("      default:\n")
	fmt.Fprintf(&b, "        throw _UnknownVariantTagException('%s', %s);\n", u.Name, tagField)
	b.WriteString("    }\n  }\n\n")

	b.WriteString("  Map<String, dynamic> toJson() {\n")
	b.WriteString("    return map(\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "      %s: (v) => {...v.toJson(), '%s': '%s'},\n", f.field, u.DiscriminatorProperty, f.variant.Tag)
	}
	b.WriteString("    );\n  }\n")
	b.WriteString("}\n\n")

	b.WriteString(unknownVariantException)
	return b.String(), deps
}

const unknownVariantException = `class _UnknownVariantTagException implements Exception {
  _UnknownVariantTagException(this.union, this.tag);

  final String union;
  final String? tag;

  @override
  String toString() => 'Unknown variant tag for $union: $tag';
}
`

// DynamicWrapperBody renders the minimal wrapper for an undiscriminated
// alternative group: a single loosely-typed value, a constructor rejecting
// absent payloads, and pass-through encode/decode. It deliberately does not
// attempt discrimination.
func DynamicWrapperBody(w *domain.WrapperModel) string {
	var b strings.Builder
	b.WriteString(DocComment(w.Doc))
	fmt.Fprintf(&b, "class %s {\n", w.Name)
	fmt.Fprintf(&b, "  %s(dynamic value) : value = _checkPayload(value);\n\n", w.Name)
	fmt.Fprintf(&b, "  factory %s.fromJson(dynamic json) => %s(json);\n\n", w.Name, w.Name)
	b.WriteString("  final dynamic value;\n\n")
	b.WriteString("  dynamic toJson() => value;\n\n")
	b.WriteString("  static dynamic _checkPayload(dynamic value) {\n")
	b.WriteString("    if (value == null) {\n")
	fmt.Fprintf(&b, "      throw _NullPayloadException('%s');\n", w.Name)
	b.WriteString("    }\n    return value;\n  }\n")
	b.WriteString("}\n\n")
	b.WriteString(nullPayloadException)
	return b.String()
}

const nullPayloadException = `class _NullPayloadException implements Exception {
  _NullPayloadException(this.wrapper);

  final String wrapper;

  @override
  String toString() => 'Null payload for $wrapper';
}
`
