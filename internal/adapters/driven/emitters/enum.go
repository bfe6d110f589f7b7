package emitters

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// EnumValueType returns the Dart type of the enum's wire value, defaulting
// to String when the model does not name one.
func EnumValueType(e *domain.EnumModel) string {
	if e.ValueType == "" {
		return "String"
	}
	return e.ValueType
}

// EnumLiteral renders an enum literal as a Dart expression: quoted and
// escaped for string-valued enums, verbatim for numeric and boolean ones.
func EnumLiteral(e *domain.EnumModel, literal string) string {
	if EnumValueType(e) == "String" {
		return "'" + escapeSingle(literal) + "'"
	}
	return literal
}

// EnumBody renders an enhanced enum carrying its wire value, with
// firstWhere-based decode. The value field, constructor literals and the
// fromJson parameter all take the schema's primitive type, so an integer
// enum decodes from and encodes to an int. Backends that annotate enums
// prepend their own annotation lines.
func EnumBody(e *domain.EnumModel) string {
	valueType := EnumValueType(e)
	var b strings.Builder
	b.WriteString(DocComment(e.Doc))
	fmt.Fprintf(&b, "enum %s {\n", e.Name)
	for i, v := range e.Values {
		sep := ","
		if i == len(e.Values)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "  %s(%s)%s\n", v.Name, EnumLiteral(e, v.Literal), sep)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  const %s(this.value);\n\n", e.Name)
	fmt.Fprintf(&b, "  final %s value;\n\n", valueType)
	fmt.Fprintf(&b, "  static %s fromJson(%s json) =>\n", e.Name, valueType)
	b.WriteString("      values.firstWhere((e) => e.value == json);\n\n")
	fmt.Fprintf(&b, "  %s toJson() => value;\n", valueType)
	b.WriteString("}\n")
	return b.String()
}

func escapeSingle(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`)
}
