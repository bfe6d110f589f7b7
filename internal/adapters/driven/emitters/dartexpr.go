package emitters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
)

// DocComment renders a description as Dart documentation lines. Empty
// descriptions render nothing.
func DocComment(doc string) string {
	if doc == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(doc), "\n") {
		b.WriteString("/// ")
		b.WriteString(strings.TrimRight(line, " \t"))
		b.WriteString("\n")
	}
	return b.String()
}

// ImportsFor derives the import lines for a set of schema-name
// dependencies, deduplicated and sorted so output is stable.
func ImportsFor(deps []string) []string {
	seen := make(map[string]bool, len(deps))
	var files []string
	for _, dep := range deps {
		file := dart.FileName(dart.ClassName(dep)) + ".dart"
		if !seen[file] {
			seen[file] = true
			files = append(files, file)
		}
	}
	sort.Strings(files)
	lines := make([]string, len(files))
	for i, f := range files {
		lines[i] = fmt.Sprintf("import '%s';", f)
	}
	return lines
}

// FieldType renders the Dart type of a field including its nullability
// suffix.
func FieldType(f domain.Field) string {
	if f.Nullable {
		return f.Type.Name + "?"
	}
	return f.Type.Name
}

// FromJSONExpr renders the expression decoding src into a value of type t.
func FromJSONExpr(t domain.TypeRef, src string, nullable bool) string {
	switch t.Category {
	case domain.TypeDynamic:
		return src

	case domain.TypePrimitive:
		if nullable {
			return fmt.Sprintf("%s as %s?", src, t.Name)
		}
		return fmt.Sprintf("%s as %s", src, t.Name)

	case domain.TypeDateTime:
		if nullable {
			return fmt.Sprintf("%s == null ? null : DateTime.parse(%s as String)", src, src)
		}
		return fmt.Sprintf("DateTime.parse(%s as String)", src)

	case domain.TypeClass:
		if nullable {
			return fmt.Sprintf("%s == null ? null : %s.fromJson(%s as Map<String, dynamic>)", src, t.Name, src)
		}
		return fmt.Sprintf("%s.fromJson(%s as Map<String, dynamic>)", t.Name, src)

	case domain.TypeEnum:
		// Elem carries the enum's wire value type; integer enums decode
		// from an int, not a String.
		wire := "String"
		if t.Elem != nil {
			wire = t.Elem.Name
		}
		if nullable {
			return fmt.Sprintf("%s == null ? null : %s.fromJson(%s as %s)", src, t.Name, src, wire)
		}
		return fmt.Sprintf("%s.fromJson(%s as %s)", t.Name, src, wire)

	case domain.TypeList:
		elem := domain.TypeRef{Name: "dynamic", Category: domain.TypeDynamic}
		if t.Elem != nil {
			elem = *t.Elem
		}
		inner := FromJSONExpr(elem, "e", false)
		if nullable {
			return fmt.Sprintf("(%s as List<dynamic>?)?.map((e) => %s).toList()", src, inner)
		}
		return fmt.Sprintf("(%s as List<dynamic>).map((e) => %s).toList()", src, inner)

	case domain.TypeMap:
		elem := domain.TypeRef{Name: "dynamic", Category: domain.TypeDynamic}
		if t.Elem != nil {
			elem = *t.Elem
		}
		inner := FromJSONExpr(elem, "v", false)
		if nullable {
			return fmt.Sprintf("(%s as Map<String, dynamic>?)?.map((k, v) => MapEntry(k, %s))", src, inner)
		}
		return fmt.Sprintf("(%s as Map<String, dynamic>).map((k, v) => MapEntry(k, %s))", src, inner)

	default:
		return src
	}
}

// needsConversion reports whether values of t require an expression beyond
// the identity to serialize.
func needsConversion(t domain.TypeRef) bool {
	switch t.Category {
	case domain.TypeDateTime, domain.TypeClass, domain.TypeEnum:
		return true
	case domain.TypeList, domain.TypeMap:
		return t.Elem != nil && needsConversion(*t.Elem)
	default:
		return false
	}
}

// ToJSONExpr renders the expression serializing expr of type t.
func ToJSONExpr(t domain.TypeRef, expr string, nullable bool) string {
	opt := ""
	if nullable {
		opt = "?"
	}
	switch t.Category {
	case domain.TypeDateTime:
		return fmt.Sprintf("%s%s.toIso8601String()", expr, opt)

	case domain.TypeClass, domain.TypeEnum:
		return fmt.Sprintf("%s%s.toJson()", expr, opt)

	case domain.TypeList:
		if !needsConversion(t) {
			return expr
		}
		return fmt.Sprintf("%s%s.map((e) => %s).toList()", expr, opt, ToJSONExpr(*t.Elem, "e", false))

	case domain.TypeMap:
		if !needsConversion(t) {
			return expr
		}
		return fmt.Sprintf("%s%s.map((k, v) => MapEntry(k, %s))", expr, opt, ToJSONExpr(*t.Elem, "v", false))

	default:
		return expr
	}
}
