// Package dart converts schema names and property keys into valid Dart
// identifiers and file names. Original keys are preserved elsewhere for
// serialization; this package only shapes the generated-code side.
package dart

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// reserved is the set of Dart reserved words that cannot be used as
// identifiers. Sanitized names colliding with one get an underscore suffix.
var reserved = map[string]bool{
	"abstract": true, "as": true, "assert": true, "async": true,
	"await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "covariant": true,
	"default": true, "deferred": true, "do": true, "dynamic": true,
	"else": true, "enum": true, "export": true, "extends": true,
	"extension": true, "external": true, "factory": true, "false": true,
	"final": true, "finally": true, "for": true, "get": true,
	"hide": true, "if": true, "implements": true, "import": true,
	"in": true, "interface": true, "is": true, "late": true,
	"library": true, "mixin": true, "new": true, "null": true,
	"on": true, "operator": true, "part": true, "required": true,
	"rethrow": true, "return": true, "set": true, "show": true,
	"static": true, "super": true, "switch": true, "sync": true,
	"this": true, "throw": true, "true": true, "try": true,
	"typedef": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

// splitWords breaks an arbitrary schema name or property key into words,
// splitting on non-alphanumeric runes and on lower→upper case boundaries.
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
		prev = r
	}
	flush()
	return words
}

// upperFirst and lowerFirst convert only the leading rune, which may be
// multi-byte.
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + w[size:]
}

func lowerFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToLower(r)) + w[size:]
}

func startsWithDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsDigit(r)
}

// ClassName converts a schema name to an UpperCamelCase Dart type name.
func ClassName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "Unnamed"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	out := b.String()
	if startsWithDigit(out) {
		out = "Type" + out
	}
	return out
}

// FieldName converts a property key to a lowerCamelCase Dart field name.
func FieldName(key string) string {
	words := splitWords(key)
	if len(words) == 0 {
		return "value"
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lowerFirst(w))
			continue
		}
		b.WriteString(upperFirst(w))
	}
	out := b.String()
	if startsWithDigit(out) {
		out = "n" + out
	}
	if reserved[out] {
		out += "_"
	}
	return out
}

// EnumValueName converts an enum literal to a lowerCamelCase member name.
func EnumValueName(literal string) string {
	name := FieldName(literal)
	if name == "value" && strings.TrimSpace(literal) == "" {
		return "empty"
	}
	return name
}

// FileName derives the snake_case Dart file name for a schema, without
// directory or extension. The mapping is deterministic so regeneration
// always targets the same path.
func FileName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "unnamed"
	}
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return strings.Join(lowered, "_")
}
