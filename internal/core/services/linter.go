package services

import (
	"fmt"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
)

// Lint rule tags. Tags are stable: configuration and output both key on
// them.
const (
	RuleNoDescription     = "schema-no-description"
	RulePropertyUntyped   = "property-untyped"
	RuleEnumEmpty         = "enum-empty"
	RuleEnumDuplicate     = "enum-duplicate-value"
	RuleDiscriminatorMap  = "discriminator-missing-mapping"
	RuleRequiredUnknown   = "required-unknown-property"
	RuleNameNotIdentifier = "name-not-identifier"
	RuleInlineObject      = "property-inline-object"
	RuleGenerationFailed  = "generation-failed"
)

// defaultSeverities are the rule severities used when the project
// configuration does not override them.
var defaultSeverities = map[string]domain.Severity{
	RuleNoDescription:     domain.SeverityWarning,
	RulePropertyUntyped:   domain.SeverityWarning,
	RuleEnumEmpty:         domain.SeverityError,
	RuleEnumDuplicate:     domain.SeverityWarning,
	RuleDiscriminatorMap:  domain.SeverityWarning,
	RuleRequiredUnknown:   domain.SeverityWarning,
	RuleNameNotIdentifier: domain.SeverityWarning,
	RuleInlineObject:      domain.SeverityWarning,
	RuleGenerationFailed:  domain.SeverityError,
}

// Linter runs heuristic quality checks over the loaded schema index. It is
// loosely coupled to the rest of the pipeline: findings go to the sink and
// never affect resolution or abort generation; "error" severity escalates
// exit status only.
type Linter struct {
	config driven.ConfigStore
}

// NewLinter creates a linter honouring the configured severities.
func NewLinter(config driven.ConfigStore) *Linter {
	return &Linter{config: config}
}

// severity resolves the configured severity of a rule. The configuration is
// honoured as-is, never re-derived.
func (l *Linter) severity(rule string) domain.Severity {
	if l.config != nil {
		if s, ok := l.config.RuleSeverity(rule); ok {
			return s
		}
	}
	if s, ok := defaultSeverities[rule]; ok {
		return s
	}
	return domain.SeverityWarning
}

// report adds a finding at the rule's configured severity. SeverityOff
// findings are dropped by the sink.
func (l *Linter) report(sink *domain.DiagnosticSink, rule, schema, format string, args ...any) {
	sink.Add(domain.Diagnostic{
		Rule:     rule,
		Schema:   schema,
		Message:  fmt.Sprintf(format, args...),
		Severity: l.severity(rule),
	})
}

// Check runs every rule over the document into sink.
func (l *Linter) Check(doc *domain.Document, sink *domain.DiagnosticSink) {
	for _, name := range doc.Names {
		schema := doc.Get(name)
		l.checkSchema(doc, name, schema, sink)
	}
}

func (l *Linter) checkSchema(doc *domain.Document, name string, schema *domain.RawSchema, sink *domain.DiagnosticSink) {
	if schema.Description == "" {
		l.report(sink, RuleNoDescription, name, "schema has no description")
	}
	if dart.ClassName(name) == "Unnamed" {
		l.report(sink, RuleNameNotIdentifier, name, "name %q yields no usable identifier", name)
	}

	switch schema.Kind {
	case domain.KindEnum:
		l.checkEnum(name, "", schema, sink)

	case domain.KindObject:
		l.checkObject(name, schema, sink)

	case domain.KindAllOf:
		for _, frag := range schema.Fragments {
			if frag.Kind == domain.KindObject {
				l.checkObject(name, frag, sink)
			}
		}

	case domain.KindOneOf, domain.KindAnyOf:
		l.checkAlternatives(doc, name, schema, sink)
	}
}

func (l *Linter) checkObject(name string, schema *domain.RawSchema, sink *domain.DiagnosticSink) {
	have := make(map[string]bool, len(schema.Properties))
	for _, prop := range schema.Properties {
		have[prop.Name] = true
		switch prop.Schema.Kind {
		case domain.KindPrimitive:
			if prop.Schema.Type == "" {
				l.report(sink, RulePropertyUntyped, name, "property %q has no type and maps to dynamic", prop.Name)
			}
		case domain.KindObject:
			if !prop.Schema.IsMapObject() && len(prop.Schema.Properties) > 0 {
				l.report(sink, RuleInlineObject, name, "property %q is an anonymous object and stays loosely typed", prop.Name)
			}
		case domain.KindEnum:
			l.checkEnum(name, prop.Name, prop.Schema, sink)
		}
	}
	for req := range schema.Required {
		if !have[req] {
			l.report(sink, RuleRequiredUnknown, name, "required name %q matches no property", req)
		}
	}
}

func (l *Linter) checkEnum(name, property string, schema *domain.RawSchema, sink *domain.DiagnosticSink) {
	where := "enum"
	if property != "" {
		where = fmt.Sprintf("enum property %q", property)
	}
	if len(schema.EnumValues) == 0 {
		l.report(sink, RuleEnumEmpty, name, "%s has no values", where)
		return
	}
	seen := make(map[string]bool, len(schema.EnumValues))
	for _, v := range schema.EnumValues {
		if seen[v] {
			l.report(sink, RuleEnumDuplicate, name, "%s repeats literal %q", where, v)
		}
		seen[v] = true
	}
}

func (l *Linter) checkAlternatives(doc *domain.Document, name string, schema *domain.RawSchema, sink *domain.DiagnosticSink) {
	disc := schema.Discriminator
	if disc == nil {
		return
	}
	for _, m := range disc.Mapping {
		refName, ok := RefName(m.Ref)
		if !ok {
			refName = m.Ref
		}
		if doc.Get(refName) == nil {
			l.report(sink, RuleDiscriminatorMap, name, "discriminator tag %q maps to unknown schema %q", m.Tag, refName)
		}
	}
}
