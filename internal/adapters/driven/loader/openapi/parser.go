package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// entry is one key/value pair of a mapping node, in document order.
type entry struct {
	key   string
	value *yaml.Node
}

func documentRoot(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return deref(n.Content[0])
	}
	return deref(n)
}

// deref follows alias nodes so anchors behave like inline content.
func deref(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func mapEntries(n *yaml.Node) []entry {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	entries := make([]entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		entries = append(entries, entry{key: n.Content[i].Value, value: deref(n.Content[i+1])})
	}
	return entries
}

func findKey(n *yaml.Node, key string) *yaml.Node {
	for _, e := range mapEntries(n) {
		if e.key == key {
			return e.value
		}
	}
	return nil
}

func scalarOf(n *yaml.Node, key string) string {
	if v := findKey(n, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return ""
}

func boolOf(n *yaml.Node, key string) bool {
	v := findKey(n, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return false
	}
	// Decode through the YAML scanner so the spelled variants YAML allows
	// for booleans (True, TRUE) all read correctly.
	var b bool
	if err := v.Decode(&b); err != nil {
		return false
	}
	return b
}

func stringSeq(n *yaml.Node) []string {
	n = deref(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		out = append(out, deref(c).Value)
	}
	return out
}

// parseSchema converts one schema node into the dialect-agnostic RawSchema.
func parseSchema(n *yaml.Node) (*domain.RawSchema, error) {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema node is not a mapping: %w", domain.ErrInvalidDocument)
	}

	raw := &domain.RawSchema{
		Description: scalarOf(n, "description"),
		Nullable:    boolOf(n, "nullable") || boolOf(n, "x-nullable"),
		Format:      scalarOf(n, "format"),
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode schema: %v: %w", err, domain.ErrInvalidDocument)
	}
	raw.Source = v

	if ref := scalarOf(n, "$ref"); ref != "" {
		raw.Kind = domain.KindReference
		raw.Ref = ref
		return raw, nil
	}

	groups := []struct {
		key  string
		kind domain.Kind
	}{
		{"allOf", domain.KindAllOf},
		{"oneOf", domain.KindOneOf},
		{"anyOf", domain.KindAnyOf},
	}
	for _, gk := range groups {
		kind := gk.kind
		group := findKey(n, gk.key)
		if group == nil {
			continue
		}
		raw.Kind = kind
		for _, c := range group.Content {
			frag, err := parseSchema(c)
			if err != nil {
				return nil, err
			}
			raw.Fragments = append(raw.Fragments, frag)
		}
		raw.Discriminator = parseDiscriminator(n)
		return raw, nil
	}

	if enum := findKey(n, "enum"); enum != nil {
		raw.Kind = domain.KindEnum
		raw.Type = scalarOf(n, "type")
		if raw.Type == "" {
			raw.Type = "string"
		}
		raw.EnumValues = stringSeq(enum)
		// Display names: first present of the two override keys wins.
		if names := findKey(n, "x-enumNames"); names != nil {
			raw.EnumNames = stringSeq(names)
		} else if names := findKey(n, "x-enum-varnames"); names != nil {
			raw.EnumNames = stringSeq(names)
		}
		return raw, nil
	}

	typ := scalarOf(n, "type")
	switch {
	case typ == "array" || findKey(n, "items") != nil:
		raw.Kind = domain.KindArray
		if items := findKey(n, "items"); items != nil {
			item, err := parseSchema(items)
			if err != nil {
				return nil, err
			}
			raw.Items = item
		}
		return raw, nil

	case typ == "object" || findKey(n, "properties") != nil || findKey(n, "additionalProperties") != nil:
		raw.Kind = domain.KindObject
		if err := parseObject(n, raw); err != nil {
			return nil, err
		}
		return raw, nil

	default:
		raw.Kind = domain.KindPrimitive
		raw.Type = typ
		return raw, nil
	}
}

func parseObject(n *yaml.Node, raw *domain.RawSchema) error {
	if props := findKey(n, "properties"); props != nil {
		for _, e := range mapEntries(props) {
			schema, err := parseSchema(e.value)
			if err != nil {
				return fmt.Errorf("property %s: %w", e.key, err)
			}
			raw.Properties = append(raw.Properties, domain.Property{Name: e.key, Schema: schema})
		}
	}

	raw.Required = make(map[string]bool)
	for _, name := range stringSeq(findKey(n, "required")) {
		raw.Required[name] = true
	}

	if ap := findKey(n, "additionalProperties"); ap != nil {
		switch {
		case ap.Kind == yaml.MappingNode:
			schema, err := parseSchema(ap)
			if err != nil {
				return fmt.Errorf("additionalProperties: %w", err)
			}
			raw.AdditionalProperties = schema
		case ap.Kind == yaml.ScalarNode && ap.Value == "true":
			raw.AdditionalProperties = &domain.RawSchema{Kind: domain.KindPrimitive}
		}
	}
	return nil
}

// parseDiscriminator handles both dialects: 3.x uses a mapping with
// propertyName and an optional tag mapping, 2.0 uses a bare property name.
func parseDiscriminator(n *yaml.Node) *domain.Discriminator {
	d := findKey(n, "discriminator")
	if d == nil {
		return nil
	}
	if d.Kind == yaml.ScalarNode {
		if d.Value == "" {
			return nil
		}
		return &domain.Discriminator{PropertyName: d.Value}
	}
	prop := scalarOf(d, "propertyName")
	if prop == "" {
		return nil
	}
	disc := &domain.Discriminator{PropertyName: prop}
	for _, e := range mapEntries(findKey(d, "mapping")) {
		disc.Mapping = append(disc.Mapping, domain.TagMapping{Tag: e.key, Ref: deref(e.value).Value})
	}
	return disc
}
