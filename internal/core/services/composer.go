package services

import (
	"fmt"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// flatObject is the effective object shape of a schema after all-of
// flattening: ordered properties with merged required flags.
type flatObject struct {
	description string
	properties  []domain.Property
	required    map[string]bool
	additional  *domain.RawSchema
}

// unionVariantPlan names one alternative of a planned union.
type unionVariantPlan struct {
	tag     string
	refName string
}

// unionPlan is the composition engine's decision for a discriminated
// one-of/any-of group: the discriminator property and the ordered variants.
type unionPlan struct {
	property string
	variants []unionVariantPlan
}

// Composer flattens all-of compositions and plans union synthesis for
// one-of/any-of groups.
type Composer struct {
	resolver *Resolver
	doc      *domain.Document
}

// NewComposer creates a composition engine over the loaded document.
func NewComposer(doc *domain.Document, resolver *Resolver) *Composer {
	return &Composer{resolver: resolver, doc: doc}
}

// Flatten computes the effective object shape of the named schema,
// expanding all-of groups depth-first, left-to-right. Earlier fragments'
// fields are inserted first; a field recurring in a later fragment keeps its
// position but takes the later type, and its required flag is the logical OR
// across fragments. A base reached through multiple paths contributes fields
// once.
func (c *Composer) Flatten(name string, schema *domain.RawSchema) (*flatObject, error) {
	flat := &flatObject{
		description: schema.Description,
		required:    make(map[string]bool),
	}
	stack := newVisitStack()
	stack.push(name)
	seen := make(map[*domain.RawSchema]bool)
	seen[schema] = true
	if err := c.flattenInto(flat, name, schema, stack, seen); err != nil {
		return nil, err
	}
	return flat, nil
}

func (c *Composer) flattenInto(flat *flatObject, name string, schema *domain.RawSchema, stack *visitStack, seen map[*domain.RawSchema]bool) error {
	switch schema.Kind {
	case domain.KindObject:
		c.mergeObject(flat, name, schema)
		return nil

	case domain.KindAllOf:
		for _, frag := range schema.Fragments {
			if err := c.flattenFragment(flat, name, frag, stack, seen); err != nil {
				return err
			}
		}
		return nil

	default:
		// Primitive, array and alternative-group fragments carry no named
		// fields to merge.
		return nil
	}
}

func (c *Composer) flattenFragment(flat *flatObject, owner string, frag *domain.RawSchema, stack *visitStack, seen map[*domain.RawSchema]bool) error {
	if frag.Kind != domain.KindReference {
		logger.Debug("flatten %s: inline %s fragment", owner, frag.Kind)
		return c.flattenInto(flat, owner, frag, stack, seen)
	}

	refName, resolved, err := c.resolver.Resolve(frag.Ref, owner)
	if err != nil {
		return err
	}
	if stack.contains(refName) {
		// Truncation policy: the ancestor is already being expanded, so the
		// class reuses it by name instead of recursing.
		logger.Debug("flatten %s: cycle on %s, reusing in-progress class by name", owner, refName)
		return nil
	}
	if seen[resolved] {
		// Diamond composition: the same base reached through multiple
		// paths contributes fields once.
		logger.Debug("flatten %s: base %s already merged, deduplicating", owner, refName)
		return nil
	}
	seen[resolved] = true
	logger.Debug("flatten %s: expanding base %s", owner, refName)

	stack.push(refName)
	defer stack.pop()
	return c.flattenInto(flat, refName, resolved, stack, seen)
}

// mergeObject inserts an object fragment's properties into the flattened
// shape.
func (c *Composer) mergeObject(flat *flatObject, owner string, schema *domain.RawSchema) {
	for _, prop := range schema.Properties {
		c.insertProperty(flat, owner, prop)
	}
	// Required is ORed across fragments: a name required anywhere stays
	// required, even when a later fragment overrides the field type.
	for name, req := range schema.Required {
		if req {
			flat.required[name] = true
		}
	}
	if schema.AdditionalProperties != nil {
		flat.additional = schema.AdditionalProperties
	}
	if flat.description == "" {
		flat.description = schema.Description
	}
}

func (c *Composer) insertProperty(flat *flatObject, owner string, prop domain.Property) {
	for i := range flat.properties {
		if flat.properties[i].Name == prop.Name {
			logger.Debug("flatten %s: field %s overridden by later fragment", owner, prop.Name)
			flat.properties[i].Schema = prop.Schema
			return
		}
	}
	flat.properties = append(flat.properties, prop)
}

// PlanUnion decides whether the one-of/any-of group can be synthesized into
// a discriminated union. It returns nil when no discriminator is available:
// the caller falls back to the minimal dynamic wrapper, which deliberately
// does not attempt discrimination.
func (c *Composer) PlanUnion(name string, schema *domain.RawSchema) (*unionPlan, error) {
	if schema.Kind != domain.KindOneOf && schema.Kind != domain.KindAnyOf {
		return nil, fmt.Errorf("schema %s: %s is not an alternative group", name, schema.Kind)
	}

	if schema.Discriminator != nil {
		return c.planExplicit(name, schema)
	}
	return c.planImplicit(name, schema)
}

// planExplicit builds the plan from a discriminator descriptor: the tag
// mapping when present, otherwise one variant per reference fragment tagged
// with the referenced schema name.
func (c *Composer) planExplicit(name string, schema *domain.RawSchema) (*unionPlan, error) {
	disc := schema.Discriminator
	plan := &unionPlan{property: disc.PropertyName}

	if len(disc.Mapping) > 0 {
		for _, m := range disc.Mapping {
			refName, ok := RefName(m.Ref)
			if !ok {
				// Mapping values may be bare schema names.
				refName = m.Ref
			}
			if c.doc.Get(refName) == nil {
				// Reported by the discriminator-missing-mapping lint rule;
				// the variant is skipped rather than aborting synthesis.
				logger.Warn("union %s: mapping tag %q names unknown schema %q, skipping variant", name, m.Tag, refName)
				continue
			}
			plan.variants = append(plan.variants, unionVariantPlan{tag: m.Tag, refName: refName})
		}
	} else {
		for _, frag := range schema.Fragments {
			if frag.Kind != domain.KindReference {
				logger.Debug("union %s: non-reference alternative ignored for tagging", name)
				continue
			}
			refName, _, err := c.resolver.Resolve(frag.Ref, name)
			if err != nil {
				return nil, err
			}
			plan.variants = append(plan.variants, unionVariantPlan{tag: refName, refName: refName})
		}
	}

	if len(plan.variants) == 0 {
		return nil, nil
	}
	logger.Debug("union %s: discriminated by %q with %d variants", name, plan.property, len(plan.variants))
	return plan, nil
}

// planImplicit looks for an enum-typed discriminator property present in
// every variant with exactly one literal each, all literals distinct.
func (c *Composer) planImplicit(name string, schema *domain.RawSchema) (*unionPlan, error) {
	type variant struct {
		refName string
		schema  *domain.RawSchema
	}
	variants := make([]variant, 0, len(schema.Fragments))
	for _, frag := range schema.Fragments {
		if frag.Kind != domain.KindReference {
			return nil, nil
		}
		refName, resolved, err := c.resolver.Resolve(frag.Ref, name)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant{refName: refName, schema: resolved})
	}
	if len(variants) == 0 {
		return nil, nil
	}

	// Candidate properties are taken in the first variant's declaration
	// order so the choice is deterministic.
	for _, prop := range variants[0].schema.Properties {
		plan := &unionPlan{property: prop.Name}
		tags := make(map[string]bool)
		ok := true
		for _, v := range variants {
			field := propertyNamed(v.schema, prop.Name)
			if field == nil || field.Kind != domain.KindEnum || len(field.EnumValues) != 1 {
				ok = false
				break
			}
			tag := field.EnumValues[0]
			if tags[tag] {
				ok = false
				break
			}
			tags[tag] = true
			plan.variants = append(plan.variants, unionVariantPlan{tag: tag, refName: v.refName})
		}
		if ok {
			logger.Debug("union %s: implicit discriminator %q with %d variants", name, prop.Name, len(plan.variants))
			return plan, nil
		}
	}
	return nil, nil
}

func propertyNamed(schema *domain.RawSchema, name string) *domain.RawSchema {
	for _, p := range schema.Properties {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}
