package domain

import "fmt"

// UnionVariant is one alternative of a discriminated union: the tag literal
// that selects it and the resolved class it carries. Each variant becomes one
// optional field of the generated union class; the construction API
// guarantees at most one is populated at a time in generated code by emitting
// one named constructor per variant.
type UnionVariant struct {
	// Tag is the discriminator literal selecting this variant.
	Tag string

	// Class is the resolved class carried by this variant.
	Class *ResolvedClass
}

// UnionModel is the resolved form of a discriminated one-of/any-of group.
// Construct through NewUnionModel, which validates the variant list.
type UnionModel struct {
	// Name is the sanitized target class name.
	Name string

	// Doc is the documentation string.
	Doc string

	// DiscriminatorProperty is the property carrying the tag value.
	DiscriminatorProperty string

	// Variants are the alternatives in declaration order.
	Variants []UnionVariant
}

// NewUnionModel builds a UnionModel, rejecting empty variant lists,
// duplicate tags, and variants without a class.
func NewUnionModel(name, doc, discriminatorProperty string, variants []UnionVariant) (*UnionModel, error) {
	if discriminatorProperty == "" {
		return nil, fmt.Errorf("union %s: %w", name, ErrNoDiscriminator)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("union %s: %w", name, ErrEmptyUnion)
	}
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		if v.Class == nil {
			return nil, fmt.Errorf("union %s: variant %q: %w", name, v.Tag, ErrInvalidVariant)
		}
		if seen[v.Tag] {
			return nil, fmt.Errorf("union %s: variant %q: %w", name, v.Tag, ErrDuplicateVariantTag)
		}
		seen[v.Tag] = true
	}
	return &UnionModel{
		Name:                  name,
		Doc:                   doc,
		DiscriminatorProperty: discriminatorProperty,
		Variants:              variants,
	}, nil
}

// Tags returns the variant tags in declaration order.
func (u *UnionModel) Tags() []string {
	tags := make([]string, len(u.Variants))
	for i, v := range u.Variants {
		tags[i] = v.Tag
	}
	return tags
}

// VariantByTag returns the variant selected by tag, or nil when the tag is
// unknown.
func (u *UnionModel) VariantByTag(tag string) *UnionVariant {
	for i := range u.Variants {
		if u.Variants[i].Tag == tag {
			return &u.Variants[i]
		}
	}
	return nil
}
