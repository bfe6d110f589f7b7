package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

func newTestBuilder(doc *domain.Document) *ClassBuilder {
	resolver := NewResolver(doc)
	return NewClassBuilder(doc, NewComposer(doc, resolver), NewTypeMapper(resolver))
}

func TestClassBuilder_Build_ObjectClass(t *testing.T) {
	user := object([]string{"id"}, intProp("id"), strProp("name"))
	user.Description = "A user account."
	doc := testDoc([]string{"User"}, map[string]*domain.RawSchema{"User": user})

	art, err := newTestBuilder(doc).Build("User")

	require.NoError(t, err)
	require.NotNil(t, art.Class)
	assert.Equal(t, "User", art.Class.Name)
	assert.Equal(t, "A user account.", art.Class.Doc)
	require.Len(t, art.Class.Fields, 2)

	id := art.Class.Fields[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "int", id.Type.Name)
	assert.True(t, id.Required)
	assert.False(t, id.Nullable)

	// Absence from the required set does not make a field nullable.
	name := art.Class.Fields[1]
	assert.Equal(t, "name", name.Name)
	assert.False(t, name.Required)
	assert.False(t, name.Nullable)
}

func TestClassBuilder_Build_ExplicitNullable(t *testing.T) {
	schema := object(nil, domain.Property{
		Name:   "nickname",
		Schema: &domain.RawSchema{Kind: domain.KindPrimitive, Type: "string", Nullable: true},
	})
	doc := testDoc([]string{"User"}, map[string]*domain.RawSchema{"User": schema})

	art, err := newTestBuilder(doc).Build("User")

	require.NoError(t, err)
	assert.True(t, art.Class.Fields[0].Nullable)
}

func TestClassBuilder_Build_FieldKeyPreserved(t *testing.T) {
	schema := object(nil, strProp("first_name"))
	doc := testDoc([]string{"User"}, map[string]*domain.RawSchema{"User": schema})

	art, err := newTestBuilder(doc).Build("User")

	require.NoError(t, err)
	f := art.Class.Fields[0]
	assert.Equal(t, "firstName", f.Name)
	assert.Equal(t, "first_name", f.Key)
}

func TestClassBuilder_Build_FieldNameCollisionSuffixed(t *testing.T) {
	// Two distinct keys sanitizing to the same Dart name must stay distinct.
	schema := object(nil, strProp("user_id"), strProp("userId"))
	doc := testDoc([]string{"Account"}, map[string]*domain.RawSchema{"Account": schema})

	art, err := newTestBuilder(doc).Build("Account")

	require.NoError(t, err)
	require.Len(t, art.Class.Fields, 2)
	assert.Equal(t, "userId", art.Class.Fields[0].Name)
	assert.Equal(t, "userId2", art.Class.Fields[1].Name)
	assert.Equal(t, "userId", art.Class.Fields[1].Key)
}

func TestClassBuilder_Build_TopLevelEnum(t *testing.T) {
	schema := &domain.RawSchema{
		Kind:        domain.KindEnum,
		Type:        "string",
		Description: "Order status.",
		EnumValues:  []string{"placed", "in-transit", "delivered"},
	}
	doc := testDoc([]string{"OrderStatus"}, map[string]*domain.RawSchema{"OrderStatus": schema})

	art, err := newTestBuilder(doc).Build("OrderStatus")

	require.NoError(t, err)
	require.NotNil(t, art.Enum)
	assert.Equal(t, "OrderStatus", art.Enum.Name)
	require.Len(t, art.Enum.Values, 3)
	assert.Equal(t, "inTransit", art.Enum.Values[1].Name)
	assert.Equal(t, "in-transit", art.Enum.Values[1].Literal)
}

func TestClassBuilder_Build_EnumDisplayNameOverride(t *testing.T) {
	schema := &domain.RawSchema{
		Kind:       domain.KindEnum,
		Type:       "string",
		EnumValues: []string{"1", "2"},
		EnumNames:  []string{"first", "second"},
	}
	doc := testDoc([]string{"Rank"}, map[string]*domain.RawSchema{"Rank": schema})

	art, err := newTestBuilder(doc).Build("Rank")

	require.NoError(t, err)
	assert.Equal(t, "first", art.Enum.Values[0].Name)
	assert.Equal(t, "1", art.Enum.Values[0].Literal)
}

func TestClassBuilder_Build_InlinePropertyEnumLifted(t *testing.T) {
	schema := object(nil, enumProp("status", "open", "closed"))
	doc := testDoc([]string{"Ticket"}, map[string]*domain.RawSchema{"Ticket": schema})

	art, err := newTestBuilder(doc).Build("Ticket")

	require.NoError(t, err)
	require.Len(t, art.InlineEnums, 1)
	assert.Equal(t, "TicketStatus", art.InlineEnums[0].Name)

	f := art.Class.Fields[0]
	assert.Equal(t, "TicketStatus", f.Type.Name)
	assert.Equal(t, domain.TypeEnum, f.Type.Category)
}

func TestClassBuilder_Build_TopLevelAlias(t *testing.T) {
	target := object([]string{"id"}, intProp("id"))
	alias := ref("Pet")
	doc := testDoc([]string{"Pet", "Animal"}, map[string]*domain.RawSchema{
		"Pet": target, "Animal": alias,
	})

	art, err := newTestBuilder(doc).Build("Animal")

	require.NoError(t, err)
	require.NotNil(t, art.Class)
	assert.Equal(t, "Animal", art.Class.Name)
	require.Len(t, art.Class.Fields, 1)
	assert.Equal(t, "id", art.Class.Fields[0].Name)
}

func TestClassBuilder_Build_NamedPrimitiveValueClass(t *testing.T) {
	schema := &domain.RawSchema{Kind: domain.KindPrimitive, Type: "string"}
	doc := testDoc([]string{"Label"}, map[string]*domain.RawSchema{"Label": schema})

	art, err := newTestBuilder(doc).Build("Label")

	require.NoError(t, err)
	require.NotNil(t, art.Class)
	require.Len(t, art.Class.Fields, 1)
	assert.Equal(t, "value", art.Class.Fields[0].Name)
	assert.Equal(t, "String", art.Class.Fields[0].Type.Name)
	assert.True(t, art.Class.Fields[0].Required)
}

func TestClassBuilder_Build_NamedMapObjectValueClass(t *testing.T) {
	schema := &domain.RawSchema{
		Kind: domain.KindObject,
		AdditionalProperties: &domain.RawSchema{
			Kind: domain.KindPrimitive, Type: "string",
		},
	}
	doc := testDoc([]string{"Env"}, map[string]*domain.RawSchema{"Env": schema})

	art, err := newTestBuilder(doc).Build("Env")

	require.NoError(t, err)
	require.NotNil(t, art.Class)
	require.Len(t, art.Class.Fields, 1)
	f := art.Class.Fields[0]
	assert.Equal(t, "value", f.Name)
	assert.Equal(t, "Map<String, String>", f.Type.Name)
	assert.Equal(t, domain.TypeMap, f.Type.Category)
	assert.True(t, f.Required)
}

func TestClassBuilder_Build_NamedMapObjectOfReferences(t *testing.T) {
	pet := object(nil, strProp("name"))
	byID := &domain.RawSchema{Kind: domain.KindObject, AdditionalProperties: ref("Pet")}
	doc := testDoc([]string{"Pet", "PetIndex"}, map[string]*domain.RawSchema{
		"Pet": pet, "PetIndex": byID,
	})

	art, err := newTestBuilder(doc).Build("PetIndex")

	require.NoError(t, err)
	require.Len(t, art.Class.Fields, 1)
	assert.Equal(t, "Map<String, Pet>", art.Class.Fields[0].Type.Name)
	assert.Equal(t, []string{"Pet"}, art.Class.Fields[0].Type.Deps)
}

func TestClassBuilder_Build_IntegerEnumValueType(t *testing.T) {
	schema := &domain.RawSchema{
		Kind:       domain.KindEnum,
		Type:       "integer",
		EnumValues: []string{"1", "2"},
		EnumNames:  []string{"low", "high"},
	}
	doc := testDoc([]string{"Priority"}, map[string]*domain.RawSchema{"Priority": schema})

	art, err := newTestBuilder(doc).Build("Priority")

	require.NoError(t, err)
	require.NotNil(t, art.Enum)
	assert.Equal(t, "int", art.Enum.ValueType)
	assert.Equal(t, "1", art.Enum.Values[0].Literal)
}

func TestClassBuilder_Build_InlineIntegerEnumWireType(t *testing.T) {
	schema := object(nil, domain.Property{Name: "level", Schema: &domain.RawSchema{
		Kind: domain.KindEnum, Type: "integer", EnumValues: []string{"1", "2"},
	}})
	doc := testDoc([]string{"Alert"}, map[string]*domain.RawSchema{"Alert": schema})

	art, err := newTestBuilder(doc).Build("Alert")

	require.NoError(t, err)
	require.Len(t, art.InlineEnums, 1)
	assert.Equal(t, "int", art.InlineEnums[0].ValueType)

	f := art.Class.Fields[0]
	assert.Equal(t, domain.TypeEnum, f.Type.Category)
	require.NotNil(t, f.Type.Elem)
	assert.Equal(t, "int", f.Type.Elem.Name)
}

func TestClassBuilder_Build_DiscriminatedUnion(t *testing.T) {
	cat := object(nil, strProp("meow"))
	dog := object(nil, strProp("bark"))
	group := &domain.RawSchema{
		Kind:      domain.KindOneOf,
		Fragments: []*domain.RawSchema{ref("Cat"), ref("Dog")},
		Discriminator: &domain.Discriminator{
			PropertyName: "petType",
			Mapping: []domain.TagMapping{
				{Tag: "cat", Ref: "#/components/schemas/Cat"},
				{Tag: "dog", Ref: "#/components/schemas/Dog"},
			},
		},
	}
	doc := testDoc([]string{"Cat", "Dog", "Pet"}, map[string]*domain.RawSchema{
		"Cat": cat, "Dog": dog, "Pet": group,
	})

	art, err := newTestBuilder(doc).Build("Pet")

	require.NoError(t, err)
	require.NotNil(t, art.Union)
	assert.Equal(t, "Pet", art.Union.Name)
	assert.Equal(t, "petType", art.Union.DiscriminatorProperty)
	assert.Equal(t, []string{"cat", "dog"}, art.Union.Tags())
	assert.Equal(t, "Cat", art.Union.Variants[0].Class.Name)
}

func TestClassBuilder_Build_UnionReusesDeclaredClass(t *testing.T) {
	cat := object(nil, strProp("meow"))
	group := &domain.RawSchema{
		Kind:      domain.KindOneOf,
		Fragments: []*domain.RawSchema{ref("Cat")},
		Discriminator: &domain.Discriminator{
			PropertyName: "petType",
			Mapping:      []domain.TagMapping{{Tag: "cat", Ref: "#/components/schemas/Cat"}},
		},
	}
	doc := testDoc([]string{"Cat", "Pet"}, map[string]*domain.RawSchema{"Cat": cat, "Pet": group})
	builder := newTestBuilder(doc)

	catArt, err := builder.Build("Cat")
	require.NoError(t, err)
	petArt, err := builder.Build("Pet")
	require.NoError(t, err)

	assert.Same(t, catArt.Class, petArt.Union.Variants[0].Class)
}

func TestClassBuilder_Build_UndiscriminatedWrapper(t *testing.T) {
	group := &domain.RawSchema{
		Kind:        domain.KindOneOf,
		Description: "One of several shapes.",
		Fragments: []*domain.RawSchema{
			object(nil, strProp("a")),
			object(nil, strProp("b")),
		},
	}
	doc := testDoc([]string{"Shape"}, map[string]*domain.RawSchema{"Shape": group})

	art, err := newTestBuilder(doc).Build("Shape")

	require.NoError(t, err)
	require.NotNil(t, art.Wrapper)
	assert.Equal(t, "Shape", art.Wrapper.Name)
	assert.Equal(t, "One of several shapes.", art.Wrapper.Doc)
	assert.Nil(t, art.Union)
}

func TestClassBuilder_Build_UnknownSchema(t *testing.T) {
	doc := testDoc(nil, map[string]*domain.RawSchema{})

	_, err := newTestBuilder(doc).Build("Ghost")

	assert.ErrorIs(t, err, domain.ErrInvalidDocument)
}

func TestClassBuilder_Build_SelfReferentialList(t *testing.T) {
	node := object(nil, domain.Property{
		Name:   "children",
		Schema: &domain.RawSchema{Kind: domain.KindArray, Items: ref("Node")},
	})
	doc := testDoc([]string{"Node"}, map[string]*domain.RawSchema{"Node": node})

	art, err := newTestBuilder(doc).Build("Node")

	require.NoError(t, err)
	f := art.Class.Fields[0]
	assert.Equal(t, "List<Node>", f.Type.Name)
	assert.Empty(t, f.Type.Deps)
}
