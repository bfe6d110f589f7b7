package dart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassName_SnakeCase(t *testing.T) {
	assert.Equal(t, "UserProfile", ClassName("user_profile"))
}

func TestClassName_KebabCase(t *testing.T) {
	assert.Equal(t, "OrderItem", ClassName("order-item"))
}

func TestClassName_AlreadyCamel(t *testing.T) {
	assert.Equal(t, "PetStore", ClassName("petStore"))
}

func TestClassName_DotsAndSpaces(t *testing.T) {
	assert.Equal(t, "ApiV2Response", ClassName("api.v2 response"))
}

func TestClassName_Empty(t *testing.T) {
	assert.Equal(t, "Unnamed", ClassName(""))
	assert.Equal(t, "Unnamed", ClassName("---"))
}

func TestClassName_LeadingDigit(t *testing.T) {
	assert.Equal(t, "Type2faSettings", ClassName("2fa_settings"))
}

func TestClassName_LeadingMultiByteRune(t *testing.T) {
	assert.Equal(t, "Über", ClassName("über"))
	assert.Equal(t, "ÉpisodeList", ClassName("épisode_list"))
}

func TestFieldName_SnakeCase(t *testing.T) {
	assert.Equal(t, "firstName", FieldName("first_name"))
}

func TestFieldName_PreservesCamel(t *testing.T) {
	assert.Equal(t, "createdAt", FieldName("createdAt"))
}

func TestFieldName_ReservedWord(t *testing.T) {
	assert.Equal(t, "class_", FieldName("class"))
	assert.Equal(t, "enum_", FieldName("enum"))
}

func TestFieldName_LeadingDigit(t *testing.T) {
	assert.Equal(t, "n2fa", FieldName("2fa"))
}

func TestFieldName_Empty(t *testing.T) {
	assert.Equal(t, "value", FieldName(""))
}

func TestFieldName_LeadingMultiByteRune(t *testing.T) {
	assert.Equal(t, "öffnung", FieldName("Öffnung"))
	assert.Equal(t, "überName", FieldName("über_name"))
}

func TestEnumValueName_Literal(t *testing.T) {
	assert.Equal(t, "inProgress", EnumValueName("in-progress"))
}

func TestEnumValueName_EmptyLiteral(t *testing.T) {
	assert.Equal(t, "empty", EnumValueName(""))
}

func TestFileName_Camel(t *testing.T) {
	assert.Equal(t, "user_profile", FileName("UserProfile"))
}

func TestFileName_MatchesClassNameRoundTrip(t *testing.T) {
	// Regeneration must always target the same path regardless of the
	// original spelling.
	assert.Equal(t, FileName(ClassName("order-item")), FileName(ClassName("order_item")))
}

func TestFileName_Empty(t *testing.T) {
	assert.Equal(t, "unnamed", FileName(""))
}
