package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidator_CollectsAllErrors(t *testing.T) {
	err := NewValidator().
		Field("name", "   ", Required).
		Field("organization_id", "not-a-uuid", UUIDOrEmpty).
		Error()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "organization_id")
}

func TestValidator_Passes(t *testing.T) {
	err := NewValidator().
		Field("name", "Default Invoice Mapping", Required, MaxLength(120)).
		Field("organization_id", uuid.New().String(), UUIDOrEmpty).
		Field("format_id", "", UUIDOrEmpty).
		Error()

	assert.NoError(t, err)
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(3)
	assert.Nil(t, rule("f", "abc"))
	assert.NotNil(t, rule("f", "abcd"))
	// non-strings pass through untouched
	assert.Nil(t, rule("f", 42))
}
