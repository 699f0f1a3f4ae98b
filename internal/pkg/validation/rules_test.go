package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := New().Required("name", "Go Basics")
	assert.True(t, v.Valid())

	v = New().Required("name", "   ")
	assert.False(t, v.Valid())
	assert.Equal(t, "name", v.Errors()[0].Field)
}

func TestMaxLength(t *testing.T) {
	v := New().MaxLength("name", strings.Repeat("a", 100), 100)
	assert.True(t, v.Valid())

	v = New().MaxLength("name", strings.Repeat("a", 101), 100)
	assert.False(t, v.Valid())
}

func TestMaxLengthCountsRunes(t *testing.T) {
	// 4 characters, 8 bytes
	v := New().MaxLength("name", "çöğü", 4)
	assert.True(t, v.Valid())
}

func TestOneOf(t *testing.T) {
	v := New().OneOf("category", "Programming", "Programming", "Design")
	assert.True(t, v.Valid())

	v = New().OneOf("category", "Cooking", "Programming", "Design")
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors()[0].Message, "Programming")
}

func TestAccumulatesErrors(t *testing.T) {
	v := New().
		Required("name", "").
		Required("description", "").
		OneOf("category", "Nope", "Programming")

	assert.False(t, v.Valid())
	assert.Len(t, v.Errors(), 3)
}
