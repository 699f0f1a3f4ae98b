package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseCategoryIsValid(t *testing.T) {
	for _, c := range CourseCategories() {
		assert.True(t, CourseCategory(c).IsValid(), c)
	}

	assert.False(t, CourseCategory("Cooking").IsValid())
	assert.False(t, CourseCategory("programming").IsValid(), "category values are case sensitive")
	assert.False(t, CourseCategory("").IsValid())
}

func TestSpecializationIsValid(t *testing.T) {
	for _, s := range Specializations() {
		assert.True(t, Specialization(s).IsValid(), s)
	}

	assert.False(t, Specialization("Design").IsValid())
}

func TestInstructorFullName(t *testing.T) {
	instructor := &Instructor{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", instructor.FullName())
}
