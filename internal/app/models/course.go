package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseCategory is the subject area of a course
type CourseCategory string

// Course categories
const (
	CategoryProgramming CourseCategory = "Programming"
	CategoryDesign      CourseCategory = "Design"
	CategoryMarketing   CourseCategory = "Marketing"
	CategoryBusiness    CourseCategory = "Business"
	CategoryDataScience CourseCategory = "DataScience"
	CategoryDevOps      CourseCategory = "DevOps"
)

// CourseCategories returns all valid category values
func CourseCategories() []string {
	return []string{
		string(CategoryProgramming),
		string(CategoryDesign),
		string(CategoryMarketing),
		string(CategoryBusiness),
		string(CategoryDataScience),
		string(CategoryDevOps),
	}
}

// IsValid reports whether the category is a known value
func (c CourseCategory) IsValid() bool {
	switch c {
	case CategoryProgramming, CategoryDesign, CategoryMarketing,
		CategoryBusiness, CategoryDataScience, CategoryDevOps:
		return true
	}
	return false
}

// Course represents a course offered on the platform.
// Instructor is populated only by queries that join it explicitly.
type Course struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Category     CourseCategory
	StartDate    time.Time
	EndDate      time.Time
	IsActive     bool
	InstructorID *uuid.UUID
	Instructor   *Instructor
}
