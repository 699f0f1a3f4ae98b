package models

import "github.com/google/uuid"

// Specialization is the teaching focus of an instructor
type Specialization string

// Instructor specializations
const (
	SpecializationSoftwareDevelopment Specialization = "SoftwareDevelopment"
	SpecializationMarketing           Specialization = "Marketing"
	SpecializationBusiness            Specialization = "Business"
)

// Specializations returns all valid specialization values
func Specializations() []string {
	return []string{
		string(SpecializationSoftwareDevelopment),
		string(SpecializationMarketing),
		string(SpecializationBusiness),
	}
}

// IsValid reports whether the specialization is a known value
func (s Specialization) IsValid() bool {
	switch s {
	case SpecializationSoftwareDevelopment, SpecializationMarketing, SpecializationBusiness:
		return true
	}
	return false
}

// Instructor represents a course instructor.
// Courses is populated only by queries that load the collection explicitly.
type Instructor struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Bio            *string
	Specialization Specialization
	IsActive       bool
	Courses        []Course
}

// FullName returns "FirstName LastName"
func (i *Instructor) FullName() string {
	return i.FirstName + " " + i.LastName
}
