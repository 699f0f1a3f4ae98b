package dto

import (
	"github.com/google/uuid"

	"github.com/coursehub/backend/internal/app/models"
)

// CreateInstructorRequest is the payload for creating an instructor
type CreateInstructorRequest struct {
	FirstName      string  `json:"firstName" example:"John"`
	LastName       string  `json:"lastName" example:"Doe"`
	Bio            *string `json:"bio,omitempty"`
	Specialization string  `json:"specialization" example:"SoftwareDevelopment"`
	IsActive       bool    `json:"isActive"`
}

// UpdateInstructorRequest is the payload for updating an instructor
type UpdateInstructorRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Bio            *string `json:"bio,omitempty"`
	Specialization string  `json:"specialization"`
	IsActive       bool    `json:"isActive"`
}

// InstructorResponse is the instructor view returned by the API
type InstructorResponse struct {
	ID             uuid.UUID        `json:"id"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Bio            *string          `json:"bio,omitempty"`
	Specialization string           `json:"specialization"`
	IsActive       bool             `json:"isActive"`
	Courses        []CourseResponse `json:"courses,omitempty"`
}

// NewInstructorResponse maps an instructor to its API view, including the
// course collection when it was loaded
func NewInstructorResponse(instructor *models.Instructor) InstructorResponse {
	resp := InstructorResponse{
		ID:             instructor.ID,
		FirstName:      instructor.FirstName,
		LastName:       instructor.LastName,
		Bio:            instructor.Bio,
		Specialization: string(instructor.Specialization),
		IsActive:       instructor.IsActive,
	}
	for i := range instructor.Courses {
		resp.Courses = append(resp.Courses, NewCourseResponse(&instructor.Courses[i]))
	}
	return resp
}
