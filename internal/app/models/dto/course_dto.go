package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/backend/internal/app/models"
)

// CreateCourseRequest is the payload for creating a course.
// New courses are always created active.
type CreateCourseRequest struct {
	Name         string     `json:"name" example:"Introduction to Go"`
	Description  string     `json:"description" example:"Learn the fundamentals of Go"`
	Category     string     `json:"category" example:"Programming"`
	StartDate    time.Time  `json:"startDate" example:"2025-01-01T00:00:00Z"`
	EndDate      time.Time  `json:"endDate" example:"2025-01-31T00:00:00Z"`
	InstructorID *uuid.UUID `json:"instructorId,omitempty"`
}

// UpdateCourseRequest is the payload for updating a course
type UpdateCourseRequest struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	IsActive     bool       `json:"isActive"`
	InstructorID *uuid.UUID `json:"instructorId,omitempty"`
}

// CourseResponse is the course view returned by the API
type CourseResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	IsActive       bool       `json:"isActive"`
	InstructorID   *uuid.UUID `json:"instructorId,omitempty"`
	InstructorName string     `json:"instructorName"`
}

// NewCourseResponse maps a course to its API view.
// Courses without an instructor display "N/A".
func NewCourseResponse(course *models.Course) CourseResponse {
	instructorName := "N/A"
	if course.Instructor != nil {
		instructorName = course.Instructor.FullName()
	}
	return CourseResponse{
		ID:             course.ID,
		Name:           course.Name,
		Description:    course.Description,
		Category:       string(course.Category),
		StartDate:      course.StartDate,
		EndDate:        course.EndDate,
		IsActive:       course.IsActive,
		InstructorID:   course.InstructorID,
		InstructorName: instructorName,
	}
}

// CourseListResponse is a paginated course search result.
// Search and Category echo the effective filters after normalization.
type CourseListResponse struct {
	Items      []CourseResponse `json:"items"`
	Search     string           `json:"search"`
	Category   string           `json:"category"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int64            `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
}

// NameCheckResponse is the result of an inline course name uniqueness check
type NameCheckResponse struct {
	Name     string `json:"name"`
	IsUnique bool   `json:"isUnique"`
}
