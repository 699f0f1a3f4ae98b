package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/helpers"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/coursehub/backend/internal/pkg/validation"
)

// courseRepository is the slice of the course repository the service uses
type courseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetWithInstructor(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetByCategory(ctx context.Context, category models.CourseCategory) ([]*models.Course, error)
	Add(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	IsNameUnique(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	Search(ctx context.Context, params repositories.CourseSearchParams) ([]*models.Course, int64, error)
}

// CourseService defines course business operations
type CourseService interface {
	Search(ctx context.Context, params repositories.CourseSearchParams) (*dto.CourseListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error)
	GetByCategory(ctx context.Context, category string) ([]dto.CourseResponse, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IsNameUnique(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}

type courseServiceImpl struct {
	courseRepo courseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo courseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// Search returns a page of courses matching the filters. The response
// echoes the effective filters after trimming and normalization.
func (s *courseServiceImpl) Search(ctx context.Context, params repositories.CourseSearchParams) (*dto.CourseListResponse, error) {
	params.SearchText = strings.TrimSpace(params.SearchText)
	params.Page, params.PageSize = helpers.NormalizePagination(params.Page, params.PageSize)

	if params.Category != "" && !models.CourseCategory(params.Category).IsValid() {
		return nil, apperrors.NewValidationError("invalid course data",
			[]validation.FieldError{{Field: "category", Message: "category must be one of: " + strings.Join(models.CourseCategories(), ", ")}})
	}

	courses, totalCount, err := s.courseRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.NewCourseResponse(course))
	}

	return &dto.CourseListResponse{
		Items:      items,
		Search:     params.SearchText,
		Category:   params.Category,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: helpers.TotalPages(totalCount, params.PageSize),
	}, nil
}

// GetByID returns the course view for the given id
func (s *courseServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetWithInstructor(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// GetByCategory returns the courses in a category
func (s *courseServiceImpl) GetByCategory(ctx context.Context, category string) ([]dto.CourseResponse, error) {
	if !models.CourseCategory(category).IsValid() {
		return nil, apperrors.NewValidationError("invalid course data",
			[]validation.FieldError{{Field: "category", Message: "category must be one of: " + strings.Join(models.CourseCategories(), ", ")}})
	}

	courses, err := s.courseRepo.GetByCategory(ctx, models.CourseCategory(category))
	if err != nil {
		return nil, err
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		items = append(items, dto.NewCourseResponse(course))
	}
	return items, nil
}

// Create creates a new course. Name and description are trimmed and the
// course always starts active regardless of input.
func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if err := validateCourseFields(name, description, req.Category); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		Category:     models.CourseCategory(req.Category),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsActive:     true,
		InstructorID: req.InstructorID,
	}

	if err := s.courseRepo.Add(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Str("courseID", course.ID.String()).Str("name", course.Name).Msg("Course created")

	return s.GetByID(ctx, course.ID)
}

// Update overwrites an existing course's mutable fields.
// Name uniqueness is enforced only by the database constraint, so a
// concurrent rename to the same name still surfaces as a conflict.
func (s *courseServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if err := validateCourseFields(name, description, req.Category); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	course.Name = name
	course.Description = description
	course.Category = models.CourseCategory(req.Category)
	course.StartDate = req.StartDate
	course.EndDate = req.EndDate
	course.IsActive = req.IsActive
	course.InstructorID = req.InstructorID

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	logger.Info().Str("courseID", id.String()).Msg("Course updated")

	return s.GetByID(ctx, id)
}

// Delete removes a course. Deleting a missing course is not an error.
func (s *courseServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("courseID", id.String()).Msg("Course deleted")
	return nil
}

// IsNameUnique reports whether the trimmed name is unused by any other course
func (s *courseServiceImpl) IsNameUnique(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	return s.courseRepo.IsNameUnique(ctx, strings.TrimSpace(name), excludeID)
}

func validateCourseFields(name, description, category string) error {
	v := validation.New()
	v.Required("name", name).MaxLength("name", name, 100)
	v.Required("description", description).MaxLength("description", description, 500)
	v.Required("category", category)
	if category != "" {
		v.OneOf("category", category, models.CourseCategories()...)
	}

	if !v.Valid() {
		return apperrors.NewValidationError("invalid course data", v.Errors())
	}
	return nil
}
