package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/coursehub/backend/internal/pkg/validation"
)

// instructorRepository is the slice of the instructor repository the
// service uses
type instructorRepository interface {
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	GetActive(ctx context.Context) ([]*models.Instructor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Instructor, error)
	GetWithCourses(ctx context.Context, id uuid.UUID) (*models.Instructor, error)
	Add(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InstructorService defines instructor business operations
type InstructorService interface {
	GetAll(ctx context.Context, activeOnly bool) ([]dto.InstructorResponse, error)
	GetByID(ctx context.Context, id uuid.UUID, includeCourses bool) (*dto.InstructorResponse, error)
	Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type instructorServiceImpl struct {
	instructorRepo instructorRepository
}

// NewInstructorService creates a new InstructorService
func NewInstructorService(instructorRepo instructorRepository) InstructorService {
	return &instructorServiceImpl{
		instructorRepo: instructorRepo,
	}
}

// GetAll returns all instructors, or only active ones when activeOnly is set
func (s *instructorServiceImpl) GetAll(ctx context.Context, activeOnly bool) ([]dto.InstructorResponse, error) {
	var (
		instructors []*models.Instructor
		err         error
	)
	if activeOnly {
		instructors, err = s.instructorRepo.GetActive(ctx)
	} else {
		instructors, err = s.instructorRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		items = append(items, dto.NewInstructorResponse(instructor))
	}
	return items, nil
}

// GetByID returns the instructor view, optionally with their courses loaded
func (s *instructorServiceImpl) GetByID(ctx context.Context, id uuid.UUID, includeCourses bool) (*dto.InstructorResponse, error) {
	var (
		instructor *models.Instructor
		err        error
	)
	if includeCourses {
		instructor, err = s.instructorRepo.GetWithCourses(ctx, id)
	} else {
		instructor, err = s.instructorRepo.GetByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}

	resp := dto.NewInstructorResponse(instructor)
	return &resp, nil
}

// Create creates a new instructor
func (s *instructorServiceImpl) Create(ctx context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if err := validateInstructorFields(firstName, lastName, req.Bio, req.Specialization); err != nil {
		return nil, err
	}

	instructor := &models.Instructor{
		ID:             uuid.New(),
		FirstName:      firstName,
		LastName:       lastName,
		Bio:            req.Bio,
		Specialization: models.Specialization(req.Specialization),
		IsActive:       req.IsActive,
	}

	if err := s.instructorRepo.Add(ctx, instructor); err != nil {
		return nil, err
	}

	logger.Info().Str("instructorID", instructor.ID.String()).Msg("Instructor created")

	resp := dto.NewInstructorResponse(instructor)
	return &resp, nil
}

// Update overwrites an existing instructor's fields
func (s *instructorServiceImpl) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if err := validateInstructorFields(firstName, lastName, req.Bio, req.Specialization); err != nil {
		return nil, err
	}

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}

	instructor.FirstName = firstName
	instructor.LastName = lastName
	instructor.Bio = req.Bio
	instructor.Specialization = models.Specialization(req.Specialization)
	instructor.IsActive = req.IsActive

	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, err
	}

	logger.Info().Str("instructorID", id.String()).Msg("Instructor updated")

	resp := dto.NewInstructorResponse(instructor)
	return &resp, nil
}

// Delete removes an instructor. Their courses keep existing with the
// instructor reference cleared by the database.
func (s *instructorServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.instructorRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("instructorID", id.String()).Msg("Instructor deleted")
	return nil
}

func validateInstructorFields(firstName, lastName string, bio *string, specialization string) error {
	v := validation.New()
	v.Required("firstName", firstName).MaxLength("firstName", firstName, 50)
	v.Required("lastName", lastName).MaxLength("lastName", lastName, 50)
	if bio != nil {
		v.MaxLength("bio", *bio, 1000)
	}
	v.Required("specialization", specialization)
	if specialization != "" {
		v.OneOf("specialization", specialization, models.Specializations()...)
	}

	if !v.Valid() {
		return apperrors.NewValidationError("invalid instructor data", v.Errors())
	}
	return nil
}
