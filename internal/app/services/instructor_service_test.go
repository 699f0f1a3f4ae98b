package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// fakeInstructorRepo is an in-memory instructorRepository for service tests
type fakeInstructorRepo struct {
	instructors map[uuid.UUID]*models.Instructor
}

func newFakeInstructorRepo() *fakeInstructorRepo {
	return &fakeInstructorRepo{instructors: map[uuid.UUID]*models.Instructor{}}
}

func (f *fakeInstructorRepo) GetAll(_ context.Context) ([]*models.Instructor, error) {
	var result []*models.Instructor
	for _, instructor := range f.instructors {
		result = append(result, instructor)
	}
	return result, nil
}

func (f *fakeInstructorRepo) GetActive(ctx context.Context) ([]*models.Instructor, error) {
	var result []*models.Instructor
	for _, instructor := range f.instructors {
		if instructor.IsActive {
			result = append(result, instructor)
		}
	}
	return result, nil
}

func (f *fakeInstructorRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Instructor, error) {
	instructor, ok := f.instructors[id]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *instructor
	return &copied, nil
}

func (f *fakeInstructorRepo) GetWithCourses(ctx context.Context, id uuid.UUID) (*models.Instructor, error) {
	instructor, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrInstructorNotFound
	}
	return instructor, nil
}

func (f *fakeInstructorRepo) Add(_ context.Context, instructor *models.Instructor) error {
	copied := *instructor
	f.instructors[instructor.ID] = &copied
	return nil
}

func (f *fakeInstructorRepo) Update(_ context.Context, instructor *models.Instructor) error {
	if _, ok := f.instructors[instructor.ID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	copied := *instructor
	f.instructors[instructor.ID] = &copied
	return nil
}

func (f *fakeInstructorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.instructors, id)
	return nil
}

func TestInstructorGetAllActiveFilter(t *testing.T) {
	repo := newFakeInstructorRepo()
	service := NewInstructorService(repo)

	_, err := service.Create(context.Background(), &dto.CreateInstructorRequest{
		FirstName: "John", LastName: "Doe", Specialization: "SoftwareDevelopment", IsActive: true,
	})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), &dto.CreateInstructorRequest{
		FirstName: "Jane", LastName: "Smith", Specialization: "Marketing", IsActive: false,
	})
	require.NoError(t, err)

	all, err := service.GetAll(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := service.GetAll(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "John", active[0].FirstName)
}

func TestInstructorCreateValidation(t *testing.T) {
	repo := newFakeInstructorRepo()
	service := NewInstructorService(repo)

	_, err := service.Create(context.Background(), &dto.CreateInstructorRequest{
		FirstName: "", LastName: "Doe", Specialization: "SoftwareDevelopment",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.Create(context.Background(), &dto.CreateInstructorRequest{
		FirstName: "John", LastName: "Doe", Specialization: "Cooking",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestInstructorGetByIDNotFound(t *testing.T) {
	repo := newFakeInstructorRepo()
	service := NewInstructorService(repo)

	_, err := service.GetByID(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, apperrors.ErrInstructorNotFound)
}

func TestInstructorUpdateMissingReturnsNotFound(t *testing.T) {
	repo := newFakeInstructorRepo()
	service := NewInstructorService(repo)

	_, err := service.Update(context.Background(), uuid.New(), &dto.UpdateInstructorRequest{
		FirstName: "John", LastName: "Doe", Specialization: "Business",
	})
	assert.ErrorIs(t, err, apperrors.ErrInstructorNotFound)
}
