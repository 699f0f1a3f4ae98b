package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/coursehub/backend/internal/app/controllers"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/routes"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// fakeInstructorService records calls and returns canned responses
type fakeInstructorService struct {
	lastActiveOnly     bool
	lastIncludeCourses bool
	getResp            *dto.InstructorResponse
	getErr             error
}

func (f *fakeInstructorService) GetAll(_ context.Context, activeOnly bool) ([]dto.InstructorResponse, error) {
	f.lastActiveOnly = activeOnly
	return []dto.InstructorResponse{}, nil
}

func (f *fakeInstructorService) GetByID(_ context.Context, id uuid.UUID, includeCourses bool) (*dto.InstructorResponse, error) {
	f.lastIncludeCourses = includeCourses
	return f.getResp, f.getErr
}

func (f *fakeInstructorService) Create(_ context.Context, req *dto.CreateInstructorRequest) (*dto.InstructorResponse, error) {
	return &dto.InstructorResponse{ID: uuid.New(), FirstName: req.FirstName, LastName: req.LastName}, nil
}

func (f *fakeInstructorService) Update(_ context.Context, id uuid.UUID, req *dto.UpdateInstructorRequest) (*dto.InstructorResponse, error) {
	return &dto.InstructorResponse{ID: id, FirstName: req.FirstName, LastName: req.LastName}, nil
}

func (f *fakeInstructorService) Delete(_ context.Context, id uuid.UUID) error {
	return nil
}

func setupInstructorRouter(svc *fakeInstructorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(&fakeCourseService{}, testPaginationConfig()),
		controllers.NewInstructorController(svc),
	)
	return router
}

func TestGetAllInstructorsActiveFilter(t *testing.T) {
	svc := &fakeInstructorService{}
	router := setupInstructorRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/instructors?active=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastActiveOnly)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/instructors", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.lastActiveOnly)
}

func TestGetInstructorIncludeCourses(t *testing.T) {
	svc := &fakeInstructorService{getResp: &dto.InstructorResponse{ID: uuid.New()}}
	router := setupInstructorRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/instructors/"+uuid.NewString()+"?includeCourses=true", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastIncludeCourses)
}

func TestGetInstructorNotFound(t *testing.T) {
	svc := &fakeInstructorService{getErr: apperrors.ErrInstructorNotFound}
	router := setupInstructorRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/instructors/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteInstructor(t *testing.T) {
	svc := &fakeInstructorService{}
	router := setupInstructorRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/instructors/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
