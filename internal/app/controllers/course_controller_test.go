package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/backend/internal/app/controllers"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/app/routes"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/pkg/apperrors"
)

// fakeCourseService records calls and returns canned responses
type fakeCourseService struct {
	lastSearch   repositories.CourseSearchParams
	lastCategory string
	categoryResp []dto.CourseResponse
	categoryErr  error
	searchResp   *dto.CourseListResponse
	getResp    *dto.CourseResponse
	getErr     error
	createResp *dto.CourseResponse
	createErr  error
	updateResp *dto.CourseResponse
	updateErr  error
	deleteErr  error
	nameUnique bool
}

func (f *fakeCourseService) Search(_ context.Context, params repositories.CourseSearchParams) (*dto.CourseListResponse, error) {
	f.lastSearch = params
	if f.searchResp == nil {
		return &dto.CourseListResponse{Items: []dto.CourseResponse{}}, nil
	}
	return f.searchResp, nil
}

func (f *fakeCourseService) GetByID(_ context.Context, id uuid.UUID) (*dto.CourseResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeCourseService) GetByCategory(_ context.Context, category string) ([]dto.CourseResponse, error) {
	f.lastCategory = category
	return f.categoryResp, f.categoryErr
}

func (f *fakeCourseService) Create(_ context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeCourseService) Update(_ context.Context, id uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	return f.updateResp, f.updateErr
}

func (f *fakeCourseService) Delete(_ context.Context, id uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeCourseService) IsNameUnique(_ context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	return f.nameUnique, nil
}

func testPaginationConfig() config.PaginationConfig {
	return config.PaginationConfig{
		DefaultPageSize:    10,
		PageSizeCookieName: "PageSizePreference",
		CookieDays:         30,
	}
}

func setupCourseRouter(svc *fakeCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(svc, testPaginationConfig()),
		controllers.NewInstructorController(&fakeInstructorService{}),
	)
	return router
}

func TestSearchUsesDefaultPageSize(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, svc.lastSearch.PageSize)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestSearchQueryPageSizeWinsAndSetsCookie(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses?pageSize=25", nil)
	req.AddCookie(&http.Cookie{Name: "PageSizePreference", Value: "15"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25, svc.lastSearch.PageSize)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "PageSizePreference=25")
}

func TestSearchFallsBackToCookiePageSize(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.AddCookie(&http.Cookie{Name: "PageSizePreference", Value: "15"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 15, svc.lastSearch.PageSize)
}

func TestSearchIgnoresInvalidCookieValue(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.AddCookie(&http.Cookie{Name: "PageSizePreference", Value: "banana"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, svc.lastSearch.PageSize)
}

func TestSearchPassesFilters(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses?search=go&category=Programming&page=3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "go", svc.lastSearch.SearchText)
	assert.Equal(t, "Programming", svc.lastSearch.Category)
	assert.Equal(t, 3, svc.lastSearch.Page)
}

func TestGetCoursesByCategory(t *testing.T) {
	svc := &fakeCourseService{categoryResp: []dto.CourseResponse{{ID: uuid.New(), Name: "Go Basics"}}}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/categories/Programming", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Programming", svc.lastCategory)
	assert.Contains(t, w.Body.String(), "Go Basics")
}

func TestGetCoursesByCategoryUnknownCategory(t *testing.T) {
	svc := &fakeCourseService{categoryErr: apperrors.NewValidationError("invalid course data", nil)}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/categories/Cooking", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCourseInvalidID(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCourseNotFound(t *testing.T) {
	svc := &fakeCourseService{getErr: apperrors.ErrCourseNotFound}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestCreateCourse(t *testing.T) {
	created := dto.CourseResponse{ID: uuid.New(), Name: "Go Basics", IsActive: true, InstructorName: "N/A"}
	svc := &fakeCourseService{createResp: &created}
	router := setupCourseRouter(svc)

	body, _ := json.Marshal(dto.CreateCourseRequest{
		Name:        "Go Basics",
		Description: "An introduction to Go",
		Category:    "Programming",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Go Basics")
}

func TestCreateCourseMalformedBody(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCourseNameConflict(t *testing.T) {
	svc := &fakeCourseService{createErr: apperrors.ErrCourseNameTaken}
	router := setupCourseRouter(svc)

	body, _ := json.Marshal(dto.CreateCourseRequest{
		Name:        "Go Basics",
		Description: "An introduction to Go",
		Category:    "Programming",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCourse(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/courses/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNameCheckRequiresName(t *testing.T) {
	svc := &fakeCourseService{}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/name-check", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNameCheckReportsUniqueness(t *testing.T) {
	svc := &fakeCourseService{nameUnique: true}
	router := setupCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/name-check?name=Go+Basics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isUnique":true`)
}
