package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/app/services"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
	pagination    config.PaginationConfig
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, pagination config.PaginationConfig) *CourseController {
	return &CourseController{
		courseService: courseService,
		pagination:    pagination,
	}
}

// SearchCourses retrieves a paginated list of courses
// @Summary Search courses
// @Description Retrieves courses filtered by name substring and category, paginated
// @Tags courses
// @Accept json
// @Produce json
// @Param search query string false "Name substring to search for"
// @Param category query string false "Category filter"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request parameters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize := c.resolvePageSize(ctx)

	result, err := c.courseService.Search(ctx, repositories.CourseSearchParams{
		SearchText: ctx.Query("search"),
		Category:   ctx.Query("category"),
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// resolvePageSize picks the effective page size: an explicit query value
// wins and is remembered in a cookie, otherwise the cookie value applies,
// otherwise the configured default.
func (c *CourseController) resolvePageSize(ctx *gin.Context) int {
	if raw := ctx.Query("pageSize"); raw != "" {
		if pageSize, err := strconv.Atoi(raw); err == nil && pageSize > 0 {
			maxAge := c.pagination.CookieDays * 24 * 60 * 60
			ctx.SetCookie(c.pagination.PageSizeCookieName, strconv.Itoa(pageSize), maxAge, "/", "", false, false)
			return pageSize
		}
	}

	if raw, err := ctx.Cookie(c.pagination.PageSizeCookieName); err == nil {
		if pageSize, err := strconv.Atoi(raw); err == nil && pageSize > 0 {
			return pageSize
		}
	}

	return c.pagination.DefaultPageSize
}

// GetCoursesByCategory retrieves the courses in a category
// @Summary Get courses by category
// @Description Retrieves all courses in the given category with their instructors
// @Tags courses
// @Accept json
// @Produce json
// @Param category path string true "Course category"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Unknown category"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/categories/{category} [get]
func (c *CourseController) GetCoursesByCategory(ctx *gin.Context) {
	courses, err := c.courseService.GetByCategory(ctx, ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course with its instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "Invalid course ID")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course. New courses are always active.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course data"
// @Failure 409 {object} dto.APIResponse "Course name already in use"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// UpdateCourse handles course updates
// @Summary Update a course
// @Description Overwrites the mutable fields of an existing course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Failure 409 {object} dto.APIResponse "Course name already in use"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "Invalid course ID")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse handles course deletion
// @Summary Delete a course
// @Description Removes a course. Deleting a missing course succeeds.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 204 "Course deleted"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "Invalid course ID")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CheckCourseName checks whether a course name is available
// @Summary Check course name availability
// @Description Reports whether the name is unused, optionally excluding one course
// @Tags courses
// @Accept json
// @Produce json
// @Param name query string true "Course name to check"
// @Param excludeId query string false "Course ID to exclude from the check"
// @Success 200 {object} dto.APIResponse{data=dto.NameCheckResponse} "Check performed"
// @Failure 400 {object} dto.APIResponse "Missing or invalid parameters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses/name-check [get]
func (c *CourseController) CheckCourseName(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Name is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var excludeID *uuid.UUID
	if raw := ctx.Query("excludeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid excludeId").WithDetails("excludeId must be a valid UUID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		excludeID = &id
	}

	isUnique, err := c.courseService.IsNameUnique(ctx, name, excludeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NameCheckResponse{
		Name:     name,
		IsUnique: isUnique,
	}))
}

// parseUUIDParam parses the :id path parameter, writing a 400 response
// when it is not a valid UUID
func parseUUIDParam(ctx *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithDetails("ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}
