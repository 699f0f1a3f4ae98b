package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/services"
	"github.com/coursehub/backend/internal/middleware"
)

// InstructorController handles instructor-related operations
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// GetAllInstructors retrieves all instructors
// @Summary Get all instructors
// @Description Retrieves instructors, optionally only the active ones
// @Tags instructors
// @Accept json
// @Produce json
// @Param active query bool false "Only return active instructors"
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"

	instructors, err := c.instructorService.GetAll(ctx, activeOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructors))
}

// GetInstructorByID retrieves an instructor by ID
// @Summary Get instructor by ID
// @Description Retrieves a specific instructor, optionally with their courses
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param includeCourses query bool false "Include the instructor's courses"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid instructor ID"
// @Failure 404 {object} dto.APIResponse "Instructor not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "Invalid instructor ID")
	if !ok {
		return
	}

	includeCourses := ctx.Query("includeCourses") == "true"

	instructor, err := c.instructorService.GetByID(ctx, id, includeCourses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructor))
}

// CreateInstructor handles instructor creation
// @Summary Create a new instructor
// @Description Creates a new instructor with the provided information
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor information"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid instructor data"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.instructorService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(instructor))
}

// UpdateInstructor handles instructor updates
// @Summary Update an instructor
// @Description Overwrites the fields of an existing instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Instructor information"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid instructor data"
// @Failure 404 {object} dto.APIResponse "Instructor not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /instructors/{id} [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "Invalid instructor ID")
	if !ok {
		return
	}

	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	instructor, err := c.instructorService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(instructor))
}

// DeleteInstructor handles instructor deletion
// @Summary Delete an instructor
// @Description Removes an instructor. Their courses keep existing without an instructor.
// @Tags instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 204 "Instructor deleted"
// @Failure 400 {object} dto.APIResponse "Invalid instructor ID"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "Invalid instructor ID")
	if !ok {
		return
	}

	if err := c.instructorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
