package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/backend/internal/app/controllers"
	"github.com/coursehub/backend/internal/app/models/dto"
)

// SetupRouter registers all API routes on the engine
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	instructorController *controllers.InstructorController,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.SearchCourses)
		courses.GET("/name-check", courseController.CheckCourseName)
		courses.GET("/categories/:category", courseController.GetCoursesByCategory)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}
}
