package services

import (
	"github.com/coursehub/backend/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	CourseService     CourseService
	InstructorService InstructorService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		CourseService:     NewCourseService(repos.CourseRepository),
		InstructorService: NewInstructorService(repos.InstructorRepository),
	}
}
