package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursehub/backend/internal/app/repositories"
)

func TestNewServicesWiresAllServices(t *testing.T) {
	repos := repositories.NewRepositories(nil)

	svcs := NewServices(repos)
	require.NotNil(t, svcs)

	assert.NotNil(t, svcs.CourseService)
	assert.NotNil(t, svcs.InstructorService)
}
