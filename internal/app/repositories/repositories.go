package repositories

import "github.com/signifi/platform/internal/kvstore"

// Repositories bundles all entity repositories for dependency injection.
type Repositories struct {
	Users       *UserRepository
	Courses     *CourseRepository
	Enrollments *EnrollmentRepository
	Students    *StudentRepository
	Profile     *ProfileRepository
	Settings    *SettingsRepository
}

// NewRepositories creates all repositories over one storage port.
func NewRepositories(store kvstore.Store) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(store),
		Courses:     NewCourseRepository(store),
		Enrollments: NewEnrollmentRepository(store),
		Students:    NewStudentRepository(store),
		Profile:     NewProfileRepository(store),
		Settings:    NewSettingsRepository(store),
	}
}
