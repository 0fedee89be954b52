package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/signifi/platform/internal/app/controllers"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	studentController *controllers.StudentController,
	profileController *controllers.ProfileController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Navigation resolution works for visitors with or without a session.
	navigation := v1.Group("/navigation")
	navigation.Use(authMiddleware.OptionalSessionAuth())
	{
		navigation.GET("/resolve", authController.Resolve)
	}

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCatalog)
		courses.GET("/fragment", courseController.CatalogFragment)
		courses.GET("/:id", courseController.GetCourse)
	}

	// The theme toggle lives on every page, including login.
	v1.GET("/theme", settingsController.GetTheme)
	v1.PUT("/theme", settingsController.SetTheme)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/auth/session", authController.Session)
		authenticated.POST("/auth/logout", authController.Logout)

		// Educator course management (teacher role)
		educator := authenticated.Group("/educator")
		educator.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			educator.GET("/courses", courseController.ListMine)
			educator.POST("/courses", courseController.CreateCourse)
			educator.PUT("/courses/:id", courseController.UpdateCourse)
			educator.DELETE("/courses/:id", courseController.DeleteCourse)
		}

		// Learner enrollments (student role)
		enrollments := authenticated.Group("/enrollments")
		enrollments.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			enrollments.GET("", enrollmentController.ListEnrolled)
			enrollments.GET("/fragment", enrollmentController.EnrolledFragment)
			enrollments.POST("", enrollmentController.Enroll)
			enrollments.POST("/:id/continue", enrollmentController.Continue)
		}

		// Admin students table (admin role)
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			students.GET("", studentController.ListStudents)
			students.GET("/fragment", studentController.TableFragment)
			students.GET("/:id", studentController.GetStudent)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		// Profile page
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.GET("/fragment", profileController.ProfileFragment)
			profile.PUT("", profileController.UpdateProfile)
		}

		// Settings page
		settings := authenticated.Group("/settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.PATCH("", settingsController.UpdateSetting)
			settings.POST("/reset", settingsController.ResetSettings)
			settings.PUT("/password", settingsController.ChangePassword)
			settings.DELETE("/:field", settingsController.DeleteSetting)
		}
	}
}
