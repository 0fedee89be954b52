package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appAuth "github.com/signifi/platform/internal/app/auth"
	"github.com/signifi/platform/internal/app/controllers"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/app/routes"
	"github.com/signifi/platform/internal/app/services"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/middleware"
	pkgauth "github.com/signifi/platform/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the full API over an in-memory store.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	tokens := pkgauth.NewTokenService(pkgauth.TokenConfig{SecretKey: "test-secret", Issuer: "signifi.test"})
	nop := zerolog.Nop()

	authService := services.NewAuthService(repos.Users, tokens, nop)
	courseService := services.NewCourseService(repos.Courses, repos.Enrollments, nop)
	enrollmentService := services.NewEnrollmentService(repos.Courses, repos.Enrollments, nop)
	studentService := services.NewStudentService(repos.Students, nop)
	profileService := services.NewProfileService(repos.Profile, nop)
	settingsService := services.NewSettingsService(repos.Settings, repos.Users, nop)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authService, appAuth.NewNavigationPolicy(false), nop),
		controllers.NewCourseController(courseService, nop),
		controllers.NewEnrollmentController(enrollmentService, nop),
		controllers.NewStudentController(studentService, nop),
		controllers.NewProfileController(profileService, nop),
		controllers.NewSettingsController(settingsService, nop),
		middleware.NewAuthMiddleware(tokens),
	)
	return router
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@signifi.com","password":"admin123"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.Contains(t, w.Body.String(), `"/pages/home"`)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"admin@signifi.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_001")
}

func TestRegisterEndpoint(t *testing.T) {
	router := testRouter(t)

	body := `{"firstName":"Angela","lastName":"Cruz","email":"angela@signifi.com",` +
		`"password":"Abcdefg1","confirmPassword":"Abcdefg1","role":"teacher","termsAccepted":true}`

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"/pages/educator"`)
	assert.NotContains(t, w.Body.String(), "Abcdefg1", "password never leaves the server")

	// Same email again conflicts.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "RES_002")
}

func TestCatalogEndpointIsPublic(t *testing.T) {
	router := testRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/courses?level=beginner", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "beginner")
	assert.NotContains(t, w.Body.String(), "advanced")
}

func TestCatalogFragmentEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/courses/fragment", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "course-card")
}

func TestRoleFencing(t *testing.T) {
	router := testRouter(t)

	// Admin-only students table rejects anonymous and non-admin callers.
	w := doJSON(router, http.MethodGet, "/api/v1/students", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	reg := `{"firstName":"A","lastName":"B","email":"s@signifi.com",` +
		`"password":"Abcdefg1","confirmPassword":"Abcdefg1","role":"student","termsAccepted":true}`
	w = doJSON(router, http.MethodPost, "/api/v1/auth/register", reg, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"s@signifi.com","password":"Abcdefg1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := extractToken(t, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/v1/students", "", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The student role can reach its own surface.
	w = doJSON(router, http.MethodGet, "/api/v1/enrollments", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNavigationResolveEndpoint(t *testing.T) {
	router := testRouter(t)

	// Anonymous visitor on a protected page is redirected to login.
	w := doJSON(router, http.MethodGet, "/api/v1/navigation/resolve?path=/pages/home", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":false`)
	assert.Contains(t, w.Body.String(), `"/index"`)

	// Missing path is a validation error.
	w = doJSON(router, http.MethodGet, "/api/v1/navigation/resolve", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestThemeEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doJSON(router, http.MethodPut, "/api/v1/theme", `{"theme":"dark"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/theme", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"theme":"dark"`)
}

// extractToken pulls the token value out of a login response body.
func extractToken(t *testing.T, body string) string {
	t.Helper()
	const marker = `"token":"`
	idx := strings.Index(body, marker)
	require.NotEqual(t, -1, idx, "no token in body: %s", body)
	rest := body[idx+len(marker):]
	end := strings.Index(rest, `"`)
	require.NotEqual(t, -1, end)
	return rest[:end]
}
