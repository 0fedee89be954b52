package auth

import (
	"testing"

	"github.com/signifi/platform/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func TestLandingPage(t *testing.T) {
	assert.Equal(t, PageEducator, LandingPage(models.RoleTeacher))
	assert.Equal(t, PageLearner, LandingPage(models.RoleStudent))
	assert.Equal(t, PageHome, LandingPage(models.RoleAdmin))
	assert.Equal(t, PageHome, LandingPage(models.RoleType("unknown")))
}

func TestIsAuthPage(t *testing.T) {
	assert.True(t, IsAuthPage("/"))
	assert.True(t, IsAuthPage(PageLogin))
	assert.True(t, IsAuthPage(PageRegister))
	assert.True(t, IsAuthPage("/some/path/index.html"))
	assert.True(t, IsAuthPage("/register.html"))
	assert.False(t, IsAuthPage(PageHome))
	assert.False(t, IsAuthPage(PageLearner))
}

func TestResolve(t *testing.T) {
	policy := NewNavigationPolicy(false)
	teacher := &models.Session{ID: 1, Role: models.RoleTeacher}

	// Authenticated visitor on an auth page is sent to their landing page.
	d := policy.Resolve(teacher, PageLogin)
	assert.False(t, d.Allowed)
	assert.Equal(t, PageEducator, d.Redirect)

	// Authenticated visitor on a protected page proceeds.
	d = policy.Resolve(teacher, PageHome)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Redirect)

	// Anonymous visitor on a protected page is sent to login.
	d = policy.Resolve(nil, PageHome)
	assert.False(t, d.Allowed)
	assert.Equal(t, PageLogin, d.Redirect)

	// Anonymous visitor on an auth page proceeds.
	d = policy.Resolve(nil, PageRegister)
	assert.True(t, d.Allowed)
}

func TestResolveRolePages(t *testing.T) {
	policy := NewNavigationPolicy(false)
	teacher := &models.Session{ID: 1, Role: models.RoleTeacher}
	student := &models.Session{ID: 2, Role: models.RoleStudent}

	// A student loading the educator dashboard is sent to their own.
	d := policy.Resolve(student, PageEducator)
	assert.False(t, d.Allowed)
	assert.Equal(t, PageLearner, d.Redirect)

	// A teacher loading the learner dashboard is sent to their own.
	d = policy.Resolve(teacher, PageLearner)
	assert.False(t, d.Allowed)
	assert.Equal(t, PageEducator, d.Redirect)

	// Each role may load its own dashboard.
	assert.True(t, policy.Resolve(teacher, PageEducator).Allowed)
	assert.True(t, policy.Resolve(student, PageLearner).Allowed)

	// Shared pages stay open to every authenticated role.
	assert.True(t, policy.Resolve(student, PageHome).Allowed)
	assert.True(t, policy.Resolve(teacher, "/pages/profile").Allowed)
	assert.True(t, policy.Resolve(student, "/pages/settings").Allowed)
}

func TestResolveDebugBypass(t *testing.T) {
	policy := NewNavigationPolicy(true)

	// Bypass disables every redirect, both directions.
	assert.True(t, policy.Resolve(nil, PageHome).Allowed)
	session := &models.Session{Role: models.RoleStudent}
	assert.True(t, policy.Resolve(session, PageLogin).Allowed)
}
