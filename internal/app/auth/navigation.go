// Package auth holds the role-based navigation policy: which page each role
// lands on after login and which pages a visitor may load at all.
package auth

import (
	"strings"

	"github.com/signifi/platform/internal/app/models"
)

// Page paths served by the front-end.
const (
	PageLogin    = "/index"
	PageRegister = "/register"
	PageHome     = "/pages/home"
	PageEducator = "/pages/educator"
	PageLearner  = "/pages/learner"
)

// landingPages maps a role to its post-login landing page. Unknown roles
// fall back to the home page.
var landingPages = map[models.RoleType]string{
	models.RoleTeacher: PageEducator,
	models.RoleStudent: PageLearner,
	models.RoleAdmin:   PageHome,
}

// LandingPage returns the post-login page for a role.
func LandingPage(role models.RoleType) string {
	if page, ok := landingPages[role]; ok {
		return page
	}
	return PageHome
}

// Decision is the outcome of resolving a page load against the session.
type Decision struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

// NavigationPolicy enforces the page-access rules on page load. DebugBypass
// disables all redirects for design preview; it must only be set from
// configuration in development.
type NavigationPolicy struct {
	DebugBypass bool
}

// NewNavigationPolicy creates a policy.
func NewNavigationPolicy(debugBypass bool) *NavigationPolicy {
	return &NavigationPolicy{DebugBypass: debugBypass}
}

// IsAuthPage reports whether path is one of the unauthenticated auth pages.
func IsAuthPage(path string) bool {
	return path == "/" || path == PageLogin || path == PageRegister ||
		strings.HasSuffix(path, "index.html") || strings.HasSuffix(path, "register.html")
}

// rolePages maps each role-restricted page to the only role allowed to load
// it. Pages absent from the map (home, profile, settings) are shared by every
// authenticated role.
var rolePages = map[string]models.RoleType{
	PageEducator: models.RoleTeacher,
	PageLearner:  models.RoleStudent,
}

// Resolve decides whether a page load proceeds or redirects. An
// authenticated visitor is sent from auth pages to their landing page and
// from the other role's pages to their own; an unauthenticated visitor is
// sent from protected pages to login.
func (p *NavigationPolicy) Resolve(session *models.Session, path string) Decision {
	if p.DebugBypass {
		return Decision{Allowed: true}
	}

	authPage := IsAuthPage(path)
	switch {
	case session != nil && authPage:
		return Decision{Allowed: false, Redirect: LandingPage(session.Role)}
	case session == nil && !authPage:
		return Decision{Allowed: false, Redirect: PageLogin}
	}

	if session != nil {
		if role, restricted := rolePages[path]; restricted && session.Role != role {
			return Decision{Allowed: false, Redirect: LandingPage(session.Role)}
		}
	}
	return Decision{Allowed: true}
}
