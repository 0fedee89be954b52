package dto

import (
	"time"

	"github.com/signifi/platform/internal/app/models"
)

// LoginRequest is the login form payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the registration form payload
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	TermsAccepted   bool   `json:"termsAccepted"`
}

// RedirectPlan tells the client where to navigate after a successful auth
// action and how long the UX pacing delay is. The delay is advisory; the
// server has already scheduled (and can cancel) its side of the continuation.
type RedirectPlan struct {
	Target  string `json:"target"`
	DelayMs int    `json:"delayMs"`
}

// SessionResponse is the session snapshot returned to clients
type SessionResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// LoginResponse carries the session token and redirect plan
type LoginResponse struct {
	Token    string          `json:"token"`
	Session  SessionResponse `json:"session"`
	Redirect RedirectPlan    `json:"redirect"`
}

// RegisterResponse confirms registration and carries the redirect plan
type RegisterResponse struct {
	User     UserResponse `json:"user"`
	Redirect RedirectPlan `json:"redirect"`
}

// UserResponse is a User without its password
type UserResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	IsVerified bool      `json:"isVerified"`
}

// NewUserResponse maps a User onto the response shape, dropping the password.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Role:       string(user.Role),
		CreatedAt:  user.CreatedAt,
		IsVerified: user.IsVerified,
	}
}

// NewSessionResponse maps a session snapshot onto the response shape.
func NewSessionResponse(session models.Session) SessionResponse {
	return SessionResponse{
		ID:        session.ID,
		Email:     session.Email,
		FirstName: session.FirstName,
		LastName:  session.LastName,
		Role:      string(session.Role),
		LoginTime: session.LoginTime,
	}
}
