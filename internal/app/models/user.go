package models

import "time"

// User is a registered account. The whole collection is persisted under one
// storage key, so the password travels with the record; it is stripped at the
// DTO layer, never here. Passwords are stored and compared in plaintext as a
// documented placeholder until a real credential backend lands.
type User struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Role       RoleType  `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	IsVerified bool      `json:"isVerified"`
}

// Session is a denormalized snapshot of a User taken at login time. It never
// carries the password and is not updated when the source User changes.
type Session struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      RoleType  `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// NewSession builds the session snapshot for a user.
func NewSession(user *User, loginTime time.Time) Session {
	return Session{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		LoginTime: loginTime,
	}
}

// HasRole reports whether the session's role matches role.
func (s Session) HasRole(role RoleType) bool {
	return s.Role == role
}
