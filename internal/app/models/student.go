package models

// Student is a row in the admin students table. It is an independent mock
// dataset: Course is free text, not a Course reference, and there is no
// relation to Enrollment.
type Student struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Course   string `json:"course"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}
