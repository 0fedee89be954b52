package models

import "time"

// Course is a catalog entry. CreatedBy references User.ID but is not
// enforced by storage; Enrolled is a denormalized counter bumped on enroll.
type Course struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Level       CourseLevel `json:"level"`
	Duration    string      `json:"duration"`
	Instructor  string      `json:"instructor"`
	Rating      float64     `json:"rating"`
	Enrolled    int         `json:"enrolled"`
	CreatedBy   int64       `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Enrollment is the join record between a User and a Course, carrying
// per-user progress. Deleting a Course does not cascade here; orphan rows
// are preserved.
type Enrollment struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"userId"`
	CourseID   int64            `json:"courseId"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Progress   int              `json:"progress"`
	Status     EnrollmentStatus `json:"status"`
}
