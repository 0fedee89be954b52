package dto

// CreateCourseRequest is the educator course form payload
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
}

// UpdateCourseRequest carries the editable course fields
type UpdateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Duration    string `json:"duration" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
}

// DeleteCourseResponse reports the outcome of a delete, including how many
// enrollments referenced the course. The enrollments are left in place.
type DeleteCourseResponse struct {
	Deleted             bool `json:"deleted"`
	OrphanedEnrollments int  `json:"orphanedEnrollments"`
}

// CourseFilter is the query surface for catalog search, level filtering and
// sorting. Sort takes "name", "rating" or "enrolled".
type CourseFilter struct {
	Query string `form:"q"`
	Level string `form:"level"`
	Sort  string `form:"sort"`
}
