// Package render turns entities into HTML fragments. Renderers are pure:
// they never touch storage, so re-rendering after a data change or filter is
// just calling them again with the new slice.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/signifi/platform/internal/app/models"
)

var courseCardTmpl = template.Must(template.New("courseCard").Parse(`<div class="course-card" data-level="{{.Course.Level}}" data-course-id="{{.Course.ID}}">
  <h3 class="course-title">{{.Course.Title}}</h3>
  <p class="course-description">{{.Course.Description}}</p>
  <div class="course-rating">{{.Stars}} <span class="rating-value">({{.Course.Rating}} rating)</span></div>
  <p class="course-meta">{{.Course.Enrolled}} enrolled &bull; {{.Course.Duration}} &bull; {{.Course.Level}}</p>
  <p class="course-instructor">{{.Course.Instructor}}</p>
{{- if .Enrolled}}
  <div class="progress-track"><div class="progress-bar {{.ProgressClass}}" style="width:{{.Progress}}%"></div></div>
  <span class="progress-label">{{.Progress}}%</span>
  <button class="continue-btn" data-course-id="{{.Course.ID}}">Continue</button>
{{- else}}
  <span class="level-badge {{.LevelClass}}">{{.LevelLabel}}</span>
  <button class="enroll-btn" data-course-id="{{.Course.ID}}">Enroll</button>
{{- end}}
</div>`))

var studentRowTmpl = template.Must(template.New("studentRow").Parse(`<tr data-student-id="{{.ID}}">
  <td>{{.Name}}</td>
  <td>{{.Email}}</td>
  <td>{{.Course}}</td>
  <td><div class="progress-track"><div class="progress-bar" style="width:{{.Progress}}%"></div></div></td>
  <td><span class="status-badge status-{{.StatusClass}}">{{.Status}}</span></td>
  <td>
    <button class="edit-btn" data-student-id="{{.ID}}">Edit</button>
    <button class="delete-btn" data-student-id="{{.ID}}">Delete</button>
  </td>
</tr>`))

var profilePanelTmpl = template.Must(template.New("profilePanel").Parse(`<div class="profile-panel">
  <h2 class="profile-name">{{.Name}}</h2>
  <p class="profile-role">{{.Role}}</p>
  <p class="profile-email">{{.Email}}</p>
  <p class="profile-location">{{.Location}}</p>
  <p class="profile-joined">Joined {{.Joined}}</p>
  <ul class="profile-badges">
{{- range .Badges}}
    <li class="badge">{{.}}</li>
{{- end}}
  </ul>
  <ul class="profile-activity">
{{- range .RecentActivity}}
    <li>{{.Text}} ({{.Time}})</li>
{{- end}}
  </ul>
</div>`))

type courseCardData struct {
	Course        models.Course
	Enrolled      bool
	Progress      int
	ProgressClass string
	Stars         string
	LevelClass    string
	LevelLabel    string
}

// CourseCard renders a catalog card for a course. When enrollment is non-nil
// the card is the enrolled variant with a progress bar and continue button.
func CourseCard(course models.Course, enrollment *models.Enrollment) template.HTML {
	data := courseCardData{
		Course:     course,
		Stars:      Stars(course.Rating),
		LevelClass: LevelClass(course.Level),
		LevelLabel: titleCase(string(course.Level)),
	}
	if enrollment != nil {
		data.Enrolled = true
		data.Progress = enrollment.Progress
		data.ProgressClass = ProgressClass(enrollment.Progress)
	}
	return execute(courseCardTmpl, data)
}

// CourseGrid renders a card per course.
func CourseGrid(courses []models.Course) template.HTML {
	var b strings.Builder
	for _, c := range courses {
		b.WriteString(string(CourseCard(c, nil)))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}

type studentRowData struct {
	models.Student
	StatusClass string
}

// StudentRow renders one admin-table row.
func StudentRow(student models.Student) template.HTML {
	return execute(studentRowTmpl, studentRowData{
		Student:     student,
		StatusClass: strings.ToLower(student.Status),
	})
}

// StudentTable renders a row per student.
func StudentTable(students []models.Student) template.HTML {
	var b strings.Builder
	for _, s := range students {
		b.WriteString(string(StudentRow(s)))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}

// ProfilePanel renders the profile document.
func ProfilePanel(profile models.Profile) template.HTML {
	return execute(profilePanelTmpl, profile)
}

// Stars renders a rating as filled and empty star characters.
func Stars(rating float64) string {
	full := int(rating)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// LevelClass maps a course level to its badge CSS class.
func LevelClass(level models.CourseLevel) string {
	switch level {
	case models.LevelBeginner:
		return "level-beginner"
	case models.LevelIntermediate:
		return "level-intermediate"
	case models.LevelAdvanced:
		return "level-advanced"
	}
	return "level-unknown"
}

// ProgressClass maps a progress percentage to its bar CSS class.
func ProgressClass(progress int) string {
	switch {
	case progress >= 70:
		return "progress-high"
	case progress >= 40:
		return "progress-mid"
	default:
		return "progress-low"
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func execute(tmpl *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are static and data is plain structs; an execute error
		// is a programming error.
		panic(fmt.Sprintf("render: %v", err))
	}
	return template.HTML(buf.String())
}
