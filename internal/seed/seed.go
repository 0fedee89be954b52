// Package seed holds the hardcoded default data written on first access to
// each collection, establishing state before any real records exist.
package seed

import (
	"time"

	"github.com/signifi/platform/internal/app/models"
)

// Users returns the default user list: a single admin account for testing.
func Users() []models.User {
	return []models.User{
		{
			ID:         1,
			FirstName:  "Admin",
			LastName:   "User",
			Email:      "admin@signifi.com",
			Password:   "admin123", // plaintext placeholder, see models.User
			Role:       models.RoleAdmin,
			CreatedAt:  time.Now().UTC(),
			IsVerified: true,
		},
	}
}

// Courses returns the default FSL course catalog.
func Courses() []models.Course {
	now := time.Now().UTC()
	courses := []models.Course{
		{
			ID:          1,
			Title:       "Intro to FSL",
			Description: "Basics of Filipino Sign Language including alphabet, greetings, and simple phrases.",
			Level:       models.LevelBeginner,
			Duration:    "6 hrs",
			Rating:      4.0,
			Enrolled:    45,
			Instructor:  "Prof. Maria Santos",
		},
		{
			ID:          2,
			Title:       "Intermediate FSL",
			Description: "Focuses on conversational fluency, sentence construction, and practical dialogues.",
			Level:       models.LevelIntermediate,
			Duration:    "8 hrs",
			Rating:      4.8,
			Enrolled:    32,
			Instructor:  "Prof. Juan Dela Cruz",
		},
		{
			ID:          3,
			Title:       "Advanced FSL",
			Description: "Covers professional-level grammar, academic usage, and cultural context in FSL.",
			Level:       models.LevelAdvanced,
			Duration:    "12 hrs",
			Rating:      4.2,
			Enrolled:    18,
			Instructor:  "Prof. Ana Reyes",
		},
		{
			ID:          4,
			Title:       "FSL Grammar Basics",
			Description: "Introduction to Filipino Sign Language grammar rules and sentence patterns.",
			Level:       models.LevelBeginner,
			Duration:    "5 hrs",
			Rating:      4.1,
			Enrolled:    25,
			Instructor:  "Prof. Carlos Lopez",
		},
		{
			ID:          5,
			Title:       "FSL for Everyday Use",
			Description: "Practical signs for shopping, commuting, ordering food, and daily interactions.",
			Level:       models.LevelBeginner,
			Duration:    "7 hrs",
			Rating:      4.9,
			Enrolled:    50,
			Instructor:  "Prof. Lisa Garcia",
		},
		{
			ID:          6,
			Title:       "FSL Storytelling",
			Description: "Learn expressive techniques for telling stories and narratives in FSL.",
			Level:       models.LevelAdvanced,
			Duration:    "10 hrs",
			Rating:      4.3,
			Enrolled:    15,
			Instructor:  "Prof. Miguel Torres",
		},
		{
			ID:          7,
			Title:       "FSL for Educators",
			Description: "Specialized FSL training for teachers and classroom facilitators.",
			Level:       models.LevelIntermediate,
			Duration:    "14 hrs",
			Rating:      4.0,
			Enrolled:    10,
			Instructor:  "Prof. Rosa Martinez",
		},
		{
			ID:          8,
			Title:       "FSL Culture & Community",
			Description: "Understand Deaf culture, advocacy, and social context of Filipino Sign Language.",
			Level:       models.LevelBeginner,
			Duration:    "4 hrs",
			Rating:      4.7,
			Enrolled:    8,
			Instructor:  "Prof. David Aquino",
		},
	}
	for i := range courses {
		courses[i].CreatedBy = 1 // seeded educator
		courses[i].CreatedAt = now
		courses[i].UpdatedAt = now
	}
	return courses
}

// Students returns the default admin-table student rows.
func Students() []models.Student {
	return []models.Student{
		{ID: 1, Name: "Angela Cruz", Email: "angela@example.com", Course: "Intro to FSL", Progress: 90, Status: "Active"},
		{ID: 2, Name: "Mark Dela Peña", Email: "markdp@example.com", Course: "Intermediate FSL", Progress: 45, Status: "Pending"},
		{ID: 3, Name: "Sophia Reyes", Email: "sophia.r@example.com", Course: "Advanced FSL", Progress: 70, Status: "Active"},
	}
}

// Profile returns the default profile document.
func Profile() models.Profile {
	return models.Profile{
		Name:             "Angela Cruz",
		Email:            "angela@example.com",
		Role:             "Educator",
		Location:         "Quezon City, Philippines",
		Joined:           "Jan 15, 2025",
		CoursesCompleted: 3,
		Level:            "intermediate",
		Badges:           []string{"Top Educator", "Consistent", "100+ Lessons Added"},
		RecentActivity: []models.ActivityItem{
			{Text: "Posted lesson FSL Alphabet", Time: "2 days ago"},
			{Text: "Earned badge Consistent Educator", Time: "1 week ago"},
			{Text: "Added Courses in Intermediate FSL", Time: "2 weeks ago"},
			{Text: "Reviewed Basic Greetings", Time: "3 weeks ago"},
		},
	}
}

// Settings returns the default preferences document.
func Settings() models.Settings {
	darkMode := false
	notifyEmail := true
	notifyPush := true
	language := "en"
	lastChanged := "Jan 1, 2025"
	return models.Settings{
		DarkMode:            &darkMode,
		NotifyEmail:         &notifyEmail,
		NotifyPush:          &notifyPush,
		Language:            &language,
		PasswordLastChanged: &lastChanged,
	}
}
