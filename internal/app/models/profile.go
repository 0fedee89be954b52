package models

// ActivityItem is one entry in a profile's recent activity feed.
type ActivityItem struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// Profile is the single-record profile document. It is related to a User by
// email equality only; there is no referential integrity between the two.
type Profile struct {
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Avatar           string         `json:"avatar"`
	Role             string         `json:"role"`
	Location         string         `json:"location"`
	Joined           string         `json:"joined"`
	CoursesCompleted int            `json:"coursesCompleted"`
	Level            string         `json:"level"`
	Badges           []string       `json:"badges"`
	RecentActivity   []ActivityItem `json:"recentActivity"`
}
