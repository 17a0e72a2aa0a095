package models

import "time"

type Hospital struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	Address                string `json:"address"`
	City                   string `json:"city"`
	State                  string `json:"state"`
	PhoneNumber            string `json:"phone_number"`
	Specialty              string `json:"specialty"`
	IsEmergency24H         bool   `json:"is_emergency_24h"`
	IsWheelchairAccessible bool   `json:"is_wheelchair_accessible"`
	HasElevator            bool   `json:"has_elevator"`
	HasGeriatricsDept      bool   `json:"has_geriatrics_dept"`
}

// A doctor, optionally affiliated with a hospital.
type Doctor struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Specialty       string `json:"specialty"`
	HospitalID      *int   `json:"hospital_id,omitempty"`
	ContactPhone    string `json:"contact_phone"`
	YearsExperience int    `json:"years_experience"`
	LanguagesSpoken string `json:"languages_spoken"`
	VisitingHours   string `json:"visiting_hours"`
}

type PlaceToVisit struct {
	ID                     int    `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	Address                string `json:"address"`
	City                   string `json:"city"`
	State                  string `json:"state"`
	Category               string `json:"category"`
	IsWheelchairAccessible bool   `json:"is_wheelchair_accessible"`
	HasRestrooms           bool   `json:"has_restrooms"`
	HasSeating             bool   `json:"has_seating"`
}

// Learning content difficulty and type choices.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	ContentArticle  = "article"
	ContentVideo    = "video"
	ContentPDF      = "pdf"
	ContentTutorial = "tutorial"
)

// Learning content tailored to senior interests, optionally tied
// to a hobby for personalization.
type LearningResource struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	HobbyID      *int   `json:"hobby_id,omitempty"`
	ContentType  string `json:"content_type"`
	Difficulty   string `json:"difficulty"`
	ExternalLink string `json:"external_link"`
}

// Learning progress statuses.
const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
	ProgressBookmarked = "bookmarked"
)

// ValidProgressStatus reports whether s is one of the allowed
// learning progress statuses.
func ValidProgressStatus(s string) bool {
	switch s {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted, ProgressBookmarked:
		return true
	}
	return false
}

// Per-user completion status of a resource, unique per (user, resource).
type LearningProgress struct {
	ID         int    `json:"id"`
	UserID     int    `json:"user_id"`
	ResourceID int    `json:"resource_id"`
	Status     string `json:"status"`
}

// A hobby-linked event created by a staff member.
type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HobbyID     int       `json:"hobby_id"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"event_date"`
	CreatedBy   *int      `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
