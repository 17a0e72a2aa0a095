package models

// Account identity. Staff accounts manage the directory,
// non-staff accounts are senior citizens.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsStaff      bool   `json:"is_staff"`
}

// Extra per-user information, created blank during signup.
type Profile struct {
	ID                    int     `json:"id"`
	UserID                int     `json:"user_id"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`
	HomeCity              string  `json:"home_city"`
	HomeState             string  `json:"home_state"`
	Hobbies               []Hobby `json:"hobbies"`
}

// Named tag linking users to learning resources and events.
type Hobby struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Companion listing entry: another senior plus whether the
// caller already added them. The relation is one-directional.
type CompanionEntry struct {
	UserID      int    `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	IsCompanion bool   `json:"is_companion"`
}
