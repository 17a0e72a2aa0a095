package models

// A medication a user takes, e.g. "Vitamin D, 1 tablet".
type Medication struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Reminders []Reminder `json:"reminders"`
}

// A daily reminder time for a medication. Only the time of day is
// stored ("HH:MM"); LastSent ("YYYY-MM-DD") guards against sending
// the same reminder twice on one day.
type Reminder struct {
	ID           int    `json:"id"`
	MedicationID int    `json:"medication_id"`
	ReminderTime string `json:"reminder_time"`
	LastSent     string `json:"last_sent,omitempty"`
}

// A reminder due in the current sweep, joined with the owning
// user and medication so the notification can be composed without
// further lookups.
type DueReminder struct {
	ReminderID int
	Email      string
	Username   string
	Medication string
	Dosage     string
}
