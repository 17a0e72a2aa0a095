package storage

import (
	"database/sql"
	"errors"

	"SeniorCompanion_Backend/internal/models"
)

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrReminderNotFound   = errors.New("reminder not found")
)

func CreateMedication(userID int, name, dosage string) (int, error) {
	res, err := db.Exec(
		"INSERT INTO medications(user_id, name, dosage) VALUES(?, ?, ?)",
		userID, name, dosage)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// ListMedicationsByUser returns the user's medications with their
// reminder times attached.
func ListMedicationsByUser(userID int) ([]models.Medication, error) {
	rows, err := db.Query(
		"SELECT id, user_id, name, dosage FROM medications WHERE user_id = ? ORDER BY name", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meds := []models.Medication{}
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage); err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range meds {
		reminders, err := listRemindersForMedication(meds[i].ID)
		if err != nil {
			return nil, err
		}
		meds[i].Reminders = reminders
	}
	return meds, nil
}

func listRemindersForMedication(medicationID int) ([]models.Reminder, error) {
	rows, err := db.Query(
		`SELECT id, medication_id, reminder_time, last_sent
		 FROM reminders WHERE medication_id = ? ORDER BY reminder_time`, medicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var r models.Reminder
		var lastSent sql.NullString
		if err := rows.Scan(&r.ID, &r.MedicationID, &r.ReminderTime, &lastSent); err != nil {
			return nil, err
		}
		if lastSent.Valid {
			r.LastSent = lastSent.String
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// DeleteMedication removes a medication owned by userID and all its
// reminders.
func DeleteMedication(id, userID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var owned int
	row := tx.QueryRow("SELECT id FROM medications WHERE id = ? AND user_id = ?", id, userID)
	if err := row.Scan(&owned); err != nil {
		if err == sql.ErrNoRows {
			return ErrMedicationNotFound
		}
		return err
	}

	if _, err := tx.Exec("DELETE FROM reminders WHERE medication_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM medications WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// AddReminder attaches a reminder time ("HH:MM") to a medication
// owned by userID.
func AddReminder(medicationID, userID int, reminderTime string) (int, error) {
	var owned int
	row := db.QueryRow("SELECT id FROM medications WHERE id = ? AND user_id = ?", medicationID, userID)
	if err := row.Scan(&owned); err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrMedicationNotFound
		}
		return 0, err
	}

	res, err := db.Exec(
		"INSERT INTO reminders(medication_id, reminder_time) VALUES(?, ?)",
		medicationID, reminderTime)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteReminder(id, userID int) error {
	res, err := db.Exec(
		`DELETE FROM reminders WHERE id = ? AND medication_id IN
		 (SELECT id FROM medications WHERE user_id = ?)`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// DueReminders selects reminders whose stored time matches timeOfDay
// ("HH:MM") and that have not been sent today ("YYYY-MM-DD"),
// joined with owner and medication for notification.
func DueReminders(timeOfDay, today string) ([]models.DueReminder, error) {
	rows, err := db.Query(
		`SELECT r.id, u.email, u.username, m.name, m.dosage
		 FROM reminders r
		 JOIN medications m ON m.id = r.medication_id
		 JOIN users u ON u.id = m.user_id
		 WHERE r.reminder_time = ? AND (r.last_sent IS NULL OR r.last_sent != ?)`,
		timeOfDay, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := []models.DueReminder{}
	for rows.Next() {
		var d models.DueReminder
		if err := rows.Scan(&d.ReminderID, &d.Email, &d.Username, &d.Medication, &d.Dosage); err != nil {
			return nil, err
		}
		due = append(due, d)
	}
	return due, rows.Err()
}

// MarkReminderSent stamps the reminder's duplicate-suppression date.
func MarkReminderSent(reminderID int, today string) error {
	_, err := db.Exec("UPDATE reminders SET last_sent = ? WHERE id = ?", today, reminderID)
	return err
}
