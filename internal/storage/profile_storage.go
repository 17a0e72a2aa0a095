package storage

import (
	"database/sql"
	"errors"

	"SeniorCompanion_Backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// GetProfileByUserID loads a profile including its hobby set.
func GetProfileByUserID(userID int) (models.Profile, error) {
	var p models.Profile
	row := db.QueryRow(
		`SELECT id, user_id, emergency_contact_name, emergency_contact_phone, home_city, home_state
		 FROM profiles WHERE user_id = ?`, userID)
	if err := row.Scan(&p.ID, &p.UserID, &p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.HomeCity, &p.HomeState); err != nil {
		if err == sql.ErrNoRows {
			return p, ErrProfileNotFound
		}
		return p, err
	}

	rows, err := db.Query(
		`SELECT h.id, h.name FROM hobbies h
		 JOIN profile_hobbies ph ON ph.hobby_id = h.id
		 WHERE ph.profile_id = ? ORDER BY h.name`, p.ID)
	if err != nil {
		return p, err
	}
	defer rows.Close()

	p.Hobbies = []models.Hobby{}
	for rows.Next() {
		var h models.Hobby
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return p, err
		}
		p.Hobbies = append(p.Hobbies, h)
	}
	return p, rows.Err()
}

// UpdateProfile saves the editable profile fields and replaces the
// hobby set with hobbyIDs.
func UpdateProfile(userID int, contactName, contactPhone, homeCity, homeState string, hobbyIDs []int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var profileID int
	row := tx.QueryRow("SELECT id FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(&profileID); err != nil {
		if err == sql.ErrNoRows {
			return ErrProfileNotFound
		}
		return err
	}

	_, err = tx.Exec(
		`UPDATE profiles SET emergency_contact_name = ?, emergency_contact_phone = ?,
		 home_city = ?, home_state = ? WHERE id = ?`,
		contactName, contactPhone, homeCity, homeState, profileID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM profile_hobbies WHERE profile_id = ?", profileID); err != nil {
		return err
	}
	for _, hobbyID := range hobbyIDs {
		if _, err := tx.Exec(
			"INSERT INTO profile_hobbies(profile_id, hobby_id) VALUES(?, ?)",
			profileID, hobbyID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func ListHobbies() ([]models.Hobby, error) {
	rows, err := db.Query("SELECT id, name FROM hobbies ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hobbies := []models.Hobby{}
	for rows.Next() {
		var h models.Hobby
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, err
		}
		hobbies = append(hobbies, h)
	}
	return hobbies, rows.Err()
}

func CreateHobby(name string) (int, error) {
	res, err := db.Exec("INSERT INTO hobbies(name) VALUES(?)", name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

// HobbyIDsForUser returns the hobby IDs linked to a user's profile,
// used by the personalized home feed.
func HobbyIDsForUser(userID int) ([]int, error) {
	rows, err := db.Query(
		`SELECT ph.hobby_id FROM profile_hobbies ph
		 JOIN profiles p ON p.id = ph.profile_id
		 WHERE p.user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddCompanion links companionUserID into userID's companion set.
// The relation is one-directional: the reverse link is never created
// implicitly.
func AddCompanion(userID, companionUserID int) error {
	if _, err := GetUserByID(companionUserID); err != nil {
		return err
	}
	var profileID int
	row := db.QueryRow("SELECT id FROM profiles WHERE user_id = ?", userID)
	if err := row.Scan(&profileID); err != nil {
		if err == sql.ErrNoRows {
			return ErrProfileNotFound
		}
		return err
	}
	_, err := db.Exec(
		"INSERT OR IGNORE INTO companions(profile_id, companion_user_id) VALUES(?, ?)",
		profileID, companionUserID)
	return err
}

func RemoveCompanion(userID, companionUserID int) error {
	_, err := db.Exec(
		`DELETE FROM companions WHERE companion_user_id = ?
		 AND profile_id = (SELECT id FROM profiles WHERE user_id = ?)`,
		companionUserID, userID)
	return err
}

// ListCompanionEntries returns every other senior, flagged with
// whether the caller already added them as a companion.
func ListCompanionEntries(userID int) ([]models.CompanionEntry, error) {
	rows, err := db.Query(
		`SELECT u.id, u.email, u.username,
		        EXISTS(
		            SELECT 1 FROM companions c
		            JOIN profiles p ON p.id = c.profile_id
		            WHERE p.user_id = ? AND c.companion_user_id = u.id
		        )
		 FROM users u WHERE u.is_staff = 0 AND u.id != ?
		 ORDER BY u.username`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.CompanionEntry{}
	for rows.Next() {
		var e models.CompanionEntry
		if err := rows.Scan(&e.UserID, &e.Email, &e.Username, &e.IsCompanion); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// IsCompanionOf reports whether companionUserID is in userID's set.
func IsCompanionOf(userID, companionUserID int) (bool, error) {
	var exists bool
	row := db.QueryRow(
		`SELECT EXISTS(
		    SELECT 1 FROM companions c
		    JOIN profiles p ON p.id = c.profile_id
		    WHERE p.user_id = ? AND c.companion_user_id = ?)`,
		userID, companionUserID)
	err := row.Scan(&exists)
	return exists, err
}
