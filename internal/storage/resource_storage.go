package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"SeniorCompanion_Backend/internal/models"
)

var ErrResourceNotFound = errors.New("resource not found")

// HospitalFilter mirrors the search form on the hospital listing.
type HospitalFilter struct {
	Query           string
	GeriatricsOnly  bool
	WheelchairOnly  bool
	EmergencyOnly   bool
	City            string // set for "nearby emergency" search from the user's profile
	State           string
}

// ListHospitals applies the listing filters. A nearby-emergency
// search (City set) restricts to the caller's saved city/state and
// 24h emergency departments, matching the original behavior.
func ListHospitals(f HospitalFilter) ([]models.Hospital, error) {
	query := `SELECT id, name, address, city, state, phone_number, specialty,
	 is_emergency_24h, is_wheelchair_accessible, has_elevator, has_geriatrics_dept
	 FROM hospitals`
	conds := []string{}
	args := []interface{}{}

	if f.City != "" {
		conds = append(conds, "(city LIKE ? OR state LIKE ?)", "is_emergency_24h = 1")
		args = append(args, "%"+f.City+"%", "%"+f.State+"%")
	} else if f.Query != "" {
		conds = append(conds, "(name LIKE ? OR specialty LIKE ? OR city LIKE ? OR state LIKE ?)")
		like := "%" + f.Query + "%"
		args = append(args, like, like, like, like)
	}
	if f.EmergencyOnly {
		conds = append(conds, "is_emergency_24h = 1")
	}
	if f.GeriatricsOnly {
		conds = append(conds, "has_geriatrics_dept = 1")
	}
	if f.WheelchairOnly {
		conds = append(conds, "is_wheelchair_accessible = 1")
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY city, name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := []models.Hospital{}
	for rows.Next() {
		var h models.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.State, &h.PhoneNumber,
			&h.Specialty, &h.IsEmergency24H, &h.IsWheelchairAccessible, &h.HasElevator,
			&h.HasGeriatricsDept); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}

func GetHospital(id int) (models.Hospital, error) {
	var h models.Hospital
	row := db.QueryRow(
		`SELECT id, name, address, city, state, phone_number, specialty,
		 is_emergency_24h, is_wheelchair_accessible, has_elevator, has_geriatrics_dept
		 FROM hospitals WHERE id = ?`, id)
	err := row.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.State, &h.PhoneNumber,
		&h.Specialty, &h.IsEmergency24H, &h.IsWheelchairAccessible, &h.HasElevator,
		&h.HasGeriatricsDept)
	if err == sql.ErrNoRows {
		return h, ErrResourceNotFound
	}
	return h, err
}

func CreateHospital(h models.Hospital) (int, error) {
	res, err := db.Exec(
		`INSERT INTO hospitals(name, address, city, state, phone_number, specialty,
		 is_emergency_24h, is_wheelchair_accessible, has_elevator, has_geriatrics_dept)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.Name, h.Address, h.City, h.State, h.PhoneNumber, h.Specialty,
		h.IsEmergency24H, h.IsWheelchairAccessible, h.HasElevator, h.HasGeriatricsDept)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteHospital(id int) error {
	_, err := db.Exec("DELETE FROM hospitals WHERE id = ?", id)
	return err
}

// DoctorsByHospital lists a hospital's affiliated doctors grouped by
// specialty.
func DoctorsByHospital(hospitalID int) ([]models.Doctor, error) {
	rows, err := db.Query(
		`SELECT id, name, specialty, hospital_id, contact_phone, years_experience,
		 languages_spoken, visiting_hours
		 FROM doctors WHERE hospital_id = ? ORDER BY specialty, name`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDoctors(rows)
}

func ListDoctors() ([]models.Doctor, error) {
	rows, err := db.Query(
		`SELECT id, name, specialty, hospital_id, contact_phone, years_experience,
		 languages_spoken, visiting_hours FROM doctors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDoctors(rows)
}

func scanDoctors(rows *sql.Rows) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	for rows.Next() {
		var d models.Doctor
		var hospitalID sql.NullInt64
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &hospitalID, &d.ContactPhone,
			&d.YearsExperience, &d.LanguagesSpoken, &d.VisitingHours); err != nil {
			return nil, err
		}
		if hospitalID.Valid {
			id := int(hospitalID.Int64)
			d.HospitalID = &id
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func GetDoctor(id int) (models.Doctor, error) {
	var d models.Doctor
	var hospitalID sql.NullInt64
	row := db.QueryRow(
		`SELECT id, name, specialty, hospital_id, contact_phone, years_experience,
		 languages_spoken, visiting_hours FROM doctors WHERE id = ?`, id)
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &hospitalID, &d.ContactPhone,
		&d.YearsExperience, &d.LanguagesSpoken, &d.VisitingHours)
	if err == sql.ErrNoRows {
		return d, ErrResourceNotFound
	}
	if hospitalID.Valid {
		id := int(hospitalID.Int64)
		d.HospitalID = &id
	}
	return d, err
}

func CreateDoctor(d models.Doctor) (int, error) {
	var hospitalID interface{}
	if d.HospitalID != nil {
		hospitalID = *d.HospitalID
	}
	res, err := db.Exec(
		`INSERT INTO doctors(name, specialty, hospital_id, contact_phone, years_experience,
		 languages_spoken, visiting_hours) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		d.Name, d.Specialty, hospitalID, d.ContactPhone, d.YearsExperience,
		d.LanguagesSpoken, d.VisitingHours)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteDoctor(id int) error {
	_, err := db.Exec("DELETE FROM doctors WHERE id = ?", id)
	return err
}

func ListPlaces() ([]models.PlaceToVisit, error) {
	rows, err := db.Query(
		`SELECT id, name, description, address, city, state, category,
		 is_wheelchair_accessible, has_restrooms, has_seating FROM places ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := []models.PlaceToVisit{}
	for rows.Next() {
		var p models.PlaceToVisit
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Address, &p.City, &p.State,
			&p.Category, &p.IsWheelchairAccessible, &p.HasRestrooms, &p.HasSeating); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func GetPlace(id int) (models.PlaceToVisit, error) {
	var p models.PlaceToVisit
	row := db.QueryRow(
		`SELECT id, name, description, address, city, state, category,
		 is_wheelchair_accessible, has_restrooms, has_seating FROM places WHERE id = ?`, id)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Address, &p.City, &p.State,
		&p.Category, &p.IsWheelchairAccessible, &p.HasRestrooms, &p.HasSeating)
	if err == sql.ErrNoRows {
		return p, ErrResourceNotFound
	}
	return p, err
}

func CreatePlace(p models.PlaceToVisit) (int, error) {
	res, err := db.Exec(
		`INSERT INTO places(name, description, address, city, state, category,
		 is_wheelchair_accessible, has_restrooms, has_seating)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Address, p.City, p.State, p.Category,
		p.IsWheelchairAccessible, p.HasRestrooms, p.HasSeating)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeletePlace(id int) error {
	_, err := db.Exec("DELETE FROM places WHERE id = ?", id)
	return err
}

// LearningFilter mirrors the search/filter form on the learning list.
type LearningFilter struct {
	Query       string
	ContentType string
	Difficulty  string
}

func ListLearningResources(f LearningFilter) ([]models.LearningResource, error) {
	query := `SELECT id, title, description, hobby_id, content_type, difficulty, external_link
	 FROM learning_resources`
	conds := []string{}
	args := []interface{}{}

	if f.Query != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		like := "%" + f.Query + "%"
		args = append(args, like, like)
	}
	if f.ContentType != "" {
		conds = append(conds, "content_type = ?")
		args = append(args, f.ContentType)
	}
	if f.Difficulty != "" {
		conds = append(conds, "difficulty = ?")
		args = append(args, f.Difficulty)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY title"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLearningResources(rows)
}

func scanLearningResources(rows *sql.Rows) ([]models.LearningResource, error) {
	resources := []models.LearningResource{}
	for rows.Next() {
		var r models.LearningResource
		var hobbyID sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &hobbyID, &r.ContentType,
			&r.Difficulty, &r.ExternalLink); err != nil {
			return nil, err
		}
		if hobbyID.Valid {
			id := int(hobbyID.Int64)
			r.HobbyID = &id
		}
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

func GetLearningResource(id int) (models.LearningResource, error) {
	var r models.LearningResource
	var hobbyID sql.NullInt64
	row := db.QueryRow(
		`SELECT id, title, description, hobby_id, content_type, difficulty, external_link
		 FROM learning_resources WHERE id = ?`, id)
	err := row.Scan(&r.ID, &r.Title, &r.Description, &hobbyID, &r.ContentType,
		&r.Difficulty, &r.ExternalLink)
	if err == sql.ErrNoRows {
		return r, ErrResourceNotFound
	}
	if hobbyID.Valid {
		id := int(hobbyID.Int64)
		r.HobbyID = &id
	}
	return r, err
}

func CreateLearningResource(r models.LearningResource) (int, error) {
	var hobbyID interface{}
	if r.HobbyID != nil {
		hobbyID = *r.HobbyID
	}
	res, err := db.Exec(
		`INSERT INTO learning_resources(title, description, hobby_id, content_type, difficulty, external_link)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		r.Title, r.Description, hobbyID, r.ContentType, r.Difficulty, r.ExternalLink)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteLearningResource(id int) error {
	_, err := db.Exec("DELETE FROM learning_resources WHERE id = ?", id)
	return err
}

// UpsertLearningProgress sets the user's status on a resource,
// creating the record on first use.
func UpsertLearningProgress(userID, resourceID int, status string) error {
	_, err := db.Exec(
		`INSERT INTO learning_progress(user_id, resource_id, status) VALUES(?, ?, ?)
		 ON CONFLICT(user_id, resource_id) DO UPDATE SET status = excluded.status`,
		userID, resourceID, status)
	return err
}

// LearningProgressMap returns {resource_id: status} for a user.
func LearningProgressMap(userID int) (map[int]string, error) {
	rows, err := db.Query(
		"SELECT resource_id, status FROM learning_progress WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := map[int]string{}
	for rows.Next() {
		var resourceID int
		var status string
		if err := rows.Scan(&resourceID, &status); err != nil {
			return nil, err
		}
		progress[resourceID] = status
	}
	return progress, rows.Err()
}

func ListEvents() ([]models.Event, error) {
	rows, err := db.Query(
		`SELECT id, name, description, hobby_id, location, event_date, created_by, created_at
		 FROM events ORDER BY event_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		var createdBy sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.HobbyID, &e.Location,
			&e.EventDate, &createdBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		if createdBy.Valid {
			id := int(createdBy.Int64)
			e.CreatedBy = &id
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func CreateEvent(e models.Event) (int, error) {
	var createdBy interface{}
	if e.CreatedBy != nil {
		createdBy = *e.CreatedBy
	}
	res, err := db.Exec(
		`INSERT INTO events(name, description, hobby_id, location, event_date, created_by, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Description, e.HobbyID, e.Location, e.EventDate, createdBy, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteEvent(id int) error {
	_, err := db.Exec("DELETE FROM events WHERE id = ?", id)
	return err
}

// UpcomingEventsByHobbies returns the next events matching any of the
// hobby IDs, soonest first.
func UpcomingEventsByHobbies(hobbyIDs []int, limit int) ([]models.Event, error) {
	if len(hobbyIDs) == 0 {
		return []models.Event{}, nil
	}
	placeholders := strings.Repeat("?,", len(hobbyIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, 0, len(hobbyIDs)+1)
	for _, id := range hobbyIDs {
		args = append(args, id)
	}
	args = append(args, limit)

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id, name, description, hobby_id, location, event_date, created_by, created_at
		 FROM events WHERE hobby_id IN (%s) ORDER BY event_date LIMIT ?`, placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// LearningByHobbies returns learning resources matching any of the
// hobby IDs, for the personalized home feed.
func LearningByHobbies(hobbyIDs []int, limit int) ([]models.LearningResource, error) {
	if len(hobbyIDs) == 0 {
		return []models.LearningResource{}, nil
	}
	placeholders := strings.Repeat("?,", len(hobbyIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, 0, len(hobbyIDs)+1)
	for _, id := range hobbyIDs {
		args = append(args, id)
	}
	args = append(args, limit)

	rows, err := db.Query(fmt.Sprintf(
		`SELECT id, title, description, hobby_id, content_type, difficulty, external_link
		 FROM learning_resources WHERE hobby_id IN (%s) ORDER BY title LIMIT ?`, placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLearningResources(rows)
}
