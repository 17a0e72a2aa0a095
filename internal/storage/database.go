package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// InitDB opens the sqlite database at path and creates every table
// the application needs. Fatal on failure: the process is useless
// without its store.
func InitDB(path string) {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database: ", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}
	// modernc drivers are not safe for concurrent writers on one
	// connection; a single pooled connection keeps sqlite happy.
	db.SetMaxOpenConns(1)

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"email" TEXT NOT NULL UNIQUE,
			"username" TEXT NOT NULL,
			"password_hash" TEXT NOT NULL,
			"is_staff" INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS profiles (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL UNIQUE,
			"emergency_contact_name" TEXT NOT NULL DEFAULT '',
			"emergency_contact_phone" TEXT NOT NULL DEFAULT '',
			"home_city" TEXT NOT NULL DEFAULT '',
			"home_state" TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS hobbies (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS profile_hobbies (
			"profile_id" INTEGER NOT NULL,
			"hobby_id" INTEGER NOT NULL,
			PRIMARY KEY(profile_id, hobby_id),
			FOREIGN KEY(profile_id) REFERENCES profiles(id),
			FOREIGN KEY(hobby_id) REFERENCES hobbies(id)
		);`,
		`CREATE TABLE IF NOT EXISTS companions (
			"profile_id" INTEGER NOT NULL,
			"companion_user_id" INTEGER NOT NULL,
			PRIMARY KEY(profile_id, companion_user_id),
			FOREIGN KEY(profile_id) REFERENCES profiles(id),
			FOREIGN KEY(companion_user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS logic_rules (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"pattern" TEXT NOT NULL,
			"match_type" TEXT NOT NULL DEFAULT 'contains',
			"response" TEXT NOT NULL,
			"suggested_link" TEXT,
			"priority" INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS unanswered_queries (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER,
			"query_text" TEXT NOT NULL,
			"created_at" DATETIME NOT NULL,
			"is_resolved" INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS medications (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL,
			"name" TEXT NOT NULL,
			"dosage" TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS reminders (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"medication_id" INTEGER NOT NULL,
			"reminder_time" TEXT NOT NULL,
			"last_sent" TEXT,
			FOREIGN KEY(medication_id) REFERENCES medications(id)
		);`,
		`CREATE TABLE IF NOT EXISTS user_policies (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL,
			"policy_name" TEXT NOT NULL,
			"policy_number" TEXT NOT NULL DEFAULT '',
			"provider_name" TEXT NOT NULL,
			"coverage_type" TEXT NOT NULL DEFAULT 'health',
			"start_date" TEXT,
			"expiry_date" TEXT,
			"premium_amount" REAL NOT NULL DEFAULT 0,
			"premium_frequency" TEXT NOT NULL DEFAULT 'monthly',
			"coverage_summary" TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS catalog_policies (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"policy_name" TEXT NOT NULL,
			"provider_name" TEXT NOT NULL,
			"description" TEXT NOT NULL DEFAULT '',
			"policy_type" TEXT NOT NULL DEFAULT 'health',
			"coverage_summary" TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS hospitals (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"address" TEXT NOT NULL DEFAULT '',
			"city" TEXT NOT NULL DEFAULT '',
			"state" TEXT NOT NULL DEFAULT '',
			"phone_number" TEXT NOT NULL DEFAULT '',
			"specialty" TEXT NOT NULL DEFAULT '',
			"is_emergency_24h" INTEGER NOT NULL DEFAULT 0,
			"is_wheelchair_accessible" INTEGER NOT NULL DEFAULT 0,
			"has_elevator" INTEGER NOT NULL DEFAULT 0,
			"has_geriatrics_dept" INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS doctors (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"specialty" TEXT NOT NULL,
			"hospital_id" INTEGER,
			"contact_phone" TEXT NOT NULL DEFAULT '',
			"years_experience" INTEGER NOT NULL DEFAULT 5,
			"languages_spoken" TEXT NOT NULL DEFAULT '',
			"visiting_hours" TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(hospital_id) REFERENCES hospitals(id)
		);`,
		`CREATE TABLE IF NOT EXISTS places (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"description" TEXT NOT NULL DEFAULT '',
			"address" TEXT NOT NULL DEFAULT '',
			"city" TEXT NOT NULL DEFAULT '',
			"state" TEXT NOT NULL DEFAULT '',
			"category" TEXT NOT NULL DEFAULT 'other',
			"is_wheelchair_accessible" INTEGER NOT NULL DEFAULT 0,
			"has_restrooms" INTEGER NOT NULL DEFAULT 0,
			"has_seating" INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS learning_resources (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"title" TEXT NOT NULL,
			"description" TEXT NOT NULL DEFAULT '',
			"hobby_id" INTEGER,
			"content_type" TEXT NOT NULL DEFAULT 'article',
			"difficulty" TEXT NOT NULL DEFAULT 'beginner',
			"external_link" TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(hobby_id) REFERENCES hobbies(id)
		);`,
		`CREATE TABLE IF NOT EXISTS learning_progress (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL,
			"resource_id" INTEGER NOT NULL,
			"status" TEXT NOT NULL DEFAULT 'not_started',
			UNIQUE(user_id, resource_id),
			FOREIGN KEY(user_id) REFERENCES users(id),
			FOREIGN KEY(resource_id) REFERENCES learning_resources(id)
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"description" TEXT NOT NULL DEFAULT '',
			"hobby_id" INTEGER NOT NULL,
			"location" TEXT NOT NULL DEFAULT '',
			"event_date" DATETIME NOT NULL,
			"created_by" INTEGER,
			"created_at" DATETIME NOT NULL,
			FOREIGN KEY(hobby_id) REFERENCES hobbies(id),
			FOREIGN KEY(created_by) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS games (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL UNIQUE,
			"description" TEXT NOT NULL DEFAULT '',
			"game_type" TEXT NOT NULL DEFAULT 'puzzle',
			"difficulty" TEXT NOT NULL DEFAULT 'medium',
			"game_url" TEXT NOT NULL DEFAULT '',
			"is_high_contrast" INTEGER NOT NULL DEFAULT 1,
			"is_large_text" INTEGER NOT NULL DEFAULT 1,
			"is_multiplayer_ready" INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS game_sessions (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL,
			"game_id" INTEGER NOT NULL,
			"started_at" DATETIME NOT NULL,
			"ended_at" DATETIME,
			"score" INTEGER NOT NULL DEFAULT 0,
			"outcome" TEXT NOT NULL DEFAULT 'quit',
			FOREIGN KEY(user_id) REFERENCES users(id),
			FOREIGN KEY(game_id) REFERENCES games(id)
		);`,
	}

	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			log.Fatalf("InitDB(): Failed to create table: %v", err)
		}
	}
	log.Println("InitDB(): Init and create tables successfully!")
}

// CloseDB closes the shared database handle.
func CloseDB() error {
	if db == nil {
		return nil
	}
	return db.Close()
}
