package storage

import (
	"database/sql"
	"time"

	"SeniorCompanion_Backend/internal/models"
)

func ListGames() ([]models.Game, error) {
	rows, err := db.Query(
		`SELECT id, name, description, game_type, difficulty, game_url,
		 is_high_contrast, is_large_text, is_multiplayer_ready FROM games ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.GameType, &g.Difficulty,
			&g.GameURL, &g.IsHighContrast, &g.IsLargeText, &g.IsMultiplayerReady); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// FindGameByName matches loosely on name, as the game frontends post
// display names rather than IDs.
func FindGameByName(name string) (models.Game, error) {
	var g models.Game
	row := db.QueryRow(
		`SELECT id, name, description, game_type, difficulty, game_url,
		 is_high_contrast, is_large_text, is_multiplayer_ready
		 FROM games WHERE name LIKE ? LIMIT 1`, "%"+name+"%")
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.GameType, &g.Difficulty,
		&g.GameURL, &g.IsHighContrast, &g.IsLargeText, &g.IsMultiplayerReady)
	if err == sql.ErrNoRows {
		return g, ErrResourceNotFound
	}
	return g, err
}

func CreateGame(g models.Game) (int, error) {
	res, err := db.Exec(
		`INSERT INTO games(name, description, game_type, difficulty, game_url,
		 is_high_contrast, is_large_text, is_multiplayer_ready)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		g.Name, g.Description, g.GameType, g.Difficulty, g.GameURL,
		g.IsHighContrast, g.IsLargeText, g.IsMultiplayerReady)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteGame(id int) error {
	_, err := db.Exec("DELETE FROM games WHERE id = ?", id)
	return err
}

// RecordGameSession stores a finished play-through.
func RecordGameSession(userID, gameID, score int, outcome string) (int, error) {
	now := time.Now().UTC()
	res, err := db.Exec(
		`INSERT INTO game_sessions(user_id, game_id, started_at, ended_at, score, outcome)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		userID, gameID, now, now, score, outcome)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}
