package models

import "time"

// Game session outcomes.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
	OutcomeQuit = "quit"
)

// A curated game for mental stimulation and social play.
type Game struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	GameType           string `json:"game_type"`
	Difficulty         string `json:"difficulty"`
	GameURL            string `json:"game_url"`
	IsHighContrast     bool   `json:"is_high_contrast"`
	IsLargeText        bool   `json:"is_large_text"`
	IsMultiplayerReady bool   `json:"is_multiplayer_ready"`
}

// One play-through of a game by a user.
type GameSession struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	GameID    int        `json:"game_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Score     int        `json:"score"`
	Outcome   string     `json:"outcome"`
}
