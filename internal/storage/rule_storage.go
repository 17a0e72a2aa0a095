package storage

import (
	"database/sql"
	"time"

	"SeniorCompanion_Backend/internal/models"
)

// ListRulesByPriority returns all logic rules, highest priority
// first. Ordering within equal priorities falls back to id so the
// evaluation order is stable.
func ListRulesByPriority() ([]models.LogicRule, error) {
	rows, err := db.Query(
		`SELECT id, pattern, match_type, response, suggested_link, priority
		 FROM logic_rules ORDER BY priority DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []models.LogicRule{}
	for rows.Next() {
		var r models.LogicRule
		var link sql.NullString
		if err := rows.Scan(&r.ID, &r.Pattern, &r.MatchType, &r.Response, &link, &r.Priority); err != nil {
			return nil, err
		}
		if link.Valid {
			r.SuggestedLink = link.String
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func CountRules() (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM logic_rules").Scan(&n)
	return n, err
}

func CreateRule(rule models.LogicRule) (int, error) {
	var link interface{}
	if rule.SuggestedLink != "" {
		link = rule.SuggestedLink
	}
	res, err := db.Exec(
		`INSERT INTO logic_rules(pattern, match_type, response, suggested_link, priority)
		 VALUES(?, ?, ?, ?, ?)`,
		rule.Pattern, rule.MatchType, rule.Response, link, rule.Priority)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteRule(id int) error {
	_, err := db.Exec("DELETE FROM logic_rules WHERE id = ?", id)
	return err
}

// RuleExistsForPattern is used by the seeder to stay idempotent.
func RuleExistsForPattern(pattern string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM logic_rules WHERE pattern = ?)", pattern).Scan(&exists)
	return exists, err
}

// LogUnansweredQuery records a query no rule matched. userID is nil
// for anonymous callers.
func LogUnansweredQuery(text string, userID *int) error {
	_, err := db.Exec(
		"INSERT INTO unanswered_queries(user_id, query_text, created_at) VALUES(?, ?, ?)",
		userID, text, time.Now().UTC())
	return err
}

// ListUnansweredQueries returns queries for staff triage, unresolved
// first, newest first.
func ListUnansweredQueries() ([]models.UnansweredQuery, error) {
	rows, err := db.Query(
		`SELECT id, user_id, query_text, created_at, is_resolved
		 FROM unanswered_queries ORDER BY is_resolved ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queries := []models.UnansweredQuery{}
	for rows.Next() {
		var q models.UnansweredQuery
		var userID sql.NullInt64
		if err := rows.Scan(&q.ID, &userID, &q.QueryText, &q.CreatedAt, &q.IsResolved); err != nil {
			return nil, err
		}
		if userID.Valid {
			id := int(userID.Int64)
			q.UserID = &id
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

func ResolveUnansweredQuery(id int) error {
	_, err := db.Exec("UPDATE unanswered_queries SET is_resolved = 1 WHERE id = ?", id)
	return err
}
