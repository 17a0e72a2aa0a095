package chatbot

import (
	"regexp"
	"strings"

	"SeniorCompanion_Backend/internal/models"

	"go.uber.org/zap"
)

// FallbackResponse is returned when no rule matches.
const FallbackResponse = "I'm sorry, I don't understand that question yet. I have notified the support staff, and they will look into it."

// Queries at or below this length are treated as gibberish and not
// logged for staff triage.
const minLoggableLength = 3

// RuleStore is the slice of storage the engine needs.
type RuleStore interface {
	ListRulesByPriority() ([]models.LogicRule, error)
	LogUnansweredQuery(text string, userID *int) error
}

// Result of running one query through the rule table.
type Result struct {
	Response string
	Link     string
	Matched  bool
}

// Engine evaluates user input against the logic rule table:
// IF input matches pattern THEN respond.
type Engine struct {
	store  RuleStore
	logger *zap.Logger
}

func NewEngine(store RuleStore, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// Process runs raw user input through the rules, highest priority
// first, and returns the first matching rule's response. Unmatched
// input is logged for staff triage, attributed to userID only when
// the caller was authenticated.
func (e *Engine) Process(input string, userID *int) (Result, error) {
	cleaned := strings.ToLower(strings.TrimSpace(input))

	rules, err := e.store.ListRulesByPriority()
	if err != nil {
		return Result{}, err
	}

	for _, rule := range rules {
		if e.ruleMatches(rule, cleaned) {
			return Result{Response: rule.Response, Link: rule.SuggestedLink, Matched: true}, nil
		}
	}

	e.logUnanswered(input, userID)

	return Result{Response: FallbackResponse, Matched: false}, nil
}

func (e *Engine) ruleMatches(rule models.LogicRule, cleaned string) bool {
	pattern := strings.ToLower(rule.Pattern)

	switch rule.MatchType {
	case models.MatchExact:
		return cleaned == pattern

	case models.MatchContains:
		// Either a distinct whitespace-delimited word or a raw
		// substring counts as a hit.
		if strings.Contains(" "+cleaned+" ", " "+pattern+" ") {
			return true
		}
		return strings.Contains(cleaned, pattern)

	case models.MatchRegex:
		re, err := regexp.Compile(pattern)
		if err != nil {
			// A bad pattern disables this rule only; later rules
			// still get their turn.
			e.logger.Warn("invalid rule regex, skipping",
				zap.Int("rule_id", rule.ID),
				zap.String("pattern", rule.Pattern),
				zap.Error(err))
			return false
		}
		return re.MatchString(cleaned)
	}
	return false
}

func (e *Engine) logUnanswered(input string, userID *int) {
	// Don't log tiny gibberish.
	if len(strings.TrimSpace(input)) < minLoggableLength {
		return
	}
	if err := e.store.LogUnansweredQuery(input, userID); err != nil {
		e.logger.Error("failed to record unanswered query", zap.Error(err))
	}
}
