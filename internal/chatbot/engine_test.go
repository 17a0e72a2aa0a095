package chatbot

import (
	"testing"

	"SeniorCompanion_Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRuleStore struct {
	rules      []models.LogicRule
	logged     []string
	loggedUser []*int
}

func (f *fakeRuleStore) ListRulesByPriority() ([]models.LogicRule, error) {
	return f.rules, nil
}

func (f *fakeRuleStore) LogUnansweredQuery(text string, userID *int) error {
	f.logged = append(f.logged, text)
	f.loggedUser = append(f.loggedUser, userID)
	return nil
}

func newTestEngine(rules []models.LogicRule) (*Engine, *fakeRuleStore) {
	store := &fakeRuleStore{rules: rules}
	return NewEngine(store, zap.NewNop()), store
}

func TestProcess_HigherPriorityWins(t *testing.T) {
	// The store returns rules priority-descending, like the real one.
	engine, _ := newTestEngine([]models.LogicRule{
		{ID: 1, Pattern: "emergency", MatchType: models.MatchContains, Response: "Call 100 now.", Priority: 20},
		{ID: 2, Pattern: "hospital", MatchType: models.MatchContains, Response: "Search hospitals here.", Priority: 9},
	})

	result, err := engine.Process("I have an emergency near a hospital", nil)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "Call 100 now.", result.Response)
}

func TestProcess_ExactMatch(t *testing.T) {
	engine, _ := newTestEngine([]models.LogicRule{
		{ID: 1, Pattern: "Hello", MatchType: models.MatchExact, Response: "Hi there!", Priority: 5},
	})

	result, err := engine.Process("  hello  ", nil)
	require.NoError(t, err)
	assert.True(t, result.Matched)

	result, err = engine.Process("hello friend", nil)
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestProcess_ContainsMatchesSubstring(t *testing.T) {
	engine, _ := newTestEngine([]models.LogicRule{
		{ID: 1, Pattern: "pill", MatchType: models.MatchContains, Response: "Track your pills here.", Priority: 8},
	})

	// "pills" contains "pill" as a raw substring even though it is
	// not a distinct token.
	result, err := engine.Process("where are my pills", nil)
	require.NoError(t, err)
	assert.True(t, result.Matched)
}

func TestProcess_RegexMatch(t *testing.T) {
	engine, _ := newTestEngine([]models.LogicRule{
		{ID: 1, Pattern: `remind(er)?s?`, MatchType: models.MatchRegex, Response: "Reminders live here.", SuggestedLink: "/reminders/", Priority: 9},
	})

	result, err := engine.Process("How do I set reminders?", nil)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "/reminders/", result.Link)
}

func TestProcess_BadRegexSkipsRuleOnly(t *testing.T) {
	engine, _ := newTestEngine([]models.LogicRule{
		{ID: 1, Pattern: `([unclosed`, MatchType: models.MatchRegex, Response: "never", Priority: 10},
		{ID: 2, Pattern: "help", MatchType: models.MatchContains, Response: "Here to help.", Priority: 5},
	})

	result, err := engine.Process("I need help", nil)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "Here to help.", result.Response)
}

func TestProcess_FallbackLogsUnanswered(t *testing.T) {
	engine, store := newTestEngine(nil)

	userID := 7
	result, err := engine.Process("how do I fly a kite", &userID)
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, FallbackResponse, result.Response)
	assert.Empty(t, result.Link)

	require.Len(t, store.logged, 1)
	assert.Equal(t, "how do I fly a kite", store.logged[0])
	require.NotNil(t, store.loggedUser[0])
	assert.Equal(t, 7, *store.loggedUser[0])
}

func TestProcess_AnonymousUnansweredHasNoUser(t *testing.T) {
	engine, store := newTestEngine(nil)

	_, err := engine.Process("something unknown", nil)
	require.NoError(t, err)
	require.Len(t, store.loggedUser, 1)
	assert.Nil(t, store.loggedUser[0])
}

func TestProcess_TinyInputNotLogged(t *testing.T) {
	engine, store := newTestEngine(nil)

	result, err := engine.Process(" hi ", nil)
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, FallbackResponse, result.Response)
	assert.Empty(t, store.logged)
}
