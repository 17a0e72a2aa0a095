package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"SeniorCompanion_Backend/internal/chat"
	"SeniorCompanion_Backend/internal/chatbot"
	"SeniorCompanion_Backend/internal/middleware"
	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// dbRuleStore feeds the assistant from the real storage layer, same
// as production wiring.
type dbRuleStore struct{}

func (dbRuleStore) ListRulesByPriority() ([]models.LogicRule, error) {
	return storage.ListRulesByPriority()
}
func (dbRuleStore) LogUnansweredQuery(text string, userID *int) error {
	return storage.LogUnansweredQuery(text, userID)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "senior-companion-handler-test")
	if err != nil {
		panic(err)
	}
	storage.InitDB(filepath.Join(dir, "test.db"))

	Assistant = chatbot.NewEngine(dbRuleStore{}, zap.NewNop())
	ChatHub = chat.NewHub(zap.NewNop())

	code := m.Run()

	storage.CloseDB()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.POST("/signup", Signup)
	router.POST("/login", Login)
	router.POST("/chatbot/query", middleware.OptionalAuthMiddleware(), ChatbotQuery)

	protected := router.Group("/api", middleware.AuthMiddleware())
	{
		protected.GET("/profile", GetProfile)
		protected.GET("/companions", ListCompanions)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupThenLogin(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/signup", "", gin.H{
		"email":    "kavita@example.com",
		"username": "kavita",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Same email again is rejected.
	w = doJSON(t, router, http.MethodPost, "/signup", "", gin.H{
		"email":    "kavita@example.com",
		"username": "kavita2",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password is a 401 with no detail about which part failed.
	w = doJSON(t, router, http.MethodPost, "/login", "", gin.H{
		"email":    "kavita@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = doJSON(t, router, http.MethodPost, "/login", "", gin.H{
		"email":    "kavita@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The token opens protected routes.
	w = doJSON(t, router, http.MethodGet, "/api/profile", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// No token does not.
	w = doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupRejectsBlankFields(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/signup", "", gin.H{
		"email":    "   ",
		"username": "someone",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/signup", "", gin.H{
		"email":    "not-an-email",
		"username": "someone",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatbotQueryAnonymous(t *testing.T) {
	router := newRouter()

	_, err := storage.CreateRule(models.LogicRule{
		Pattern:       "hospital",
		MatchType:     models.MatchContains,
		Response:      "You can browse hospitals and their doctors in the hospital directory.",
		SuggestedLink: "/hospitals/",
		Priority:      9,
	})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/chatbot/query", "", gin.H{
		"message": "where is the nearest hospital?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ChatbotQueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "answered", resp.Status)
	assert.Equal(t, "/hospitals/", resp.Link)

	// Nothing matches: fallback text, status unanswered.
	w = doJSON(t, router, http.MethodPost, "/chatbot/query", "", gin.H{
		"message": "what is the meaning of life?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unanswered", resp.Status)
	assert.Equal(t, chatbot.FallbackResponse, resp.Response)

	// And the miss landed in the staff queue, unattributed.
	queries, err := storage.ListUnansweredQueries()
	require.NoError(t, err)
	found := false
	for _, q := range queries {
		if q.QueryText == "what is the meaning of life?" {
			found = true
			assert.Nil(t, q.UserID)
		}
	}
	assert.True(t, found)
}

func TestChatbotQueryEmpty(t *testing.T) {
	router := newRouter()

	w := doJSON(t, router, http.MethodPost, "/chatbot/query", "", gin.H{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
