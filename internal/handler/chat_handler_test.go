package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SeniorCompanion_Backend/internal/auth"
	"SeniorCompanion_Backend/internal/chat"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := gin.New()
	router.GET("/ws/chat/:user1/:user2", HandleChatConnection)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

// A caller whose ID is neither of the path IDs is refused before the
// upgrade ever happens.
func TestChatConnectionRejectsNonParticipant(t *testing.T) {
	srv := chatServer(t)

	token, err := auth.GenerateToken(9, "intruder@example.com", false)
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(
		wsURL(srv, "/ws/chat/1/2?token="+token), nil)
	require.Error(t, err)
	assert.Equal(t, websocket.ErrBadHandshake, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, conn)
}

func TestChatConnectionRejectsBadToken(t *testing.T) {
	srv := chatServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(
		wsURL(srv, "/ws/chat/1/2?token=garbage"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Both orderings of the path IDs land in the same room, and a frame
// from one participant reaches the other.
func TestChatConnectionDeliversBetweenParticipants(t *testing.T) {
	srv := chatServer(t)

	tokenA, err := auth.GenerateToken(1, "asha@example.com", false)
	require.NoError(t, err)
	tokenB, err := auth.GenerateToken(2, "ravi@example.com", false)
	require.NoError(t, err)

	connA, _, err := websocket.DefaultDialer.Dial(
		wsURL(srv, "/ws/chat/1/2?token="+tokenA), nil)
	require.NoError(t, err)
	defer connA.Close()

	connB, _, err := websocket.DefaultDialer.Dial(
		wsURL(srv, "/ws/chat/2/1?token="+tokenB), nil)
	require.NoError(t, err)
	defer connB.Close()

	// Both joins must be registered before the send fans out.
	room := chat.RoomName(1, 2)
	require.Eventually(t, func() bool {
		return ChatHub.RoomSize(room) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, connA.WriteJSON(gin.H{"message": "hello ravi"}))

	var got chat.Message
	require.NoError(t, connB.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, connB.ReadJSON(&got))
	assert.Equal(t, "hello ravi", got.Message)
	assert.Equal(t, "asha@example.com", got.SenderEmail)
}
