package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"SeniorCompanion_Backend/internal/auth"
	"SeniorCompanion_Backend/internal/chat"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatHub is the process-wide room registry, set at startup.
var ChatHub *chat.Hub

// Inbound frame from the browser.
type inboundChatMessage struct {
	Message string `json:"message"`
}

// HandleChatConnection godoc
// @Summary      Companion chat WebSocket
// @Description  Opens a real-time chat channel between two users. Both orderings of the
// @Description  path IDs land in the same room.
// @Description  <br> **Note: this is not a standard HTTP API.**
// @Description  Connect with the `ws://` or `wss://` scheme. Authentication uses the
// @Description  **query parameter (`token`)**, not an HTTP header.
// @Tags         WebSocket (Chat)
// @Param        user1 path  int    true "First participant user ID"
// @Param        user2 path  int    true "Second participant user ID"
// @Param        token query string true "JWT issued at login"
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      400 {object} handler.ErrorResponse "Malformed path IDs"
// @Failure      401 {object} handler.ErrorResponse "Missing or invalid token"
// @Failure      403 {object} handler.ErrorResponse "Caller is not a participant"
// @Router       /ws/chat/{user1}/{user2} [get]
func HandleChatConnection(c *gin.Context) {
	tokenString := c.Query("token")

	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	user1, err1 := strconv.Atoi(c.Param("user1"))
	user2, err2 := strconv.Atoi(c.Param("user2"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ids"})
		return
	}

	// Only the two addressed users may enter the room.
	if !chat.IsParticipant(claims.UserID, user1, user2) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant of this chat"})
		return
	}

	room := chat.RoomName(user1, user2)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("error: Failed to upgrade to WebSocket: user %d with %v", claims.UserID, err)
		return
	}
	defer conn.Close()

	client := ChatHub.Join(room, claims.Email)
	defer ChatHub.Leave(room, client)

	// Writer goroutine drains the client's outbound buffer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range client.Send {
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}()

	// Read loop: parse each frame and fan it out to the room. A
	// malformed frame is dropped, not fatal.
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var inbound inboundChatMessage
		if err := json.Unmarshal(data, &inbound); err != nil {
			log.Printf("dropping malformed chat frame from %s: %v", claims.Email, err)
			continue
		}
		if inbound.Message == "" {
			continue
		}
		ChatHub.Broadcast(room, chat.Message{
			Message:     inbound.Message,
			SenderEmail: claims.Email,
		})
	}
}
