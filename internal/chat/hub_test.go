package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRoomName_OrderIndependent(t *testing.T) {
	pairs := [][2]int{{3, 7}, {7, 3}, {1, 2}, {100, 99}}
	assert.Equal(t, RoomName(3, 7), RoomName(7, 3))
	assert.Equal(t, "chat_3_7", RoomName(7, 3))
	for _, p := range pairs {
		assert.Equal(t, RoomName(p[0], p[1]), RoomName(p[1], p[0]),
			"pair (%d,%d) must canonicalize identically in both orders", p[0], p[1])
	}
}

func TestIsParticipant(t *testing.T) {
	assert.True(t, IsParticipant(3, 3, 7))
	assert.True(t, IsParticipant(7, 3, 7))
	assert.False(t, IsParticipant(5, 3, 7))
}

func TestHub_BroadcastReachesAllMembersIncludingSender(t *testing.T) {
	hub := NewHub(zap.NewNop())
	room := RoomName(3, 7)

	a := hub.Join(room, "a@example.com")
	b := hub.Join(room, "b@example.com")
	// The sender's second connection also receives the frame.
	a2 := hub.Join(room, "a@example.com")

	msg := Message{Message: "hello", SenderEmail: "a@example.com"}
	hub.Broadcast(room, msg)

	for _, client := range []*Client{a, b, a2} {
		select {
		case got := <-client.Send:
			assert.Equal(t, msg, got)
		default:
			t.Fatalf("client %s did not receive the broadcast", client.ID)
		}
	}
}

func TestHub_BroadcastScopedToRoom(t *testing.T) {
	hub := NewHub(zap.NewNop())

	a := hub.Join(RoomName(1, 2), "a@example.com")
	c := hub.Join(RoomName(1, 3), "c@example.com")

	hub.Broadcast(RoomName(1, 2), Message{Message: "private", SenderEmail: "a@example.com"})

	require.Len(t, a.Send, 1)
	assert.Empty(t, c.Send)
}

func TestHub_LeaveRemovesMembership(t *testing.T) {
	hub := NewHub(zap.NewNop())
	room := RoomName(3, 7)

	a := hub.Join(room, "a@example.com")
	b := hub.Join(room, "b@example.com")
	require.Equal(t, 2, hub.RoomSize(room))

	hub.Leave(room, a)
	assert.Equal(t, 1, hub.RoomSize(room))

	hub.Broadcast(room, Message{Message: "still here", SenderEmail: "b@example.com"})
	require.Len(t, b.Send, 1)

	hub.Leave(room, b)
	assert.Equal(t, 0, hub.RoomSize(room))
}

func TestHub_SlowClientDoesNotBlockBroadcast(t *testing.T) {
	hub := NewHub(zap.NewNop())
	room := RoomName(3, 7)

	slow := hub.Join(room, "slow@example.com")
	fast := hub.Join(room, "fast@example.com")

	// The fast client drains its buffer, the slow one never does.
	received := 0
	for i := 0; i < sendBufferSize+5; i++ {
		hub.Broadcast(room, Message{Message: "spam", SenderEmail: "fast@example.com"})
		<-fast.Send
		received++
	}

	// The slow client is capped at its buffer, the fast one saw
	// every frame, and Broadcast never blocked.
	assert.Len(t, slow.Send, sendBufferSize)
	assert.Equal(t, sendBufferSize+5, received)
}
