package chat

import "fmt"

// RoomName derives the canonical room identifier for a pair of user
// IDs. The smaller ID always comes first so both participants land
// in the same room no matter who connects first.
func RoomName(userA, userB int) string {
	if userA < userB {
		return fmt.Sprintf("chat_%d_%d", userA, userB)
	}
	return fmt.Sprintf("chat_%d_%d", userB, userA)
}

// IsParticipant reports whether userID is one of the two users a
// room is addressed to.
func IsParticipant(userID, userA, userB int) bool {
	return userID == userA || userID == userB
}
