package entity

import (
	"fmt"
	"time"
)

// ConversationID derives the deterministic chat document name. The landlord
// half always comes first so both participants address the same document.
func ConversationID(senderID, receiverID, senderRole string) string {
	if senderRole == RoleLandlord {
		return fmt.Sprintf("%s_%s", senderID, receiverID)
	}
	return fmt.Sprintf("%s_%s", receiverID, senderID)
}

type Conversation struct {
	ID           string    `json:"id" firestore:"id"`
	Participants []string  `json:"participants" firestore:"participants"`
	LastMessage  string    `json:"last_message" firestore:"lastMessage"`
	LastUpdated  time.Time `json:"last_updated" firestore:"lastUpdated,serverTimestamp"`
}

type ChatMessage struct {
	ID        string    `json:"id" firestore:"id"`
	Text      string    `json:"text" firestore:"text"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}
