package repository

import (
	"context"

	"rentmate/internal/domain/entity"
)

type ChatRepository interface {
	// AppendMessage stores the message in the conversation's subcollection
	// and merge-writes the conversation summary document.
	AppendMessage(ctx context.Context, conversationID string, participants []string, message *entity.ChatMessage) error

	// ListMessages returns a conversation's messages ordered oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]*entity.ChatMessage, error)
}
