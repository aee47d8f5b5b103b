package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) AppendMessage(ctx context.Context, conversationID string, participants []string, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	_, err := r.client.Collection("chats").Doc(conversationID).
		Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to store chat message", err)
	}

	// Merge keeps the summary document alive without clobbering fields
	// another sender wrote concurrently.
	_, err = r.client.Collection("chats").Doc(conversationID).Set(ctx, map[string]interface{}{
		"lastMessage":  message.Text,
		"lastUpdated":  firestore.ServerTimestamp,
		"participants": participants,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update conversation", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.ChatMessage, error) {
	query := r.client.Collection("chats").Doc(conversationID).
		Collection("messages").
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	messages := []*entity.ChatMessage{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse chat message", err)
		}
		message.ID = doc.Ref.ID

		messages = append(messages, &message)
	}

	return messages, nil
}
