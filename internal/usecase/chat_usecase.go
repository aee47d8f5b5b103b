package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"rentmate/internal/domain/entity"
	"rentmate/internal/domain/repository"
	"rentmate/pkg/errors"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
}

func NewChatUseCase(chatRepo repository.ChatRepository) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
	}
}

type SendMessageInput struct {
	SenderID   string
	ReceiverID string
	SenderRole string
	Text       string
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.ChatMessage, error) {
	if input.SenderID == "" || input.ReceiverID == "" {
		return nil, errors.BadRequest("senderId and receiverId are required", nil)
	}
	if !entity.ValidRole(input.SenderRole) {
		return nil, errors.BadRequest("Role must be landlord or tenant", nil)
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.BadRequest("Message must not be empty", nil)
	}

	conversationID := entity.ConversationID(input.SenderID, input.ReceiverID, input.SenderRole)

	message := &entity.ChatMessage{
		ID:       uuid.New().String(),
		Text:     input.Text,
		SenderID: input.SenderID,
	}

	participants := []string{input.SenderID, input.ReceiverID}
	if err := uc.chatRepo.AppendMessage(ctx, conversationID, participants, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *ChatUseCase) GetHistory(ctx context.Context, senderID, receiverID, senderRole string) ([]*entity.ChatMessage, error) {
	if senderID == "" || receiverID == "" {
		return nil, errors.BadRequest("senderId and receiverId are required", nil)
	}
	if !entity.ValidRole(senderRole) {
		return nil, errors.BadRequest("Role must be landlord or tenant", nil)
	}

	conversationID := entity.ConversationID(senderID, receiverID, senderRole)
	return uc.chatRepo.ListMessages(ctx, conversationID)
}
