package handler

import (
	"github.com/labstack/echo/v4"

	"rentmate/internal/usecase"
	"rentmate/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=landlord tenant"`
	Text       string `json:"text" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		SenderRole: req.Role,
		Text:       req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) GetHistory(c echo.Context) error {
	messages, err := h.chatUseCase.GetHistory(
		c.Request().Context(),
		c.QueryParam("senderId"),
		c.QueryParam("receiverId"),
		c.QueryParam("role"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
