package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"portafolio/internal/domain/entity"
	"portafolio/internal/usecase"
	"portafolio/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (h *MessageHandler) SubmitMessage(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Submit(c.Request().Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

type inboxResponse struct {
	Messages    []*entity.Message `json:"messages"`
	UnreadCount int               `json:"unread_count"`
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inboxResponse{
		Messages:    messages,
		UnreadCount: usecase.UnreadCount(messages),
	})
}

// StreamMessages pushes the inbox over SSE: one event per collection
// change, carrying the full ordered list and the derived unread count.
func (h *MessageHandler) StreamMessages(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.messageUseCase.Subscribe(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case messages, ok := <-updates:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(inboxResponse{
				Messages:    messages,
				UnreadCount: usecase.UnreadCount(messages),
			})
			if err != nil {
				continue
			}

			fmt.Fprintf(w, "data: %s\n\n", payload)
			w.Flush()
		}
	}
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	if err := h.messageUseCase.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message marked as read",
	})
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	if err := h.messageUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Message deleted",
	})
}
