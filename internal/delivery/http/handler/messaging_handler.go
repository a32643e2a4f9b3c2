package handler

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessagingHandler struct {
	uc usecase.MessagingUsecase
}

func NewMessagingHandler(uc usecase.MessagingUsecase) *MessagingHandler {
	return &MessagingHandler{uc: uc}
}

type sendMessageRequest struct {
	StudentID      uuid.UUID `json:"student_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Content        string    `json:"content"`
}

type startConversationRequest struct {
	StudentID uuid.UUID `json:"student_id"`
}

func (h *MessagingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListConversations)
	r.Post("/", h.StartConversation)
	r.Get("/:id", h.GetConversation)
	r.Get("/:id/messages", h.ListMessages)
	r.Post("/:id/mark_read", h.MarkRead)
}

// RegisterMessageRoutes mounts the message-level endpoints.
func (h *MessagingHandler) RegisterMessageRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Send)
	r.Get("/unread-count", h.UnreadCount)
	r.Post("/:id/mark_read", h.MarkMessageRead)
}

func (h *MessagingHandler) StartConversation(c fiber.Ctx) error {
	var req startConversationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	conv, err := h.uc.StartConversation(c.Context(), viewerID(c), req.StudentID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, conv)
}

func (h *MessagingHandler) ListConversations(c fiber.Ctx) error {
	out, err := h.uc.ListConversations(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MessagingHandler) GetConversation(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	conv, err := h.uc.GetConversation(c.Context(), viewerID(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, conv)
}

func (h *MessagingHandler) ListMessages(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	msgs, err := h.uc.ListMessages(c.Context(), viewerID(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, msgs)
}

func (h *MessagingHandler) Send(c fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.Send(c.Context(), viewerID(c), usecase.SendMessageInput{
		StudentID:      req.StudentID,
		ConversationID: req.ConversationID,
		Content:        req.Content,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, m)
}

func (h *MessagingHandler) MarkRead(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	n, err := h.uc.MarkRead(c.Context(), viewerID(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"marked_read": n})
}

func (h *MessagingHandler) MarkMessageRead(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	m, err := h.uc.MarkMessageRead(c.Context(), viewerID(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, m)
}

func (h *MessagingHandler) UnreadCount(c fiber.Ctx) error {
	n, err := h.uc.UnreadCount(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"unread_count": n})
}
