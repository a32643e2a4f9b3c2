package handler

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type BookmarkHandler struct {
	uc usecase.BookmarkUsecase
}

func NewBookmarkHandler(uc usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{uc: uc}
}

type bookmarkRequest struct {
	JobID uuid.UUID `json:"job_id"`
}

func (h *BookmarkHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/:id", h.Remove)
}

func (h *BookmarkHandler) List(c fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *BookmarkHandler) Add(c fiber.Ctx) error {
	var req bookmarkRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.JobID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "job_id is required", nil, nil)
	}

	b, err := h.uc.Add(c.Context(), viewerID(c), req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, b)
}

func (h *BookmarkHandler) Remove(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Context(), viewerID(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "bookmark removed", nil)
}
