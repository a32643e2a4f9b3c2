package handler

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/domain/application"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type applyRequest struct {
	JobID       uuid.UUID `json:"job_id"`
	Resume      string    `json:"resume"`
	CoverLetter string    `json:"cover_letter"`
}

type statusUpdateRequest struct {
	Status         string `json:"status"`
	RecruiterNotes string `json:"recruiter_notes"`
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListMine)
	r.Post("/", h.Apply)
	r.Get("/:id", h.Get)
	r.Put("/:id/status", h.UpdateStatus)
}

// RegisterJobRoutes mounts the per-job applications listing.
func (h *ApplicationHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/applications", h.ListForJob)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.JobID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "job_id is required", nil, nil)
	}

	d, err := h.uc.Apply(c.Context(), viewerID(c), usecase.ApplyInput{
		JobID:       req.JobID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, d)
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	d, err := h.uc.Get(c.Context(), viewerID(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req statusUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	d, err := h.uc.UpdateStatus(c.Context(), viewerID(c), id, usecase.StatusUpdateInput{
		Status:         application.Status(req.Status),
		RecruiterNotes: req.RecruiterNotes,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	out, err := h.uc.ListMine(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.ListForJob(c.Context(), viewerID(c), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
