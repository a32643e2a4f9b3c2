package handler

import (
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/student", h.Student)
	r.Get("/recruiter", h.Recruiter)
	r.Get("/admin", h.Admin)
}

func (h *DashboardHandler) Student(c fiber.Ctx) error {
	d, err := h.uc.Student(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}

func (h *DashboardHandler) Recruiter(c fiber.Ctx) error {
	d, err := h.uc.Recruiter(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}

func (h *DashboardHandler) Admin(c fiber.Ctx) error {
	d, err := h.uc.Admin(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}
