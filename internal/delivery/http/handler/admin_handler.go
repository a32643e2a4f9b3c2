package handler

import (
	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Delete("/users/:id", h.DeleteUser)
	r.Put("/recruiters/:id/approve", h.ApproveRecruiter)
	r.Put("/recruiters/:id/block", h.BlockRecruiter)
	r.Get("/jobs", h.ListJobs)
	r.Delete("/jobs/:id", h.DeleteJob)
	r.Get("/applications", h.ListApplications)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Context(), viewerID(c), user.Role(c.Query("role")))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdminHandler) DeleteUser(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Context(), viewerID(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "user deleted", nil)
}

func (h *AdminHandler) ApproveRecruiter(c fiber.Ctx) error {
	return h.setApproval(c, true, "recruiter approved")
}

func (h *AdminHandler) BlockRecruiter(c fiber.Ctx) error {
	return h.setApproval(c, false, "recruiter blocked")
}

func (h *AdminHandler) setApproval(c fiber.Ctx, approved bool, msg string) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.SetRecruiterApproval(c.Context(), viewerID(c), id, approved)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, msg, p)
}

func (h *AdminHandler) ListJobs(c fiber.Ctx) error {
	in := usecase.JobListInput{
		Search:   c.Query("search"),
		JobType:  c.Query("job_type"),
		Location: c.Query("location"),
		Limit:    parseQueryInt(c, "limit", 0),
		Offset:   parseQueryInt(c, "offset", 0),
	}

	out, err := h.uc.ListJobs(c.Context(), viewerID(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AdminHandler) DeleteJob(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Context(), viewerID(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "job deleted", nil)
}

func (h *AdminHandler) ListApplications(c fiber.Ctx) error {
	out, err := h.uc.ListApplications(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
