package handler

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type studentProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Bio        string `json:"bio"`
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
}

type recruiterProfileRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	CompanyWebsite     string `json:"company_website"`
	Location           string `json:"location"`
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
	r.Put("/me/student", h.UpdateStudent)
	r.Put("/me/recruiter", h.UpdateRecruiter)
}

func (h *ProfileHandler) Me(c fiber.Ctx) error {
	acc, err := h.uc.Get(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, acc)
}

func (h *ProfileHandler) UpdateStudent(c fiber.Ctx) error {
	var req studentProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, err := h.uc.UpdateStudent(c.Context(), viewerID(c), usecase.StudentProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Education:  req.Education,
		Experience: req.Experience,
		Location:   req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, acc)
}

func (h *ProfileHandler) UpdateRecruiter(c fiber.Ctx) error {
	var req recruiterProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, err := h.uc.UpdateRecruiter(c.Context(), viewerID(c), usecase.RecruiterProfileInput{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyWebsite:     req.CompanyWebsite,
		Location:           req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, acc)
}
