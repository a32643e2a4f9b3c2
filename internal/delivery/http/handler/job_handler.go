package handler

import (
	"strconv"
	"strings"
	"time"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

type jobRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CompanyName  string     `json:"company_name"`
	Role         string     `json:"role"`
	Location     string     `json:"location"`
	JobType      string     `json:"job_type"`
	CategoryID   *uuid.UUID `json:"category_id"`
	SalaryRange  string     `json:"salary_range"`
	Deadline     *time.Time `json:"deadline"`
	IsActive     *bool      `json:"is_active"`
	IsClosed     *bool      `json:"is_closed"`
	Requirements string     `json:"requirements"`
	Benefits     string     `json:"benefits"`
	Tags         string     `json:"tags"`
}

func (r jobRequest) toInput() usecase.JobInput {
	return usecase.JobInput{
		Title:        r.Title,
		Description:  r.Description,
		CompanyName:  r.CompanyName,
		Role:         r.Role,
		Location:     r.Location,
		JobType:      r.JobType,
		CategoryID:   r.CategoryID,
		SalaryRange:  r.SalaryRange,
		Deadline:     r.Deadline,
		IsActive:     r.IsActive,
		IsClosed:     r.IsClosed,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
		Tags:         r.Tags,
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegisterPublicRoutes runs behind the optional auth middleware so owners can
// be told apart from anonymous visitors.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *JobHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *JobHandler) RegisterCategoryRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListCategories)
	r.Get("/popular", h.PopularCategories)
}

func (h *JobHandler) RegisterProtectedCategoryRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.CreateCategory)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	in := usecase.JobListInput{
		Search:   c.Query("search"),
		JobType:  c.Query("job_type"),
		Location: c.Query("location"),
		MyJobs:   parseQueryBool(c, "my_jobs"),
		Limit:    parseQueryInt(c, "limit", 0),
		Offset:   parseQueryInt(c, "offset", 0),
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid category id", nil, err)
		}
		in.CategoryID = &id
	}

	jobs, err := h.uc.List(c.Context(), viewerID(c), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), viewerID(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Create(c.Context(), viewerID(c), req.toInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, j)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Update(c.Context(), viewerID(c), id, req.toInput())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), viewerID(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "job deleted", nil)
}

func (h *JobHandler) Suggestions(c fiber.Ctx) error {
	out, err := h.uc.Suggestions(c.Context(), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) ListCategories(c fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) PopularCategories(c fiber.Ctx) error {
	out, err := h.uc.PopularCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) CreateCategory(c fiber.Ctx) error {
	var req categoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	cat, err := h.uc.CreateCategory(c.Context(), viewerID(c), usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, cat)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryBool(c fiber.Ctx, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
