package handler

import (
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type studentSignupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
	Education   string `json:"education"`
	Experience  string `json:"experience"`
	Location    string `json:"location"`
}

type recruiterSignupRequest struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phone_number"`
	Password           string `json:"password"`
	Password2          string `json:"password2"`
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	CompanyWebsite     string `json:"company_website"`
	Location           string `json:"location"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup/student", h.SignupStudent)
	r.Post("/signup/recruiter", h.SignupRecruiter)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/logout", h.Logout)
}

// RegisterProtectedRoutes mounts the endpoints that need a valid access token.
func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/user", h.CurrentUser)
}

func (h *AuthHandler) CurrentUser(c fiber.Ctx) error {
	acc, err := h.uc.CurrentUser(c.Context(), viewerID(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, acc)
}

func (h *AuthHandler) SignupStudent(c fiber.Ctx) error {
	var req studentSignupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, pair, err := h.uc.SignupStudent(c.Context(), usecase.StudentSignupInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Password2:   req.Password2,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		Skills:      req.Skills,
		Education:   req.Education,
		Experience:  req.Experience,
		Location:    req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Created(c, map[string]any{
		"user":          acc,
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
	})
}

func (h *AuthHandler) SignupRecruiter(c fiber.Ctx) error {
	var req recruiterSignupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, pair, err := h.uc.SignupRecruiter(c.Context(), usecase.RecruiterSignupInput{
		Username:           req.Username,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Password:           req.Password,
		Password2:          req.Password2,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyWebsite:     req.CompanyWebsite,
		Location:           req.Location,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Created(c, map[string]any{
		"user":          acc,
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, pair, err := h.uc.Login(c.Context(), usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"user":          acc,
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	tok := req.RefreshToken
	if tok == "" {
		if header, ok := bearerFromAuthorizationHeader(c.Get("Authorization")); ok {
			tok = header
		}
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
	})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	var req refreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Logout(c.Context(), req.RefreshToken); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "logged out", nil)
}
