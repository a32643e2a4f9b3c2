package handler

import (
	"errors"
	"strings"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/domain/application"
	"jobportal/internal/domain/job"
	"jobportal/internal/domain/messaging"
	"jobportal/internal/domain/user"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// viewerID returns the authenticated user id, or uuid.Nil on routes where
// authentication is optional and no token was sent.
func viewerID(c fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

func pathID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}

// mapUsecaseError translates the usecase and domain sentinels into HTTP
// errors. Not-found is deliberately returned for resources the viewer must
// not learn exist.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username already taken", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)

	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, job.ErrCategoryNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Category not found", nil, err)
	case errors.Is(err, job.ErrDuplicateCategory):
		return middleware.NewAppError(fiber.StatusBadRequest, "Category already exists", nil, err)
	case errors.Is(err, job.ErrBookmarkNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Bookmark not found", nil, err)
	case errors.Is(err, job.ErrDuplicateBookmark):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job already bookmarked", nil, err)

	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, application.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "You have already applied for this job", nil, err)

	case errors.Is(err, messaging.ErrConversationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Conversation not found", nil, err)
	case errors.Is(err, messaging.ErrMessageNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Message not found", nil, err)

	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
