package handler

import (
	"context"
	"time"

	"jobportal/internal/database"
	"jobportal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    database.DB
	cache Pinger
}

func NewHealthHandler(db database.DB, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "ok"
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		// the cache is optional, a miss only degrades features
		cacheStatus = "down"
	}

	data := map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	}
	if status != fiber.StatusOK {
		return response.Error(c, status, "unhealthy", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
