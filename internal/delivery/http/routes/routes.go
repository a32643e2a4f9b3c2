package routes

import (
	"jobportal/internal/delivery/http/handler"
	"jobportal/internal/delivery/http/middleware"
	v1 "jobportal/internal/delivery/http/routes/v1"
	"jobportal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	ws     *ws.Handler
	authMw *middleware.AuthMiddleware
	deps   v1.Deps
}

func NewRegistry(health *handler.HealthHandler, wsHandler *ws.Handler, authMw *middleware.AuthMiddleware, deps v1.Deps) *Registry {
	return &Registry{health: health, ws: wsHandler, authMw: authMw, deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.authMw, r.deps)

	if r.ws != nil && r.authMw != nil {
		app.Get("/ws", r.ws.HandleEvents, r.authMw.Middleware())
	}
}
