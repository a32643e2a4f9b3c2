package app

import (
	"fmt"
	"log"
	"strings"

	"jobportal/internal/config"
	"jobportal/internal/delivery/http/handler"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/routes"
	v1 "jobportal/internal/delivery/http/routes/v1"
	"jobportal/internal/pkg/jwt"
	"jobportal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	container, err := NewContainer(cfg, jwtSvc, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(container.DB, container.Cache),
		ws.NewHandler(container.Hub, logger),
		authMw,
		v1.Deps{
			Auth:         container.Auth,
			Jobs:         container.Jobs,
			Bookmarks:    container.Bookmarks,
			Applications: container.Applications,
			Messaging:    container.Messaging,
			Dashboards:   container.Dashboards,
			Admin:        container.Admin,
			Profiles:     container.Profiles,
		},
	)
	registry.Register(f)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
