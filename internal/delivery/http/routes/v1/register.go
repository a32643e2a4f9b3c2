package v1

import (
	"jobportal/internal/delivery/http/handler"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the usecases the version group mounts. Construction happens in
// the app container so the wiring stays in one place.
type Deps struct {
	Auth         usecase.AuthUsecase
	Jobs         usecase.JobUsecase
	Bookmarks    usecase.BookmarkUsecase
	Applications usecase.ApplicationUsecase
	Messaging    usecase.MessagingUsecase
	Dashboards   usecase.DashboardUsecase
	Admin        usecase.AdminUsecase
	Profiles     usecase.ProfileUsecase
}

func Register(r fiber.Router, authMw *middleware.AuthMiddleware, deps Deps) {
	if r == nil || authMw == nil {
		return
	}

	authHandler := handler.NewAuthHandler(deps.Auth)
	jobHandler := handler.NewJobHandler(deps.Jobs)
	bookmarkHandler := handler.NewBookmarkHandler(deps.Bookmarks)
	applicationHandler := handler.NewApplicationHandler(deps.Applications)
	messagingHandler := handler.NewMessagingHandler(deps.Messaging)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboards)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	profileHandler := handler.NewProfileHandler(deps.Profiles)

	authHandler.RegisterRoutes(r.Group("/auth"))

	// catalog reads are public; a token, when present, identifies job owners
	public := r.Group("", authMw.Optional())
	jobHandler.RegisterPublicRoutes(public.Group("/jobs"))
	jobHandler.RegisterCategoryRoutes(public.Group("/categories"))
	public.Get("/search-suggestions", jobHandler.Suggestions)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	jobHandler.RegisterProtectedRoutes(protected.Group("/jobs"))
	jobHandler.RegisterProtectedCategoryRoutes(protected.Group("/categories"))
	applicationHandler.RegisterJobRoutes(protected.Group("/jobs"))
	bookmarkHandler.RegisterRoutes(protected.Group("/bookmarks"))
	applicationHandler.RegisterRoutes(protected.Group("/applications"))
	messagingHandler.RegisterRoutes(protected.Group("/conversations"))
	messagingHandler.RegisterMessageRoutes(protected.Group("/messages"))
	dashboardHandler.RegisterRoutes(protected.Group("/dashboard"))
	adminHandler.RegisterRoutes(protected.Group("/admin"))
	profileHandler.RegisterRoutes(protected.Group("/profile"))
}
