package app

import (
	"context"
	"log"
	"time"

	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/database/migration"
	dbpostgres "jobportal/internal/database/postgres"
	"jobportal/internal/infrastructure/cache"
	"jobportal/internal/notify"
	"jobportal/internal/pkg/jwt"
	repo "jobportal/internal/repository/postgres"
	"jobportal/internal/usecase"
	"jobportal/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Auth         usecase.AuthUsecase
	Jobs         usecase.JobUsecase
	Bookmarks    usecase.BookmarkUsecase
	Applications usecase.ApplicationUsecase
	Messaging    usecase.MessagingUsecase
	Dashboards   usecase.DashboardUsecase
	Admin        usecase.AdminUsecase
	Profiles     usecase.ProfileUsecase
}

func NewContainer(cfg config.Config, jwtSvc jwt.Service, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if dir := cfg.Database.MigrationsDir; dir != "" {
		runner := migration.Runner{Dir: dir}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)
	go hub.Run()

	notifier := notify.Multi{
		notify.NewEmailSender(nil, logger),
		notify.NewWSSender(hub),
	}

	users := repo.NewUserRepository(db)
	jobs := repo.NewJobRepository(db)
	applications := repo.NewApplicationRepository(db)
	conversations := repo.NewMessagingRepository(db)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,

		Auth:         usecase.NewAuthUsecase(users, jwtSvc, redisCache),
		Jobs:         usecase.NewJobUsecase(jobs, jobs, users, redisCache),
		Bookmarks:    usecase.NewBookmarkUsecase(jobs, jobs, users),
		Applications: usecase.NewApplicationUsecase(applications, jobs, users, notifier),
		Messaging:    usecase.NewMessagingUsecase(conversations, users, notifier),
		Dashboards:   usecase.NewDashboardUsecase(users, jobs, jobs, jobs, applications, conversations),
		Admin:        usecase.NewAdminUsecase(users, jobs, applications),
		Profiles:     usecase.NewProfileUsecase(users),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
