package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"taskhive/internal/config"
	"taskhive/internal/database"
	"taskhive/internal/domain"
	"taskhive/internal/middleware"
	"taskhive/internal/modules/project"
	"taskhive/internal/modules/session"
	"taskhive/internal/modules/task"
	"taskhive/internal/modules/user"
	"taskhive/internal/pkg/token"
	"taskhive/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.Task{},
		&domain.TokenRecord{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRecordRepository(db)

	codec := token.NewCodec(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	sessionManager := session.NewManager(
		session.NewBcryptVerifier(userRepo),
		codec,
		tokenRepo,
		session.CookieOptions{
			Path:     cfg.CookiePath,
			Secure:   cfg.CookieSecure,
			SameSite: cfg.CookieSameSite,
		},
		cfg.RefreshTTL,
	)
	sessionHandler := session.NewHandler(sessionManager)

	userHandler := user.NewHandler(user.NewService(userRepo))
	projectHandler := project.NewHandler(project.NewService(projectRepo, userRepo))
	taskHandler := task.NewHandler(task.NewService(taskRepo, projectRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	api := r.Group("/api")
	{
		// public
		sessionHandler.RegisterPublicRoutes(api)
		userHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(codec))
		{
			sessionHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
