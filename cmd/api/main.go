package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"resolvehub/internal/config"
	"resolvehub/internal/database"
	"resolvehub/internal/middleware"
	"resolvehub/internal/modules/auth"
	"resolvehub/internal/modules/notification"
	"resolvehub/internal/modules/opportunity"
	"resolvehub/internal/modules/profile"
	"resolvehub/internal/modules/verification"
	jwtsvc "resolvehub/internal/pkg/jwt"
	"resolvehub/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	defer hub.Close()
	notificationHandler := notification.NewHandler(hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService)

	verificationService := verification.NewService(
		profileRepo,
		&verification.SimulatedRegistry{Latency: cfg.RegistryLatency},
		&verification.SimulatedClassifier{Latency: cfg.ClassifierLatency, SuccessRate: 0.9},
		hub,
	)
	verificationHandler := verification.NewHandler(verificationService)

	opportunityService := opportunity.NewService(opportunityRepo, profileService, hub)
	opportunityHandler := opportunity.NewHandler(opportunityService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterRoutes(protected)
			opportunityHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)

			providerOnly := protected.Group("/")
			providerOnly.Use(middleware.RequireProviderRole())
			verificationHandler.RegisterRoutes(providerOnly)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
