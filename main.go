package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/chirpy/backend/internal/config"
	"github.com/chirpy/backend/internal/db"
	"github.com/chirpy/backend/internal/handler"
	"github.com/chirpy/backend/internal/service"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	pg, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pg.Close()

	if err := pg.Migrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	authService, err := service.NewAuthService(pg, pg, cfg.API)
	if err != nil {
		log.Fatalf("failed to create auth service: %v", err)
	}
	userService := service.NewUserService(pg, cfg.API.Platform)
	chirpService := service.NewChirpService(pg)

	metrics := handler.NewMetrics()
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, metrics)
	chirpHandler := handler.NewChirpHandler(chirpService)
	polkaHandler := handler.NewPolkaWebhookHandler(userService, cfg.API.PolkaKey)

	router := gin.Default()

	router.Group("/app", metrics.CountHits()).Static("/", "./app")

	api := router.Group("/api")
	{
		api.GET("/healthz", handler.Healthz)

		api.POST("/users", userHandler.CreateUser)
		api.POST("/login", authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)
		api.POST("/revoke", authHandler.Revoke)

		api.GET("/chirps", chirpHandler.GetChirps)
		api.GET("/chirps/:chirpID", chirpHandler.GetChirp)

		api.POST("/polka/webhooks", polkaHandler.Handle)

		protected := api.Group("", handler.AuthMiddleware(authService))
		{
			protected.PUT("/users", userHandler.UpdateUser)
			protected.POST("/chirps", chirpHandler.CreateChirp)
			protected.DELETE("/chirps/:chirpID", chirpHandler.DeleteChirp)
		}
	}

	admin := router.Group("/admin")
	{
		admin.GET("/metrics", metrics.AdminMetrics)
		admin.POST("/reset", userHandler.Reset)
	}

	if err := router.Run(":" + cfg.API.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
