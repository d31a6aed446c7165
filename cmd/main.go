package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/pablozoani/gl-exercise/config"
	"github.com/pablozoani/gl-exercise/db"
	"github.com/pablozoani/gl-exercise/internal/auth/handler"
	repo "github.com/pablozoani/gl-exercise/internal/auth/repository/postgres"
	"github.com/pablozoani/gl-exercise/internal/auth/service"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := repo.NewPostgresUserRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpirySeconds)
	userService := service.NewUserService(userRepo, tokenService, cfg.LoginUpdateDelay)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, tokenService)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		_ = app.Shutdown()
	}()

	slog.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
