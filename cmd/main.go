package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Gauravsingh640/Quickart/config"
	"github.com/Gauravsingh640/Quickart/db"
	"github.com/Gauravsingh640/Quickart/internal/auth/handler"
	repo "github.com/Gauravsingh640/Quickart/internal/auth/repository/mongo"
	"github.com/Gauravsingh640/Quickart/internal/auth/service"
	"github.com/Gauravsingh640/Quickart/internal/mailer"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx := context.Background()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(shutdownCtx); err != nil {
			logger.Error("mongodb disconnect failed", zap.Error(err))
		}
	}()

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logger.Fatal("index creation failed", zap.Error(err))
	}

	userRepo := repo.NewUserRepository(database)
	sessionRepo := repo.NewSessionRepository(database)
	tokenService := service.NewTokenService(cfg.TokenSecret,
		cfg.VerificationExpiryMin, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	sender := mailer.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername,
		cfg.SMTPPassword, cfg.SMTPFrom, cfg.BaseURL, cfg.VerificationExpiryMin, logger)
	userService := service.NewUserService(userRepo, sessionRepo, tokenService, sender)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	app.Use(requestLogger(logger))
	handler.RegisterRoutes(app, authHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()))
		return err
	}
}
