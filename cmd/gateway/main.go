package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrirent/internal/config"
	"agrirent/internal/gateway"
	"agrirent/internal/logger"
	"agrirent/internal/session"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	log := logger.New()
	logger.SetDefault(log)

	cfg := config.Load()

	slog.Info("Starting gateway",
		"port", cfg.GatewayPort,
		"backend", cfg.APIBaseURL,
		"redis_addr", cfg.RedisAddr,
	)

	// Initialize Redis session storage
	redisClient := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	sessions := session.NewManager(redisClient, cfg.SessionMaxAge)

	router := gateway.SetupRouter(cfg, sessions)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.GatewayPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		slog.Info("Gateway listening", "port", cfg.GatewayPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down gateway")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Gateway stopped")
}
