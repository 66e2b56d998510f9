//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/server"
	"github.com/metawedding/wedding-api/internal/services"
)

// @title           Wedding API
// @version         1.0
// @description     Read and submit marriage propositions on the wedding contract, fund test accounts from the faucet and resolve marriage metadata.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := godotenv.Load(); err != nil {
		// It's often okay if the .env file is missing, especially in production
		// where variables might be set directly in the environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	logger.InitLogger(os.Getenv("STAGE"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := services.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	stack, err := services.NewStack(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer stack.Close()

	if err := stack.Chain.VerifyChain(ctx); err != nil {
		logger.Fatal("RPC node serves the wrong chain", zap.Error(err))
	}

	r := server.NewRouter(stack.Chain, stack.Wedding, stack.Meta, cfg)
	r.Use(gin.Logger())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("deployment", cfg.Deployment.Name))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
