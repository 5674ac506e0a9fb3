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

	"github.com/aurajewels/storefront-api/apps/api/server"
	"github.com/aurajewels/storefront-api/libs/go/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Aura Jewels Storefront API
// @version         1.0
// @description     Lucky discount eligibility, claims and redemption for the Aura Jewels storefront.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token.

func main() {
	server.InitializeHandlers()
	defer server.Shutdown()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shut down", zap.Error(err))
	}
}
