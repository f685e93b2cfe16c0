package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/udityamerit/portfolio-assistant/internal/adapters/http"
	"github.com/udityamerit/portfolio-assistant/internal/adapters/llm"
	"github.com/udityamerit/portfolio-assistant/internal/config"
	"github.com/udityamerit/portfolio-assistant/internal/observability"
)

func main() {
	config.LoadDotEnv()
	log := observability.Logger()

	cfg, err := config.LoadRelay()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	generator, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.ModelName)
	if err != nil {
		log.Error("failed to initialize gemini client", "error", err)
		os.Exit(1)
	}

	router := httpadapter.NewServer(generator)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("relay listening", "port", cfg.Port, "model", cfg.ModelName)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	log.Info("relay stopped")
}
