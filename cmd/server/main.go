package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/rikdas/dobhashi/internal/adapters/http"
	"github.com/rikdas/dobhashi/internal/app"
	"github.com/rikdas/dobhashi/internal/app/orch"
	"github.com/rikdas/dobhashi/internal/config"
	"github.com/rikdas/dobhashi/internal/translate"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
	}

	mappings, err := translate.LoadMappings(cfg.MappingsPath)
	if err != nil {
		// Chat still works, everything just goes through the backends.
		log.Error().Err(err).Msg("failed to load translation mappings")
	}

	gateway := translate.NewGateway(
		mappings,
		translate.NewLLMBackend(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel),
		translate.NewGoogleBackend(cfg.TranslateEndpoint),
	).WithTimeout(cfg.BackendTimeout)

	registry := app.NewRegistry()
	rooms := app.NewRooms()
	orchestrator := orch.New(registry, rooms, gateway)

	r := router.SetupRouter(ctx, cfg, orchestrator)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Dobhashi server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
