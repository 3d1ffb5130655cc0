package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	webAdapter "invoicegen/internal/adapters/web"
	"invoicegen/internal/app"
	"invoicegen/internal/config"
	"invoicegen/internal/logger"
	"invoicegen/internal/pdf"
	"invoicegen/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		// Bad LOG_* values fall back to the defaults rather than aborting.
		log.Warn().Err(err).Msg("invalid logging configuration, using defaults")
		_ = logger.Setup(logger.DefaultConfig())
	}

	repo, err := store.OpenBolt(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("database open failed")
	}
	defer repo.Close()

	svc := app.NewService(repo, nil)
	renderer := pdf.NewRenderer(pdf.Options{
		ChromiumPath: cfg.ChromiumPath,
		Timeout:      cfg.PDFTimeout,
	})

	handler := webAdapter.NewHandler(svc, renderer, cfg.AllowedOrigins, cfg.JWTSecret)

	log.Info().Str("port", cfg.Port).Str("db", cfg.DatabasePath).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
