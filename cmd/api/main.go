package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NutriScan_Backend/internal/chatbot"
	"NutriScan_Backend/internal/config"
	"NutriScan_Backend/internal/database"
	"NutriScan_Backend/internal/geminiservice"
	"NutriScan_Backend/internal/nutrition"
	"NutriScan_Backend/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsLocal() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogger(cfg)

	ctx := context.Background()

	dbService, err := database.NewService(ctx, cfg.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}
	defer dbService.Close() // Ensure the database connection is closed on exit.

	fetcher := nutrition.NewFetcher(dbService.Queries(), nutrition.WithLocation(cfg.Location))

	// Without a usable gateway every AI request answers with its fallback.
	var generator chatbot.TextGenerator
	aiModel := cfg.GeminiModel
	gemini, err := geminiservice.NewClient(ctx, geminiservice.Config{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		Timeout:    cfg.GeminiTimeout,
		MaxRetries: cfg.GeminiMaxRetries,
	})
	if err != nil {
		if errors.Is(err, geminiservice.ErrNotConfigured) {
			log.Warn().Msg("GEMINI_API_KEY is not set, AI responses are disabled")
		} else {
			log.Error().Err(err).Msg("Failed to initialize Gemini client, AI responses are disabled")
		}
	}

	// Every retry must fit inside the pipeline deadline and the write timeout.
	var generateTimeout time.Duration
	if gemini != nil {
		generator = gemini
		aiModel = gemini.Model()
		generateTimeout = gemini.Budget() + 5*time.Second
	}

	svc := chatbot.NewService(fetcher, generator, chatbot.WithGenerateTimeout(generateTimeout))

	apiServer, err := server.NewServer(cfg, server.Deps{
		DB:              dbService,
		Chat:            chatbot.NewHandler(svc),
		AIConfigured:    generator != nil,
		AIModel:         aiModel,
		GenerateTimeout: generateTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Could not build HTTP server")
	}

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(apiServer, done)

	log.Info().Str("addr", apiServer.Addr).Str("env", cfg.AppEnv).Msg("NutriScan API listening")
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server error")
	}

	// Wait for the graceful shutdown to complete
	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
