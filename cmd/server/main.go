// Package main implements the entry point for the slidecast API server,
// which generates narrated slide lessons with quizzes from a topic and a
// difficulty level.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/slidecast/slidecast-api/internal/api"
	"github.com/slidecast/slidecast-api/internal/config"
	"github.com/slidecast/slidecast-api/internal/platform/elevenlabs"
	"github.com/slidecast/slidecast-api/internal/platform/gemini"
	"github.com/slidecast/slidecast-api/internal/platform/gtranslate"
	"github.com/slidecast/slidecast-api/internal/platform/logger"
	"github.com/slidecast/slidecast-api/internal/platform/pollinations"
	"github.com/slidecast/slidecast-api/internal/service"
	"github.com/slidecast/slidecast-api/internal/tts"
)

// application holds the wired dependencies of the running server.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	lessonHandler *api.LessonHandler
}

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and wires the application components.
// A missing Gemini API key fails here, before the server ever starts.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"premium_tts_configured", cfg.TTS.ElevenLabsAPIKey != "")

	// Generated audio is served from here; create it up front so the first
	// synthesis has somewhere to write.
	if err := os.MkdirAll(cfg.Server.StaticDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create static dir %s: %w", cfg.Server.StaticDir, err)
	}

	generator, err := gemini.NewGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lesson generator: %w", err)
	}

	ttsTimeout := time.Duration(cfg.TTS.RequestTimeoutSeconds) * time.Second
	providers := []tts.Synthesizer{
		elevenlabs.NewClient(
			cfg.TTS.ElevenLabsAPIKey,
			cfg.TTS.ElevenLabsVoiceID,
			cfg.TTS.ElevenLabsModelID,
			ttsTimeout,
		),
		gtranslate.NewClient(cfg.TTS.Language, ttsTimeout),
	}

	speechService := service.NewSpeechService(
		appLogger,
		providers,
		cfg.Server.StaticDir,
		cfg.Server.BaseURL,
	)

	imageBuilder := pollinations.NewURLBuilder(rand.New(rand.NewSource(time.Now().UnixNano())))

	lessonService := service.NewLessonService(
		appLogger,
		generator,
		imageBuilder,
		speechService,
		time.Duration(cfg.TTS.PacingMs)*time.Millisecond,
	)

	return &application{
		config:        cfg,
		logger:        appLogger,
		lessonHandler: api.NewLessonHandler(lessonService, appLogger),
	}, nil
}
