package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/slidecast/slidecast-api/internal/tts"
)

// SpeechService turns narration text into a hosted audio asset, trying an
// ordered chain of synthesis providers and keeping the first audio it gets.
// Failures never cross its boundary: a synthesis that fails on every
// provider yields an empty URL, which callers render as a silent slide.
type SpeechService struct {
	logger    *slog.Logger
	providers []tts.Synthesizer
	staticDir string
	baseURL   string
}

// NewSpeechService builds a speech service over the given provider chain.
// Providers are tried in slice order; the last one is expected to be the
// always-available baseline. Audio files are written to staticDir and
// exposed under <baseURL>/static/.
func NewSpeechService(
	logger *slog.Logger,
	providers []tts.Synthesizer,
	staticDir string,
	baseURL string,
) *SpeechService {
	return &SpeechService{
		logger:    logger,
		providers: providers,
		staticDir: staticDir,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// Synthesize produces an audio asset for the text and returns its absolute
// URL, or the empty string when no audio could be produced. Empty or
// whitespace-only text short-circuits: there is nothing to speak, no file is
// created and no provider is called.
func (s *SpeechService) Synthesize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	audio := s.tryProviders(ctx, text)
	if audio == nil {
		s.logger.WarnContext(ctx, "all speech providers failed, continuing without audio",
			"text_length", len(text))
		return ""
	}

	filename := uuid.New().String() + ".mp3"
	path := filepath.Join(s.staticDir, filename)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		s.logger.ErrorContext(ctx, "failed to write audio file",
			"path", path,
			"error", err)
		return ""
	}

	return fmt.Sprintf("%s/static/%s", s.baseURL, filename)
}

func (s *SpeechService) tryProviders(ctx context.Context, text string) []byte {
	for _, provider := range s.providers {
		audio, err := provider.Synthesize(ctx, text)
		if err != nil {
			if errors.Is(err, tts.ErrNotConfigured) {
				s.logger.DebugContext(ctx, "speech provider not configured, falling back",
					"provider", provider.Name())
			} else {
				s.logger.WarnContext(ctx, "speech provider failed, falling back",
					"provider", provider.Name(),
					"error", err)
			}
			continue
		}

		s.logger.DebugContext(ctx, "speech synthesized",
			"provider", provider.Name(),
			"audio_bytes", len(audio))
		return audio
	}
	return nil
}
