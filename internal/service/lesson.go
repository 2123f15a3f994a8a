package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/slidecast/slidecast-api/internal/domain"
	"github.com/slidecast/slidecast-api/internal/generation"
)

// ImageURLBuilder constructs an image-generation URL from a slide's visual
// prompt. It cannot fail.
type ImageURLBuilder interface {
	BuildImageURL(visualPrompt string) string
}

// SpeechSynthesizer converts narration text into a hosted audio URL,
// returning the empty string when synthesis fails or there is nothing to
// speak.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) string
}

// LessonService orchestrates the full pipeline: prompt the model, parse the
// lesson, then enrich each slide in declared order with an image URL and a
// speech-audio URL. Media failures degrade the lesson; only generation and
// parse failures abort it.
type LessonService struct {
	logger    *slog.Logger
	generator generation.LessonGenerator
	images    ImageURLBuilder
	speech    SpeechSynthesizer

	// newPacer builds the per-request limiter that spaces out synthesis
	// calls. One pacer per request, so concurrent requests do not stall
	// each other.
	newPacer func() Pacer
}

// NewLessonService wires the assembler. pacing is the fixed delay applied
// between successive synthesis calls within one request.
func NewLessonService(
	logger *slog.Logger,
	generator generation.LessonGenerator,
	images ImageURLBuilder,
	speech SpeechSynthesizer,
	pacing time.Duration,
) *LessonService {
	return &LessonService{
		logger:    logger,
		generator: generator,
		images:    images,
		speech:    speech,
		newPacer: func() Pacer {
			return NewIntervalPacer(pacing)
		},
	}
}

// GenerateLesson produces a fully enriched lesson for the topic and level.
//
// A generation or parse failure is returned as-is; enrichment never runs on
// content that failed the schema-validating parse. Once a lesson parses,
// the method always succeeds: per-slide media failures leave the slide's
// audio URL empty and the pipeline moving.
func (s *LessonService) GenerateLesson(
	ctx context.Context,
	topic, level string,
) (*domain.Lesson, error) {
	s.logger.InfoContext(ctx, "generating lesson", "topic", topic, "level", level)

	lesson, err := s.generator.GenerateLesson(ctx, topic, level)
	if err != nil {
		return nil, err
	}

	pacer := s.newPacer()
	for i := range lesson.Slides {
		slide := &lesson.Slides[i]

		slide.ImageURL = s.images.BuildImageURL(slide.VisualPrompt)

		if err := pacer.Wait(ctx); err != nil {
			// Request gone; the partially enriched lesson has no reader.
			s.logger.WarnContext(ctx, "enrichment interrupted", "error", err, "slide_id", slide.ID)
			return nil, err
		}
		slide.AudioURL = s.speech.Synthesize(ctx, slide.NarrationText)
	}

	s.logger.InfoContext(ctx, "lesson enriched",
		"slides", len(lesson.Slides),
		"quiz_questions", len(lesson.Quiz))

	return lesson, nil
}
