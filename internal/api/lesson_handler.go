package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/slidecast/slidecast-api/internal/api/shared"
	"github.com/slidecast/slidecast-api/internal/domain"
	"github.com/slidecast/slidecast-api/internal/generation"
)

// GenerateLearningRequest is the request body for lesson generation.
// Both fields are required; absence is a client error.
type GenerateLearningRequest struct {
	Topic string `json:"topic" validate:"required,min=1"`
	Level string `json:"level" validate:"required,min=1"`
}

// LessonGenerationService is the slice of the lesson service the handler
// depends on.
type LessonGenerationService interface {
	GenerateLesson(ctx context.Context, topic, level string) (*domain.Lesson, error)
}

// LessonHandler handles lesson-generation HTTP requests.
type LessonHandler struct {
	lessons   LessonGenerationService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessons LessonGenerationService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{
		lessons:   lessons,
		validator: validator.New(),
		logger:    logger,
	}
}

// GenerateLearning handles POST /api/generate-learning requests.
//
// Responses:
//   - 200 with the enriched lesson JSON
//   - 400 when topic or level is missing; the pipeline is never invoked
//   - 500 with {error, raw} when the model output failed the parse
//   - 500 with {error} on any other failure
func (h *LessonHandler) GenerateLearning(w http.ResponseWriter, r *http.Request) {
	var req GenerateLearningRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "topic and level are required")
		return
	}

	lesson, err := h.lessons.GenerateLesson(r.Context(), req.Topic, req.Level)
	if err != nil {
		var genErr *generation.GenerationError
		if errors.As(err, &genErr) {
			shared.RespondWithGenerationError(w, r, genErr.Message, genErr.RawPayload)
			return
		}

		h.logger.ErrorContext(r.Context(), "lesson generation failed",
			"error", err,
			"topic", req.Topic,
			"level", req.Level)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}
