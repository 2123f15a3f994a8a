// Package gemini implements the generation.LessonGenerator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/slidecast/slidecast-api/internal/config"
	"github.com/slidecast/slidecast-api/internal/domain"
	"github.com/slidecast/slidecast-api/internal/generation"
	"google.golang.org/genai"
)

// modelCaller is the narrow slice of the genai client the generator needs.
// Tests inject a fake; production uses the real client via genaiCaller.
type modelCaller interface {
	generateContent(ctx context.Context, model, prompt string) (*genai.GenerateContentResponse, error)
}

type genaiCaller struct {
	client *genai.Client
}

func (c *genaiCaller) generateContent(
	ctx context.Context,
	model, prompt string,
) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
}

// Generator produces lessons by sending a structured-output prompt to the
// Gemini API and running the schema-validating parse over the response.
// It makes exactly one model call per lesson: a failed or malformed call
// surfaces as an error, never as a retry.
type Generator struct {
	logger  *slog.Logger
	caller  modelCaller
	model   string
	params  generation.PromptParams
	timeout time.Duration
}

// NewGenerator creates a Gemini-backed lesson generator.
//
// Returns generation.ErrInvalidConfig if the API key or model name is
// missing; the API key is a startup-fatal requirement.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		caller: &genaiCaller{client: client},
		model:  cfg.ModelName,
		params: generation.PromptParams{
			SlideCount:        cfg.SlideCount,
			WordsPerSlide:     cfg.WordsPerSlide,
			QuizQuestionCount: cfg.QuizQuestionCount,
		},
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, nil
}

// GenerateLesson builds the prompt, calls the model once and parses the
// response. A response that fails the schema-validating parse is returned
// as a *generation.GenerationError carrying the raw model text.
func (g *Generator) GenerateLesson(
	ctx context.Context,
	topic, level string,
) (*domain.Lesson, error) {
	prompt := generation.BuildPrompt(topic, level, g.params)

	g.logger.InfoContext(ctx, "calling text-generation model",
		"model", g.model,
		"topic", topic,
		"level", level,
		"prompt_length", len(prompt))

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.caller.generateContent(callCtx, g.model, prompt)
	if err != nil {
		g.logger.ErrorContext(ctx, "model call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "model returned unusable response", "error", err)
		return nil, err
	}

	lesson, err := generation.ParseLesson(text)
	if err != nil {
		var genErr *generation.GenerationError
		if errors.As(err, &genErr) {
			g.logger.ErrorContext(ctx, "model response failed schema validation",
				"error", genErr.Message,
				"raw_length", len(genErr.RawPayload))
		}
		return nil, err
	}

	g.logger.InfoContext(ctx, "lesson generated",
		"slide_count", len(lesson.Slides),
		"quiz_count", len(lesson.Quiz))

	return lesson, nil
}

// extractText pulls the concatenated text parts out of the first candidate,
// classifying empty and safety-blocked responses.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: generation stopped by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: response contains no text parts", generation.ErrInvalidResponse)
	}

	return text, nil
}
