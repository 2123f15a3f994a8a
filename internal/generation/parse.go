package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/slidecast/slidecast-api/internal/domain"
)

const (
	openingFence = "```json"
	closingFence = "```"
)

// CleanModelResponse strips the markdown code fence a model sometimes wraps
// its JSON in, despite being told not to. Only the exact leading "```json"
// and trailing "```" pair is recognized; when both markers are present at the
// extremities they are removed, otherwise the text is returned as-is (modulo
// surrounding whitespace). This is a best-effort sanitizer, not a markdown
// parser: prose-wrapped JSON or a lone fence marker passes through untouched
// and fails the parse downstream.
func CleanModelResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, openingFence) && strings.HasSuffix(s, closingFence) &&
		len(s) >= len(openingFence)+len(closingFence) {
		s = s[len(openingFence) : len(s)-len(closingFence)]
		s = strings.TrimSpace(s)
	}
	return s
}

// ParseLesson deserializes raw model output into a validated lesson. Any
// failure (malformed JSON or a structural invariant violation) is returned
// as a *GenerationError carrying the original raw text, never the cleaned
// one, so the diagnosis sees exactly what the model produced.
func ParseLesson(raw string) (*domain.Lesson, error) {
	cleaned := CleanModelResponse(raw)

	var lesson domain.Lesson
	if err := json.Unmarshal([]byte(cleaned), &lesson); err != nil {
		return nil, NewGenerationError(
			fmt.Sprintf("failed to parse model response as JSON: %v", err),
			raw,
			fmt.Errorf("%w: %v", ErrInvalidResponse, err),
		)
	}

	if err := lesson.Validate(); err != nil {
		return nil, NewGenerationError(
			fmt.Sprintf("model response violates lesson schema: %v", err),
			raw,
			fmt.Errorf("%w: %v", ErrInvalidResponse, err),
		)
	}

	return &lesson, nil
}
