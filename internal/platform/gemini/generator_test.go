package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/slidecast/slidecast-api/internal/config"
	"github.com/slidecast/slidecast-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeCaller struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
	model  string
}

func (f *fakeCaller) generateContent(
	_ context.Context,
	model, prompt string,
) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.prompt = prompt
	return f.resp, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testGenerator(caller modelCaller) *Generator {
	return &Generator{
		logger:  testLogger(),
		caller:  caller,
		model:   "gemini-2.0-flash",
		params:  generation.DefaultPromptParams(),
		timeout: 5 * time.Second,
	}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

const lessonJSON = `{
  "slides": [
    {"id": 1, "title": "Intro", "narrationText": "Hi.", "visualPrompt": "a wave"}
  ],
  "quiz": [
    {"questionId": 1, "questionText": "Q?", "options": ["A", "B", "C", "D"], "correctOptionIndex": 1}
  ]
}`

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(context.Background(), testLogger(), config.LLMConfig{
		ModelName: "gemini-2.0-flash",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewGeneratorRequiresModelName(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(context.Background(), testLogger(), config.LLMConfig{
		GeminiAPIKey: "key",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestGenerateLessonParsesFencedResponse(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{resp: textResponse("```json\n" + lessonJSON + "\n```")}
	g := testGenerator(caller)

	lesson, err := g.GenerateLesson(context.Background(), "TCP/IP", "beginner")
	require.NoError(t, err)
	require.Len(t, lesson.Slides, 1)
	assert.Equal(t, "Intro", lesson.Slides[0].Title)

	// The prompt sent to the model embeds the request verbatim.
	assert.Contains(t, caller.prompt, "TCP/IP")
	assert.Contains(t, caller.prompt, "beginner")
	assert.Equal(t, "gemini-2.0-flash", caller.model)
}

func TestGenerateLessonModelErrorWrapsGenerationFailed(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{err: errors.New("connection refused")}
	g := testGenerator(caller)

	_, err := g.GenerateLesson(context.Background(), "topic", "level")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestGenerateLessonProseResponseYieldsGenerationError(t *testing.T) {
	t.Parallel()

	raw := "Sure! Here is your lesson:\n" + lessonJSON
	caller := &fakeCaller{resp: textResponse(raw)}
	g := testGenerator(caller)

	_, err := g.GenerateLesson(context.Background(), "topic", "level")
	require.Error(t, err)

	var genErr *generation.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, raw, genErr.RawPayload)
}

func TestGenerateLessonSafetyBlock(t *testing.T) {
	t.Parallel()

	caller := &fakeCaller{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{FinishReason: genai.FinishReasonSafety},
		},
	}}
	g := testGenerator(caller)

	_, err := g.GenerateLesson(context.Background(), "topic", "level")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
}

func TestGenerateLessonEmptyResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{name: "nil response", resp: nil},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
		},
		{
			name: "no text parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{}}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := testGenerator(&fakeCaller{resp: tt.resp})
			_, err := g.GenerateLesson(context.Background(), "topic", "level")
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
		})
	}
}
