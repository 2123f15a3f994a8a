package generation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/slidecast/slidecast-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLessonJSON = `{
  "slides": [
    {"id": 1, "title": "Intro", "narrationText": "Hello.", "visualPrompt": "a sunrise"},
    {"id": 2, "title": "More", "narrationText": "Details.", "visualPrompt": "a diagram"}
  ],
  "quiz": [
    {"questionId": 1, "questionText": "Q?", "options": ["A", "B", "C", "D"], "correctOptionIndex": 2}
  ]
}`

func TestCleanModelResponseStripsFencePair(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"slides\": []}\n```"
	assert.Equal(t, `{"slides": []}`, CleanModelResponse(raw))
}

func TestCleanModelResponseLeavesUnfencedTextAlone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"slides": []}`, CleanModelResponse("  {\"slides\": []}\n"))
}

func TestCleanModelResponseRequiresBothMarkers(t *testing.T) {
	t.Parallel()

	// A lone opening or closing fence is not stripped; partial fences are
	// left for the parse to reject.
	leadingOnly := "```json\n{\"slides\": []}"
	assert.Equal(t, leadingOnly, CleanModelResponse(leadingOnly))

	trailingOnly := "{\"slides\": []}\n```"
	assert.Equal(t, trailingOnly, CleanModelResponse(trailingOnly))
}

func TestParseLessonValidFencedResponse(t *testing.T) {
	t.Parallel()

	lesson, err := ParseLesson("```json\n" + validLessonJSON + "\n```")
	require.NoError(t, err)
	require.Len(t, lesson.Slides, 2)
	assert.Equal(t, "Intro", lesson.Slides[0].Title)
	assert.Equal(t, 2, lesson.Quiz[0].CorrectOptionIndex)
}

func TestParseLessonAcceptsEmptyNarration(t *testing.T) {
	t.Parallel()

	// A slide the model left without narration still parses; it becomes a
	// silent slide during enrichment rather than failing the request.
	raw := `{"slides": [
		{"id": 1, "title": "Intro", "narrationText": "", "visualPrompt": "a sunrise"}
	], "quiz": []}`
	lesson, err := ParseLesson(raw)
	require.NoError(t, err)
	require.Len(t, lesson.Slides, 1)
	assert.Empty(t, lesson.Slides[0].NarrationText)
}

func TestParseLessonRoundTrip(t *testing.T) {
	t.Parallel()

	original, err := ParseLesson(validLessonJSON)
	require.NoError(t, err)

	serialized, err := json.Marshal(original)
	require.NoError(t, err)

	reparsed, err := ParseLesson(string(serialized))
	require.NoError(t, err)
	assert.Equal(t, original, reparsed)
}

func TestParseLessonProseWrappedJSONFails(t *testing.T) {
	t.Parallel()

	raw := "Here is your lesson:\n" + validLessonJSON
	lesson, err := ParseLesson(raw)
	require.Error(t, err)
	assert.Nil(t, lesson)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, raw, genErr.RawPayload, "raw payload must be the unmodified original text")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseLessonMalformedJSONPreservesRaw(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"slides\": [broken\n```"
	_, err := ParseLesson(raw)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, raw, genErr.RawPayload)
	assert.NotEmpty(t, genErr.Message)
}

func TestParseLessonSchemaViolationFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "no slides",
			payload: `{"slides": [], "quiz": []}`,
			wantMsg: domain.ErrNoSlides.Error(),
		},
		{
			name: "non-sequential slide IDs",
			payload: `{"slides": [
				{"id": 2, "title": "T", "narrationText": "N", "visualPrompt": "V"}
			], "quiz": []}`,
			wantMsg: domain.ErrSlideIDSequence.Error(),
		},
		{
			name: "wrong option count",
			payload: `{"slides": [
				{"id": 1, "title": "T", "narrationText": "N", "visualPrompt": "V"}
			], "quiz": [
				{"questionId": 1, "questionText": "Q", "options": ["A", "B"], "correctOptionIndex": 0}
			]}`,
			wantMsg: domain.ErrOptionCount.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseLesson(tt.payload)
			require.Error(t, err)

			var genErr *GenerationError
			require.True(t, errors.As(err, &genErr))
			assert.Equal(t, tt.payload, genErr.RawPayload)
			assert.Contains(t, genErr.Message, tt.wantMsg)
		})
	}
}
