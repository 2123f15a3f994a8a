package generation

import (
	"strings"
	"testing"
)

func TestBuildPromptEmbedsTopicAndLevel(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("TCP/IP", "beginner", DefaultPromptParams())

	if prompt == "" {
		t.Fatal("Expected non-empty prompt")
	}
	if !strings.Contains(prompt, "TCP/IP") {
		t.Error("Expected prompt to contain the topic verbatim")
	}
	if !strings.Contains(prompt, "beginner") {
		t.Error("Expected prompt to contain the level verbatim")
	}
}

func TestBuildPromptEnumeratesSchemaFields(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("photosynthesis", "intermediate", DefaultPromptParams())

	for _, field := range []string{
		"slides", "id", "title", "narrationText", "visualPrompt",
		"quiz", "questionId", "questionText", "options", "correctOptionIndex",
	} {
		if !strings.Contains(prompt, field) {
			t.Errorf("Expected prompt to name schema field %q", field)
		}
	}
}

func TestBuildPromptCarriesCardinalities(t *testing.T) {
	t.Parallel()

	params := PromptParams{SlideCount: 6, WordsPerSlide: 80, QuizQuestionCount: 12}
	prompt := BuildPrompt("black holes", "advanced", params)

	if !strings.Contains(prompt, "exactly 6 slides") {
		t.Error("Expected prompt to request the configured slide count")
	}
	if !strings.Contains(prompt, "at most 80 words") {
		t.Error("Expected prompt to request the configured word budget")
	}
	if !strings.Contains(prompt, "exactly 12 multiple-choice questions") {
		t.Error("Expected prompt to request the configured quiz size")
	}
}

func TestBuildPromptForbidsNonJSONOutput(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt("anything", "any", DefaultPromptParams())

	if !strings.Contains(prompt, "ONLY a valid JSON") {
		t.Error("Expected prompt to demand a JSON-only response")
	}
}
