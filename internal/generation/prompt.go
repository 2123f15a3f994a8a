package generation

import (
	"strings"
	"text/template"
)

// PromptParams fixes the cardinalities the prompt asks the model for. The
// model is instructed, not policed: returned counts are validated only for
// structural coherence, not against these numbers.
type PromptParams struct {
	SlideCount        int
	WordsPerSlide     int
	QuizQuestionCount int
}

// DefaultPromptParams returns the standard generation policy: a five slide
// deck of roughly forty spoken words each, closed by a ten question quiz.
func DefaultPromptParams() PromptParams {
	return PromptParams{
		SlideCount:        5,
		WordsPerSlide:     40,
		QuizQuestionCount: 10,
	}
}

const promptText = `You are a university professor and an expert in pedagogy, acting as a generative tutor.
Create a lesson in SLIDES about "{{.Topic}}" for a student at the "{{.Level}}" level.

Your task is to generate a slide deck and a final quiz:

1. Slides:
   - Generate exactly {{.SlideCount}} slides.
   - Each slide has a short title and a narration text of at most {{.WordsPerSlide}} words, written to be read aloud.
   - Each slide has a visual prompt: an English-language description for generating an illustrative image.

2. Quiz:
   - Generate exactly {{.QuizQuestionCount}} multiple-choice questions based EXCLUSIVELY on the narration texts of the slides you just created.
   - Each question has exactly 4 options and one correct option.

MANDATORY OUTPUT FORMAT:
Respond with ONLY a valid JSON document. Do not add any explanation, prose or markdown fencing around it.
The JSON structure must be exactly:
{
  "slides": [
    {
      "id": 1,
      "title": "Slide title",
      "narrationText": "Short, direct explanation to be read aloud.",
      "visualPrompt": "English visual prompt for image generation"
    }
  ],
  "quiz": [
    {
      "questionId": 1,
      "questionText": "Your question here...",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctOptionIndex": 0
    }
  ]
}`

var promptTemplate = template.Must(template.New("lesson").Parse(promptText))

// BuildPrompt renders the lesson-generation prompt for the given topic and
// level. It is total: any topic/level pair produces a prompt, and malformed
// input is the model's problem, not ours.
func BuildPrompt(topic, level string, params PromptParams) string {
	data := struct {
		Topic             string
		Level             string
		SlideCount        int
		WordsPerSlide     int
		QuizQuestionCount int
	}{
		Topic:             topic,
		Level:             level,
		SlideCount:        params.SlideCount,
		WordsPerSlide:     params.WordsPerSlide,
		QuizQuestionCount: params.QuizQuestionCount,
	}

	var b strings.Builder
	// The template is parsed at init and the data struct is fixed, so
	// execution cannot fail at runtime.
	if err := promptTemplate.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}
