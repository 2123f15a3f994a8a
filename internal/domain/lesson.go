package domain

// Slide is a single narrated slide of a generated lesson. The model fills
// ID, Title, NarrationText and VisualPrompt; ImageURL and AudioURL are added
// during the enrichment pass. An empty AudioURL marks a slide whose speech
// synthesis failed or had nothing to narrate; the slide is still valid,
// just silent.
type Slide struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	NarrationText string `json:"narrationText"`
	VisualPrompt  string `json:"visualPrompt"`
	ImageURL      string `json:"imageUrl"`
	AudioURL      string `json:"audioUrl"`
}

// QuizQuestion is one multiple-choice question of the lesson's final quiz.
type QuizQuestion struct {
	QuestionID         int      `json:"questionId"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

// Lesson is the complete generated output for one topic/level request:
// an ordered slide deck plus a quiz derived from the slide narration.
// A Lesson is built once per request and never mutated after it is
// returned to the caller.
type Lesson struct {
	Slides []Slide        `json:"slides"`
	Quiz   []QuizQuestion `json:"quiz"`
}

// OptionCount is the number of answer options every quiz question must carry.
const OptionCount = 4

// Validate checks the structural invariants of a freshly deserialized lesson:
// at least one slide, slide IDs sequential from 1, question IDs sequential
// from 1, exactly four options per question and a correct-option index that
// addresses one of them. Returns the first violation found.
func (l *Lesson) Validate() error {
	if len(l.Slides) == 0 {
		return ErrNoSlides
	}

	for i := range l.Slides {
		if l.Slides[i].ID != i+1 {
			return ErrSlideIDSequence
		}
	}

	for i, q := range l.Quiz {
		if q.QuestionID != i+1 {
			return ErrQuestionIDSequence
		}
		if q.QuestionText == "" {
			return ErrEmptyQuestionText
		}
		if len(q.Options) != OptionCount {
			return ErrOptionCount
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return ErrCorrectOptionRange
		}
	}

	return nil
}
