package generation

import (
	"context"

	"github.com/slidecast/slidecast-api/internal/domain"
)

// LessonGenerator defines the interface for generating a lesson from a topic
// and difficulty level. It is the boundary between the application core and
// the external language model service.
type LessonGenerator interface {
	// GenerateLesson produces a lesson for the given topic and level.
	//
	// The returned lesson has passed the schema-validating parse but has not
	// been enriched: ImageURL and AudioURL on each slide are still empty.
	// A model response that fails the parse is reported as a
	// *GenerationError; other failures are reported wrapped in the package
	// sentinel errors (see errors.go).
	GenerateLesson(ctx context.Context, topic, level string) (*domain.Lesson, error)
}
