package mocks

import (
	"context"
	"sync"

	"github.com/slidecast/slidecast-api/internal/domain"
)

// MockLessonGenerator implements generation.LessonGenerator for testing.
type MockLessonGenerator struct {
	// GenerateLessonFn allows test cases to mock the GenerateLesson behavior
	GenerateLessonFn func(ctx context.Context, topic, level string) (*domain.Lesson, error)

	// Default response values used when GenerateLessonFn is nil
	Lesson *domain.Lesson
	Err    error

	// Call tracking for verification
	GenerateLessonCalls struct {
		mu     sync.Mutex
		Count  int
		Topics []string
		Levels []string
	}
}

// GenerateLesson implements the generation.LessonGenerator interface.
func (m *MockLessonGenerator) GenerateLesson(
	ctx context.Context,
	topic, level string,
) (*domain.Lesson, error) {
	m.GenerateLessonCalls.mu.Lock()
	m.GenerateLessonCalls.Count++
	m.GenerateLessonCalls.Topics = append(m.GenerateLessonCalls.Topics, topic)
	m.GenerateLessonCalls.Levels = append(m.GenerateLessonCalls.Levels, level)
	m.GenerateLessonCalls.mu.Unlock()

	if m.GenerateLessonFn != nil {
		return m.GenerateLessonFn(ctx, topic, level)
	}

	return m.Lesson, m.Err
}
