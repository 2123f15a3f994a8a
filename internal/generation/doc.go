// Package generation defines the lesson-generation boundary: the prompt sent
// to the language model, the defensive parse of its response into domain
// types, and the LessonGenerator interface implemented by concrete model
// backends (see internal/platform/gemini).
package generation
