package domain

import "errors"

// Validation errors for Lesson and its parts.
var (
	ErrNoSlides           = errors.New("lesson must contain at least one slide")
	ErrSlideIDSequence    = errors.New("slide IDs must be sequential starting at 1")
	ErrQuestionIDSequence = errors.New("question IDs must be sequential starting at 1")
	ErrEmptyQuestionText  = errors.New("question text cannot be empty")
	ErrOptionCount        = errors.New("quiz question must have exactly 4 options")
	ErrCorrectOptionRange = errors.New("correct option index must address one of the options")
)
