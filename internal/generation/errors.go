package generation

import "errors"

// Common errors returned by the generation package.
var (
	// ErrGenerationFailed is returned when lesson generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate lesson")

	// ErrInvalidResponse is returned when the model response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// GenerationError reports a model response that failed the schema-validating
// parse. RawPayload preserves the offending text exactly as the model
// returned it, before any fence stripping, so the failure can be diagnosed.
type GenerationError struct {
	Message    string
	RawPayload string
	Err        error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError builds a GenerationError wrapping cause, keeping the
// original raw model output for diagnosis.
func NewGenerationError(message, rawPayload string, cause error) *GenerationError {
	return &GenerationError{
		Message:    message,
		RawPayload: rawPayload,
		Err:        cause,
	}
}
