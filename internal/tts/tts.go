// Package tts defines the text-to-speech capability shared by all synthesis
// providers. Providers are interchangeable: the speech service tries them in
// a configured order and keeps the first audio it gets.
package tts

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a provider whose credential was not
// supplied. Callers treat it exactly like any other provider failure and
// fall through to the next provider in the chain.
var ErrNotConfigured = errors.New("tts provider is not configured")

// Synthesizer converts narration text to audio bytes.
type Synthesizer interface {
	// Synthesize generates MP3 audio from the given text. Any non-success
	// provider response or transport error is reported as an error.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// Name identifies the provider in logs.
	Name() string
}
