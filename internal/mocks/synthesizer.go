package mocks

import (
	"context"
	"sync"
)

// MockSynthesizer implements tts.Synthesizer for testing.
type MockSynthesizer struct {
	// SynthesizeFn allows test cases to mock the Synthesize behavior
	SynthesizeFn func(ctx context.Context, text string) ([]byte, error)

	// Default response values used when SynthesizeFn is nil
	Audio []byte
	Err   error

	// ProviderName is returned by Name; defaults to "mock"
	ProviderName string

	// Call tracking for verification
	SynthesizeCalls struct {
		mu    sync.Mutex
		Count int
		Texts []string
	}
}

// Synthesize implements the tts.Synthesizer interface.
func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.SynthesizeCalls.mu.Lock()
	m.SynthesizeCalls.Count++
	m.SynthesizeCalls.Texts = append(m.SynthesizeCalls.Texts, text)
	m.SynthesizeCalls.mu.Unlock()

	if m.SynthesizeFn != nil {
		return m.SynthesizeFn(ctx, text)
	}

	return m.Audio, m.Err
}

// Name implements the tts.Synthesizer interface.
func (m *MockSynthesizer) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// CallCount returns how many times Synthesize was invoked.
func (m *MockSynthesizer) CallCount() int {
	m.SynthesizeCalls.mu.Lock()
	defer m.SynthesizeCalls.mu.Unlock()
	return m.SynthesizeCalls.Count
}
