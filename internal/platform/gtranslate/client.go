// Package gtranslate implements the baseline speech-synthesis provider over
// the unauthenticated Google Translate text-to-speech endpoint. It needs no
// credential, which makes it the always-available end of the fallback chain.
package gtranslate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://translate.google.com"

// Client fetches MP3 audio from the Google Translate TTS endpoint. It
// implements tts.Synthesizer.
type Client struct {
	language   string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client speaking the given language tag (e.g. "pt").
func NewClient(language string, timeout time.Duration) *Client {
	return &Client{
		language: language,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Name() string {
	return "google-translate"
}

// Synthesize requests spoken audio for the text and returns the MP3 bytes.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", c.language)
	q.Set("q", text)

	endpoint := fmt.Sprintf("%s/translate_tts?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google translate tts request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google translate tts returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tts audio stream: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("google translate tts returned an empty audio stream")
	}

	return audio, nil
}
