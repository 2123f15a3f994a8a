// Package pollinations builds image-generation URLs for the pollinations.ai
// service. No request is made here: the URL is handed to the client, which
// fetches the image itself.
package pollinations

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

const (
	baseURL     = "https://image.pollinations.ai/prompt"
	imageWidth  = 1024
	imageHeight = 576
	seedRange   = 100
)

// URLBuilder constructs pollinations.ai image URLs from visual prompts.
// Each URL carries a pseudo-random seed in [0, 100) so repeated requests
// for the same prompt still vary visually.
type URLBuilder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewURLBuilder creates a builder seeded from rng. Passing nil uses the
// shared default source.
func NewURLBuilder(rng *rand.Rand) *URLBuilder {
	return &URLBuilder{rng: rng}
}

// BuildImageURL produces the image URL for a slide's visual prompt. Spaces
// are replaced by %20, the only encoding the image host requires, and the
// standard width/height/nologo parameters are appended. The call never
// fails; a malformed prompt simply yields a URL the image service may
// reject later.
func (b *URLBuilder) BuildImageURL(visualPrompt string) string {
	encoded := strings.ReplaceAll(visualPrompt, " ", "%20")
	return fmt.Sprintf("%s/%s?width=%d&height=%d&nologo=true&seed=%d",
		baseURL, encoded, imageWidth, imageHeight, b.seed())
}

func (b *URLBuilder) seed() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.rng != nil {
		return b.rng.Intn(seedRange)
	}
	return rand.Intn(seedRange)
}
