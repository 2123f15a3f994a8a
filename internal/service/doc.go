// Package service contains the application services that orchestrate lesson
// generation: the assembler that drives the model call and per-slide
// enrichment, the speech service with its provider fallback chain, and the
// pacer that rate-limits synthesis calls.
package service
