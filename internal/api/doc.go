// Package api contains the HTTP boundary of the service: request DTOs,
// validation, and the handler that shapes the success and error envelopes
// around the lesson pipeline.
package api
