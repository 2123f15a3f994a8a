// Package config defines the application configuration structure and its
// loading from environment variables (SLIDECAST_ prefix) and an optional
// YAML file, validated with go-playground/validator.
package config
