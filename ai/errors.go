package ai

import "errors"

var (
	// ErrNoProviders is returned when a chain is built without any provider.
	ErrNoProviders = errors.New("no LLM providers configured")

	// ErrAllProvidersFailed is returned when every provider in the chain failed.
	ErrAllProvidersFailed = errors.New("all LLM providers failed")

	// ErrMalformedResponse indicates the LLM response could not be parsed
	// as JSON even after repair attempts.
	ErrMalformedResponse = errors.New("malformed LLM response")

	// ErrUnknownProvider indicates a provider name that the configuration
	// does not recognize.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey indicates a provider whose API key environment
	// variable is not set.
	ErrMissingAPIKey = errors.New("API key not set")
)
