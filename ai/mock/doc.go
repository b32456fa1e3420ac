// Package mock provides test doubles for the ai package, so the
// analysis and harmonization pipelines can be tested without external
// LLM services.
package mock
