// Copyright 2025 JJaniel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai provides the LLM provider abstraction used by the analysis
// and harmonization phases.
//
// The package defines two key pieces:
//
//   - Provider: a single chat-completion backend (Gemini, an
//     OpenAI-compatible endpoint, a test double)
//   - Chain: an ordered fallback over providers with sticky selection
//
// A Chain tries providers in its configured order. When a provider
// fails (rate limit, network error, malformed output surfaced by the
// caller) the chain moves to the next one. The first provider that
// succeeds becomes "sticky": subsequent calls try it first, so a run
// over many dataset files does not pay the failed-provider tax on
// every file.
//
// # Implementation Packages
//
//   - ai/gemini: Google Gemini via langchaingo
//   - ai/openaicompat: any OpenAI-compatible chat API (NVIDIA, Groq, local servers)
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors in the implementation packages return the
// ai.Provider interface to keep callers decoupled from concrete
// clients. Mock constructors return concrete types so tests can inject
// behavior and assert on call counts.
//
// The package also carries the response-hygiene helpers (markdown fence
// stripping, JSON repair) that every LLM-facing caller needs, because a
// model asked for "only the JSON output" will still wrap it in fences
// or truncate the last brace often enough to matter.
package ai
