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


package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Chain is an ordered fallback over LLM providers.
//
// Each call tries the sticky provider first (the one that succeeded
// last), then the remaining providers in configured order. A provider
// failure moves on to the next; a success updates the sticky slot.
// Chain is safe for concurrent use: the sticky slot is shared, the
// calls themselves are independent.
type Chain struct {
	providers []Provider
	logger    *slog.Logger

	mu     sync.Mutex
	sticky int // index into providers; -1 until the first success
}

// NewChain creates a fallback chain over the given providers, tried in
// argument order until one succeeds.
func NewChain(providers ...Provider) (*Chain, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}
	return &Chain{
		providers: providers,
		logger:    slog.Default().With("component", "llm-chain"),
		sticky:    -1,
	}, nil
}

// Providers returns the names of the chained providers in configured order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Sticky returns the name of the provider that succeeded last, or ""
// when no call has succeeded yet.
func (c *Chain) Sticky() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sticky < 0 {
		return ""
	}
	return c.providers[c.sticky].Name()
}

// Complete sends the request to the providers in fallback order and
// returns the first successful response. It returns an error wrapping
// ErrAllProvidersFailed, with every per-provider failure joined in,
// when no provider succeeds.
func (c *Chain) Complete(ctx context.Context, req Request) (string, error) {
	var errs []error

	for _, idx := range c.order() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := c.providers[idx]
		response, err := p.Complete(ctx, req)
		if err != nil {
			c.logger.Warn("provider failed, trying next", "provider", p.Name(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}

		c.setSticky(idx)
		c.logger.Debug("provider succeeded", "provider", p.Name())
		return response, nil
	}

	return "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// order returns provider indices with the sticky provider moved to the
// front; the rest keep their configured order.
func (c *Chain) order() []int {
	c.mu.Lock()
	sticky := c.sticky
	c.mu.Unlock()

	order := make([]int, 0, len(c.providers))
	if sticky >= 0 {
		order = append(order, sticky)
	}
	for i := range c.providers {
		if i != sticky {
			order = append(order, i)
		}
	}
	return order
}

func (c *Chain) setSticky(idx int) {
	c.mu.Lock()
	c.sticky = idx
	c.mu.Unlock()
}
