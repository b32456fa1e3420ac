package mock

import (
	"context"
	"sync"

	"github.com/JJaniel/dataset-analyzer/ai"
)

// MockProvider is a test double for ai.Provider.
// It allows custom behavior injection via function fields.
type MockProvider struct {
	// ProviderName is returned by Name(). Default: "mock".
	ProviderName string

	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns Response and Err.
	CompleteFunc func(ctx context.Context, req ai.Request) (string, error)

	// Response is the canned response returned when CompleteFunc is nil.
	Response string

	// Err is returned when CompleteFunc is nil and Err is non-nil.
	Err error

	mu        sync.Mutex
	callCount int
	requests  []ai.Request
}

// NewMockProvider creates a mock provider with a canned response.
// Note: Returns concrete type to allow test assertions.
func NewMockProvider(name, response string) *MockProvider {
	return &MockProvider{ProviderName: name, Response: response}
}

// NewFailingProvider creates a mock provider that always fails with err.
func NewFailingProvider(name string, err error) *MockProvider {
	return &MockProvider{ProviderName: name, Err: err}
}

// Name returns the configured provider name.
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Complete records the request and returns the injected behavior.
func (m *MockProvider) Complete(ctx context.Context, req ai.Request) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns the number of times Complete was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request, or a zero Request when
// Complete was never called.
func (m *MockProvider) LastRequest() ai.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return ai.Request{}
	}
	return m.requests[len(m.requests)-1]
}

// Reset clears recorded calls and injected behavior.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.requests = nil
	m.CompleteFunc = nil
	m.Err = nil
}
