package storage

import (
	"context"

	"github.com/JJaniel/dataset-analyzer/core"
)

// AnalysisCache stores per-dataset analyses keyed by content-derived ID.
// Implementations must be safe for concurrent use.
type AnalysisCache interface {
	// GetAnalysis retrieves a cached analysis.
	// Returns ErrNotFound when the key is absent.
	GetAnalysis(ctx context.Context, id core.ID) (core.DatasetAnalysis, error)

	// PutAnalysis stores an analysis under the given ID, replacing any
	// previous entry.
	PutAnalysis(ctx context.Context, id core.ID, analysis core.DatasetAnalysis) error

	// Close closes the cache and releases resources.
	Close() error
}
