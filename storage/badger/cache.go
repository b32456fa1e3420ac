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


// Package badger provides the BadgerDB implementation of storage.AnalysisCache.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/storage"
)

// analysisPrefix namespaces analysis entries inside the key space.
var analysisPrefix = []byte("analysis:")

// Cache is a BadgerDB-backed analysis cache.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.AnalysisCache = (*Cache)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens (or creates) a cache at the given directory. When inMemory
// is true the path is ignored and nothing is persisted; tests use this.
func Open(path string, inMemory bool) (*Cache, error) {
	logger := slog.Default().With("component", "analysis-cache")

	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(&badgerLoggerAdapter{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	return &Cache{db: db, logger: logger}, nil
}

// GetAnalysis retrieves a cached analysis by content ID.
func (c *Cache) GetAnalysis(ctx context.Context, id core.ID) (core.DatasetAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var analysis core.DatasetAnalysis
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &analysis)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("reading cached analysis: %w", err)
	}

	c.logger.Debug("cache hit", "id", uint64(id))
	return analysis, nil
}

// PutAnalysis stores an analysis under its content ID.
func (c *Cache) PutAnalysis(ctx context.Context, id core.ID, analysis core.DatasetAnalysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(id), data)
	})
	if err != nil {
		return fmt.Errorf("writing cached analysis: %w", err)
	}

	c.logger.Debug("cache store", "id", uint64(id), "bytes", len(data))
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func key(id core.ID) []byte {
	return append(append([]byte(nil), analysisPrefix...), id.Bytes()...)
}
