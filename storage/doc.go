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


// Package storage defines the persistence abstraction for analysis
// results. LLM calls are slow, rate limited and billed, so per-dataset
// analyses are cached keyed by the content hash of the file; re-running
// a folder where nothing changed costs no LLM round trips.
//
// The storage/badger sub-package provides the BadgerDB implementation.
package storage
