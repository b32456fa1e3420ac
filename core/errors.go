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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidHarmonizationMap indicates a HarmonizationMap failed validation.
	ErrInvalidHarmonizationMap = errors.New("invalid harmonization map")

	// ErrInvalidAnalysis indicates a DatasetAnalysis failed validation.
	ErrInvalidAnalysis = errors.New("invalid dataset analysis")

	// ErrEmptyCanonicalName indicates a feature group without a canonical name.
	ErrEmptyCanonicalName = errors.New("canonical name cannot be empty")

	// ErrNoMappedColumns indicates a feature group that maps no columns.
	ErrNoMappedColumns = errors.New("feature group has no mapped columns")

	// ErrDuplicateCanonicalName indicates two feature groups share a canonical name.
	ErrDuplicateCanonicalName = errors.New("duplicate canonical name")

	// ErrUnknownFeature indicates a canonical feature name absent from the map.
	ErrUnknownFeature = errors.New("canonical feature not found in harmonization map")

	// ErrEmptyAnalysis indicates an analysis that describes no columns.
	ErrEmptyAnalysis = errors.New("analysis describes no columns")
)
