package analysis

import "errors"

var (
	// ErrCompleterRequired is returned when an analyzer is built without
	// an LLM chain.
	ErrCompleterRequired = errors.New("LLM completer required")

	// ErrNoDatasetsAnalyzed is returned when a pipeline run produced no
	// successful analysis at all.
	ErrNoDatasetsAnalyzed = errors.New("no datasets were successfully analyzed")
)
