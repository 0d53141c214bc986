package models

import (
	"errors"
	"fmt"
)

// ErrEmbeddingUnavailable is returned by NearestNeighbors when no embedding
// space exists for the requested language.
var ErrEmbeddingUnavailable = errors.New("word embedding unavailable")

// AnalyzerError records which analysis failed. The orchestrator logs it and
// carries on with a neutral result.
type AnalyzerError struct {
	Kind          Kind
	originalError error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("%s analyzer error: %v", e.Kind, e.originalError)
}

func (e *AnalyzerError) Unwrap() error {
	return e.originalError
}

func NewAnalyzerError(kind Kind, originalError error) error {
	return &AnalyzerError{Kind: kind, originalError: originalError}
}
