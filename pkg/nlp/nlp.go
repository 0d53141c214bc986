// Package nlp holds the backends that implement models.LinguisticService: the
// HTTP NLP server, Google Cloud Natural Language and OpenAI embeddings.
package nlp

import (
	"fmt"

	"github.com/getzep/textparser/internal"
)

var log = internal.GetLogger()

// ServiceError is returned when a backend answers with an unexpected status.
type ServiceError struct {
	Path       string
	StatusCode int
	Status     string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("nlp server %s: %d - %s", e.Path, e.StatusCode, e.Status)
}

func NewServiceError(path string, statusCode int, status string) error {
	return &ServiceError{Path: path, StatusCode: statusCode, Status: status}
}
