package nlp

import (
	"context"
	"fmt"
	"time"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/models"
)

const (
	ServiceServer = "server"
	ServiceGoogle = "google"
	ServiceOpenAI = "openai"
)

// composite answers the linguistic primitives with one backend and neighbor
// lookups with another.
type composite struct {
	models.LinguisticService
	neighbors models.NeighborFinder
}

func (c *composite) NearestNeighbors(
	ctx context.Context,
	word string,
	count int,
) ([]models.Neighbor, error) {
	return c.neighbors.NearestNeighbors(ctx, word, count)
}

// WithNeighbors returns svc with its neighbor lookups answered by finder.
func WithNeighbors(svc models.LinguisticService, finder models.NeighborFinder) models.LinguisticService {
	return &composite{LinguisticService: svc, neighbors: finder}
}

// NewService builds the models.LinguisticService selected by cfg. The returned
// func releases any backend connections.
func NewService(
	ctx context.Context,
	cfg *config.Config,
) (models.LinguisticService, func() error, error) {
	noop := func() error { return nil }

	httpClient := NewRetryableHTTPClient(
		cfg.NLP.MaxRetries,
		time.Duration(cfg.NLP.Timeout)*time.Second,
	)

	var neighbors models.NeighborFinder
	switch cfg.Embeddings.Service {
	case ServiceServer:
		neighbors = NewServerClient(cfg, httpClient)
	case ServiceOpenAI:
		finder, err := NewEmbeddingNeighbors(cfg, httpClient)
		if err != nil {
			return nil, noop, err
		}
		neighbors = finder
	default:
		return nil, noop, fmt.Errorf("unknown embeddings service: %q", cfg.Embeddings.Service)
	}

	switch cfg.NLP.Service {
	case ServiceServer:
		server := NewServerClient(cfg, httpClient)
		if cfg.Embeddings.Service == ServiceServer {
			return server, noop, nil
		}
		return WithNeighbors(server, neighbors), noop, nil
	case ServiceGoogle:
		google, err := NewGoogleClient(ctx, cfg, neighbors)
		if err != nil {
			return nil, noop, err
		}
		return google, google.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown nlp service: %q", cfg.NLP.Service)
	}
}
