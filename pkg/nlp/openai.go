package nlp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/models"
)

var _ models.NeighborFinder = &EmbeddingNeighbors{}

// EmbeddingNeighbors finds the words of a fixed vocabulary closest to a query
// word in an OpenAI embedding space.
type EmbeddingNeighbors struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	vocabulary []string

	mu      sync.Mutex
	vectors [][]float32
}

// NewEmbeddingNeighbors creates a neighbor finder. Without an API key every
// lookup returns models.ErrEmbeddingUnavailable.
func NewEmbeddingNeighbors(cfg *config.Config, httpClient *http.Client) (*EmbeddingNeighbors, error) {
	vocabulary, err := LoadVocabulary(cfg.Embeddings.VocabularyFile)
	if err != nil {
		return nil, err
	}

	e := &EmbeddingNeighbors{
		model:      openai.EmbeddingModel(cfg.Embeddings.Model),
		vocabulary: vocabulary,
	}

	if cfg.Embeddings.OpenAIAPIKey == "" {
		log.Warn("embeddings.openai_api_key is not set, alternatives are unavailable")
		return e, nil
	}

	clientConfig := openai.DefaultConfig(cfg.Embeddings.OpenAIAPIKey)
	if cfg.Embeddings.OpenAIEndpoint != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.Embeddings.OpenAIEndpoint, "/")
	}
	if httpClient != nil {
		clientConfig.HTTPClient = httpClient
	}
	e.client = openai.NewClientWithConfig(clientConfig)

	return e, nil
}

func (e *EmbeddingNeighbors) NearestNeighbors(
	ctx context.Context,
	word string,
	count int,
) ([]models.Neighbor, error) {
	if e.client == nil {
		return nil, models.ErrEmbeddingUnavailable
	}
	if count <= 0 {
		return []models.Neighbor{}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The vocabulary is embedded together with the first query and reused.
	inputs := []string{word}
	if e.vectors == nil {
		inputs = append(inputs, e.vocabulary...)
	}

	embeddings, err := e.embed(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if e.vectors == nil {
		e.vectors = embeddings[1:]
	}

	distances, err := CosineDistances(embeddings[0], e.vectors)
	if err != nil {
		return nil, err
	}

	neighbors := make([]models.Neighbor, 0, len(e.vocabulary))
	for i, candidate := range e.vocabulary {
		if strings.EqualFold(candidate, word) {
			continue
		}
		neighbors = append(neighbors, models.Neighbor{Word: candidate, Distance: distances[i]})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})
	if len(neighbors) > count {
		neighbors = neighbors[:count]
	}

	return neighbors, nil
}

func (e *EmbeddingNeighbors) embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("embedding model %s not found: %w", e.model, models.ErrEmbeddingUnavailable)
		}
		return nil, fmt.Errorf("error creating embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf(
			"expected %d embeddings, received %d",
			len(texts),
			len(resp.Data),
		)
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}

	return vectors, nil
}

// statusCode returns the HTTP status of a failed OpenAI call, or 0.
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
