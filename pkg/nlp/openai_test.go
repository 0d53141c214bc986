package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/models"
)

var testVectors = map[string][]float32{
	"dog":   {1, 0, 0},
	"puppy": {0.9, 0.1, 0},
	"hound": {0.8, 0.3, 0},
	"cat":   {0.5, 0.5, 0.2},
	"stone": {0, 0, 1},
}

// fakeOpenAIServer serves /v1/embeddings from testVectors and counts the
// embedded inputs.
func fakeOpenAIServer(t *testing.T, inputs *int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			http.NotFound(w, r)
			return
		}
		var request struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		atomic.AddInt64(inputs, int64(len(request.Input)))

		response := openai.EmbeddingResponse{Object: "list", Model: openai.EmbeddingModel(request.Model)}
		// Reverse order to check results are placed by index.
		for i := len(request.Input) - 1; i >= 0; i-- {
			vector, ok := testVectors[request.Input[i]]
			if !ok {
				vector = []float32{0, 1, 0}
			}
			response.Data = append(response.Data, openai.Embedding{
				Object:    "embedding",
				Embedding: vector,
				Index:     i,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeVocabulary(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabulary.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddingNeighbors(t *testing.T) {
	var inputs int64
	server := fakeOpenAIServer(t, &inputs)

	cfg := config.Defaults()
	cfg.Embeddings.Service = ServiceOpenAI
	cfg.Embeddings.OpenAIAPIKey = "sk-test"
	cfg.Embeddings.OpenAIEndpoint = server.URL + "/v1"
	cfg.Embeddings.VocabularyFile = writeVocabulary(t, "cat\ndog\npuppy\nstone\nhound\n")

	finder, err := NewEmbeddingNeighbors(&cfg, nil)
	require.NoError(t, err)
	ctx := context.Background()

	neighbors, err := finder.NearestNeighbors(ctx, "dog", 3)
	require.NoError(t, err)
	require.Len(t, neighbors, 3)
	assert.Equal(t, "puppy", neighbors[0].Word)
	assert.Equal(t, "hound", neighbors[1].Word)
	assert.Equal(t, "cat", neighbors[2].Word)
	for i := 1; i < len(neighbors); i++ {
		assert.LessOrEqual(t, neighbors[i-1].Distance, neighbors[i].Distance)
	}
	// query plus five vocabulary words
	assert.Equal(t, int64(6), atomic.LoadInt64(&inputs))

	neighbors, err = finder.NearestNeighbors(ctx, "puppy", 10)
	require.NoError(t, err)
	assert.Len(t, neighbors, 4, "the query word itself is excluded")
	// vocabulary vectors are reused
	assert.Equal(t, int64(7), atomic.LoadInt64(&inputs))

	neighbors, err = finder.NearestNeighbors(ctx, "dog", 0)
	require.NoError(t, err)
	assert.Empty(t, neighbors)
}

func TestEmbeddingNeighborsWithoutKey(t *testing.T) {
	cfg := config.Defaults()
	finder, err := NewEmbeddingNeighbors(&cfg, nil)
	require.NoError(t, err)

	_, err = finder.NearestNeighbors(context.Background(), "dog", 3)
	assert.ErrorIs(t, err, models.ErrEmbeddingUnavailable)
}

func TestEmbeddingNeighborsUnknownModel(t *testing.T) {
	var inputs int64
	server := fakeOpenAIServer(t, &inputs)

	cfg := config.Defaults()
	cfg.Embeddings.OpenAIAPIKey = "sk-test"
	// every path under /missing is a 404
	cfg.Embeddings.OpenAIEndpoint = server.URL + "/missing"

	finder, err := NewEmbeddingNeighbors(&cfg, nil)
	require.NoError(t, err)

	_, err = finder.NearestNeighbors(context.Background(), "dog", 3)
	assert.ErrorIs(t, err, models.ErrEmbeddingUnavailable)
}
