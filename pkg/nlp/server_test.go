package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/models"
)

// fakeNLPServer answers every endpoint of the NLP server protocol, echoing
// the record UUID of the request.
func fakeNLPServer(t *testing.T) *httptest.Server {
	t.Helper()

	decode := func(w http.ResponseWriter, r *http.Request) (TextRecord, bool) {
		var request TextRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || len(request.Texts) != 1 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return TextRecord{}, false
		}
		return request.Texts[0], true
	}
	reply := func(w http.ResponseWriter, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/language", func(w http.ResponseWriter, r *http.Request) {
		record, ok := decode(w, r)
		if !ok {
			return
		}
		reply(w, LanguageResponse{Texts: []LanguageRecord{{UUID: record.UUID, Language: "de"}}})
	})
	mux.HandleFunc("/sentiment", func(w http.ResponseWriter, r *http.Request) {
		record, ok := decode(w, r)
		if !ok {
			return
		}
		_, _ = w.Write([]byte(`{"texts":[{"uuid":"` + record.UUID + `","score":0.25}]}`))
	})
	mux.HandleFunc("/lemmas", func(w http.ResponseWriter, r *http.Request) {
		record, ok := decode(w, r)
		if !ok {
			return
		}
		reply(w, LemmaResponse{Texts: []LemmaRecord{{
			UUID: record.UUID,
			Tokens: []Token{
				{Start: 0, End: 4, Text: "Dogs", Lemma: "dog"},
				{Start: 5, End: 8, Text: "ran", Lemma: "run"},
			},
		}}})
	})
	mux.HandleFunc("/entities", func(w http.ResponseWriter, r *http.Request) {
		record, ok := decode(w, r)
		if !ok {
			return
		}
		reply(w, EntityResponse{Texts: []EntityRecord{{
			UUID: record.UUID,
			Entities: []Entity{
				{Name: "Tim Cook", Label: "PERSON", Matches: []EntityMatch{{Start: 38, End: 46, Text: "Tim Cook"}}},
				{Name: "Apple", Label: "ORG", Matches: []EntityMatch{
					{Start: 0, End: 5, Text: "Apple"},
					{Start: 50, End: 55, Text: "Apple"},
				}},
			},
		}}})
	})
	mux.HandleFunc("/neighbors", func(w http.ResponseWriter, r *http.Request) {
		var request NeighborRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if request.Word == "zorblax" {
			http.Error(w, "no embedding", http.StatusNotFound)
			return
		}
		reply(w, NeighborResponse{Neighbors: []NeighborRecord{
			{Word: "puppy", Distance: 0.42},
			{Word: "hound", Distance: 0.56},
		}})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestServerClient(url string) *ServerClient {
	cfg := config.Defaults()
	cfg.NLP.ServerURL = url
	return NewServerClient(&cfg, NewRetryableHTTPClient(0, 5*time.Second))
}

func TestServerClient(t *testing.T) {
	server := fakeNLPServer(t)
	client := newTestServerClient(server.URL + "/")
	ctx := context.Background()

	t.Run("language", func(t *testing.T) {
		lang, err := client.IdentifyDominantLanguage(ctx, "Guten Tag")
		require.NoError(t, err)
		assert.Equal(t, "de", lang)
	})

	t.Run("numeric sentiment score", func(t *testing.T) {
		score, err := client.ScoreSentiment(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, "0.25", score)
	})

	t.Run("lemmas", func(t *testing.T) {
		spans, err := client.TagLemmas(ctx, "Dogs ran")
		require.NoError(t, err)
		assert.Equal(t, []models.TaggedSpan{
			{Start: 0, End: 4, Text: "Dogs", Tag: "dog"},
			{Start: 5, End: 8, Text: "ran", Tag: "run"},
		}, spans)
	})

	t.Run("entity matches are flattened in text order", func(t *testing.T) {
		spans, err := client.TagNamedEntities(ctx, "Apple ...")
		require.NoError(t, err)
		assert.Equal(t, []models.TaggedSpan{
			{Start: 0, End: 5, Text: "Apple", Tag: "ORG"},
			{Start: 38, End: 46, Text: "Tim Cook", Tag: "PERSON"},
			{Start: 50, End: 55, Text: "Apple", Tag: "ORG"},
		}, spans)
	})

	t.Run("neighbors", func(t *testing.T) {
		neighbors, err := client.NearestNeighbors(ctx, "dog", 2)
		require.NoError(t, err)
		assert.Equal(t, []models.Neighbor{
			{Word: "puppy", Distance: 0.42},
			{Word: "hound", Distance: 0.56},
		}, neighbors)
	})

	t.Run("missing embedding maps to ErrEmbeddingUnavailable", func(t *testing.T) {
		_, err := client.NearestNeighbors(ctx, "zorblax", 2)
		assert.ErrorIs(t, err, models.ErrEmbeddingUnavailable)
	})
}

func TestServerClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/language" {
			_, _ = w.Write([]byte(`{"texts":[{"uuid":"someone-else","language":"fr"}]}`))
			return
		}
		http.Error(w, "broken", http.StatusBadRequest)
	}))
	defer server.Close()
	client := newTestServerClient(server.URL)
	ctx := context.Background()

	t.Run("status errors are typed", func(t *testing.T) {
		_, err := client.TagLemmas(ctx, "text")
		var serviceErr *ServiceError
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, http.StatusBadRequest, serviceErr.StatusCode)
		assert.Equal(t, "/lemmas", serviceErr.Path)
	})

	t.Run("unmatched record gives an empty answer", func(t *testing.T) {
		lang, err := client.IdentifyDominantLanguage(ctx, "text")
		require.NoError(t, err)
		assert.Equal(t, "", lang)
	})

	t.Run("only 404 is an unavailable embedding", func(t *testing.T) {
		_, err := client.NearestNeighbors(ctx, "dog", 2)
		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrEmbeddingUnavailable)
	})
}

func TestRawScore(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected RawScore
	}{
		{"string", `{"score":"-0.3"}`, "-0.3"},
		{"number", `{"score":0.6}`, "0.6"},
		{"null", `{"score":null}`, ""},
		{"missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record SentimentRecord
			require.NoError(t, json.Unmarshal([]byte(tt.body), &record))
			assert.Equal(t, tt.expected, record.Score)
		})
	}

	var record SentimentRecord
	assert.Error(t, json.Unmarshal([]byte(`{"score":true}`), &record))
}
