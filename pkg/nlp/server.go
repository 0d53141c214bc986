package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/models"
)

var _ models.LinguisticService = &ServerClient{}

// ServerClient talks to the textparser NLP server over JSON/HTTP.
type ServerClient struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

func NewServerClient(cfg *config.Config, httpClient *http.Client) *ServerClient {
	return &ServerClient{
		baseURL:    strings.TrimRight(cfg.NLP.ServerURL, "/"),
		language:   cfg.NLP.Language,
		httpClient: httpClient,
	}
}

func (c *ServerClient) IdentifyDominantLanguage(ctx context.Context, text string) (string, error) {
	request, id := c.textRequest(text)

	var response LanguageResponse
	if err := c.post(ctx, "/language", request, &response); err != nil {
		return "", err
	}

	for _, r := range response.Texts {
		if r.UUID == id {
			return r.Language, nil
		}
	}
	return "", nil
}

func (c *ServerClient) ScoreSentiment(ctx context.Context, text string) (string, error) {
	request, id := c.textRequest(text)

	var response SentimentResponse
	if err := c.post(ctx, "/sentiment", request, &response); err != nil {
		return "", err
	}

	for _, r := range response.Texts {
		if r.UUID == id {
			return string(r.Score), nil
		}
	}
	return "", nil
}

func (c *ServerClient) TagLemmas(ctx context.Context, text string) ([]models.TaggedSpan, error) {
	request, id := c.textRequest(text)

	var response LemmaResponse
	if err := c.post(ctx, "/lemmas", request, &response); err != nil {
		return nil, err
	}

	for _, r := range response.Texts {
		if r.UUID != id {
			continue
		}
		spans := make([]models.TaggedSpan, len(r.Tokens))
		for i, t := range r.Tokens {
			spans[i] = models.TaggedSpan{Start: t.Start, End: t.End, Text: t.Text, Tag: t.Lemma}
		}
		return spans, nil
	}
	return nil, nil
}

func (c *ServerClient) TagNamedEntities(ctx context.Context, text string) ([]models.TaggedSpan, error) {
	request, id := c.textRequest(text)

	var response EntityResponse
	if err := c.post(ctx, "/entities", request, &response); err != nil {
		return nil, err
	}

	for _, r := range response.Texts {
		if r.UUID == id {
			return spansFromEntities(r.Entities), nil
		}
	}
	return nil, nil
}

// spansFromEntities flattens the matches of every entity into a single list
// ordered by position in the text.
func spansFromEntities(entities []Entity) []models.TaggedSpan {
	var spans []models.TaggedSpan
	for _, e := range entities {
		for _, m := range e.Matches {
			spans = append(spans, models.TaggedSpan{
				Start: m.Start,
				End:   m.End,
				Text:  m.Text,
				Tag:   e.Label,
			})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return spans
}

func (c *ServerClient) NearestNeighbors(
	ctx context.Context,
	word string,
	count int,
) ([]models.Neighbor, error) {
	request := NeighborRequest{Word: word, Count: count, Language: c.language}

	var response NeighborResponse
	err := c.post(ctx, "/neighbors", request, &response)
	if err != nil {
		var serviceErr *ServiceError
		if errors.As(err, &serviceErr) && serviceErr.StatusCode == http.StatusNotFound {
			return nil, models.ErrEmbeddingUnavailable
		}
		return nil, err
	}

	neighbors := make([]models.Neighbor, len(response.Neighbors))
	for i, n := range response.Neighbors {
		neighbors[i] = models.Neighbor{Word: n.Word, Distance: n.Distance}
	}
	return neighbors, nil
}

func (c *ServerClient) textRequest(text string) (TextRequest, string) {
	id := uuid.New().String()
	return TextRequest{
		Texts: []TextRecord{{UUID: id, Text: text, Language: c.language}},
	}, id
}

func (c *ServerClient) post(ctx context.Context, path string, body, out interface{}) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error marshaling request body: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making POST request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewServiceError(path, resp.StatusCode, resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("error unmarshaling response body: %w", err)
	}

	log.Debugf("nlp server %s answered %d bytes", path, len(bodyBytes))
	return nil
}
