package nlp

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	language "cloud.google.com/go/language/apiv1"
	"cloud.google.com/go/language/apiv1/languagepb"
	"github.com/avast/retry-go/v4"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/getzep/textparser/config"
	"github.com/getzep/textparser/pkg/models"
)

var _ models.LinguisticService = &GoogleClient{}

// googleLanguageAPI is the subset of the Cloud Natural Language client used here.
type googleLanguageAPI interface {
	AnalyzeSyntax(
		ctx context.Context,
		req *languagepb.AnalyzeSyntaxRequest,
		opts ...gax.CallOption,
	) (*languagepb.AnalyzeSyntaxResponse, error)
	AnalyzeSentiment(
		ctx context.Context,
		req *languagepb.AnalyzeSentimentRequest,
		opts ...gax.CallOption,
	) (*languagepb.AnalyzeSentimentResponse, error)
	AnalyzeEntities(
		ctx context.Context,
		req *languagepb.AnalyzeEntitiesRequest,
		opts ...gax.CallOption,
	) (*languagepb.AnalyzeEntitiesResponse, error)
	Close() error
}

// GoogleClient answers the language, sentiment, lemma and entity primitives
// with Google Cloud Natural Language. Neighbor lookups go to neighbors.
type GoogleClient struct {
	api        googleLanguageAPI
	neighbors  models.NeighborFinder
	maxRetries int
	retryDelay time.Duration
}

// NewGoogleClient creates a Cloud Natural Language client. Credentials are a
// base64 encoded service account JSON; when empty, application default
// credentials are used.
func NewGoogleClient(
	ctx context.Context,
	cfg *config.Config,
	neighbors models.NeighborFinder,
) (*GoogleClient, error) {
	var opts []option.ClientOption
	if cfg.Google.Credentials != "" {
		creds, err := base64.StdEncoding.DecodeString(cfg.Google.Credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to decode google credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	client, err := language.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create language client: %w", err)
	}

	return newGoogleClient(client, neighbors, cfg.NLP.MaxRetries), nil
}

func newGoogleClient(
	api googleLanguageAPI,
	neighbors models.NeighborFinder,
	maxRetries int,
) *GoogleClient {
	return &GoogleClient{
		api:        api,
		neighbors:  neighbors,
		maxRetries: maxRetries,
		retryDelay: time.Second,
	}
}

func (g *GoogleClient) IdentifyDominantLanguage(ctx context.Context, text string) (string, error) {
	resp, err := g.analyzeSyntax(ctx, text)
	if err != nil {
		return "", err
	}
	return resp.GetLanguage(), nil
}

func (g *GoogleClient) ScoreSentiment(ctx context.Context, text string) (string, error) {
	var resp *languagepb.AnalyzeSentimentResponse
	err := g.retry(ctx, func() error {
		var err error
		resp, err = g.api.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
			Document:     document(text),
			EncodingType: languagepb.EncodingType_UTF8,
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("google analyze sentiment failed: %w", err)
	}

	sentiment := resp.GetDocumentSentiment()
	if sentiment == nil {
		return "", nil
	}
	return strconv.FormatFloat(float64(sentiment.GetScore()), 'f', -1, 32), nil
}

func (g *GoogleClient) TagLemmas(ctx context.Context, text string) ([]models.TaggedSpan, error) {
	resp, err := g.analyzeSyntax(ctx, text)
	if err != nil {
		return nil, err
	}
	return spansFromTokens(resp.GetTokens()), nil
}

func (g *GoogleClient) TagNamedEntities(
	ctx context.Context,
	text string,
) ([]models.TaggedSpan, error) {
	var resp *languagepb.AnalyzeEntitiesResponse
	err := g.retry(ctx, func() error {
		var err error
		resp, err = g.api.AnalyzeEntities(ctx, &languagepb.AnalyzeEntitiesRequest{
			Document:     document(text),
			EncodingType: languagepb.EncodingType_UTF8,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("google analyze entities failed: %w", err)
	}
	return spansFromGoogleEntities(resp.GetEntities()), nil
}

func (g *GoogleClient) NearestNeighbors(
	ctx context.Context,
	word string,
	count int,
) ([]models.Neighbor, error) {
	if g.neighbors == nil {
		return nil, models.ErrEmbeddingUnavailable
	}
	return g.neighbors.NearestNeighbors(ctx, word, count)
}

func (g *GoogleClient) Close() error {
	return g.api.Close()
}

func (g *GoogleClient) analyzeSyntax(
	ctx context.Context,
	text string,
) (*languagepb.AnalyzeSyntaxResponse, error) {
	var resp *languagepb.AnalyzeSyntaxResponse
	err := g.retry(ctx, func() error {
		var err error
		resp, err = g.api.AnalyzeSyntax(ctx, &languagepb.AnalyzeSyntaxRequest{
			Document:     document(text),
			EncodingType: languagepb.EncodingType_UTF8,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("google analyze syntax failed: %w", err)
	}
	return resp, nil
}

// retry runs fn until it succeeds, fails permanently or maxRetries retries
// have been spent. Only transient gRPC errors are retried.
func (g *GoogleClient) retry(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(uint(g.maxRetries+1)),
		retry.Delay(g.retryDelay),
		retry.RetryIf(isTransient),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debugf("retrying google language call (attempt %d): %s", n+1, err)
		}),
	)
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func document(text string) *languagepb.Document {
	return &languagepb.Document{
		Source: &languagepb.Document_Content{
			Content: text,
		},
		Type: languagepb.Document_PLAIN_TEXT,
	}
}

// spansFromTokens keeps word tokens only; punctuation is dropped.
func spansFromTokens(tokens []*languagepb.Token) []models.TaggedSpan {
	spans := make([]models.TaggedSpan, 0, len(tokens))
	for _, t := range tokens {
		if t.GetPartOfSpeech().GetTag() == languagepb.PartOfSpeech_PUNCT {
			continue
		}
		content := t.GetText().GetContent()
		start := int(t.GetText().GetBeginOffset())
		spans = append(spans, models.TaggedSpan{
			Start: start,
			End:   start + len(content),
			Text:  content,
			Tag:   t.GetLemma(),
		})
	}
	return spans
}

// spansFromGoogleEntities flattens the proper-noun mentions of every entity
// into a single list ordered by position in the text. Common-noun mentions
// ("the company") are not names and are skipped.
func spansFromGoogleEntities(entities []*languagepb.Entity) []models.TaggedSpan {
	var spans []models.TaggedSpan
	for _, e := range entities {
		for _, m := range e.GetMentions() {
			if m.GetType() != languagepb.EntityMention_PROPER {
				continue
			}
			content := m.GetText().GetContent()
			start := int(m.GetText().GetBeginOffset())
			spans = append(spans, models.TaggedSpan{
				Start: start,
				End:   start + len(content),
				Text:  content,
				Tag:   e.GetType().String(),
			})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return spans
}
