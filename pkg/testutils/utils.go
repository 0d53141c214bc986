package testutils

import (
	"context"
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/getzep/textparser/pkg/models"
)

var _ models.LinguisticService = &FakeService{}

// FakeService is a deterministic models.LinguisticService for tests. Every
// primitive returns the configured value, and calls are counted per primitive.
type FakeService struct {
	Language    string
	LanguageErr error

	Score    string
	ScoreErr error

	Lemmas   []models.TaggedSpan
	LemmaErr error

	Names    []models.TaggedSpan
	NamesErr error

	// Neighbors is keyed by query word. Words without an entry get no neighbors.
	Neighbors   map[string][]models.Neighbor
	NeighborErr error

	mu    sync.Mutex
	calls map[string]int
	words []string
}

func (f *FakeService) record(primitive string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[primitive]++
}

// Calls returns how many times primitive was invoked.
func (f *FakeService) Calls(primitive string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[primitive]
}

// NeighborQueries returns the words passed to NearestNeighbors, in call order.
func (f *FakeService) NeighborQueries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.words...)
}

func (f *FakeService) IdentifyDominantLanguage(_ context.Context, _ string) (string, error) {
	f.record("language")
	return f.Language, f.LanguageErr
}

func (f *FakeService) ScoreSentiment(_ context.Context, _ string) (string, error) {
	f.record("sentiment")
	return f.Score, f.ScoreErr
}

func (f *FakeService) TagLemmas(_ context.Context, _ string) ([]models.TaggedSpan, error) {
	f.record("lemmas")
	return append([]models.TaggedSpan(nil), f.Lemmas...), f.LemmaErr
}

func (f *FakeService) TagNamedEntities(_ context.Context, _ string) ([]models.TaggedSpan, error) {
	f.record("entities")
	return append([]models.TaggedSpan(nil), f.Names...), f.NamesErr
}

func (f *FakeService) NearestNeighbors(_ context.Context, word string, _ int) ([]models.Neighbor, error) {
	f.record("neighbors")
	f.mu.Lock()
	f.words = append(f.words, word)
	f.mu.Unlock()
	if f.NeighborErr != nil {
		return nil, f.NeighborErr
	}
	// count is ignored so callers' own ordering and truncation are exercised
	return append([]models.Neighbor(nil), f.Neighbors[word]...), nil
}

// SpansFromWords tokenizes text on whitespace and tags each token with the
// result of lemma, which may return "" for untagged tokens.
func SpansFromWords(text string, lemma func(word string) string) []models.TaggedSpan {
	var spans []models.TaggedSpan
	offset := 0
	for _, word := range strings.Fields(text) {
		start := strings.Index(text[offset:], word) + offset
		end := start + len(word)
		spans = append(spans, models.TaggedSpan{
			Start: start,
			End:   end,
			Text:  word,
			Tag:   lemma(word),
		})
		offset = end
	}
	return spans
}

// RandomWords returns n generated words from a seeded faker so runs are
// repeatable.
func RandomWords(seed int64, n int) []string {
	faker := gofakeit.New(seed)
	words := make([]string, n)
	for i := range words {
		words[i] = faker.Word()
	}
	return words
}
