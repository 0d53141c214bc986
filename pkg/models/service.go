package models

import (
	"context"
)

// TaggedSpan is a token, or a joined multi-word name, returned by a
// LinguisticService. Tag is empty when the service has no tag for the span.
type TaggedSpan struct {
	Start int
	End   int
	Text  string
	Tag   string
}

// Neighbor is a word close to a query word in an embedding space.
type Neighbor struct {
	Word     string
	Distance float64
}

// LinguisticService is an interface that defines the language model
// primitives textparser's analyzers are built on.
type LinguisticService interface {
	// IdentifyDominantLanguage returns a language tag, or "" when the service
	// can't decide.
	IdentifyDominantLanguage(ctx context.Context, text string) (string, error)
	// ScoreSentiment returns the raw score token for text treated as one
	// paragraph, or "" when no score is available.
	ScoreSentiment(ctx context.Context, text string) (string, error)
	// TagLemmas returns the word tokens of text in order. Tag holds the lemma.
	TagLemmas(ctx context.Context, text string) ([]TaggedSpan, error)
	// TagNamedEntities returns name spans of text in order, with adjacent
	// tokens of the same name joined. Tag holds the entity label.
	TagNamedEntities(ctx context.Context, text string) ([]TaggedSpan, error)
	// NearestNeighbors returns up to count words near word. It returns
	// ErrEmbeddingUnavailable when there is no embedding space to search.
	NearestNeighbors(ctx context.Context, word string, count int) ([]Neighbor, error)
}

// NeighborFinder is the subset of LinguisticService answering association
// lookups. Backends without an embedding space delegate to one.
type NeighborFinder interface {
	NearestNeighbors(ctx context.Context, word string, count int) ([]Neighbor, error)
}
