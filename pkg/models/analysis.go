package models

import "strings"

// Kind identifies one of the analyses textparser can run.
type Kind int

const (
	LanguageDetection Kind = iota
	Sentiment
	Lemmatization
	Associations
	Entities
)

// AllKinds lists every Kind in declaration order.
var AllKinds = []Kind{LanguageDetection, Sentiment, Lemmatization, Associations, Entities}

var kindNames = map[Kind]string{
	LanguageDetection: "language-detection",
	Sentiment:         "sentiment",
	Lemmatization:     "lemmatization",
	Associations:      "associations",
	Entities:          "entities",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindSet is a set of analysis kinds.
type KindSet uint8

// NewKindSet returns a set holding kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// FullKindSet returns the set of all five analyses.
func FullKindSet() KindSet {
	return NewKindSet(AllKinds...)
}

func (s KindSet) With(k Kind) KindSet {
	return s | 1<<uint(k)
}

func (s KindSet) Has(k Kind) bool {
	return s&(1<<uint(k)) != 0
}

func (s KindSet) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members of s in declaration order.
func (s KindSet) Kinds() []Kind {
	kinds := make([]Kind, 0, len(AllKinds))
	for _, k := range AllKinds {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (s KindSet) String() string {
	names := make([]string, 0, len(AllKinds))
	for _, k := range s.Kinds() {
		names = append(names, k.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// AnalysisRequest is the input of a single textparser run.
// Use NewAnalysisRequest to create a new instance
type AnalysisRequest struct {
	Text            string
	Enabled         KindSet
	MaxAssociations int
}

// NewAnalysisRequest joins words with single spaces to form the input text.
// An empty enabled set means every analysis runs.
func NewAnalysisRequest(words []string, enabled KindSet, maxAssociations int) *AnalysisRequest {
	if enabled.IsEmpty() {
		enabled = FullKindSet()
	}
	return &AnalysisRequest{
		Text:            strings.Join(words, " "),
		Enabled:         enabled,
		MaxAssociations: maxAssociations,
	}
}

// EffectiveKinds applies the run-everything default to requests built
// without NewAnalysisRequest.
func (r *AnalysisRequest) EffectiveKinds() KindSet {
	if r.Enabled.IsEmpty() {
		return FullKindSet()
	}
	return r.Enabled
}
