package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/getzep/textparser/pkg/models"
)

const (
	LanguageHeader     = "Detected language: "
	SentimentHeader    = "Sentiment analysis: "
	EntitiesHeader     = "Found the following entities:"
	LemmaHeader        = "Found the following lemma:"
	AssociationsHeader = "Found the following alternatives:"
)

// FormatLanguage echoes the input text verbatim below the detected language.
func FormatLanguage(lang, text string) models.Section {
	return models.Section{
		Kind:   models.LanguageDetection,
		Header: LanguageHeader + lang,
		Lines:  []string{text},
	}
}

func FormatSentiment(score float64) models.Section {
	return models.Section{
		Kind:   models.Sentiment,
		Header: SentimentHeader + FormatNumber(score),
	}
}

func FormatEntities(matches []models.EntityMatch) models.Section {
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = "\t " + m.String()
	}
	return models.Section{Kind: models.Entities, Header: EntitiesHeader, Lines: lines}
}

func FormatLemmas(lemmas models.LemmaList) models.Section {
	return models.Section{
		Kind:   models.Lemmatization,
		Header: LemmaHeader,
		Lines:  []string{"\t " + JoinAnd(lemmas)},
	}
}

// FormatAssociations prints one line per lemma, including lemmas without
// candidates.
func FormatAssociations(results []models.AssociationResult) models.Section {
	lines := make([]string, len(results))
	for i, r := range results {
		candidates := make([]string, len(r.Candidates))
		for j, c := range r.Candidates {
			candidates[j] = FormatAssociation(c)
		}
		lines[i] = fmt.Sprintf("\t%s: %s", r.Word, JoinAnd(candidates))
	}
	return models.Section{Kind: models.Associations, Header: AssociationsHeader, Lines: lines}
}

func FormatAssociation(a models.Association) string {
	return fmt.Sprintf("%s has a distance of %s", a.Candidate, FormatNumber(a.Distance))
}

// JoinAnd joins items as an English conjunction list: "a", "a and b",
// "a, b, and c".
func JoinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// FormatNumber prints f in its shortest round-tripping form with at least one
// fractional digit, so 0 prints as "0.0" and 0.42 as "0.42".
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
