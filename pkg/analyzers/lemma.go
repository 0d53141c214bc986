package analyzers

import (
	"context"
	"strings"

	"github.com/getzep/textparser/pkg/models"
)

// Lemmatize returns the stem form of every word token of text, in order.
// Tokens without a lemma fall back to their trimmed surface text; empty forms
// are dropped. Repeated words yield repeated lemmas.
func Lemmatize(
	ctx context.Context,
	svc models.LinguisticService,
	text string,
) (models.LemmaList, error) {
	spans, err := svc.TagLemmas(ctx, text)
	if err != nil {
		return models.LemmaList{}, err
	}

	lemmas := make(models.LemmaList, 0, len(spans))
	for _, span := range spans {
		form := span.Tag
		if form == "" {
			form = strings.TrimSpace(span.Text)
		}
		if form == "" {
			continue
		}
		lemmas = append(lemmas, form)
	}

	return lemmas, nil
}
