package analyzers

import (
	"context"
	"strings"

	"github.com/getzep/textparser/pkg/models"
)

// entityLabels maps the labels used by the supported backends (spaCy, Google
// Cloud Natural Language) onto the three reported categories.
var entityLabels = map[string]models.EntityCategory{
	"ORG":          models.Organization,
	"ORGANIZATION": models.Organization,
	"PERSON":       models.Person,
	"PER":          models.Person,
	"GPE":          models.Place,
	"LOC":          models.Place,
	"LOCATION":     models.Place,
	"FAC":          models.Place,
}

// ExtractEntities returns the organizations, people and places named in
// text in the order they appear. Spans with any other label are skipped.
func ExtractEntities(
	ctx context.Context,
	svc models.LinguisticService,
	text string,
) ([]models.EntityMatch, error) {
	spans, err := svc.TagNamedEntities(ctx, text)
	if err != nil {
		return []models.EntityMatch{}, err
	}

	matches := make([]models.EntityMatch, 0, len(spans))
	for _, span := range spans {
		category, ok := entityLabels[strings.ToUpper(strings.TrimSpace(span.Tag))]
		if !ok {
			continue
		}
		matches = append(matches, models.EntityMatch{Category: category, Text: span.Text})
	}

	return matches, nil
}
