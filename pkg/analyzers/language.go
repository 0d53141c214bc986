package analyzers

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/getzep/textparser/pkg/models"
)

// DetectLanguage returns the dominant language of text as a BCP 47 tag, or
// models.UndeterminedLanguage when the service has no confident answer.
func DetectLanguage(
	ctx context.Context,
	svc models.LinguisticService,
	text string,
) (string, error) {
	raw, err := svc.IdentifyDominantLanguage(ctx, text)
	if err != nil {
		return models.UndeterminedLanguage, err
	}
	return normalizeLanguage(raw), nil
}

func normalizeLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.UndeterminedLanguage
	}
	tag, err := language.Parse(raw)
	if err != nil {
		log.Debugf("unparseable language tag %q: %v", raw, err)
		return models.UndeterminedLanguage
	}
	if tag == language.Und {
		return models.UndeterminedLanguage
	}
	return tag.String()
}
