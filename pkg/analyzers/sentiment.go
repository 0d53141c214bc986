package analyzers

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/getzep/textparser/pkg/models"
)

// ScoreSentiment returns the valence of text as a whole paragraph. A missing
// or unparseable score is neutral (0.0).
func ScoreSentiment(
	ctx context.Context,
	svc models.LinguisticService,
	text string,
) (float64, error) {
	raw, err := svc.ScoreSentiment(ctx, text)
	if err != nil {
		return 0, err
	}
	return parseScore(raw), nil
}

func parseScore(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		log.Debugf("unparseable sentiment score %q", raw)
		return 0
	}
	return score
}
