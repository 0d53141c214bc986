package analyzers

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/getzep/textparser/pkg/models"
)

// FindAssociations returns at most maxCount words near word, closest first,
// with distances rounded half away from zero to two decimal places. A missing
// embedding space yields an empty result and no error.
func FindAssociations(
	ctx context.Context,
	svc models.LinguisticService,
	word string,
	maxCount int,
) (models.AssociationResult, error) {
	result := models.AssociationResult{Word: word, Candidates: []models.Association{}}
	if maxCount <= 0 {
		return result, nil
	}

	neighbors, err := svc.NearestNeighbors(ctx, word, maxCount)
	if errors.Is(err, models.ErrEmbeddingUnavailable) {
		log.Debugf("no embedding available for %q", word)
		return result, nil
	}
	if err != nil {
		return result, err
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})
	if len(neighbors) > maxCount {
		neighbors = neighbors[:maxCount]
	}

	for _, n := range neighbors {
		result.Candidates = append(result.Candidates, models.Association{
			Candidate: n.Word,
			Distance:  RoundDistance(n.Distance),
		})
	}

	return result, nil
}

// RoundDistance rounds d half away from zero to two decimal places.
func RoundDistance(d float64) float64 {
	return math.Round(d*100) / 100
}
