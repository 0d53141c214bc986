package nlp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CosineSimilarity returns the cosine similarity of every row of X against
// every row of Y. X and Y must have the same number of columns.
func CosineSimilarity(X, Y *mat.Dense) (*mat.Dense, error) { // nolint: gocritic
	rX, cX := X.Dims()
	rY, cY := Y.Dims()

	if rX == 0 || rY == 0 {
		return &mat.Dense{}, nil
	}

	if cX != cY {
		return nil, fmt.Errorf(
			"number of columns in X and Y must be the same. X has shape [%d, %d] and Y has shape [%d, %d]",
			rX,
			cX,
			rY,
			cY,
		)
	}

	similarity := mat.NewDense(rX, rY, nil)
	similarity.Mul(X, Y.T())

	for i := 0; i < rX; i++ {
		xNorm := mat.Norm(X.RowView(i), 2)
		for j := 0; j < rY; j++ {
			val := similarity.At(i, j) / (xNorm * mat.Norm(Y.RowView(j), 2))
			if math.IsNaN(val) || math.IsInf(val, 0) {
				val = 0.0
			}
			similarity.Set(i, j, val)
		}
	}

	return similarity, nil
}

// CosineDistances returns 1 - cosine similarity between query and each of
// candidates, in candidate order.
func CosineDistances(query []float32, candidates [][]float32) ([]float64, error) {
	if len(candidates) == 0 {
		return []float64{}, nil
	}
	if len(query) == 0 {
		return nil, fmt.Errorf("query embedding is empty")
	}

	X := mat.NewDense(1, len(query), toFloat64(query))

	data := make([]float64, 0, len(candidates)*len(query))
	for i, c := range candidates {
		if len(c) != len(query) {
			return nil, fmt.Errorf(
				"candidate %d has %d dimensions, query has %d",
				i,
				len(c),
				len(query),
			)
		}
		data = append(data, toFloat64(c)...)
	}
	Y := mat.NewDense(len(candidates), len(query), data)

	similarity, err := CosineSimilarity(X, Y)
	if err != nil {
		return nil, err
	}

	distances := make([]float64, len(candidates))
	for j := range candidates {
		distances[j] = 1 - similarity.At(0, j)
	}
	return distances, nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
