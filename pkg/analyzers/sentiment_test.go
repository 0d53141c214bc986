package analyzers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getzep/textparser/pkg/testutils"
)

func TestScoreSentiment(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		err      error
		expected float64
	}{
		{name: "positive", raw: "0.42", expected: 0.42},
		{name: "negative", raw: "-1", expected: -1},
		{name: "padded", raw: " 0.5\n", expected: 0.5},
		{name: "absent", raw: "", expected: 0},
		{name: "unparseable", raw: "very happy", expected: 0},
		{name: "nan", raw: "NaN", expected: 0},
		{name: "service error", err: errors.New("down"), expected: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &testutils.FakeService{Score: tc.raw, ScoreErr: tc.err}

			score, err := ScoreSentiment(context.Background(), svc, "text")

			assert.Equal(t, tc.expected, score)
			assert.Equal(t, tc.err != nil, err != nil)
		})
	}
}
