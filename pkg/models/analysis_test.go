package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnalysisRequest(t *testing.T) {
	t.Run("no kinds selected enables everything", func(t *testing.T) {
		req := NewAnalysisRequest([]string{"Hello", "world"}, 0, 10)

		assert.Equal(t, "Hello world", req.Text)
		assert.Equal(t, FullKindSet(), req.Enabled)
		for _, k := range AllKinds {
			assert.True(t, req.Enabled.Has(k), k.String())
		}
	})

	t.Run("explicit selection is kept", func(t *testing.T) {
		req := NewAnalysisRequest([]string{"Apple", "is", "great"}, NewKindSet(Entities), 10)

		assert.Equal(t, []Kind{Entities}, req.Enabled.Kinds())
		assert.Equal(t, "Apple is great", req.Text)
	})

	t.Run("words are joined with single spaces", func(t *testing.T) {
		req := NewAnalysisRequest([]string{"a", " b", "c "}, 0, 1)
		assert.Equal(t, "a  b c ", req.Text)
	})

	t.Run("zero value request is treated as all kinds", func(t *testing.T) {
		req := &AnalysisRequest{Text: "x"}
		assert.Equal(t, FullKindSet(), req.EffectiveKinds())
	})
}

func TestKindSet(t *testing.T) {
	s := NewKindSet(Associations, LanguageDetection)

	assert.True(t, s.Has(Associations))
	assert.True(t, s.Has(LanguageDetection))
	assert.False(t, s.Has(Sentiment))
	assert.False(t, s.IsEmpty())
	assert.Equal(t, []Kind{LanguageDetection, Associations}, s.Kinds())
	assert.Equal(t, "{language-detection,associations}", s.String())
	assert.Len(t, FullKindSet().Kinds(), 5)
	assert.Equal(t, "unknown", Kind(42).String())
}
