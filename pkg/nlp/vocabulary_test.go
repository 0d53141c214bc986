package nlp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVocabulary(t *testing.T) {
	t.Run("built-in list", func(t *testing.T) {
		words, err := LoadVocabulary("")
		require.NoError(t, err)
		assert.Contains(t, words, "dog")
		assert.NotContains(t, words, "")
	})

	t.Run("file skips comments, blanks and duplicates", func(t *testing.T) {
		path := writeVocabulary(t, "# animals\ndog\n\n  cat \ndog\n")
		words, err := LoadVocabulary(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"dog", "cat"}, words)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := LoadVocabulary(writeVocabulary(t, "# nothing\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})
}
