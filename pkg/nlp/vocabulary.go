package nlp

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed vocabulary.txt
var defaultVocabulary string

// LoadVocabulary returns the candidate words for embedding neighbor lookups.
// An empty path selects the built-in English list.
func LoadVocabulary(path string) ([]string, error) {
	if path == "" {
		return parseVocabulary(defaultVocabulary), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	words := parseVocabulary(string(data))
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary file %s has no words", path)
	}
	return words, nil
}

// parseVocabulary reads one word per line. Blank lines, # comments and
// duplicates are skipped.
func parseVocabulary(data string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, line := range strings.Split(data, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}
