package nlp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type TextRecord struct {
	UUID     string `json:"uuid"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TextRequest is the body of every per-text endpoint of the NLP server.
type TextRequest struct {
	Texts []TextRecord `json:"texts"`
}

type LanguageRecord struct {
	UUID     string `json:"uuid"`
	Language string `json:"language"`
}

type LanguageResponse struct {
	Texts []LanguageRecord `json:"texts"`
}

// RawScore is a sentiment score token. The server may send it as a JSON
// string, a number or null; the analyzer parses it.
type RawScore string

func (s *RawScore) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = RawScore(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid sentiment score %s: %w", data, err)
	}
	*s = RawScore(n.String())
	return nil
}

type SentimentRecord struct {
	UUID  string   `json:"uuid"`
	Score RawScore `json:"score"`
}

type SentimentResponse struct {
	Texts []SentimentRecord `json:"texts"`
}

type Token struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
}

type LemmaRecord struct {
	UUID   string  `json:"uuid"`
	Tokens []Token `json:"tokens"`
}

type LemmaResponse struct {
	Texts []LemmaRecord `json:"texts"`
}

type EntityMatch struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type Entity struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Matches []EntityMatch `json:"matches"`
}

type EntityRecord struct {
	UUID     string   `json:"uuid"`
	Entities []Entity `json:"entities"`
}

type EntityResponse struct {
	Texts []EntityRecord `json:"texts"`
}

type NeighborRequest struct {
	Word     string `json:"word"`
	Count    int    `json:"count"`
	Language string `json:"language"`
}

type NeighborRecord struct {
	Word     string  `json:"word"`
	Distance float64 `json:"distance"`
}

type NeighborResponse struct {
	Neighbors []NeighborRecord `json:"neighbors"`
}
