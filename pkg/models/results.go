package models

import "fmt"

// UndeterminedLanguage is reported when no dominant language can be decided.
const UndeterminedLanguage = "und"

// LemmaList holds one stem form per word token, in token order.
type LemmaList []string

// Association is a candidate word close to a source word in embedding space.
type Association struct {
	Candidate string
	Distance  float64
}

// AssociationResult holds the nearest candidates for Word, closest first.
type AssociationResult struct {
	Word       string
	Candidates []Association
}

type EntityCategory string

const (
	Organization EntityCategory = "Organization"
	Person       EntityCategory = "Person"
	Place        EntityCategory = "Place"
)

// EntityMatch is a named entity found in the input. Multi-word names are a
// single match.
type EntityMatch struct {
	Category EntityCategory
	Text     string
}

func (m EntityMatch) String() string {
	return fmt.Sprintf("%s: %s", m.Category, m.Text)
}
