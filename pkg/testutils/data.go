package testutils

import "github.com/getzep/textparser/pkg/models"

// AppleText is tagged by AppleNames.
const AppleText = "Apple opened a store in New York with Tim Cook"

var AppleNames = []models.TaggedSpan{
	{Start: 0, End: 5, Text: "Apple", Tag: "ORG"},
	{Start: 6, End: 12, Text: "opened"},
	{Start: 24, End: 32, Text: "New York", Tag: "GPE"},
	{Start: 38, End: 46, Text: "Tim Cook", Tag: "PERSON"},
}

// RunningText is tagged by RunningLemmas. "running" appears twice.
const RunningText = "running dogs , running"

var RunningLemmas = []models.TaggedSpan{
	{Start: 0, End: 7, Text: "running", Tag: "run"},
	{Start: 8, End: 12, Text: "dogs", Tag: "dog"},
	{Start: 13, End: 14, Text: ","},
	{Start: 15, End: 22, Text: "running", Tag: "run"},
}

// DogNeighbors holds five candidates for "dog", deliberately unsorted.
var DogNeighbors = []models.Neighbor{
	{Word: "wolf", Distance: 0.8712},
	{Word: "puppy", Distance: 0.4249},
	{Word: "cat", Distance: 0.6051},
	{Word: "hound", Distance: 0.5555},
	{Word: "fox", Distance: 0.9},
}
