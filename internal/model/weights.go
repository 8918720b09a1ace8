package model

// Weight bounds applied to every WeightTable entry.
const (
	MinWeight = 10
	MaxWeight = 50
)

// WeightTable maps each category to its integer weight in [MinWeight, MaxWeight].
// Tables are built once and treated as read-only afterwards.
type WeightTable map[Category]int

// CategoryCounts holds per-category line tallies from a corpus.
type CategoryCounts map[Category]int

// Total returns the sum of all tallies.
func (c CategoryCounts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}

	return total
}

// WeightSource tells where a WeightTable came from.
type WeightSource string

const (
	// WeightsFromCorpus marks a table derived from a reference corpus.
	WeightsFromCorpus WeightSource = "corpus"
	// WeightsDefault marks the fallback table.
	WeightsDefault WeightSource = "default"
)

// DefaultWeightTable returns a fresh copy of the fallback weights.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		CategoryAssignment:  20,
		CategoryAddition:    25,
		CategoryVariable:    26,
		CategoryReturn:      25,
		CategoryLoop:        25,
		CategoryConditional: 25,
		CategoryFunction:    20,
		CategoryTypedCast:   26,
	}
}

// CorpusWeights is a weight table together with the statistics it was derived from.
type CorpusWeights struct {
	Corpus Path
	Source WeightSource
	Counts CategoryCounts
	Table  WeightTable
}
