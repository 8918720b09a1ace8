package salience

import (
	"math"
	"regexp"
	"strings"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var blockCommentPattern = regexp.MustCompile(`/\*.*?\*/`)

// AnalyzeCorpus tallies every classifiable corpus line against all
// categories and turns the frequencies into a weight table. The boolean is
// false when nothing was classifiable and the default table was returned.
func AnalyzeCorpus(content string) (m.WeightTable, m.CategoryCounts, bool) {
	counts := make(m.CategoryCounts, len(m.AllCategories))
	for _, category := range m.AllCategories {
		counts[category] = 0
	}

	for _, line := range CorpusLines(content) {
		for _, category := range Matches(line) {
			counts[category]++
		}
	}

	total := counts.Total()
	if total == 0 {
		return m.DefaultWeightTable(), counts, false
	}

	weights := make(m.WeightTable, len(m.AllCategories))
	for _, category := range m.AllCategories {
		ratio := float64(counts[category]) / float64(total)
		weights[category] = clampWeight(int(math.Round(ratio*100)) + m.MinWeight)
	}

	return weights, counts, true
}

// CorpusLines strips comments from every line and drops blank and
// brace-only lines.
func CorpusLines(content string) []string {
	var lines []string

	for _, line := range strings.Split(content, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}

		line = blockCommentPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)

		if line == "" || isBrace(line) {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

func clampWeight(weight int) int {
	return max(m.MinWeight, min(m.MaxWeight, weight))
}

func isBrace(trimmed string) bool {
	return trimmed == "{" || trimmed == "}"
}
