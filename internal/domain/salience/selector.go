package salience

import (
	"slices"
	"strings"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

const (
	baseTarget    = 5
	targetStep    = 9
	maxTarget     = 10
	headerLineIdx = 0
)

// Candidates drops the query header (first line) and every blank or
// brace-only line. Remaining lines keep their original text.
func Candidates(queryLines []string) []string {
	if len(queryLines) <= headerLineIdx+1 {
		return []string{}
	}

	candidates := make([]string, 0, len(queryLines)-1)

	for _, line := range queryLines[headerLineIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isBrace(trimmed) {
			continue
		}

		candidates = append(candidates, line)
	}

	return candidates
}

// TargetSize returns the nominal number of lines to select from a pool of n candidates.
func TargetSize(n int) int {
	if n <= baseTarget {
		return n
	}

	return min(baseTarget+(n-baseTarget)/targetStep, maxTarget)
}

// Select returns the selected lines of a query in selection order.
func Select(queryLines []string, weights m.WeightTable) []string {
	selected := SelectClassified(queryLines, weights)

	texts := make([]string, 0, len(selected))
	for _, line := range selected {
		texts = append(texts, line.Text)
	}

	return texts
}

// SelectClassified picks at most one line per category by strength, tops the
// result up to TargetSize lines, then appends one line for every category
// still missing even if that exceeds the target.
func SelectClassified(queryLines []string, weights m.WeightTable) []m.ClassifiedLine {
	candidates := Candidates(queryLines)
	target := TargetSize(len(candidates))

	ranked := make([]m.ClassifiedLine, 0, len(candidates))
	for _, line := range candidates {
		ranked = append(ranked, Classify(line, weights))
	}

	slices.SortStableFunc(ranked, func(a, b m.ClassifiedLine) int {
		return b.Strength - a.Strength
	})

	s := newSelection(len(ranked))

	// diversity pass
	for i, line := range ranked {
		if len(s.lines) == target {
			break
		}

		if line.Category != m.CategoryNone && !s.hasCategory(line.Category) {
			s.add(i, line)
		}
	}

	// size completion
	for i, line := range ranked {
		if len(s.lines) >= target {
			break
		}

		if !s.hasText(line.Text) {
			s.add(i, line)
		}
	}

	// category completion, may exceed target
	for i, line := range ranked {
		if line.Category == m.CategoryNone || s.hasCategory(line.Category) || s.picked[i] {
			continue
		}

		s.add(i, line)
	}

	return s.lines
}

type selection struct {
	lines      []m.ClassifiedLine
	picked     []bool
	texts      map[string]struct{}
	categories map[m.Category]struct{}
}

func newSelection(n int) *selection {
	return &selection{
		lines:      make([]m.ClassifiedLine, 0, min(n, maxTarget+len(m.AllCategories))),
		picked:     make([]bool, n),
		texts:      make(map[string]struct{}, n),
		categories: make(map[m.Category]struct{}, len(m.AllCategories)),
	}
}

func (s *selection) add(idx int, line m.ClassifiedLine) {
	s.lines = append(s.lines, line)
	s.picked[idx] = true
	s.texts[line.Text] = struct{}{}

	if line.Category != m.CategoryNone {
		s.categories[line.Category] = struct{}{}
	}
}

func (s *selection) hasCategory(category m.Category) bool {
	_, ok := s.categories[category]

	return ok
}

func (s *selection) hasText(text string) bool {
	_, ok := s.texts[text]

	return ok
}
