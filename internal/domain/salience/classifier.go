// Package salience scores decompiled code lines by syntactic category and
// selects small, category-diverse subsets of them.
package salience

import (
	"regexp"
	"strings"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var (
	variablePattern = regexp.MustCompile(`\bint\b|\blong\b|\bchar\b|\bWORD\b|\bBYTE\b|\bvoid\b`)
	functionPattern = regexp.MustCompile(`\w+\s*\(.*\)`)
	castPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`\(_DWORD\b`),
		regexp.MustCompile(`\(_BYTE\b`),
		regexp.MustCompile(`\(_QWORD\b`),
	}
)

type predicate struct {
	category m.Category
	match    func(line string) bool
}

// predicates are evaluated in m.AllCategories order. Substring tests are
// intentionally loose: "for" also matches inside identifiers like "format".
var predicates = []predicate{
	{m.CategoryAssignment, isAssignment},
	{m.CategoryAddition, func(line string) bool { return strings.Contains(line, "+") }},
	{m.CategoryVariable, variablePattern.MatchString},
	{m.CategoryReturn, func(line string) bool { return strings.Contains(line, "return") }},
	{m.CategoryLoop, isLoop},
	{m.CategoryConditional, func(line string) bool {
		return strings.Contains(line, "if") || strings.Contains(line, "else")
	}},
	{m.CategoryFunction, functionPattern.MatchString},
	{m.CategoryTypedCast, isTypedCast},
}

func isAssignment(line string) bool {
	return strings.Contains(line, "=") && !isLoop(line)
}

func isLoop(line string) bool {
	return strings.Contains(line, "for") || strings.Contains(line, "while")
}

func isTypedCast(line string) bool {
	for _, p := range castPatterns {
		if p.MatchString(line) {
			return true
		}
	}

	return false
}

// Matches returns every category the line matches, in evaluation order.
func Matches(line string) []m.Category {
	var categories []m.Category

	for _, p := range predicates {
		if p.match(line) {
			categories = append(categories, p.category)
		}
	}

	return categories
}

// Classify returns the highest weighted category the line matches. Ties go
// to the category evaluated first. Lines without a match get
// (m.CategoryNone, 0).
func Classify(line string, weights m.WeightTable) m.ClassifiedLine {
	best := m.ClassifiedLine{Text: line, Category: m.CategoryNone}

	for _, category := range Matches(line) {
		weight := weights[category]
		if best.Category == m.CategoryNone || weight > best.Strength {
			best.Category = category
			best.Strength = weight
		}
	}

	return best
}
