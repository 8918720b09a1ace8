package domain

import (
	"regexp"
	"sort"
	"strings"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var annotationPattern = regexp.MustCompile(`(.*?)(//\s*I\d)`)

var codeUnescaper = strings.NewReplacer(`\\`, `\`, `\t`, "\t", `\n`, "\n")

// ExtractAnnotations returns one AnnotatedLine per physical line of content.
// Annotated lines keep the code before the marker and the marker with its
// spaces removed ("// I3" becomes "//I3").
func ExtractAnnotations(content string) []m.AnnotatedLine {
	physical := strings.Split(content, "\n")
	lines := make([]m.AnnotatedLine, 0, len(physical))

	for i, line := range physical {
		match := annotationPattern.FindStringSubmatch(line)
		if match == nil {
			lines = append(lines, m.AnnotatedLine{Number: i + 1, Code: strings.TrimSpace(line)})

			continue
		}

		lines = append(lines, m.AnnotatedLine{
			Number: i + 1,
			Code:   strings.TrimSpace(match[1]),
			Label:  m.Label(strings.ReplaceAll(match[2], " ", "")),
		})
	}

	return lines
}

// NormalizeCode resolves the \\, \t and \n escapes some model outputs contain.
func NormalizeCode(code string) string {
	return codeUnescaper.Replace(code)
}

// annotationIndex maps normalized code to its last annotation, keeping
// first-seen key order.
type annotationIndex struct {
	order []string
	lines map[string]m.AnnotatedLine
}

func indexAnnotations(lines []m.AnnotatedLine) annotationIndex {
	idx := annotationIndex{lines: make(map[string]m.AnnotatedLine)}

	for _, line := range lines {
		if line.Label == "" {
			continue
		}

		code := NormalizeCode(line.Code)
		if _, seen := idx.lines[code]; !seen {
			idx.order = append(idx.order, code)
		}

		idx.lines[code] = m.AnnotatedLine{Number: line.Number, Code: code, Label: line.Label}
	}

	return idx
}

// CompareAnnotations tallies model annotations against ground truth. Lines
// annotated in both with different labels count as neither hit nor miss.
func CompareAnnotations(groundTruth, model []m.AnnotatedLine) (m.Counts, []m.AnnotatedLine, []m.AnnotatedLine) {
	gt := indexAnnotations(groundTruth)
	out := indexAnnotations(model)

	var (
		counts         m.Counts
		falsePositives []m.AnnotatedLine
		falseNegatives []m.AnnotatedLine
	)

	for _, code := range gt.order {
		want := gt.lines[code]

		got, ok := out.lines[code]
		if !ok {
			counts.FN++
			falseNegatives = append(falseNegatives, want)

			continue
		}

		if got.Label == want.Label {
			counts.TP++
		}
	}

	for _, code := range out.order {
		if _, ok := gt.lines[code]; !ok {
			counts.FP++
			falsePositives = append(falsePositives, out.lines[code])
		}
	}

	counts.TN = len(groundTruth) - counts.TP - counts.FN

	sortAnnotated(falsePositives)
	sortAnnotated(falseNegatives)

	return counts, falsePositives, falseNegatives
}

// CompareByLabel tallies per distortion label, in AllLabels order.
func CompareByLabel(groundTruth, model []m.AnnotatedLine) []m.LabelResult {
	gt := indexAnnotations(groundTruth)
	out := indexAnnotations(model)

	counts := make(map[m.Label]*m.Counts, len(m.AllLabels))
	for _, label := range m.AllLabels {
		counts[label] = &m.Counts{}
	}

	tally := func(label m.Label) *m.Counts {
		if c, ok := counts[label]; ok {
			return c
		}

		// Labels outside I1..I6 are tallied but not reported.
		c := &m.Counts{}
		counts[label] = c

		return c
	}

	for _, code := range gt.order {
		want := gt.lines[code]

		got, ok := out.lines[code]
		switch {
		case !ok:
			tally(want.Label).FN++
		case got.Label == want.Label:
			tally(want.Label).TP++
		}
	}

	for _, code := range out.order {
		if _, ok := gt.lines[code]; !ok {
			tally(out.lines[code].Label).FP++
		}
	}

	results := make([]m.LabelResult, 0, len(m.AllLabels))

	for _, label := range m.AllLabels {
		c := counts[label]
		c.TN = len(groundTruth) - c.TP - c.FN

		results = append(results, m.LabelResult{
			Label:   label,
			Counts:  *c,
			Metrics: CalculateMetrics(*c),
		})
	}

	return results
}

// CalculateMetrics derives the scores from c; a zero denominator yields 0.
func CalculateMetrics(c m.Counts) m.Metrics {
	var metrics m.Metrics

	metrics.Accuracy = ratio(c.TP+c.TN, c.TP+c.TN+c.FP+c.FN)
	metrics.Precision = ratio(c.TP, c.TP+c.FP)
	metrics.Recall = ratio(c.TP, c.TP+c.FN)
	metrics.Specificity = ratio(c.TN, c.TN+c.FP)

	if sum := metrics.Precision + metrics.Recall; sum > 0 {
		metrics.F1 = 2 * metrics.Precision * metrics.Recall / sum
	}

	return metrics
}

// Evaluate compares two annotated texts end to end.
func Evaluate(groundTruth, model string) m.Evaluation {
	gt := ExtractAnnotations(groundTruth)
	out := ExtractAnnotations(model)

	counts, falsePositives, falseNegatives := CompareAnnotations(gt, out)

	return m.Evaluation{
		Overall:        counts,
		OverallMetrics: CalculateMetrics(counts),
		ByLabel:        CompareByLabel(gt, out),
		FalsePositives: falsePositives,
		FalseNegatives: falseNegatives,
	}
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}

	return float64(num) / float64(den)
}

func sortAnnotated(lines []m.AnnotatedLine) {
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.Number != b.Number {
			return a.Number < b.Number
		}

		if a.Code != b.Code {
			return a.Code < b.Code
		}

		return a.Label < b.Label
	})
}
