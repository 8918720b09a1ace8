package controller

import (
	"errors"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var errSentinel = errors.New("boom")

var sampleSource = &m.File{Path: "queries/sample.c", Hash: "hash-a"}

func sampleSelections() []m.Selection {
	query := &m.Query{Source: sampleSource, Index: 0, Lines: []string{"int f()", "{", "  v1 = 0;", "  return v1;", "}"}}

	return []m.Selection{
		{
			Block:      m.Block{Query: query, Index: -1, Lines: query.Lines},
			Candidates: 2,
			Target:     2,
			Lines: []m.ClassifiedLine{
				{Text: "  return v1;", Category: m.CategoryReturn, Strength: 25},
				{Text: "  v1 = 0;", Category: m.CategoryAssignment, Strength: 20},
			},
		},
		{
			Block:      m.Block{Query: &m.Query{Source: sampleSource, Index: 1}, Index: 1, Start: 45, Lines: make([]string, 10)},
			Candidates: 0,
		},
	}
}

func sampleReports() []m.Report {
	return []m.Report{
		{Source: *sampleSource, QueryIndex: 0, BlockIndex: -1, Selected: []string{"  return v1;"}, Answer: "return v1; //I5"},
		{Source: *sampleSource, QueryIndex: 1, BlockIndex: 0, Error: errSentinel},
	}
}

func sampleEvaluation() m.Evaluation {
	return m.Evaluation{
		Overall:        m.Counts{TP: 2, TN: 5, FP: 1, FN: 1},
		OverallMetrics: m.Metrics{Accuracy: 0.7778, Precision: 0.6667, Recall: 0.6667, F1: 0.6667, Specificity: 0.8333},
		ByLabel: []m.LabelResult{
			{Label: m.LabelDereference, Counts: m.Counts{TP: 1, TN: 7, FN: 1}},
		},
		FalsePositives: []m.AnnotatedLine{{Number: 4, Code: "v2 = 0;", Label: m.LabelRedundancy}},
		FalseNegatives: []m.AnnotatedLine{{Number: 6, Code: "return v2;", Label: m.LabelReturn}},
	}
}

func sampleWeights() m.CorpusWeights {
	return m.CorpusWeights{
		Corpus: "examples/corpus/fidelity_new.c",
		Source: m.WeightsFromCorpus,
		Counts: m.CategoryCounts{m.CategoryReturn: 3, m.CategoryAssignment: 1},
		Table:  m.WeightTable{m.CategoryReturn: 48, m.CategoryAssignment: 23},
	}
}
