package model

import "fmt"

// Label is a distortion marker as it appears in annotated code, e.g. "//I3".
type Label string

// Distortion labels I1..I6.
const (
	LabelDereference Label = "//I1"
	LabelLiteral     Label = "//I2"
	LabelControlFlow Label = "//I3"
	LabelRedundancy  Label = "//I4"
	LabelReturn      Label = "//I5"
	LabelUntyped     Label = "//I6"
)

// AllLabels lists the distortion labels in taxonomy order.
var AllLabels = []Label{
	LabelDereference,
	LabelLiteral,
	LabelControlFlow,
	LabelRedundancy,
	LabelReturn,
	LabelUntyped,
}

// AnnotatedLine is one line of annotated code. Label is empty for unannotated lines.
type AnnotatedLine struct {
	Number int
	Code   string
	Label  Label
}

// Report represents the annotation of one query or block.
type Report struct {
	Source     File
	QueryIndex int
	// BlockIndex is -1 when the query was processed without splitting.
	BlockIndex int
	Selected   []string
	Context    string
	Answer     string
	Error      error
}

// Heading returns the result heading used in answer files.
func (r Report) Heading() string {
	if r.BlockIndex < 0 {
		return fmt.Sprintf("Query %d:", r.QueryIndex+1)
	}

	return fmt.Sprintf("Query %d, Block %d:", r.QueryIndex+1, r.BlockIndex+1)
}

// Counts holds confusion-matrix tallies.
type Counts struct {
	TP int
	TN int
	FP int
	FN int
}

// Metrics are the derived evaluation scores.
type Metrics struct {
	Accuracy    float64
	Precision   float64
	Recall      float64
	F1          float64
	Specificity float64
}

// LabelResult holds tallies and metrics for a single label.
type LabelResult struct {
	Label   Label
	Counts  Counts
	Metrics Metrics
}

// Evaluation compares model output annotations against ground truth.
type Evaluation struct {
	Overall        Counts
	OverallMetrics Metrics
	ByLabel        []LabelResult
	FalsePositives []AnnotatedLine
	FalseNegatives []AnnotatedLine
}
