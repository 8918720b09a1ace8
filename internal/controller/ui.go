// Package controller provides output adapters for displaying salience and annotation results.
package controller

import (
	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeReport StartMode = iota
	ModeBrowse
	ModeAnnotate
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithBrowseMode starts an interactive browser over selections.
func WithBrowseMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBrowse
	}
}

// WithAnnotateMode starts the annotation progress display.
func WithAnnotateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAnnotate
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeReport}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// UI defines the interface for displaying weights, selections, blocks,
// annotation progress, evaluations and stored reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayWeights(weights m.CorpusWeights) error
	DisplaySelections(selections []m.Selection) error
	DisplayBlocks(blocks []m.Block) error
	DisplayConcurrencyInfo(workers int, files int)
	DisplayStartingAnnotation(file m.File, workerID int)
	DisplayCompletedAnnotation(report m.Report)
	DisplayEvaluation(evaluation m.Evaluation) error
	DisplayReports(reports []m.Report) error
}

// blockHeading labels a block the way answer files do.
func blockHeading(block m.Block) string {
	report := m.Report{BlockIndex: block.Index}
	if block.Query != nil {
		report.QueryIndex = block.Query.Index
	}

	return report.Heading()
}

func blockPath(block m.Block) string {
	if block.Query == nil || block.Query.Source == nil {
		return ""
	}

	return string(block.Query.Source.Path)
}

func reportStatus(report m.Report) string {
	if report.Error != nil {
		return "failed"
	}

	return "ok"
}

func categoryName(category m.Category) string {
	if category == m.CategoryNone {
		return "-"
	}

	return string(category)
}
