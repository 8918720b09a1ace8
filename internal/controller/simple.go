package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

// SimpleUI implements UI using cobra Command's output and plain tables.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately, plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayWeights prints the category weight table.
func (s *SimpleUI) DisplayWeights(weights m.CorpusWeights) error {
	s.printf("Weights from %s (%s)\n", weights.Source, weights.Corpus)

	s.renderTable([]string{"Category", "Lines", "Weight"}, func(table *tablewriter.Table) {
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

		for _, category := range m.AllCategories {
			table.Append([]string{
				string(category),
				fmt.Sprintf("%d", weights.Counts[category]),
				fmt.Sprintf("%d", weights.Table[category]),
			})
		}

		table.SetFooter([]string{"Total", fmt.Sprintf("%d", weights.Counts.Total()), ""})
	})

	return nil
}

// DisplaySelections prints every selection with its classified lines.
func (s *SimpleUI) DisplaySelections(selections []m.Selection) error {
	if len(selections) == 0 {
		s.printf("No queries found\n")
		return nil
	}

	for _, selection := range selections {
		s.printf("\n%s %s lines %d-%d: %d selected, target %d of %d candidates\n",
			blockPath(selection.Block), blockHeading(selection.Block),
			selection.Block.Start+1, selection.Block.End(),
			len(selection.Lines), selection.Target, selection.Candidates)

		if len(selection.Lines) == 0 {
			continue
		}

		s.renderTable([]string{"Category", "Strength", "Line"}, func(table *tablewriter.Table) {
			table.SetAutoWrapText(false)

			for _, line := range selection.Lines {
				table.Append([]string{categoryName(line.Category), fmt.Sprintf("%d", line.Strength), strings.TrimSpace(line.Text)})
			}
		})
	}

	return nil
}

// DisplayBlocks prints the window geometry of every block.
func (s *SimpleUI) DisplayBlocks(blocks []m.Block) error {
	s.renderTable([]string{"Path", "Block", "Lines", "Size"}, func(table *tablewriter.Table) {
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

		for _, block := range blocks {
			table.Append([]string{
				blockPath(block),
				blockHeading(block),
				fmt.Sprintf("%d-%d", block.Start+1, block.End()),
				fmt.Sprintf("%d", len(block.Lines)),
			})
		}

		table.SetFooter([]string{"Total Blocks", fmt.Sprintf("%d", len(blocks)), "", ""})
	})

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(workers int, files int) {
	s.printf("Annotating %d file(s) with %d worker(s)\n", files, workers)
}

// DisplayStartingAnnotation shows which file a worker picked up.
func (s *SimpleUI) DisplayStartingAnnotation(file m.File, workerID int) {
	s.printf("[worker %d] %s\n", workerID, file.Path)
}

// DisplayCompletedAnnotation shows the outcome of one query or block.
func (s *SimpleUI) DisplayCompletedAnnotation(report m.Report) {
	if report.Error != nil {
		s.printf("%s %s failed: %v\n", report.Source.Path, report.Heading(), report.Error)
		return
	}

	s.printf("%s %s done (%d lines retrieved)\n", report.Source.Path, report.Heading(), len(report.Selected))
}

// DisplayEvaluation prints overall and per-label metrics followed by the mismatched lines.
func (s *SimpleUI) DisplayEvaluation(evaluation m.Evaluation) error {
	s.renderTable([]string{"Label", "TP", "TN", "FP", "FN", "Accuracy", "Precision", "Recall", "F1", "Specificity"},
		func(table *tablewriter.Table) {
			table.Append(evaluationRow("Overall", evaluation.Overall, evaluation.OverallMetrics))

			for _, result := range evaluation.ByLabel {
				table.Append(evaluationRow(string(result.Label), result.Counts, result.Metrics))
			}
		})

	s.printAnnotated("False positives", evaluation.FalsePositives)
	s.printAnnotated("False negatives", evaluation.FalseNegatives)

	return nil
}

// DisplayReports prints stored reports and their answers.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	failed := 0

	s.renderTable([]string{"Path", "Query", "Selected", "Status"}, func(table *tablewriter.Table) {
		for _, report := range reports {
			if report.Error != nil {
				failed++
			}

			table.Append([]string{
				string(report.Source.Path),
				report.Heading(),
				fmt.Sprintf("%d", len(report.Selected)),
				reportStatus(report),
			})
		}

		table.SetFooter([]string{"Total Reports", fmt.Sprintf("%d", len(reports)), "Failed", fmt.Sprintf("%d", failed)})
	})

	for _, report := range reports {
		if report.Error != nil {
			s.printf("\n%s %s\nerror: %v\n", report.Source.Path, report.Heading(), report.Error)
			continue
		}

		s.printf("\n%s %s\n%s\n", report.Source.Path, report.Heading(), report.Answer)
	}

	return nil
}

func (s *SimpleUI) printAnnotated(title string, lines []m.AnnotatedLine) {
	s.printf("\n%s: %d\n", title, len(lines))

	for _, line := range lines {
		s.printf("  %4d  %-5s %s\n", line.Number, line.Label, line.Code)
	}
}

func evaluationRow(label string, counts m.Counts, metrics m.Metrics) []string {
	return []string{
		label,
		fmt.Sprintf("%d", counts.TP),
		fmt.Sprintf("%d", counts.TN),
		fmt.Sprintf("%d", counts.FP),
		fmt.Sprintf("%d", counts.FN),
		fmt.Sprintf("%.4f", metrics.Accuracy),
		fmt.Sprintf("%.4f", metrics.Precision),
		fmt.Sprintf("%.4f", metrics.Recall),
		fmt.Sprintf("%.4f", metrics.F1),
		fmt.Sprintf("%.4f", metrics.Specificity),
	}
}

func (s *SimpleUI) renderTable(header []string, fill func(table *tablewriter.Table)) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	fill(table)

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
