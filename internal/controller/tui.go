package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("8"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements UI using Bubble Tea for the interactive modes and lipgloss
// for static reports.
type TUI struct {
	output io.Writer

	mu        sync.Mutex
	program   *tea.Program
	done      chan struct{}
	started   bool
	mode      StartMode
	completed int
	failed    int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for browse and annotate modes.
// Report mode renders directly to the output.
func (t *TUI) Start(options ...StartOption) error {
	cfg := resolveStartConfig(options)

	t.mu.Lock()
	t.mode = cfg.mode
	t.completed, t.failed = 0, 0
	t.mu.Unlock()

	if cfg.mode == ModeReport {
		return nil
	}

	return t.startWithModel(t.modelFor(cfg.mode))
}

func (t *TUI) modelFor(mode StartMode) tea.Model {
	if mode == ModeAnnotate {
		return newAnnotateModel()
	}

	return newBrowseModel()
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	done := make(chan struct{})

	t.program = program
	t.done = done
	t.started = true

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// ensureStarted starts the program for the current mode if Start was skipped.
func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started, mode := t.started, t.mode
	t.mu.Unlock()

	if started || mode == ModeReport {
		return
	}

	_ = t.startWithModel(t.modelFor(mode))
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program, started := t.program, t.started
	t.mu.Unlock()

	if !started || program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program and prints the annotation summary when one ran.
func (t *TUI) Close() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}

	program, done, mode := t.program, t.done, t.mode
	completed, failed := t.completed, t.failed
	t.started = false
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}

	if done != nil {
		<-done
	}

	if mode == ModeAnnotate {
		t.print(summaryStyle.Render(fmt.Sprintf("Annotated %s reports  •  Failed: %s",
			accentStyle.Render(fmt.Sprintf("%d", completed)),
			accentStyle.Render(fmt.Sprintf("%d", failed)))) + "\n")
	}
}

// DisplayWeights renders the category weight table.
func (t *TUI) DisplayWeights(weights m.CorpusWeights) error {
	rows := make([]string, 0, len(m.AllCategories))
	for _, category := range m.AllCategories {
		rows = append(rows, fmt.Sprintf("%-12s %8d %8d", category, weights.Counts[category], weights.Table[category]))
	}

	t.print(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("FidelityGPT Category Weights"),
		summaryStyle.Render(fmt.Sprintf("Source: %s  •  Corpus: %s  •  Lines: %s",
			accentStyle.Render(string(weights.Source)),
			accentStyle.Render(string(weights.Corpus)),
			accentStyle.Render(fmt.Sprintf("%d", weights.Counts.Total())))),
		renderBox(fmt.Sprintf("%-12s %8s %8s", "Category", "Lines", "Weight"), rows),
	) + "\n")

	return nil
}

// DisplaySelections feeds the browser, or prints the selections in report mode.
func (t *TUI) DisplaySelections(selections []m.Selection) error {
	t.mu.Lock()
	mode := t.mode
	t.mu.Unlock()

	if mode == ModeBrowse {
		t.ensureStarted()
		t.send(selectionsMsg{selections: selections})

		return nil
	}

	sections := []string{titleStyle.Render("FidelityGPT Line Selection")}

	for _, selection := range selections {
		rows := make([]string, 0, len(selection.Lines))
		for _, line := range selection.Lines {
			rows = append(rows, renderClassifiedLine(line, 100))
		}

		sections = append(sections,
			summaryStyle.Render(selectionSummary(selection)),
			renderBox(fmt.Sprintf("%-12s %8s  %s", "Category", "Strength", "Line"), rows))
	}

	t.print(lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n")

	return nil
}

// DisplayBlocks renders the window geometry of every block.
func (t *TUI) DisplayBlocks(blocks []m.Block) error {
	rows := make([]string, 0, len(blocks))
	for _, block := range blocks {
		rows = append(rows, fmt.Sprintf("%-20s %9s %6d  %s",
			blockHeading(block),
			fmt.Sprintf("%d-%d", block.Start+1, block.End()),
			len(block.Lines),
			blockPath(block)))
	}

	t.print(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("FidelityGPT Blocks"),
		summaryStyle.Render(fmt.Sprintf("Total Blocks: %s", accentStyle.Render(fmt.Sprintf("%d", len(blocks))))),
		renderBox(fmt.Sprintf("%-20s %9s %6s  %s", "Block", "Lines", "Size", "Path"), rows),
	) + "\n")

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(workers int, files int) {
	t.ensureStarted()
	t.send(concurrencyMsg{workers: workers, files: files})
}

// DisplayStartingAnnotation shows which file a worker picked up.
func (t *TUI) DisplayStartingAnnotation(file m.File, workerID int) {
	t.ensureStarted()
	t.send(startAnnotationMsg{worker: workerID, path: string(file.Path)})
}

// DisplayCompletedAnnotation records the outcome of one query or block.
func (t *TUI) DisplayCompletedAnnotation(report m.Report) {
	msg := completedAnnotationMsg{
		path:    string(report.Source.Path),
		heading: report.Heading(),
		status:  reportStatus(report),
		answer:  report.Answer,
	}

	t.mu.Lock()
	t.completed++

	if report.Error != nil {
		t.failed++
		msg.err = report.Error.Error()
	}
	t.mu.Unlock()

	t.ensureStarted()
	t.send(msg)
}

// DisplayEvaluation renders overall and per-label metrics and the mismatched lines.
func (t *TUI) DisplayEvaluation(evaluation m.Evaluation) error {
	header := fmt.Sprintf("%-8s %4s %4s %4s %4s %9s %9s %9s %9s %11s",
		"Label", "TP", "TN", "FP", "FN", "Accuracy", "Precision", "Recall", "F1", "Specificity")

	rows := []string{evaluationLine("Overall", evaluation.Overall, evaluation.OverallMetrics)}
	for _, result := range evaluation.ByLabel {
		rows = append(rows, evaluationLine(string(result.Label), result.Counts, result.Metrics))
	}

	t.print(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("FidelityGPT Evaluation"),
		summaryStyle.Render(fmt.Sprintf("F1: %s  •  Accuracy: %s",
			accentStyle.Render(fmt.Sprintf("%.4f", evaluation.OverallMetrics.F1)),
			accentStyle.Render(fmt.Sprintf("%.4f", evaluation.OverallMetrics.Accuracy)))),
		renderBox(header, rows),
		renderAnnotatedBox("False positives", evaluation.FalsePositives),
		renderAnnotatedBox("False negatives", evaluation.FalseNegatives),
	) + "\n")

	return nil
}

// DisplayReports renders stored reports and their answers.
func (t *TUI) DisplayReports(reports []m.Report) error {
	failed := 0
	rows := make([]string, 0, len(reports))

	for _, report := range reports {
		status := okStyle.Render(fmt.Sprintf("%-6s", reportStatus(report)))
		if report.Error != nil {
			failed++
			status = failedStyle.Render(fmt.Sprintf("%-6s", reportStatus(report)))
		}

		rows = append(rows, fmt.Sprintf("%-20s %s %8d  %s",
			report.Heading(), status, len(report.Selected), report.Source.Path))
	}

	sections := []string{
		titleStyle.Render("FidelityGPT Reports"),
		summaryStyle.Render(fmt.Sprintf("Total: %s  •  Failed: %s",
			accentStyle.Render(fmt.Sprintf("%d", len(reports))),
			accentStyle.Render(fmt.Sprintf("%d", failed)))),
		renderBox(fmt.Sprintf("%-20s %-6s %8s  %s", "Query", "Status", "Selected", "Path"), rows),
	}

	for _, report := range reports {
		body := report.Answer
		if report.Error != nil {
			body = failedStyle.Render(report.Error.Error())
		}

		sections = append(sections,
			summaryStyle.Render(accentStyle.Render(report.Heading())+" "+dimStyle.Render(string(report.Source.Path))+"\n"+body))
	}

	t.print(lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n")

	return nil
}

func (t *TUI) print(text string) {
	_, _ = fmt.Fprint(t.output, text)
}

func renderBox(header string, rows []string) string {
	if len(rows) == 0 {
		rows = []string{dimStyle.Render("(none)")}
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(header),
		strings.Join(rows, "\n"),
	))
}

func renderAnnotatedBox(title string, lines []m.AnnotatedLine) string {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, fmt.Sprintf("%5d %-5s %s", line.Number, line.Label, truncateToWidth(line.Code, 100)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		summaryStyle.Render(fmt.Sprintf("%s: %s", title, accentStyle.Render(fmt.Sprintf("%d", len(lines))))),
		renderBox(fmt.Sprintf("%5s %-5s %s", "Line", "Label", "Code"), rows),
	)
}

func renderClassifiedLine(line m.ClassifiedLine, width int) string {
	return fmt.Sprintf("%-12s %8d  %s", categoryName(line.Category), line.Strength,
		truncateToWidth(strings.TrimSpace(line.Text), width))
}

func selectionSummary(selection m.Selection) string {
	return fmt.Sprintf("%s %s  •  Lines %s  •  Selected %s  •  Target %s of %s",
		blockPath(selection.Block),
		accentStyle.Render(blockHeading(selection.Block)),
		accentStyle.Render(fmt.Sprintf("%d-%d", selection.Block.Start+1, selection.Block.End())),
		accentStyle.Render(fmt.Sprintf("%d", len(selection.Lines))),
		accentStyle.Render(fmt.Sprintf("%d", selection.Target)),
		accentStyle.Render(fmt.Sprintf("%d", selection.Candidates)))
}

func evaluationLine(label string, counts m.Counts, metrics m.Metrics) string {
	return fmt.Sprintf("%-8s %4d %4d %4d %4d %9.4f %9.4f %9.4f %9.4f %11.4f",
		label, counts.TP, counts.TN, counts.FP, counts.FN,
		metrics.Accuracy, metrics.Precision, metrics.Recall, metrics.F1, metrics.Specificity)
}
