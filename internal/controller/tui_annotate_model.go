package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// annotationResult holds the outcome of one annotated query or block.
type annotationResult struct {
	path    string
	heading string
	status  string
	answer  string
	err     string
}

// Implement list.Item interface for annotationResult.
func (r annotationResult) FilterValue() string {
	return r.path + " " + r.heading + " " + r.status
}

// resultDelegate renders annotation results in the list.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(annotationResult)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	fileWidth := m.Width() - 32 // heading (20) + status (8) + spacing (4)

	var headingStyle, statusStyle, fileStyle lipgloss.Style

	var displayFile string

	if isSelected {
		base := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		headingStyle = base.Width(20)
		statusStyle = base.Width(8)
		fileStyle = base

		displayFile = animateScroll(result.path, fileWidth, d.offset)
	} else {
		statusColor := lipgloss.Color("2")
		if result.status != "ok" {
			statusColor = lipgloss.Color("1")
		}

		headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(20)
		statusStyle = lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(8)
		fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayFile = truncateToWidth(result.path, fileWidth)
	}

	line := fmt.Sprintf("%s  %s  %s",
		headingStyle.Render(result.heading),
		statusStyle.Render(result.status),
		fileStyle.Render(displayFile),
	)
	_, _ = fmt.Fprint(w, line)
}

// annotateModel shows per-worker progress and the results gathered so far.
type annotateModel struct {
	width           int
	height          int
	progressBar     progress.Model
	workers         int
	totalFiles      int
	startedFiles    int
	workerFiles     map[int]string
	results         []annotationResult
	failed          int
	resultsList     list.Model
	delegate        resultDelegate
	rendered        bool
	animOffset      int
	lastSelected    int
	showAnswer      bool
	selectedAnswer  string
	selectedHeading string
}

func newAnnotateModel() annotateModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 10)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return annotateModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		workerFiles:  make(map[int]string),
		lastSelected: -1,
	}
}

func (m annotateModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m annotateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case concurrencyMsg:
		m.workers = msg.workers
		m.totalFiles = msg.files
		m.startedFiles = 0
		m.rendered = true

	case startAnnotationMsg:
		m = m.handleStartAnnotation(msg)

	case completedAnnotationMsg:
		m = m.handleCompletedAnnotation(msg)
	}

	return m, cmd
}

func (m annotateModel) View() string {
	if !m.rendered {
		return "Indexing knowledge base…\n"
	}

	title := titleStyle.Render("FidelityGPT Annotation")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  Workers: %s  •  Results: %s  •  Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.startedFiles)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", m.workers)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.results))),
		accentStyle.Render(fmt.Sprintf("%d", m.failed)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent()))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • enter/space answer • q quit")

	sections := []string{title, summary, progressView, m.renderWorkerBox(), m.renderResultsBox()}
	if answer := m.renderAnswerBox(); answer != "" {
		sections = append(sections, answer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, append(sections, footer)...)
}

func (m annotateModel) progressPercent() float64 {
	if m.totalFiles == 0 {
		return 0
	}

	return float64(m.startedFiles) / float64(m.totalFiles)
}

func (m annotateModel) renderWorkerBox() string {
	availableWidth := m.width - 8

	digits := len(fmt.Sprintf("%d", max(m.workers-1, 0)))
	labelFormat := fmt.Sprintf("Worker %%%dd: %%s", digits)
	prefixWidth := 7 + digits + 2

	lines := make([]string, 0, m.workers)

	for i := range m.workers {
		file, ok := m.workerFiles[i]

		content := dimStyle.Render("idle")
		if ok {
			content = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14")).
				Render(truncateToWidth(file, max(availableWidth-prefixWidth, 10)))
		}

		lines = append(lines, fmt.Sprintf(labelFormat, i, content))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(max(m.width-4, 20)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m annotateModel) renderResultsBox() string {
	listWidth := m.width - 4

	listHeight := m.height - 14 - m.workers - m.answerBoxHeight()
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headers := headerStyle.
		Width(listWidth).
		Render(fmt.Sprintf("%-20s  %-8s  %s", "Query", "Status", "File"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))
}

func (m annotateModel) answerMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

func (m annotateModel) answerBoxHeight() int {
	if !m.showAnswer || m.selectedAnswer == "" {
		return 0
	}

	return min(len(strings.Split(m.selectedAnswer, "\n")), m.answerMaxLines()) + 3
}

func (m annotateModel) renderAnswerBox() string {
	if !m.showAnswer || m.selectedAnswer == "" {
		return ""
	}

	width := max(m.width-8, 10)
	lines := strings.Split(m.selectedAnswer, "\n")

	if maxLines := m.answerMaxLines(); len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "…")
	}

	body := make([]string, 0, len(lines))
	for _, line := range lines {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		if strings.Contains(line, "//I") || strings.Contains(line, "// I") {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		}

		body = append(body, style.Render(truncateToWidth(line, width)))
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth(m.selectedHeading, width))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(max(m.width-4, 20)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(body, "\n")))
}

func (m annotateModel) handleStartAnnotation(msg startAnnotationMsg) annotateModel {
	m.startedFiles++
	m.workerFiles[msg.worker] = msg.path
	m.rendered = true

	return m
}

func (m annotateModel) handleCompletedAnnotation(msg completedAnnotationMsg) annotateModel {
	result := annotationResult{
		path:    msg.path,
		heading: msg.heading,
		status:  msg.status,
		answer:  msg.answer,
		err:     msg.err,
	}
	if result.err != "" {
		m.failed++
	}

	m.results = append(m.results, result)

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)
	m.rendered = true

	return m
}

func (m annotateModel) handleKeyMsg(msg tea.KeyMsg) (annotateModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter", " ":
		m.toggleSelectedAnswer()
		return m, nil
	}

	newList, cmd := m.resultsList.Update(msg)
	m.resultsList = newList

	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
		m.showAnswer = false
		m.selectedAnswer = ""
		m.selectedHeading = ""
	}

	return m, cmd
}

func (m *annotateModel) toggleSelectedAnswer() {
	result, ok := m.resultsList.SelectedItem().(annotationResult)
	if !ok {
		return
	}

	answer := strings.TrimSpace(result.answer)
	if result.err != "" {
		answer = result.err
	}

	if answer == "" || (m.showAnswer && m.selectedAnswer == answer) {
		m.showAnswer = false
		m.selectedAnswer = ""
		m.selectedHeading = ""

		return
	}

	m.showAnswer = true
	m.selectedAnswer = answer
	m.selectedHeading = fmt.Sprintf("%s • %s", result.heading, result.path)
}

func (m annotateModel) handleWindowSize(msg tea.WindowSizeMsg) annotateModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m annotateModel) handleTickMsg(_ tickMsg) (annotateModel, tea.Cmd) {
	if len(m.results) > 0 && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
