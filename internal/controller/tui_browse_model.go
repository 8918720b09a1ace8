package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

type tickMsg time.Time

// Simple delegate for selection list items.
type selectionDelegate struct {
	offset int
}

func (d selectionDelegate) Height() int  { return 1 }
func (d selectionDelegate) Spacing() int { return 0 }
func (d selectionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d selectionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	sel, ok := item.(selectionItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var headingStyle, countStyle, pathStyle lipgloss.Style

	var displayPath string

	width := m.Width() - 32 // heading (20) + count (8) + spacing (4)

	if isSelected {
		base := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		headingStyle = base.Width(20)
		countStyle = base.Width(8).Align(lipgloss.Right)
		pathStyle = base

		displayPath = animateScroll(sel.path, width, d.offset)
	} else {
		headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(20)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(8).
			Align(lipgloss.Right)
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayPath = truncateToWidth(sel.path, width)
	}

	line := fmt.Sprintf("%s  %s  %s",
		headingStyle.Render(sel.heading),
		countStyle.Render(fmt.Sprintf("%d/%d", len(sel.selection.Lines), sel.selection.Target)),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	// Runes keep multi-byte characters intact.
	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browseModel lists selections and shows the classified lines of the highlighted one.
type browseModel struct {
	width         int
	height        int
	selectionList list.Model
	delegate      selectionDelegate
	totalLines    int
	queries       int
	rendered      bool
	animOffset    int
	lastSelected  int
}

func newBrowseModel() browseModel {
	delegate := selectionDelegate{}
	selectionList := list.New([]list.Item{}, delegate, 80, 20)
	selectionList.SetShowPagination(false)
	selectionList.SetShowFilter(true)
	selectionList.SetShowHelp(false)
	selectionList.SetShowTitle(false)
	selectionList.SetShowStatusBar(false)
	selectionList.FilterInput.Placeholder = "Filter by path…"

	return browseModel{
		selectionList: selectionList,
		delegate:      delegate,
		lastSelected:  -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.selectionList.SetWidth(m.width)

	case tickMsg:
		if m.selectionList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.selectionList.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.selectionList.Update(msg)
			m.selectionList = newList

			// Reset the scroll animation when the highlight moves.
			if m.selectionList.Index() != m.lastSelected {
				m.lastSelected = m.selectionList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.selectionList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case selectionsMsg:
		m = m.handleSelectionsMsg(msg)
	}

	return m, cmd
}

func (m browseModel) handleSelectionsMsg(msg selectionsMsg) browseModel {
	items := make([]list.Item, 0, len(msg.selections))
	queries := make(map[string]struct{})
	m.totalLines = 0

	for _, selection := range msg.selections {
		path := blockPath(selection.Block)
		heading := blockHeading(selection.Block)

		items = append(items, selectionItem{path: path, heading: heading, selection: selection})
		queries[path+" "+fmt.Sprintf("%d", selectionQueryIndex(selection))] = struct{}{}
		m.totalLines += len(selection.Lines)
	}

	m.queries = len(queries)
	m.selectionList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m browseModel) View() string {
	if !m.rendered {
		return "Loading selections…\n"
	}

	title := titleStyle.Render("FidelityGPT Line Selection")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Blocks: %s   Queries: %s   Selected lines: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.selectionList.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", m.queries)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalLines)),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		m.renderDetail(),
		footer,
	)
}

func (m browseModel) renderTable() string {
	// Half of the screen goes to the list, the rest to the detail pane.
	listHeight := m.height/2 - 6
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.selectionList.SetHeight(listHeight)
	m.selectionList.SetWidth(listWidth)

	headers := headerStyle.
		Width(listWidth).
		Render(fmt.Sprintf("%-20s  %8s  %s", "Block", "Lines", "File Path"))

	return boxStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.selectionList.View(),
		),
	)
}

func (m browseModel) renderDetail() string {
	sel, ok := m.selectionList.SelectedItem().(selectionItem)
	if !ok {
		return ""
	}

	width := m.width - 30
	if width < 20 {
		width = 20
	}

	rows := make([]string, 0, len(sel.selection.Lines))
	for _, line := range sel.selection.Lines {
		rows = append(rows, renderClassifiedLine(line, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		summaryStyle.Render(selectionSummary(sel.selection)),
		renderBox(fmt.Sprintf("%-12s %8s  %s", "Category", "Strength", "Line"), rows),
	)
}

func selectionQueryIndex(selection m.Selection) int {
	if selection.Block.Query == nil {
		return 0
	}

	return selection.Block.Query.Index
}
