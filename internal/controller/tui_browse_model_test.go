package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBrowseModel_LoadingView(t *testing.T) {
	model := newBrowseModel()

	if got := model.View(); got != "Loading selections…\n" {
		t.Fatalf("View() = %q", got)
	}
}

func TestBrowseModel_SelectionsMsg(t *testing.T) {
	updated, _ := newBrowseModel().Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	updated, _ = updated.Update(selectionsMsg{selections: sampleSelections()})

	model := updated.(browseModel)

	if !model.rendered {
		t.Fatal("model not rendered after selectionsMsg")
	}

	if len(model.selectionList.Items()) != 2 {
		t.Fatalf("items = %d, want 2", len(model.selectionList.Items()))
	}

	if model.totalLines != 2 || model.queries != 2 {
		t.Fatalf("totalLines=%d queries=%d", model.totalLines, model.queries)
	}

	view := model.View()
	for _, want := range []string{"FidelityGPT Line Selection", "Blocks: 2", "Query 1:", "return", "return v1;"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestBrowseModel_NavigationResetsAnimation(t *testing.T) {
	updated, _ := newBrowseModel().Update(selectionsMsg{selections: sampleSelections()})
	model := updated.(browseModel)
	model.animOffset = 9

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(browseModel)

	if model.selectionList.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", model.selectionList.Index())
	}

	if model.animOffset != 0 || model.lastSelected != 1 {
		t.Fatalf("animOffset=%d lastSelected=%d", model.animOffset, model.lastSelected)
	}
}

func TestBrowseModel_TickAdvancesAnimation(t *testing.T) {
	updated, _ := newBrowseModel().Update(selectionsMsg{selections: sampleSelections()})
	updated, cmd := updated.Update(tickMsg{})

	if updated.(browseModel).animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", updated.(browseModel).animOffset)
	}

	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

func TestBrowseModel_Quit(t *testing.T) {
	_, cmd := newBrowseModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncate me", 6, "trunc…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestAnimateScroll(t *testing.T) {
	if got := animateScroll("short", 10, 100); got != "short" {
		t.Fatalf("animateScroll(short) = %q", got)
	}

	if got := animateScroll("a long path", 5, 0); got != "a lo…" {
		t.Fatalf("animateScroll during pause = %q", got)
	}

	if got := animateScroll("abcdefgh", 4, 7); got != "cdef" {
		t.Fatalf("animateScroll(offset 7) = %q", got)
	}

	if got := animateScroll("abc", 0, 3); got != "" {
		t.Fatalf("animateScroll(width 0) = %q", got)
	}
}
