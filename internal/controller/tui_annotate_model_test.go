package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runAnnotateModel(msgs ...tea.Msg) annotateModel {
	var model tea.Model = newAnnotateModel()
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}

	return model.(annotateModel)
}

func TestAnnotateModel_LoadingView(t *testing.T) {
	if got := newAnnotateModel().View(); got != "Indexing knowledge base…\n" {
		t.Fatalf("View() = %q", got)
	}
}

func TestAnnotateModel_Progress(t *testing.T) {
	model := runAnnotateModel(
		tea.WindowSizeMsg{Width: 120, Height: 40},
		concurrencyMsg{workers: 2, files: 4},
		startAnnotationMsg{worker: 0, path: "queries/a.c"},
		startAnnotationMsg{worker: 1, path: "queries/b.c"},
		completedAnnotationMsg{path: "queries/a.c", heading: "Query 1:", status: "ok", answer: "x = 1; //I4"},
		completedAnnotationMsg{path: "queries/b.c", heading: "Query 1:", status: "failed", err: "boom"},
	)

	if model.startedFiles != 2 || model.totalFiles != 4 {
		t.Fatalf("startedFiles=%d totalFiles=%d", model.startedFiles, model.totalFiles)
	}

	if got := model.progressPercent(); got != 0.5 {
		t.Fatalf("progressPercent() = %v, want 0.5", got)
	}

	if len(model.results) != 2 || model.failed != 1 {
		t.Fatalf("results=%d failed=%d", len(model.results), model.failed)
	}

	view := model.View()
	for _, want := range []string{"FidelityGPT Annotation", "Worker 0", "queries/a.c", "queries/b.c", "failed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestAnnotateModel_IdleWorkers(t *testing.T) {
	model := runAnnotateModel(tea.WindowSizeMsg{Width: 80, Height: 30}, concurrencyMsg{workers: 1, files: 1})

	if !strings.Contains(model.View(), "idle") {
		t.Fatalf("idle worker not shown:\n%s", model.View())
	}
}

func TestAnnotateModel_ToggleAnswer(t *testing.T) {
	model := runAnnotateModel(
		tea.WindowSizeMsg{Width: 120, Height: 40},
		concurrencyMsg{workers: 1, files: 1},
		completedAnnotationMsg{path: "queries/a.c", heading: "Query 1:", status: "ok", answer: "x = 1; //I4"},
	)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(annotateModel)

	if !model.showAnswer || model.selectedAnswer != "x = 1; //I4" {
		t.Fatalf("showAnswer=%v selectedAnswer=%q", model.showAnswer, model.selectedAnswer)
	}

	if !strings.Contains(model.View(), "Query 1: • queries/a.c") {
		t.Fatalf("answer header missing:\n%s", model.View())
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if updated.(annotateModel).showAnswer {
		t.Fatal("second enter should hide the answer")
	}
}

func TestAnnotateModel_ToggleShowsError(t *testing.T) {
	model := runAnnotateModel(completedAnnotationMsg{path: "a.c", heading: "Query 1:", status: "failed", err: "boom"})
	model.toggleSelectedAnswer()

	if model.selectedAnswer != "boom" {
		t.Fatalf("selectedAnswer = %q, want boom", model.selectedAnswer)
	}
}

func TestAnnotateModel_Quit(t *testing.T) {
	_, cmd := newAnnotateModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c should return tea.Quit")
	}
}

func TestAnnotateModel_TickSchedulesNext(t *testing.T) {
	_, cmd := newAnnotateModel().Update(tickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}
