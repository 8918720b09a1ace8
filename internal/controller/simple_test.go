package controller

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_Lifecycle(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.Start(WithBrowseMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ui.Wait()
	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("lifecycle wrote output: %q", buf.String())
	}
}

func TestSimpleUI_DisplayWeights(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayWeights(sampleWeights()); err != nil {
		t.Fatalf("DisplayWeights() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"Weights from corpus (examples/corpus/fidelity_new.c)",
		"return", "48", "assignment", "23", "_TYPE", "TOTAL", "4")
}

func TestSimpleUI_DisplaySelections(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplaySelections(sampleSelections()); err != nil {
		t.Fatalf("DisplaySelections() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"queries/sample.c Query 1: lines 1-5: 2 selected, target 2 of 2 candidates",
		"return v1;", "v1 = 0;", "25",
		"Query 2, Block 2: lines 46-55: 0 selected")

	ui, buf = newTestSimpleUI()
	if err := ui.DisplaySelections(nil); err != nil {
		t.Fatalf("DisplaySelections(nil) error = %v", err)
	}

	assertContainsAll(t, buf.String(), "No queries found")
}

func TestSimpleUI_DisplayBlocks(t *testing.T) {
	ui, buf := newTestSimpleUI()

	query := &m.Query{Source: sampleSource, Index: 0}
	blocks := []m.Block{
		{Query: query, Index: 0, Start: 0, Lines: make([]string, 50)},
		{Query: query, Index: 1, Start: 45, Lines: make([]string, 12)},
	}

	if err := ui.DisplayBlocks(blocks); err != nil {
		t.Fatalf("DisplayBlocks() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "Query 1, Block 1:", "1-50", "Query 1, Block 2:", "46-57", "12", "TOTAL BLOCKS")
}

func TestSimpleUI_AnnotationProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayConcurrencyInfo(2, 3)

	var wg sync.WaitGroup
	for i := range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			ui.DisplayStartingAnnotation(*sampleSource, i)
		}()
	}

	wg.Wait()

	reports := sampleReports()
	ui.DisplayCompletedAnnotation(reports[0])
	ui.DisplayCompletedAnnotation(reports[1])

	assertContainsAll(t, buf.String(),
		"Annotating 3 file(s) with 2 worker(s)",
		"[worker 0] queries/sample.c",
		"[worker 1] queries/sample.c",
		"queries/sample.c Query 1: done (1 lines retrieved)",
		"queries/sample.c Query 2, Block 1: failed: boom")
}

func TestSimpleUI_DisplayEvaluation(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayEvaluation(sampleEvaluation()); err != nil {
		t.Fatalf("DisplayEvaluation() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"Overall", "0.7778", "0.6667", "//I1",
		"False positives: 1", "v2 = 0;",
		"False negatives: 1", "return v2;")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayReports(sampleReports()); err != nil {
		t.Fatalf("DisplayReports() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"Query 1:", "ok", "Query 2, Block 1:", "failed",
		"return v1; //I5", "error: boom", "TOTAL REPORTS")

	ui, buf = newTestSimpleUI()
	if err := ui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports(nil) error = %v", err)
	}

	assertContainsAll(t, buf.String(), "No reports found")
}
