package controller

import "testing"

func TestSelectionItem_FilterValue(t *testing.T) {
	item := selectionItem{path: "queries/a.c", heading: "Query 1:"}
	if got := item.FilterValue(); got != "queries/a.c Query 1:" {
		t.Fatalf("FilterValue() = %q", got)
	}
}

func TestAnnotationResult_FilterValue(t *testing.T) {
	result := annotationResult{path: "queries/a.c", heading: "Query 1, Block 2:", status: "failed"}
	if got := result.FilterValue(); got != "queries/a.c Query 1, Block 2: failed" {
		t.Fatalf("FilterValue() = %q", got)
	}
}
