package controller

import m "github.com/ZhouZhiping045/FidelityGPT/internal/model"

// Message types.
type selectionsMsg struct {
	selections []m.Selection
}

type concurrencyMsg struct {
	workers int
	files   int
}

type startAnnotationMsg struct {
	worker int
	path   string
}

type completedAnnotationMsg struct {
	path    string
	heading string
	status  string
	answer  string
	err     string
}

// List item types.
type selectionItem struct {
	path      string
	heading   string
	selection m.Selection
}

func (s selectionItem) FilterValue() string {
	return s.path + " " + s.heading
}
