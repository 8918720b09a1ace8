package controller

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrUnknownRenderer is returned for renderer names other than auto, plain and tui.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Renderer selects how command output is drawn.
type Renderer string

const (
	// RendererAuto draws the TUI on a terminal and plain tables otherwise.
	RendererAuto Renderer = "auto"
	// RendererPlain always prints plain tables.
	RendererPlain Renderer = "plain"
	// RendererTUI always draws the TUI.
	RendererTUI Renderer = "tui"
)

// ParseRenderer maps a --ui or config value onto a Renderer. Empty means auto.
func ParseRenderer(name string) (Renderer, error) {
	switch Renderer(name) {
	case "", RendererAuto:
		return RendererAuto, nil
	case RendererPlain, RendererTUI:
		return Renderer(name), nil
	default:
		return "", fmt.Errorf("%w %q (want auto, plain or tui)", ErrUnknownRenderer, name)
	}
}

// NewUI returns the UI drawing cmd's output with renderer.
func NewUI(cmd *cobra.Command, renderer Renderer) UI {
	if renderer.useTUI(cmd.OutOrStdout()) {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

func (r Renderer) useTUI(out io.Writer) bool {
	switch r {
	case RendererTUI:
		return true
	case RendererPlain:
		return false
	default:
		return isTerminal(out)
	}
}

// isTerminal reports whether out is attached to a terminal. Pipes, files
// and in-memory buffers are not.
func isTerminal(out io.Writer) bool {
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
