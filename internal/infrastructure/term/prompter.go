package term

import (
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

// HuhPrompter drives interactive select/confirm forms on the controlling
// terminal.
type HuhPrompter struct{}

// NewPrompter builds a prompter.
func NewPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// Enabled reports whether stdin is a terminal. Callers fall back to their
// documented defaults when it is not.
func (p *HuhPrompter) Enabled() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Select presents options and returns the chosen index.
func (p *HuhPrompter) Select(title string, options []string, defaultIndex int) (int, error) {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	selected := options[defaultIndex]
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return defaultIndex, err
	}
	for i, option := range options {
		if option == selected {
			return i, nil
		}
	}
	return defaultIndex, nil
}

// Confirm asks a yes/no question.
func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	value := defaultValue
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return value, nil
}

var _ ports.Prompter = (*HuhPrompter)(nil)
