// Package term implements the CLI's terminal surfaces: the banner writer
// the pipeline reports progress through, and the interactive prompter.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noctalia-dev/noctalia-cli/internal/ports"
)

var (
	dimStyle     = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	stepStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// ConsoleUI renders section/step/success/info/error banners.
type ConsoleUI struct {
	out io.Writer
	err io.Writer
}

// NewConsoleUI builds a UI over stdout/stderr. Nil writers default to the
// process streams.
func NewConsoleUI(out, err io.Writer) *ConsoleUI {
	if out == nil {
		out = os.Stdout
	}
	if err == nil {
		err = os.Stderr
	}
	return &ConsoleUI{out: out, err: err}
}

// Section prints a ruled section header.
func (u *ConsoleUI) Section(title string) {
	line := dimStyle.Render(strings.Repeat("━", 40))
	fmt.Fprintf(u.out, "%s\n%s\n%s\n", line, titleStyle.Render(title), line)
}

// Step prints a progress step.
func (u *ConsoleUI) Step(message string) {
	fmt.Fprintf(u.out, "%s %s\n", stepStyle.Render("→"), message)
}

// Success prints a completed-step banner.
func (u *ConsoleUI) Success(message string) {
	fmt.Fprintf(u.out, "%s %s\n", successStyle.Render("✔"), message)
}

// Info prints an informational line.
func (u *ConsoleUI) Info(message string) {
	fmt.Fprintf(u.out, "%s %s\n", infoStyle.Render("i"), message)
}

// Error prints an error line to stderr.
func (u *ConsoleUI) Error(message string) {
	fmt.Fprintf(u.err, "%s %s\n", errorStyle.Render("x"), message)
}

var _ ports.UI = (*ConsoleUI)(nil)
