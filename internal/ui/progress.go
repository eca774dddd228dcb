package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate progress indicator for an audit run.
type Spinner interface {
	// SetTitle updates the displayed activity.
	SetTitle(title string)

	// Stop tears the spinner down, leaving the terminal clean.
	Stop()
}

// NewSpinner creates a spinner appropriate for the environment:
// an animated one on a TTY, a log-line one otherwise.
func NewSpinner(title string, headless bool) Spinner {
	if headless {
		return newHeadlessSpinner(title, os.Stdout)
	}
	return newInteractiveSpinner(title)
}

// --- headless ---

type headlessSpinner struct {
	writer io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	fmt.Fprintf(w, "… %s\n", title)
	return &headlessSpinner{writer: w}
}

func (h *headlessSpinner) SetTitle(title string) {
	fmt.Fprintf(h.writer, "… %s\n", title)
}

func (h *headlessSpinner) Stop() {}

// --- interactive ---

// spinnerTitleMsg updates the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg stops the spinner.
type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// Spinner is display-only; ignore input.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

type interactiveSpinner struct {
	program *tea.Program
	done    chan struct{}
}

func newInteractiveSpinner(title string) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(title))
	s := &interactiveSpinner{program: p, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = p.Run()
	}()
	return s
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.program.Send(spinnerStopMsg{})
	<-s.done
}
