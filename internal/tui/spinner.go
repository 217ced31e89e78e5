package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// LoadingIndicator renders a spinner, the current stage and, once a total
// is known, a progress bar
type LoadingIndicator struct {
	spinner      spinner.Model
	message      string
	done         int
	total        int
	showProgress bool
}

// NewLoadingIndicator creates a new loading indicator
func NewLoadingIndicator(message string) *LoadingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return &LoadingIndicator{
		spinner: s,
		message: message,
	}
}

// SetProgress records done out of total units of work
func (l *LoadingIndicator) SetProgress(done, total int) {
	l.done = done
	l.total = total
	l.showProgress = total > 0
}

// SetMessage updates the loading message
func (l *LoadingIndicator) SetMessage(message string) {
	l.message = message
}

// Tick returns the command driving the spinner animation
func (l *LoadingIndicator) Tick() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its tick messages
func (l *LoadingIndicator) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Percent returns the completed share in the range 0-100
func (l *LoadingIndicator) Percent() float64 {
	if l.total <= 0 {
		return 0
	}
	return float64(l.done) * 100 / float64(l.total)
}

// View renders the loading indicator
func (l *LoadingIndicator) View() string {
	if !l.showProgress {
		return fmt.Sprintf("%s %s", l.spinner.View(), messageStyle.Render(l.message))
	}
	return fmt.Sprintf("%s %s %s %d/%d",
		l.spinner.View(),
		messageStyle.Render(l.message),
		renderProgressBar(l.Percent(), 20),
		l.done,
		l.total)
}

// renderProgressBar creates a simple progress bar
func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	filled := int(float64(width) * progress / 100)
	empty := width - filled

	return barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}
