package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Job is a unit of work shown behind the progress indicator
type Job func(ctx context.Context, r Reporter) error

type progressModel struct {
	indicator *LoadingIndicator
	finished  bool
	err       error
}

func newProgressModel(stage string) progressModel {
	return progressModel{indicator: NewLoadingIndicator(stage)}
}

func (m progressModel) Init() tea.Cmd {
	return m.indicator.Tick()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StageMsg:
		m.indicator.SetMessage(string(msg))
		return m, nil
	case TablesMsg:
		m.indicator.SetProgress(msg.Done, msg.Total)
		return m, nil
	case jobDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, m.indicator.Update(msg)
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	return m.indicator.View() + "\n"
}

// Interactive reports whether f is a terminal
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RunWithProgress runs job while rendering a spinner on out. If the display
// is interrupted the job's context is cancelled and its result awaited.
func RunWithProgress(ctx context.Context, out io.Writer, stage string, job Job) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(stage), tea.WithOutput(out), tea.WithInput(nil))

	errc := make(chan error, 1)
	go func() {
		err := job(ctx, programReporter{p: p})
		errc <- err
		p.Send(jobDoneMsg{err: err})
	}()

	_, runErr := p.Run()
	// The program may have quit before the job finished on a signal
	cancel()
	jobErr := <-errc
	if jobErr != nil {
		return jobErr
	}
	if runErr != nil {
		return fmt.Errorf("progress display failed: %w", runErr)
	}
	return nil
}

// RunQuiet runs job without any display
func RunQuiet(ctx context.Context, job Job) error {
	return job(ctx, quietReporter{})
}
