package tui

import tea "github.com/charmbracelet/bubbletea"

// Message types for a running parse
type (
	// StageMsg names the step the job is working on
	StageMsg string

	// TablesMsg reports how many tables have been walked
	TablesMsg struct {
		Done  int
		Total int
	}

	// jobDoneMsg is sent once the job returns
	jobDoneMsg struct {
		err error
	}
)

// Reporter lets a job publish progress while it runs. Implementations are
// safe for concurrent use.
type Reporter interface {
	Stage(name string)
	Tables(done, total int)
}

// programReporter forwards reports into a running program
type programReporter struct {
	p *tea.Program
}

func (r programReporter) Stage(name string) {
	r.p.Send(StageMsg(name))
}

func (r programReporter) Tables(done, total int) {
	r.p.Send(TablesMsg{Done: done, Total: total})
}

// quietReporter drops every report
type quietReporter struct{}

func (quietReporter) Stage(string)    {}
func (quietReporter) Tables(int, int) {}
