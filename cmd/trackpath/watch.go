package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/homotopy/internal/coretracker"
	"github.com/san-kum/homotopy/internal/htsystems"
	"github.com/san-kum/homotopy/internal/pathviz"
	"github.com/spf13/cobra"
)

var (
	watchHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	watchLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	watchValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	watchHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// watchModel drives a single coretracker.Tracker one step per tick,
// the live-dashboard shape the teacher's viz.Model uses for a
// simulation loop, showing path-tracking diagnostics (ω, digits_lost,
// Δs, status) in place of pendulum angle/energy.
type watchModel struct {
	tr       *coretracker.Tracker
	scenario htsystems.Scenario
	running  bool
	samples  []complex128
	ts       []complex128
	omegaLog []float64
	done     bool
}

func newWatchModel(scenario htsystems.Scenario, tr *coretracker.Tracker, x0 []complex128) (watchModel, error) {
	if err := tr.Setup(x0, complex(1, 0), complex(0, 0)); err != nil {
		return watchModel{}, err
	}
	return watchModel{tr: tr, scenario: scenario, running: true}, nil
}

func (m watchModel) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case tickMsg:
		if m.running && !m.done {
			m.tr.Step()
			cs := m.tr.State()
			if !cs.LastStepFailed {
				m.samples = append(m.samples, cs.X[0])
				m.ts = append(m.ts, cs.T)
				m.omegaLog = append(m.omegaLog, cs.Omega)
			}
			if cs.Status.IsTerminal() {
				m.done = true
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m watchModel) View() string {
	cs := m.tr.State()
	var s strings.Builder
	s.WriteString(watchHeaderStyle.Render(strings.ToUpper(m.scenario.Name)) + "\n")

	status := "tracking"
	if m.done {
		status = cs.Status.String()
	} else if !m.running {
		status = "paused"
	}
	s.WriteString(watchLabelStyle.Render("status") + watchValueStyle.Render(status) + "\n")
	s.WriteString(watchLabelStyle.Render("t") + watchValueStyle.Render(fmt.Sprintf("%v", cs.T)) + "\n")
	s.WriteString(watchLabelStyle.Render("delta_s") + watchValueStyle.Render(fmt.Sprintf("%.3e", cs.DeltaS)) + "\n")
	s.WriteString(watchLabelStyle.Render("omega") + watchValueStyle.Render(fmt.Sprintf("%.4f", cs.Omega)) + "\n")
	s.WriteString(watchLabelStyle.Render("digits_lost") + watchValueStyle.Render(fmt.Sprintf("%.2f", cs.DigitsLost)) + "\n")
	s.WriteString(watchLabelStyle.Render("accepted") + watchValueStyle.Render(fmt.Sprintf("%d", cs.AcceptedSteps)) + "\n")
	s.WriteString(watchLabelStyle.Render("rejected") + watchValueStyle.Render(fmt.Sprintf("%d", cs.RejectedSteps)) + "\n\n")

	if len(m.samples) > 1 {
		s.WriteString(pathviz.PlotTrajectory(m.samples, m.ts, 40, 10) + "\n")
	}
	if len(m.omegaLog) > 1 {
		s.WriteString(pathviz.PlotOmegaSeries(m.omegaLog, 6) + "\n")
	}

	s.WriteString(watchHelpStyle.Render("space: pause/resume   q: quit"))
	return s.String()
}

func runWatch(cmd *cobra.Command, args []string) error {
	scenario, err := htsystems.Resolve(systemName)
	if err != nil {
		return err
	}
	pred, err := resolvePredictor(predName)
	if err != nil {
		return err
	}
	if len(scenario.Starts) == 0 {
		return fmt.Errorf("system %q has no start solutions", systemName)
	}

	tr := coretracker.NewTracker(scenario.H, pred, coretracker.DefaultOptions())
	m, err := newWatchModel(scenario, tr, scenario.Starts[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
