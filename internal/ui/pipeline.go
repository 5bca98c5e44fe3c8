// Package ui renders inline terminal progress for pipeline runs.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nkurella/manimate/internal/engine"
	"github.com/nkurella/manimate/internal/ui/theme"
)

type stageMsg struct {
	stage   engine.Stage
	attempt int
}

type doneMsg struct {
	res *engine.AnimationResult
	err error
}

func stageLabel(stage engine.Stage, attempt int) string {
	switch stage {
	case engine.StageGenerating:
		return "generating scene code"
	case engine.StageRendering:
		return fmt.Sprintf("rendering (attempt %d)", attempt)
	case engine.StageRepairing:
		return fmt.Sprintf("repairing after render failure %d", attempt)
	default:
		return string(stage)
	}
}

type pipelineModel struct {
	spinner     spinner.Model
	finished    []string
	current     string
	done        bool
	interrupted bool
	res         *engine.AnimationResult
	err         error
}

func newPipelineModel() pipelineModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return pipelineModel{spinner: s}
}

func (m pipelineModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m pipelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		if m.current != "" {
			m.finished = append(m.finished, m.current)
		}
		m.current = stageLabel(msg.stage, msg.attempt)
		return m, nil

	case doneMsg:
		if m.current != "" {
			m.finished = append(m.finished, m.current)
			m.current = ""
		}
		m.done = true
		m.res = msg.res
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m pipelineModel) View() tea.View {
	var b strings.Builder

	okStyle := lipgloss.NewStyle().Foreground(theme.Success)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	failStyle := lipgloss.NewStyle().Foreground(theme.Error)

	for _, line := range m.finished {
		mark := okStyle.Render("✓")
		if m.done && m.res != nil && !m.res.Success && line == m.finished[len(m.finished)-1] {
			mark = failStyle.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", mark, dimStyle.Render(line)))
	}

	if !m.done && m.current != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), m.current))
	}

	return tea.NewView(b.String())
}

// RunPipeline drives run under an inline progress display and returns
// its result. run receives a progress callback safe to call from the
// pipeline goroutine.
func RunPipeline(run func(onProgress engine.ProgressFunc) (*engine.AnimationResult, error)) (*engine.AnimationResult, error) {
	p := tea.NewProgram(newPipelineModel())

	go func() {
		res, err := run(func(stage engine.Stage, attempt int) {
			p.Send(stageMsg{stage: stage, attempt: attempt})
		})
		p.Send(doneMsg{res: res, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(pipelineModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", final)
	}
	if m.interrupted {
		return nil, fmt.Errorf("interrupted")
	}
	return m.res, m.err
}
