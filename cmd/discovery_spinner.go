package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type discoveryDoneMsg struct {
	err error
}

type discoverySpinnerModel struct {
	spinner spinner.Model
	label   string
	search  tea.Cmd
	err     error
	done    bool
}

func newDiscoverySpinnerModel(label string, search tea.Cmd) discoverySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
	)

	return discoverySpinnerModel{
		spinner: s,
		label:   label,
		search:  search,
	}
}

func (m discoverySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.search)
}

func (m discoverySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case discoveryDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m discoverySpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runDiscoverySpinner animates a spinner on output until search returns.
func runDiscoverySpinner(ctx context.Context, output io.Writer, search func(context.Context) error) error {
	searchCmd := func() tea.Msg {
		return discoveryDoneMsg{err: search(ctx)}
	}

	p := tea.NewProgram(
		newDiscoverySpinnerModel("Searching for LED Tomato devices...", searchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(discoverySpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
