package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matlabw/mex-runtime/hostapi"
	"github.com/matlabw/mex-runtime/hostmock"
	"github.com/matlabw/mex-runtime/mx"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectExt modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	host     *hostmock.Host
	exts     []sample
	inputs   []textinput.Model
	result   string
	selected int
	focusIdx int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	host := hostmock.New()
	hostapi.Bind(host)
	return &interactiveModel{
		host:  host,
		exts:  samples(),
		state: stateSelectExt,
	}
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectExt && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectExt && m.selected < len(m.exts)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectExt:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callExtension
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callExtension

			case stateShowResult:
				m.state = stateSelectExt
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectExt
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectExt
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	s := m.exts[m.selected]
	m.inputs = make([]textinput.Model, len(s.params))
	for i, p := range s.params {
		ti := textinput.New()
		ti.Placeholder = p.hint
		ti.Prompt = p.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callExtension() tea.Msg {
	s := m.exts[m.selected]

	in := make([]hostapi.Handle, len(m.inputs))
	args := make([]mx.Array, len(m.inputs))
	defer func() {
		for i := range args {
			args[i].Destroy()
		}
	}()
	for i, input := range m.inputs {
		a, err := parseArg(input.Value())
		if err != nil {
			return callResultMsg{err: fmt.Errorf("argument %s: %w", s.params[i].name, err)}
		}
		args[i] = a
		in[i] = a.Raw()
	}

	before := len(m.host.Raised())
	out := make([]hostapi.Handle, s.nlhs)
	s.entry(out, in)

	if raised := m.host.Raised(); len(raised) > before {
		r := raised[len(raised)-1]
		return callResultMsg{err: fmt.Errorf("%s: %s", r.ID, r.Message)}
	}

	var lines []string
	for i := range out {
		result := mx.Adopt(out[i])
		lines = append(lines, fmt.Sprintf("out[%d] = %s", i, describe(result)))
		if i == 0 {
			if err := storeAns(result); err == nil {
				lines = append(lines, "base.ans = "+describe(result))
			}
		}
		result.Destroy()
	}
	lines = append(lines, fmt.Sprintf("live handles: %d", m.host.LiveCount()))
	return callResultMsg{result: strings.Join(lines, "\n")}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MEX Runner"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectExt:
		b.WriteString("Select an extension to call:\n\n")
		for i, s := range m.exts {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatExt(s)))
			} else {
				b.WriteString(cursor + m.formatExt(s))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		s := m.exts[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(s.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(s.params[i].hint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		s := m.exts[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(s.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatExt(s sample) string {
	var params []string
	for _, p := range s.params {
		params = append(params, p.name+": "+typeStyle.Render(p.hint))
	}
	return funcStyle.Render(s.name) + "(" + strings.Join(params, ", ") + ") " + helpStyle.Render(s.desc)
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
