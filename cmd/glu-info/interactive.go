package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/dynbind/binder"
	"github.com/wippyai/dynbind/symtab"
)

type interactiveModel struct {
	err      error
	cache    *binder.Cache
	result   string
	status   string
	funcs    []symtab.Spec
	inputs   []textinput.Model
	selected int
	focusIdx int
	height   int
	state    modelState
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(c *binder.Cache) *interactiveModel {
	return &interactiveModel{
		cache: c,
		funcs: c.Table().Specs(),
		state: stateSelectFunc,
	}
}

type callResultMsg struct {
	err    error
	result string
}

type preloadMsg struct {
	err   error
	count int
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "p":
			if m.state == stateSelectFunc {
				m.status = "preloading..."
				return m, m.preload
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
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
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult

	case preloadMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("preload failed: %v", msg.err))
		} else {
			m.status = resultStyle.Render(fmt.Sprintf("preloaded %d symbols", msg.count))
		}
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
	f := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(f.Args))
	for i, k := range f.Args {
		ti := textinput.New()
		ti.Placeholder = k.String()
		ti.Prompt = fmt.Sprintf("arg%d: ", i)
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) preload() tea.Msg {
	err := m.cache.Preload()
	return preloadMsg{err: err, count: len(m.funcs)}
}

func (m *interactiveModel) callFunction() tea.Msg {
	f := m.funcs[m.selected]
	args := make([]any, len(m.inputs))
	for i, input := range m.inputs {
		v, err := parseArg(f.Args[i], input.Value())
		if err != nil {
			return callResultMsg{err: fmt.Errorf("arg%d: %w", i, err)}
		}
		args[i] = v
	}

	result, err := m.cache.Call(f.Name, args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: formatResult(f.Return, result)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("GLU Browser"))
	b.WriteString(" ")
	b.WriteString(m.cache.Library())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function to call:\n\n")
		start, end := m.window()
		for i := start; i < end; i++ {
			f := m.funcs[i]
			mark := "○ "
			if m.cache.IsBound(f.Name) {
				mark = "● "
			}
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + mark + f.String()))
			} else {
				b.WriteString("  " + mark + m.formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • p preload all • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(f.Name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(f.Args[i].String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(f.Name)))
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

// window returns the slice of funcs that fits the terminal, keeping the
// selection visible.
func (m *interactiveModel) window() (start, end int) {
	rows := len(m.funcs)
	if m.height > 0 {
		rows = max(m.height-8, 5)
	}
	if rows >= len(m.funcs) {
		return 0, len(m.funcs)
	}
	start = max(m.selected-rows/2, 0)
	end = min(start+rows, len(m.funcs))
	return end - rows, end
}

func (m *interactiveModel) formatFunc(f symtab.Spec) string {
	return funcStyle.Render(f.Name) + typeStyle.Render(f.Signature())
}

func runInteractive(c *binder.Cache) error {
	p := tea.NewProgram(newInteractiveModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
