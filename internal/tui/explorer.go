// Package tui provides an interactive terminal explorer for the
// component catalog: pick a component, adjust inputs and options, and
// watch the outputs update.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/podforge/podmodel/internal/catalog"
	"github.com/podforge/podmodel/internal/component"
)

var componentInfo = map[string]string{
	"battery":              "pack sizing from discharge curve",
	"friction_coefficient": "pad friction vs speed and temperature",
	"heat_generation":      "braking power split pad/track",
	"heat_conduction":      "conductive loss at contact",
	"heat_convective":      "convective loss to surroundings",
	"wheel_stress":         "rotating disc stress",
}

const (
	stateMenu = iota
	stateEdit
)

// field is one editable row: an input binding or a component option.
type field struct {
	name     string
	units    string
	isOption bool
}

type model struct {
	state, cursor int
	names         []string

	registry *catalog.Registry
	selected component.Component

	fields      []field
	inputs      component.Values
	fieldCursor int
	editing     bool
	editBuf     string

	outputs component.Values
	evalErr error
}

func NewExplorer() *model {
	r := catalog.NewRegistry()
	return &model{registry: r, names: r.List()}
}

func Run() error {
	p := tea.NewProgram(NewExplorer(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(key)
		case stateEdit:
			return m.editKey(key)
		}
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		comp, err := m.registry.Get(m.names[m.cursor])
		if err != nil {
			return m, nil
		}
		m.selected = comp
		m.state, m.fieldCursor = stateEdit, 0
		m.setupFields()
		m.evaluate()
	}
	return m, nil
}

func (m *model) setupFields() {
	m.fields = m.fields[:0]
	m.inputs = catalog.DefaultInputs(m.selected)
	for _, p := range m.selected.Inputs() {
		m.fields = append(m.fields, field{name: p.Name, units: p.Units})
	}
	if cfg, ok := m.selected.(component.Configurable); ok {
		for _, p := range cfg.Options() {
			m.fields = append(m.fields, field{name: p.Name, units: p.Units, isOption: true})
		}
	}
}

func (m *model) fieldValue(f field) float64 {
	if f.isOption {
		return m.selected.(component.Configurable).GetOptions()[f.name]
	}
	return m.inputs[f.name]
}

func (m *model) setFieldValue(f field, v float64) {
	if f.isOption {
		// SetOption only fails for unknown names, which setupFields rules out.
		_ = m.selected.(component.Configurable).SetOption(f.name, v)
		return
	}
	m.inputs[f.name] = v
}

func (m *model) evaluate() {
	m.outputs, m.evalErr = m.selected.Evaluate(m.inputs)
}

func (m model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
				m.setFieldValue(m.fields[m.fieldCursor], val)
				m.evaluate()
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}
	case "enter", " ":
		f := m.fields[m.fieldCursor]
		m.editing, m.editBuf = true, fmt.Sprintf("%g", m.fieldValue(f))
	case "left", "h":
		f := m.fields[m.fieldCursor]
		m.setFieldValue(f, m.fieldValue(f)*0.9)
		m.evaluate()
	case "right", "l":
		f := m.fields[m.fieldCursor]
		m.setFieldValue(f, m.fieldValue(f)*1.1)
		m.evaluate()
	}
	return m, nil
}

var (
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	brightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#88ff88"))
)

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateEdit:
		return m.viewEdit()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headStyle.Render("PODMODEL") + "\n    " + subStyle.Render("pod design analysis components") + "\n    " + subStyle.Render("──────────────────────────────") + "\n\n")
	for i, name := range m.names {
		desc := componentInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", cursorStyle.Render("▸"), brightStyle.Render(fmt.Sprintf("%-22s", name)), valueStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dimStyle.Render(fmt.Sprintf("  %-22s", name)), faintStyle.Render(desc)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + dimStyle.Render(" navigate  ") + keyStyle.Render("enter") + dimStyle.Render(" select  ") + keyStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewEdit() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headStyle.Render(strings.ToUpper(m.selected.Name())) + "\n    " + subStyle.Render(componentInfo[m.selected.Name()]) + "\n    " + subStyle.Render("──────────────────────────────") + "\n\n")

	for i, f := range m.fields {
		label := f.name
		if f.isOption {
			label = "opt " + f.name
		}
		valStr := fmt.Sprintf("%12.4g", m.fieldValue(f))
		if m.editing && i == m.fieldCursor {
			valStr = fmt.Sprintf("%12s", m.editBuf+"_")
		}
		unit := fmt.Sprintf("%-10s", f.units)
		if i == m.fieldCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s %s\n", cursorStyle.Render("▸"), brightStyle.Render(fmt.Sprintf("%-24s", label)), valueStyle.Bold(true).Render(valStr), faintStyle.Render(unit)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", dimStyle.Render(fmt.Sprintf("  %-24s", label)), faintStyle.Render(valStr), faintStyle.Render(unit)))
		}
	}

	b.WriteString("\n    " + subStyle.Render("outputs") + "\n")
	if m.evalErr != nil {
		b.WriteString("    " + errStyle.Render(m.evalErr.Error()) + "\n")
	} else {
		for _, p := range m.selected.Outputs() {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", okStyle.Render(fmt.Sprintf("%-26s", p.Name)), brightStyle.Render(fmt.Sprintf("%12.4g", m.outputs[p.Name])), faintStyle.Render(p.Units)))
		}
	}

	b.WriteString("\n    " + keyStyle.Render("j/k") + dimStyle.Render(" select  ") + keyStyle.Render("h/l") + dimStyle.Render(" nudge  ") + keyStyle.Render("enter") + dimStyle.Render(" type value  ") + keyStyle.Render("esc") + dimStyle.Render(" back") + "\n")
	return b.String()
}
