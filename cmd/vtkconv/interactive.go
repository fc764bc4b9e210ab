package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/vtkio/buffer"
	"github.com/wippyai/vtkio/vtk"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxViewValues caps how many values the data view renders.
const maxViewValues = 100_000

type browserState int

const (
	stateList browserState = iota
	stateData
)

type browser struct {
	doc      *vtk.Document
	source   string
	all      []entry
	visible  []int
	filter   textinput.Model
	view     viewport.Model
	selected int
	width    int
	height   int
	state    browserState
}

func newBrowser(doc *vtk.Document, source string, width, height int) *browser {
	ti := textinput.New()
	ti.Placeholder = "filter sections"
	ti.Prompt = "/ "
	ti.Width = 40

	m := &browser{
		doc:    doc,
		source: source,
		all:    entries(doc),
		filter: ti,
		view:   viewport.New(width, max(height-4, 1)),
	}
	m.resize(width, height)
	m.applyFilter()
	return m
}

func (m *browser) Init() tea.Cmd {
	return nil
}

func (m *browser) resize(width, height int) {
	m.width, m.height = width, height
	m.view.Width = width
	m.view.Height = max(height-4, 1)
}

// applyFilter keeps the entries whose label contains the filter text.
func (m *browser) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0]
	for i, e := range m.all {
		if q == "" || strings.Contains(strings.ToLower(e.label()), q) {
			m.visible = append(m.visible, i)
		}
	}
	m.selected = min(m.selected, max(len(m.visible)-1, 0))
}

func (m *browser) current() (entry, bool) {
	if len(m.visible) == 0 {
		return entry{}, false
	}
	return m.all[m.visible[m.selected]], true
}

func (m *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.filter.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.filter.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		if m.state == stateData {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc", "enter", "backspace":
				m.state = stateList
				return m, nil
			}
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
		case "/":
			return m, m.filter.Focus()
		case "enter":
			if e, ok := m.current(); ok && e.data != nil {
				m.openData(e)
			}
		}
	}
	return m, nil
}

func (m *browser) openData(e entry) {
	text := buffer.Head(e.data, maxViewValues).String()
	if e.data.Len() > maxViewValues {
		text += fmt.Sprintf(" ... (%d more)", e.data.Len()-maxViewValues)
	}
	m.view.SetContent(lipgloss.NewStyle().Width(max(m.width, 1)).Render(text))
	m.view.GotoTop()
	m.state = stateData
}

func (m *browser) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("VTK Browser"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString("\n")

	if m.state == stateData {
		e, _ := m.current()
		b.WriteString(e.label() + ": " + e.detail + "\n")
		b.WriteString(m.view.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf("↑/↓ scroll • %3.f%% • esc back • q quit", m.view.ScrollPercent()*100)))
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n")

	rows := max(m.height-4, 1)
	start := max(0, m.selected-rows+1)
	end := min(len(m.visible), start+rows)
	for i := start; i < end; i++ {
		e := m.all[m.visible[i]]
		line := e.label() + "  " + e.detail
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  no matching sections"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select • enter view data • / filter • q quit"))
	return b.String()
}

func runInteractive(doc *vtk.Document, source string) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	p := tea.NewProgram(newBrowser(doc, source, width, height), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
