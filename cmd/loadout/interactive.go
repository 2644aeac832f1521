package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/talentfoundry/loadout/codec"
	"github.com/talentfoundry/loadout/override"
	"github.com/talentfoundry/loadout/talent"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	validStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	cat     *talent.Catalog
	encoded string
	loadout *codec.Loadout
	report  codec.Report
	err     error
	input   textinput.Model
	cursor  int
	state   inspectorState
}

type inspectorState int

const (
	stateBrowse inspectorState = iota
	stateDirective
)

func runInteractive(cat *talent.Catalog, encoded string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	lo, err := codec.Decode(encoded, cat)
	if err != nil {
		return err
	}

	m := &inspectorModel{
		cat:     cat,
		encoded: encoded,
		loadout: lo,
		report:  codec.Validate(lo.Selections, cat),
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateBrowse {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == stateBrowse && m.cursor < m.cat.Len()-1 {
				m.cursor++
			}

		case "m":
			if m.state == stateBrowse {
				ti := textinput.New()
				ti.Placeholder = "Fireblast:2,-Ice Barrier"
				ti.Prompt = "directives: "
				ti.Width = 60
				ti.Focus()
				m.input = ti
				m.state = stateDirective
				return m, nil
			}

		case "enter":
			if m.state == stateDirective {
				m.applyDirectives(m.input.Value())
				m.state = stateBrowse
				return m, nil
			}

		case "esc":
			if m.state == stateDirective {
				m.state = stateBrowse
				m.err = nil
			}
		}
	}

	if m.state == stateDirective {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) applyDirectives(text string) {
	dirs, err := override.ParseDirectives(text)
	if err != nil {
		m.err = err
		return
	}
	out, err := override.Modify(m.encoded, dirs, m.cat)
	if err != nil {
		m.err = err
		return
	}
	lo, err := codec.Decode(out, m.cat)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.encoded = out
	m.loadout = lo
	m.report = codec.Validate(lo.Selections, m.cat)
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Tree %d — %d nodes selected", m.loadout.TreeID, len(m.loadout.Selections))))
	b.WriteString("\n\n")

	nodes := m.cat.Nodes()
	top := m.cursor - 10
	if top < 0 {
		top = 0
	}
	for i := top; i < len(nodes) && i < top+20; i++ {
		n := &nodes[i]
		pick, chosen := m.loadout.Selections[n.ID]

		line := fmt.Sprintf("%-28s", nodeName(n))
		if chosen {
			line += rankStyle.Render(fmt.Sprintf(" %d/%d", pick.Rank, n.MaxRank))
			if pick.EntryIndex >= 0 && pick.EntryIndex < len(n.Entries) {
				line += " " + n.Entries[pick.EntryIndex]
			}
		} else {
			line += helpStyle.Render(" —")
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else if chosen {
			b.WriteString(nodeStyle.Render("  " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if m.report.Valid {
		b.WriteString(validStyle.Render("build is valid"))
	} else {
		for _, p := range m.report.Problems {
			b.WriteString(errorStyle.Render("✗ " + p))
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteByte('\n')
	}

	if m.state == stateDirective {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: apply  esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓: move  m: modify  q: quit"))
	}

	return b.String()
}

func nodeName(n *talent.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("#%d", n.ID)
}
