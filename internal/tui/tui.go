// Package tui implements the interactive dice tray: a notation prompt on the
// bottom with the rolling history above it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/diceroll/dice"
	"github.com/lox/diceroll/internal/rolltable"
)

// Model represents the Bubble Tea model for the dice tray
type Model struct {
	src    dice.Source
	table  *rolltable.Table
	clock  quartz.Clock
	logger *log.Logger

	// UI components
	historyViewport viewport.Model
	notationInput   textinput.Model

	// State
	history     []rollEntry
	lastInput   string
	errText     string
	quitting    bool
	focusedPane int // 0 = history, 1 = input

	// Dimensions
	width  int
	height int
}

// Pane styles depend on focus, so they live on the model rather than with
// the static styles.
var (
	historyPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#626262")).
				Padding(0, 1)

	inputPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	focusedBorder = lipgloss.Color("#04B575")
)

// New creates a dice tray model. Rolls draw from src, "@name" words expand
// through table, and history entries are stamped with clock's time.
func New(src dice.Source, table *rolltable.Table, clock quartz.Clock, logger *log.Logger) *Model {
	vp := viewport.New(80, 20)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "3d6, 2d4 1d20, or @preset"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		src:             src,
		table:           table,
		clock:           clock,
		logger:          logger,
		historyViewport: vp,
		notationInput:   ti,
		history:         []rollEntry{},
		focusedPane:     1, // Start with input focused
	}
}

// rollEntry is one line of rolling history, kept unstyled so it can be
// rendered for the viewport and reported plainly.
type rollEntry struct {
	stamp    string
	notation string
	faces    string
	total    string
	note     string
}

func (e rollEntry) plain() string {
	line := fmt.Sprintf("%s  %s  %s = %s", e.stamp, e.notation, e.faces, e.total)
	if e.note != "" {
		line += "  (" + e.note + ")"
	}
	return line
}

func (e rollEntry) styled() string {
	line := fmt.Sprintf("%s  %s  %s = %s",
		TimestampStyle.Render(e.stamp),
		NotationStyle.Render(e.notation),
		FacesStyle.Render(e.faces),
		TotalStyle.Render(e.total))
	if e.note != "" {
		line += "  " + NoteStyle.Render("("+e.note+")")
	}
	return line
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.notationInput.Focus()
			} else {
				m.focusedPane = 0
				m.notationInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				m.roll(m.notationInput.Value())
				m.notationInput.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.historyViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.historyViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.historyViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.historyViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.historyViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.historyViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.notationInput, cmd = m.notationInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.historyViewport, cmd = m.historyViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// roll parses and rolls one line of input. An empty line repeats the last
// roll.
func (m *Model) roll(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		input = m.lastInput
	}
	if input == "" {
		return
	}

	entry, err := m.rollLine(input)
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.errText = ""
	m.lastInput = input
	m.addHistory(entry)
}

// rollLine expands presets, parses every term, combines them in order and
// rolls the lot. Notes on the presets used ride along on the entry.
func (m *Model) rollLine(input string) (rollEntry, error) {
	args := strings.Fields(input)
	var notes []string
	if m.table == nil {
		for _, arg := range args {
			if strings.HasPrefix(arg, rolltable.Prefix) {
				return rollEntry{}, fmt.Errorf("preset %s requires --table", arg)
			}
		}
	} else {
		expanded, err := m.table.Expand(args)
		if err != nil {
			return rollEntry{}, err
		}
		for _, arg := range args {
			if !strings.HasPrefix(arg, rolltable.Prefix) {
				continue
			}
			if roll, ok := m.table.Lookup(strings.TrimPrefix(arg, rolltable.Prefix)); ok && roll.Note != "" {
				notes = append(notes, roll.Note)
			}
		}
		args = expanded
	}

	var rolled *dice.Dice[uint32]
	for _, arg := range args {
		d, err := dice.Parse[uint32](arg)
		if err != nil {
			return rollEntry{}, err
		}
		if rolled == nil {
			rolled = d
		} else {
			rolled = rolled.Combine(d)
		}
	}
	if rolled == nil {
		return rollEntry{}, fmt.Errorf("nothing to roll")
	}

	rolled.RollAll(m.src)
	if m.logger != nil {
		m.logger.Debug("rolled", "notation", rolled.Notation(), "faces", rolled.Verbose(), "total", rolled.String())
	}

	return rollEntry{
		stamp:    m.clock.Now().Format("15:04:05"),
		notation: rolled.Notation(),
		faces:    rolled.Verbose(),
		total:    rolled.String(),
		note:     strings.Join(notes, "; "),
	}, nil
}

// addHistory appends an entry and keeps the viewport pinned to the newest
// roll.
func (m *Model) addHistory(entry rollEntry) {
	m.history = append(m.history, entry)
	m.historyViewport.SetContent(m.historyContent())
	if m.historyViewport.Height > 0 && m.historyViewport.Width > 0 {
		m.historyViewport.GotoBottom()
	}
}

func (m *Model) historyContent() string {
	lines := make([]string, len(m.history))
	for i, entry := range m.history {
		lines[i] = entry.styled()
	}
	return strings.Join(lines, "\n")
}

// History returns the plain-text history entries, newest last.
func (m *Model) History() []string {
	lines := make([]string, len(m.history))
	for i, entry := range m.history {
		lines[i] = entry.plain()
	}
	return lines
}

// Err returns the message shown for the most recent failed input, if any.
func (m *Model) Err() string {
	return m.errText
}

// View renders the tray
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		HeaderStyle.Render("dicetray"),
		m.renderHistoryPane(),
		m.renderInputPane(),
	)
}

func (m *Model) renderHistoryPane() string {
	m.historyViewport.SetContent(m.historyContent())

	style := historyPaneStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	if m.focusedPane == 0 {
		style = style.BorderForeground(focusedBorder)
	}
	return style.Render(m.historyViewport.View())
}

func (m *Model) renderInputPane() string {
	var content strings.Builder

	if m.errText != "" {
		content.WriteString(ErrorStyle.Render(m.errText))
		content.WriteString("\n")
	}
	content.WriteString(m.notationInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(HelpStyle.Render("History focused: ↑↓ scroll, Home/End, Tab to input"))
	} else {
		content.WriteString(HelpStyle.Render("Enter to roll • empty Enter rerolls • Tab to scroll • Ctrl+C to quit"))
	}

	style := inputPaneStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	if m.focusedPane == 1 {
		style = style.BorderForeground(focusedBorder)
	}
	return style.Render(content.String())
}

// updateDimensions resizes the panes to the terminal
func (m *Model) updateDimensions() {
	if m.height <= 0 || m.width <= 0 {
		return
	}

	// Input pane: error line, input field, help text, border and padding.
	inputPaneHeight := 7
	historyHeight := m.height - inputPaneHeight - 1
	if historyHeight < 3 {
		historyHeight = 3
	}

	m.historyViewport.Width = m.width - 4
	m.historyViewport.Height = historyHeight - 2

	m.notationInput.Width = m.width - 8
}
