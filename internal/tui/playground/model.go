// ============================================================================
// strext - String Extension Toolkit
// ============================================================================
//
// Package:     playground
// Description: Bubbletea model for the operation playground
// Author:      msto63
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package playground

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/internal/pipeline"
	"github.com/msto63/strext/utils/stringx"
)

// Version is set during build
var Version = "0.1.0"

// chrome is the number of lines taken by everything but the result list
const chrome = 10

// Config holds playground configuration
type Config struct {
	Registry *pipeline.Registry
	Logger   *log.Logger
	Initial  string
}

// Model is the main Bubbletea model for the playground
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	evaluator *Evaluator
	results   []Result
	cursor    int
	nameWidth int

	// inputs replaced by Enter, for ctrl+z
	history []string
}

// New creates a playground model
func New(cfg Config) (Model, error) {
	evaluator, err := NewEvaluator(cfg.Registry, cfg.Logger)
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Placeholder = "Type some text..."
	input.Prompt = "> "
	input.SetValue(cfg.Initial)
	input.CursorEnd()
	input.Focus()

	m := Model{
		input:     input,
		evaluator: evaluator,
	}
	m.recompute()

	for _, r := range m.results {
		if w := lipgloss.Width(r.Op); w > m.nameWidth {
			m.nameWidth = w
		}
	}

	return m, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		height := msg.Height - chrome
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - 8
		m.updateViewportContent()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.updateViewportContent()
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		if m.cursor < len(m.results) && m.results[m.cursor].Err == nil {
			m.history = append(m.history, m.input.Value())
			m.input.SetValue(m.results[m.cursor].Output)
			m.input.CursorEnd()
			m.recompute()
			m.updateViewportContent()
		}
		return m, nil

	case tea.KeyCtrlZ:
		if n := len(m.history); n > 0 {
			m.input.SetValue(m.history[n-1])
			m.input.CursorEnd()
			m.history = m.history[:n-1]
			m.recompute()
			m.updateViewportContent()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recompute()
		m.updateViewportContent()
	}
	return m, cmd
}

// Input returns the current input text
func (m Model) Input() string {
	return m.input.Value()
}

// Results returns the outcome of every operation on the current input
func (m Model) Results() []Result {
	return m.results
}

// Selected returns the result under the cursor
func (m Model) Selected() Result {
	if m.cursor < len(m.results) {
		return m.results[m.cursor]
	}
	return Result{}
}

func (m *Model) recompute() {
	m.results = m.evaluator.Evaluate(context.Background(), m.input.Value())
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading playground..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(InputPanelStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(ResultPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	info := SubHeaderStyle.Render(fmt.Sprintf("%d operations  v%s", m.evaluator.Len(), Version))

	header := lipgloss.JoinHorizontal(lipgloss.Center, logo, strings.Repeat(" ", 3), info)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("up/down", "Select"),
		RenderKeyHint("enter", "Use result as input"),
		RenderKeyHint("ctrl+z", "Undo"),
		RenderKeyHint("esc", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// renderResult renders one line: name, example arguments, quoted output
func (m Model) renderResult(r Result) string {
	name := OpNameStyle.Render(stringx.FixedDisplayWidth(r.Op, m.nameWidth))
	args := OpArgsStyle.Render(stringx.FixedWidth(strings.Join(r.Args, " "), 6))

	var out string
	if r.Err != nil {
		out = ErrorStyle.Render(r.Err.Error())
	} else {
		out = QuoteStyle.Render(`"`) + OutputStyle.Render(r.Output) + QuoteStyle.Render(`"`)
	}

	return name + " " + args + " " + out
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	lines := make([]string, len(m.results))
	for i, r := range m.results {
		line := m.renderResult(r)
		if i == m.cursor {
			line = SelectedStyle.Render(line)
		}
		lines[i] = line
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// Run starts the playground TUI
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
