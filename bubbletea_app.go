// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the interactive browser
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// Model is the Bubble Tea state of the interactive browser
type Model struct {
	ready bool

	input    textinput.Model
	listView viewport.Model

	index  *RegionIndex
	runner *ScriptRunner
	output *bytes.Buffer

	order    TraversalOrder
	showHelp bool
	showTree bool
	status   string
	failed   bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// InitialModel creates the browser over index
func InitialModel(index *RegionIndex, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 \"Region A\" | delete 10 | get 10 ..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	listView := viewport.New(0, 0)

	style := "notty"
	if config.Output.Color && detectedMode != TerminalModeUnknown {
		style = "dark"
		if detectedMode == TerminalModeLight {
			style = "light"
		}
	}
	glamourRenderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		Log.Debugf("help renderer unavailable: %v", err)
	}

	output := &bytes.Buffer{}
	m := Model{
		input:           ti,
		listView:        listView,
		index:           index,
		runner:          NewScriptRunner(index, output, false),
		output:          output,
		order:           config.Order(),
		showTree:        config.Output.ShowTree,
		status:          "Type a command and press enter. F1 for help.",
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshList()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshList()
			return m, nil
		case "tab":
			m.order = m.order.Next()
			m.refreshList()
			return m, nil
		case "ctrl+t":
			m.showTree = !m.showTree
			m.refreshList()
			return m, nil
		case "ctrl+y":
			if err := copyListing(m.index.Listing(m.order)); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("listing copied to clipboard", false)
			}
			return m, nil
		case "pgup", "pgdown":
			m.listView, cmd = m.listView.Update(msg)
			return m, cmd
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.refreshList()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one command line against the index
func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	// listing and tree commands switch the view instead of printing
	if fields := strings.Fields(line); len(fields) == 1 {
		switch verb := strings.ToLower(fields[0]); verb {
		case "inorder", "preorder", "postorder":
			m.order, _ = ParseOrder(verb)
			m.showTree, m.showHelp = false, false
			m.setStatus("showing "+strings.TrimSuffix(m.order.Title(), ":"), false)
			m.refreshList()
			return
		case "tree":
			m.showTree, m.showHelp = true, false
			m.setStatus("showing tree shape", false)
			m.refreshList()
			return
		}
	}

	m.output.Reset()
	if err := m.runner.Exec(line); err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(strings.TrimSpace(m.output.String()), false)
	}
	m.refreshList()
}

func (m *Model) setStatus(text string, failed bool) {
	// multi-line results (a listing, a tree) go to the list view instead
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + " …"
	}
	m.status = text
	m.failed = failed
}

// refreshList redraws the viewport content for the current mode
func (m *Model) refreshList() {
	if m.showHelp {
		helpTxt := scriptHelpMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
				helpTxt = rendered
			}
		}
		m.listView.SetContent(helpTxt)
		return
	}

	var content string
	if m.showTree {
		content = m.index.Shape(true)
	} else {
		content = strings.Join(m.index.Listing(m.order), "\n")
	}
	if content == "" {
		content = "(empty tree)"
	}
	m.listView.SetContent(content)
	m.listView.GotoTop()
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	m.input.Width = m.width - 6
	m.listView.Width = m.width - 4
	m.listView.Height = max(m.height-inputHeight-8, 1)
}

func (m Model) listTitle() string {
	switch {
	case m.showHelp:
		return " 📖 Help "
	case m.showTree:
		return fmt.Sprintf(" 🌳 Tree shape (%d regions) ", m.index.Len())
	default:
		return fmt.Sprintf(" 📋 %s (%d regions) ", strings.TrimSuffix(m.order.Title(), ":"), m.index.Len())
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.InputPrompt.Render("Command"),
			m.input.View(),
		))

	listBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(m.listTitle()),
			m.listView.View(),
		))

	statusStyle := m.styles.SuccessMessage
	if m.failed {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		listBox,
		statusStyle.Render(m.status),
		m.renderHelpFooter(),
	)
}

// renderHelpFooter renders the key bindings line
func (m Model) renderHelpFooter() string {
	bindings := [][2]string{
		{"enter", "run"},
		{"tab", "order"},
		{"ctrl+t", "tree"},
		{"ctrl+y", "copy"},
		{"f1", "help"},
		{"esc", "quit"},
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, m.styles.HelpKey.Render(b[0])+" "+m.styles.HelpDesc.Render(b[1]))
	}
	return strings.Join(parts, "  ")
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(index *RegionIndex, config *Config) error {
	program := tea.NewProgram(
		InitialModel(index, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
