// Package browse implements the interactive search UI behind the browse
// command. One text input feeds the dispatcher; results render into a
// scrollable viewport and log entries stream into the status bar.
package browse

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"mcp-tavily/internal/capability"
	"mcp-tavily/internal/dispatch"
	"mcp-tavily/pkg/logging"
)

// Mode selects which tool a submitted query drives.
type Mode int

const (
	ModeSearch Mode = iota
	ModeAnswer
	ModeContext
)

// String provides a human-readable representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "Search"
	case ModeAnswer:
		return "Answer"
	case ModeContext:
		return "Context"
	default:
		return "Unknown"
	}
}

// next cycles to the following mode.
func (m Mode) next() Mode {
	switch m {
	case ModeSearch:
		return ModeAnswer
	case ModeAnswer:
		return ModeContext
	default:
		return ModeSearch
	}
}

// tool maps the mode to the capability it drives.
func (m Mode) tool() string {
	switch m {
	case ModeAnswer:
		return capability.ToolQNASearch
	case ModeContext:
		return capability.ToolGetContext
	default:
		return capability.ToolSearch
	}
}

// focusArea tracks which component receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusResults
)

// Model is the bubbletea model for the browse UI.
type Model struct {
	dispatcher *dispatch.Dispatcher
	logs       <-chan logging.LogEntry

	mode    Mode
	focus   focusArea
	input   textinput.Model
	results viewport.Model
	spin    spinner.Model
	keys    KeyMap

	width  int
	height int
	ready  bool

	searching  bool
	resultText string
	isError    bool
	status     string
	lastLog    string
}

// New builds the initial model. The log channel may be nil, in which case
// the status bar shows no log line.
func New(d *dispatch.Dispatcher, logs <-chan logging.LogEntry) Model {
	input := textinput.New()
	input.Placeholder = "Type a query and press enter"
	input.Prompt = "> "
	input.CharLimit = 400
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = statusStyle

	return Model{
		dispatcher: d,
		logs:       logs,
		mode:       ModeSearch,
		focus:      focusInput,
		input:      input,
		spin:       spin,
		keys:       DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listenForLogsCmd(m.logs))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		m.searching = false
		m.resultText = msg.response.Text
		m.isError = msg.response.IsError
		if m.isError {
			m.status = "Query failed"
		} else {
			m.status = fmt.Sprintf("%s finished", m.mode)
		}
		if m.ready {
			m.results.SetContent(m.resultText)
			m.results.GotoTop()
		}
		return m, nil

	case logMsg:
		m.lastLog = fmt.Sprintf("[%s] %s: %s",
			msg.entry.Timestamp.Format("15:04:05"),
			msg.entry.Subsystem,
			msg.entry.Message,
		)
		return m, listenForLogsCmd(m.logs)

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateComponents(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	resultsHeight := msg.Height - chromeHeight
	if resultsHeight < 1 {
		resultsHeight = 1
	}

	if !m.ready {
		m.results = viewport.New(msg.Width, resultsHeight)
		m.results.SetContent(m.resultText)
		m.ready = true
	} else {
		m.results.Width = msg.Width
		m.results.Height = resultsHeight
	}

	m.input.Width = msg.Width - len(m.input.Prompt) - 1
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, regardless of focus.
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.CycleMode):
		m.mode = m.mode.next()
		m.status = fmt.Sprintf("Mode: %s", m.mode)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Blur):
		if m.focus == focusInput {
			m.focus = focusResults
			m.input.Blur()
		}
		return m, nil
	}

	if m.focus == focusResults {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Focus):
			m.focus = focusInput
			return m, m.input.Focus()

		case key.Matches(msg, m.keys.Copy):
			return m.copyResult(), nil
		}
	}

	return m.updateComponents(msg)
}

// submit dispatches the current query in the current mode.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.searching {
		return m, nil
	}
	query := m.input.Value()
	if query == "" {
		m.status = "Type a query first"
		return m, nil
	}

	m.searching = true
	m.status = fmt.Sprintf("Running %s for %q", m.mode, query)
	return m, tea.Batch(
		dispatchQueryCmd(m.dispatcher, m.mode.tool(), query),
		m.spin.Tick,
	)
}

// copyResult puts the current result text on the system clipboard.
func (m Model) copyResult() Model {
	if m.resultText == "" {
		m.status = "Nothing to copy yet"
		return m
	}
	if err := clipboard.WriteAll(m.resultText); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return m
	}
	m.status = "Result copied to clipboard"
	return m
}

// updateComponents forwards a message to whichever component has focus.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.ready {
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

// Run starts the browse UI and blocks until the user exits.
func Run(ctx context.Context, d *dispatch.Dispatcher, logs <-chan logging.LogEntry) error {
	p := tea.NewProgram(New(d, logs), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run browse UI: %w", err)
	}
	return nil
}
