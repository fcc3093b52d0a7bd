package browse

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// chromeHeight is the number of lines used around the results viewport:
// title, input, a blank spacer, the status line and the help line.
const chromeHeight = 5

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.titleLine())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.results.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())

	return b.String()
}

func (m Model) titleLine() string {
	title := titleStyle.Render("Tavily Browse")
	badge := modeBadgeStyle.Render(strings.ToUpper(m.mode.String()))
	return fmt.Sprintf("%s %s", title, badge)
}

// statusLine renders the transient status and the most recent log entry.
// Raw text is truncated by display width before styling, since the
// truncation cannot see through ANSI sequences.
func (m Model) statusLine() string {
	var styled string
	switch {
	case m.searching:
		styled = fmt.Sprintf("%s %s", m.spin.View(), statusStyle.Render(truncateLine(m.status, m.width-2)))
	case m.isError:
		styled = errorStyle.Render(truncateLine(m.status, m.width))
	case m.status != "":
		styled = successStyle.Render(truncateLine(m.status, m.width))
	}

	if m.lastLog != "" {
		remaining := m.width - runewidth.StringWidth(m.status)
		if styled != "" {
			remaining -= 2
		}
		if remaining > 3 {
			if styled != "" {
				styled += "  "
			}
			styled += statusStyle.Render(truncateLine(m.lastLog, remaining))
		}
	}
	return styled
}

func (m Model) helpLine() string {
	parts := make([]string, 0, 4)
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	return helpStyle.Render(truncateLine(strings.Join(parts, " • "), m.width))
}

// truncateLine trims a line to the terminal width by display width, so
// wide runes do not push the layout over the edge.
func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
