package browse

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mcp-tavily/internal/dispatch"
	"mcp-tavily/pkg/logging"
)

// queryTimeout bounds one dispatched query. Context assembly can chew
// through several pages, so this is generous.
const queryTimeout = 60 * time.Second

// resultMsg carries a finished dispatch back into the update loop.
type resultMsg struct {
	response dispatch.Response
}

// logMsg carries one log entry from the logging channel.
type logMsg struct {
	entry logging.LogEntry
}

// dispatchQueryCmd runs one tool call off the UI goroutine. Dispatch never
// fails outright; errors come back as error-flavored response text.
func dispatchQueryCmd(d *dispatch.Dispatcher, tool, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		return resultMsg{response: d.Dispatch(ctx, tool, map[string]interface{}{
			"query": query,
		})}
	}
}

// listenForLogsCmd waits for the next log entry. The update loop re-arms it
// after every received message.
func listenForLogsCmd(logs <-chan logging.LogEntry) tea.Cmd {
	if logs == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-logs
		if !ok {
			return nil
		}
		return logMsg{entry: entry}
	}
}
