package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/cloudwego/hertz/cmd/hz/util/logs"
	"github.com/dronhome/TP-final/lib"
)

// waitForEvent relays one progress event from the upload channel.
func waitForEvent(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		return <-ch
	}
}

// runSubmit performs the single upload attempt. Progress arrives separately
// via the event channel wired into the workflow's progress callback.
func runSubmit(ctx context.Context, workflow *lib.Workflow) tea.Cmd {
	return func() tea.Msg {
		status := workflow.Submit(ctx)
		summary := ""
		if result := workflow.Result(); result != nil {
			summary = renderSummary(result)
		}
		return submitDoneMsg{status: status, summary: summary}
	}
}

// renderSummary turns the result markdown into styled terminal output,
// falling back to the raw markdown if glamour chokes.
func renderSummary(result lib.SubmitResult) string {
	md := result.Summary()
	out, err := glamour.Render(md, "dark")
	if err != nil {
		logs.Debugf("summary render: %v\n", err)
		return md
	}
	return out
}
