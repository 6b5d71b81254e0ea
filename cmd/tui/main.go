package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dronhome/TP-final/config"
	"github.com/dronhome/TP-final/lib"
	"github.com/urfave/cli/v2"
)

type mainModel struct {
	workflow *lib.Workflow
	events   chan tea.Msg
	ctx      context.Context

	step    step
	running bool

	filepicker filepicker.Model
	sp         spinner.Model
	progress   progress.Model
	prog       submitProgMsg

	summary string
	err     error

	width  int
	height int

	titleStyle   lipgloss.Style
	hintStyle    lipgloss.Style
	panelStyle   lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func newMainModel(workflow *lib.Workflow, events chan tea.Msg) mainModel {
	fp := filepicker.New()
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	fp.CurrentDirectory = homeDir
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.Height = 12
	fp.AutoHeight = false
	// No AllowedTypes filter: any file may be inspected, the translator
	// decides what it accepts.

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	pr := progress.New(progress.WithDefaultGradient())

	return mainModel{
		workflow:     workflow,
		events:       events,
		step:         stepPick,
		filepicker:   fp,
		sp:           sp,
		progress:     pr,
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36A3F7")),
		hintStyle:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("244")),
		panelStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2),
		successStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		errorStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
	}
}

func (m mainModel) Init() tea.Cmd { return tea.Batch(m.sp.Tick, m.filepicker.Init()) }

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.progress.Width = msg.Width - 10
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.step != stepSubmitting {
				return m, tea.Quit
			}
		}
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.step == stepSubmitting {
			var cmd tea.Cmd
			m.sp, cmd = m.sp.Update(msg)
			return m, cmd
		}
		return m, nil

	case submitProgMsg:
		m.prog = msg
		return m, waitForEvent(m.events)

	case submitDoneMsg:
		m.running = false
		m.summary = msg.summary
		m.step = stepResult
		return m, nil
	}

	if m.step == stepPick {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m mainModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.step {
	case stepPick:
		return m.updatePicker(msg)

	case stepPreview:
		switch msg.String() {
		case "enter":
			if m.running {
				return m, nil
			}
			m.running = true
			m.prog = submitProgMsg{}
			m.step = stepSubmitting
			ctx := m.ctx
			if ctx == nil {
				ctx = context.Background()
			}
			return m, tea.Batch(
				m.sp.Tick,
				runSubmit(ctx, m.workflow),
				waitForEvent(m.events),
			)
		case "esc", "backspace":
			m.workflow.Clear()
			m.err = nil
			m.step = stepPick
			return m, m.filepicker.Init()
		}

	case stepResult:
		switch msg.String() {
		case "enter", "esc":
			m.workflow.Clear()
			m.summary = ""
			m.step = stepPick
			return m, m.filepicker.Init()
		}
	}
	return m, nil
}

func (m mainModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		if err := m.workflow.Select(path); err != nil {
			m.err = err
			return m, cmd
		}
		m.err = nil
		m.step = stepPreview
	}
	return m, cmd
}

func (m mainModel) View() string {
	header := m.titleStyle.Render("NAO pose uploader") +
		m.hintStyle.Render("  "+m.workflow.BaseURL())

	var body string
	switch m.step {
	case stepPick:
		var b strings.Builder
		b.WriteString("Pick an image or video:\n\n")
		b.WriteString(m.filepicker.View())
		if m.err != nil {
			b.WriteString("\n" + m.errorStyle.Render(m.err.Error()))
		}
		b.WriteString("\n" + m.hintStyle.Render("enter: select • q: quit"))
		body = b.String()

	case stepPreview:
		body = m.renderPreview()

	case stepSubmitting:
		var b strings.Builder
		file := m.workflow.Selected()
		b.WriteString(fmt.Sprintf("%s Uploading %s…\n\n", m.sp.View(), file.Name))
		if m.prog.total > 0 {
			pct := float64(m.prog.consumed) / float64(m.prog.total)
			b.WriteString(m.progress.ViewAs(pct) + "\n")
			b.WriteString(fmt.Sprintf("%.1f%% (%s/%s)\n",
				pct*100, lib.FormatSize(m.prog.consumed), lib.FormatSize(m.prog.total)))
		} else if m.workflow.InFlight() {
			b.WriteString("waiting for the translator…\n")
		}
		body = b.String()

	case stepResult:
		body = m.renderResult()
	}

	return header + "\n\n" + m.panelStyle.Render(body)
}

func (m mainModel) renderPreview() string {
	file := m.workflow.Selected()
	if file == nil {
		return "nothing selected"
	}
	var b strings.Builder

	preview := m.workflow.Preview()
	if thumb := preview.Thumbnail(); thumb != "" {
		b.WriteString(thumb + "\n\n")
	}
	b.WriteString(fmt.Sprintf("%s\n", m.titleStyle.Render(file.Name)))
	b.WriteString(fmt.Sprintf("%s • %s", file.MediaType, lib.FormatSize(file.Size)))
	if w, h := preview.Dimensions(); w > 0 {
		b.WriteString(fmt.Sprintf(" • %dx%d", w, h))
	}
	b.WriteString("\n\n" + m.hintStyle.Render("enter: submit • esc: pick another • q: quit"))
	return b.String()
}

func (m mainModel) renderResult() string {
	var b strings.Builder
	status := m.workflow.Status()
	switch {
	case status.IsSuccess():
		b.WriteString(m.successStyle.Render("✓ "+status.Message) + "\n")
	case status.IsError():
		b.WriteString(m.errorStyle.Render("✗ "+status.Message) + "\n")
	}
	if m.summary != "" {
		b.WriteString("\n" + m.summary)
	}
	b.WriteString("\n" + m.hintStyle.Render("enter: new upload • q: quit"))
	return b.String()
}

// Main runs the interactive selection/preview/submission flow.
func Main(c *cli.Context, args *config.Argument) error {
	events := make(chan tea.Msg, 64)

	client := lib.NewClient(args.BaseURL)
	workflow := lib.NewWorkflow(client,
		lib.WithSampling(args.Fps, args.Seconds),
		lib.WithProgress(func(consumed, total int64) {
			select {
			case events <- submitProgMsg{consumed: consumed, total: total}:
			default:
			}
		}),
	)
	defer workflow.Close()

	m := newMainModel(workflow, events)
	m.ctx = c.Context
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
