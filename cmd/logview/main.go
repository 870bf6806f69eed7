package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xlsft/logger"
)

const configFile = "logview.json"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("36"))

	logPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type model struct {
	log      *logger.Logger
	input    textarea.Model
	received *int
	width    int
	height   int
	status   string
}

func initialModel(log *logger.Logger) model {
	ta := textarea.New()
	ta.Placeholder = "message  (/info /warn /error pick severity, @tag sets source)"
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	received := 0
	m := model{
		log:      log,
		input:    ta,
		received: &received,
		status:   "ready",
	}
	log.Subscribe(func(logger.Record) { *m.received++ })
	return m
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			m.input.Reset()
			return m, nil
		case "ctrl+y":
			if err := clipboard.WriteAll(m.log.Export()); err != nil {
				m.status = fmt.Sprintf("clipboard error: %v", err)
			} else {
				m.status = "export copied to clipboard"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the entered line and routes it to the matching level method.
func (m *model) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}

	level, message, source, hasSource := parseEntry(text)
	write := m.log.Log
	switch level {
	case logger.SeverityInfo:
		write = m.log.Info
	case logger.SeverityWarn:
		write = m.log.Warn
	case logger.SeverityError:
		write = m.log.Error
	}

	if hasSource {
		write(message, source)
	} else {
		write(message)
	}
	m.status = "logged"
}

// parseEntry splits a leading /severity command and an @tag source token off
// the message text.
func parseEntry(text string) (logger.Severity, string, string, bool) {
	level := logger.SeverityDefault
	source := ""
	hasSource := false

	words := strings.Fields(text)
	rest := words
	for len(rest) > 0 {
		switch {
		case rest[0] == "/info":
			level = logger.SeverityInfo
		case rest[0] == "/warn":
			level = logger.SeverityWarn
		case rest[0] == "/error":
			level = logger.SeverityError
		case strings.HasPrefix(rest[0], "@") && len(rest[0]) > 1:
			source = rest[0][1:]
			hasSource = true
		default:
			return level, strings.Join(rest, " "), source, hasSource
		}
		rest = rest[1:]
	}
	return level, "", source, hasSource
}

func (m model) View() string {
	panelHeight := m.height - 7
	if panelHeight < 3 {
		panelHeight = 3
	}
	panelWidth := m.width - 4
	if panelWidth < 20 {
		panelWidth = 20
	}

	lines := strings.Split(m.log.Export(), "\n")
	if len(lines) > panelHeight {
		lines = lines[len(lines)-panelHeight:]
	}

	title := titleStyle.Render("logview")
	panel := logPanelStyle.Width(panelWidth).Height(panelHeight).Render(strings.Join(lines, "\n"))
	status := statusBarStyle.Width(m.width).Render(
		fmt.Sprintf("records: %d  received: %d  %s", m.log.Count(), *m.received, m.status))
	help := helpStyle.Render("enter log · ctrl+y copy export · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, panel, m.input.View(), help, status)
}

func main() {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		cfg = &Config{MaxStackSize: 500, Colored: true}
		if err := CreateDefaultConfig(configFile); err != nil {
			fmt.Printf("Error creating default config: %v\n", err)
		}
	}

	log := logger.New(logger.Config{
		MaxStackSize: cfg.MaxStackSize,
		Colored:      cfg.Colored,
		// The panel is the console here; discard the direct mirror so it does
		// not fight the alternate screen.
		Sink: io.Discard,
	})
	log.Info("logview started", "logview")

	p := tea.NewProgram(initialModel(log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
