package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/spiffcs/ago/internal/reltime"
)

// Model is the Bubble Tea model for the live relative-time view.
type Model struct {
	formatter   *reltime.Formatter
	entries     []Entry
	spinner     spinner.Model
	now         time.Time
	inputWidth  int
	windowWidth int
	quitting    bool
}

// NewModel creates a model that renders entries with f.
func NewModel(f *reltime.Formatter, entries []Entry) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	width := len("Input")
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Input); w > width {
			width = w
		}
	}

	return Model{
		formatter:  f,
		entries:    entries,
		spinner:    s,
		now:        f.Now(),
		inputWidth: width,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.now = m.formatter.Now()
		return m, tick()
	}

	return m, nil
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	pinned := m.formatter.At(m.now)
	fmt.Fprintf(&b, "  %s %s\n\n",
		spinnerStyle.Render(m.spinner.View()),
		headerStyle.Render("Relative to "+m.now.Format("2006-01-02 15:04:05 MST")))

	for _, e := range m.entries {
		input := inputStyle.Render(padRight(e.Input, m.inputWidth))
		if e.Err != nil {
			fmt.Fprintf(&b, "  %s  %s\n", input, errorStyle.Render(e.Err.Error()))
			continue
		}
		d, err := pinned.Describe(e.Instant)
		if err != nil {
			fmt.Fprintf(&b, "  %s  %s\n", input, errorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintf(&b, "  %s  %s\n", input, UnitStyle(d.Unit).Render(d.Text))
	}

	if !m.quitting {
		b.WriteString(footerStyle.Render("  Press q to quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
