package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Focus Time Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Reading time dashboard for an Obsidian vault"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("h / ←", "Previous day/week/month/year"))
	b.WriteString(helpLine("l / →", "Next day/week/month/year"))
	b.WriteString(helpLine("tab / 1-5", "Switch period (day, week, month, year, total)"))
	b.WriteString(helpLine("t", "Jump back to today"))
	b.WriteString(helpLine("g", "Go to a specific date"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Views"))
	b.WriteString("\n")
	b.WriteString(helpLine("L", "Leaderboard of most-read notes"))
	b.WriteString(helpLine("enter", "Copy note path (in leaderboard)"))
	b.WriteString(helpLine("esc", "Back to dashboard"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle this help"))
	b.WriteString(helpLine("q / ctrl+c", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("Press esc, q, or ? to close"))

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return "  " + styles.HelpKey.Render(keys) + "  " + styles.HelpDesc.Render(desc) + "\n"
}
