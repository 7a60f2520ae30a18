package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/tui/styles"
	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
)

// LeaderboardKeyMap defines key bindings for the leaderboard view
type LeaderboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Back key.Binding
	Quit key.Binding
}

var LeaderboardKeys = LeaderboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy path"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// LeaderboardModel lists the most-read notes ranked by accumulated time.
type LeaderboardModel struct {
	ViewState

	agg     *stats.Aggregator
	opts    stats.LeaderboardOptions
	entries []domain.LeaderboardEntry
	cursor  int
}

// NewLeaderboardModel creates a leaderboard view with the given filter options.
func NewLeaderboardModel(agg *stats.Aggregator, opts stats.LeaderboardOptions) *LeaderboardModel {
	return &LeaderboardModel{
		agg:  agg,
		opts: opts,
	}
}

// Init initializes the leaderboard
func (m *LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Reload refreshes the ranking from the store.
func (m *LeaderboardModel) Reload() {
	m.entries = m.agg.Leaderboard(m.opts)
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the leaderboard
func (m *LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, LeaderboardKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, LeaderboardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, LeaderboardKeys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, LeaderboardKeys.Copy):
			if m.cursor >= 0 && m.cursor < len(m.entries) {
				entry := m.entries[m.cursor]
				if err := clipboard.WriteAll(entry.FilePath); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage(fmt.Sprintf("Copied %s", entry.FilePath), false)
				}
			}
			return m, nil

		case key.Matches(msg, LeaderboardKeys.Back):
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the leaderboard
func (m *LeaderboardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Most Read Notes"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.MutedText.Render("No notes above the reading-time threshold."))
	}

	for i, entry := range m.entries {
		rank := styles.RankNumber.Render(fmt.Sprintf("%2d.", i+1))
		line := fmt.Sprintf("%s  %-14s %s  (%d open(s))",
			rank, domain.FormatReadingTime(entry.Duration), truncatePath(entry.FilePath, 48), entry.OpenCount)
		if i == m.cursor {
			line = styles.RowSelected.Render(line)
		} else {
			line = styles.Row.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *LeaderboardModel) renderHelpLine() string {
	parts := []string{
		styles.HelpKey.Render("j/k") + " " + styles.HelpDesc.Render("move"),
		styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("copy path"),
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("back"),
		styles.HelpKey.Render("q") + " " + styles.HelpDesc.Render("quit"),
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}
