package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/tui/views"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewLeaderboard
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state       ViewState
	dashboard   *views.DashboardModel
	leaderboard *views.LeaderboardModel
	help        *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(agg *stats.Aggregator, opts stats.LeaderboardOptions) *App {
	return &App{
		state:       ViewDashboard,
		dashboard:   views.NewDashboardModel(agg),
		leaderboard: views.NewLeaderboardModel(agg, opts),
		help:        views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.leaderboard.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToLeaderboardMsg:
		a.state = ViewLeaderboard
		a.leaderboard.Reload()
		return a, a.leaderboard.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDashboardMsg:
		a.state = ViewDashboard
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	case ViewLeaderboard:
		_, cmd = a.leaderboard.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewLeaderboard:
		return a.leaderboard.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.dashboard.View()
	}
}
