package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/tui/styles"
	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
)

// Period selects the aggregation window shown by the dashboard.
type Period int

const (
	PeriodDay Period = iota
	PeriodWeek
	PeriodMonth
	PeriodYear
	PeriodTotal
)

var periodNames = []string{"Day", "Week", "Month", "Year", "Total"}

// DashboardKeyMap defines key bindings for the dashboard view
type DashboardKeyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Today       key.Binding
	CycleTab    key.Binding
	GoToDate    key.Binding
	Leaderboard key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var DashboardKeys = DashboardKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	CycleTab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch period"),
	),
	GoToDate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "go to date"),
	),
	Leaderboard: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "leaderboard"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DashboardModel renders reading stats for the selected period around an
// anchor date.
type DashboardModel struct {
	ViewState

	agg    *stats.Aggregator
	period Period
	anchor time.Time

	dateInput textinput.Model
	entering  bool
}

// NewDashboardModel creates a dashboard anchored on today.
func NewDashboardModel(agg *stats.Aggregator) *DashboardModel {
	input := textinput.New()
	input.Placeholder = "YYYY-MM-DD"
	input.CharLimit = 10
	input.Width = 12

	return &DashboardModel{
		agg:       agg,
		period:    PeriodDay,
		anchor:    time.Now(),
		dateInput: input,
	}
}

// Init initializes the dashboard
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.entering {
			return m.updateDateEntry(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, DashboardKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, DashboardKeys.Prev):
			m.shift(-1)
			return m, nil

		case key.Matches(msg, DashboardKeys.Next):
			m.shift(1)
			return m, nil

		case key.Matches(msg, DashboardKeys.Today):
			m.anchor = time.Now()
			return m, nil

		case key.Matches(msg, DashboardKeys.CycleTab):
			if msg.String() == "shift+tab" {
				m.period = (m.period + Period(len(periodNames)) - 1) % Period(len(periodNames))
			} else {
				m.period = (m.period + 1) % Period(len(periodNames))
			}
			return m, nil

		case key.Matches(msg, DashboardKeys.GoToDate):
			m.entering = true
			m.dateInput.SetValue("")
			m.dateInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, DashboardKeys.Leaderboard):
			return m, func() tea.Msg {
				return SwitchToLeaderboardMsg{}
			}

		case key.Matches(msg, DashboardKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}

		switch msg.String() {
		case "1", "2", "3", "4", "5":
			m.period = Period(int(msg.String()[0] - '1'))
			return m, nil
		}
	}

	return m, nil
}

func (m *DashboardModel) updateDateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.dateInput.Blur()
		return m, nil
	case "enter":
		day, err := domain.ParseDateKey(m.dateInput.Value())
		if err != nil {
			m.SetMessage(fmt.Sprintf("invalid date %q", m.dateInput.Value()), true)
		} else {
			m.anchor = day
		}
		m.entering = false
		m.dateInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// shift moves the anchor one period in the given direction.
func (m *DashboardModel) shift(direction int) {
	switch m.period {
	case PeriodDay:
		m.anchor = m.anchor.AddDate(0, 0, direction)
	case PeriodWeek:
		m.anchor = m.anchor.AddDate(0, 0, 7*direction)
	case PeriodMonth:
		m.anchor = m.anchor.AddDate(0, direction, 0)
	case PeriodYear:
		m.anchor = m.anchor.AddDate(direction, 0, 0)
	}
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Focus Time"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.period {
	case PeriodDay:
		b.WriteString(m.renderDay())
	case PeriodWeek:
		b.WriteString(m.renderWeek())
	case PeriodMonth:
		b.WriteString(m.renderMonth())
	case PeriodYear:
		b.WriteString(m.renderYear())
	case PeriodTotal:
		b.WriteString(m.renderTotal())
	}

	if m.entering {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Go to date: "))
		b.WriteString(m.dateInput.View())
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *DashboardModel) renderTabs() string {
	var tabs []string
	for i, name := range periodNames {
		if Period(i) == m.period {
			tabs = append(tabs, styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

func (m *DashboardModel) renderDay() string {
	date := domain.DateKey(m.anchor)
	day := m.agg.Daily(date)

	var b strings.Builder
	b.WriteString(styles.PeriodHeading.Render(date))
	b.WriteString("\n")
	if day == nil {
		b.WriteString(styles.MutedText.Render("No reading recorded."))
		return b.String()
	}

	b.WriteString(m.summaryLine(day.TotalDuration, day.NoteCount, 0))
	b.WriteString("\n\n")

	rows := make([]BarRow, 0, len(day.Notes))
	for _, note := range day.Notes {
		rows = append(rows, BarRow{
			Label:  truncatePath(note.FilePath, 40),
			Value:  note.Duration,
			Detail: domain.FormatReadingTime(note.Duration),
		})
	}
	b.WriteString(renderBarChart(rows, m.Width))
	return b.String()
}

func (m *DashboardModel) renderWeek() string {
	week, err := m.agg.Weekly(domain.DateKey(m.anchor))
	if err != nil {
		return styles.ErrorMsg.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(styles.PeriodHeading.Render(fmt.Sprintf("%s to %s", week.Start, week.End)))
	b.WriteString("\n")
	b.WriteString(m.summaryLine(week.TotalDuration, week.NoteCount, week.FocusDays))
	b.WriteString("\n\n")

	rows := make([]BarRow, 0, len(week.Days))
	for _, day := range week.Days {
		rows = append(rows, BarRow{
			Label:  day.Date,
			Value:  day.TotalDuration,
			Detail: domain.FormatReadingTime(day.TotalDuration),
		})
	}
	b.WriteString(renderBarChart(rows, m.Width))
	return b.String()
}

func (m *DashboardModel) renderMonth() string {
	month := m.agg.Monthly(m.anchor.Year(), int(m.anchor.Month()))

	var b strings.Builder
	b.WriteString(styles.PeriodHeading.Render(fmt.Sprintf("%04d-%02d", month.Year, month.Month)))
	b.WriteString("\n")
	b.WriteString(m.summaryLine(month.TotalDuration, month.NoteCount, month.FocusDays))
	b.WriteString("\n\n")

	rows := make([]BarRow, 0, len(month.Days))
	for _, day := range month.Days {
		rows = append(rows, BarRow{
			Label:  day.Date,
			Value:  day.TotalDuration,
			Detail: domain.FormatReadingTime(day.TotalDuration),
		})
	}
	b.WriteString(renderBarChart(rows, m.Width))
	return b.String()
}

func (m *DashboardModel) renderYear() string {
	year := m.agg.Yearly(m.anchor.Year())

	var b strings.Builder
	b.WriteString(styles.PeriodHeading.Render(fmt.Sprintf("%04d", year.Year)))
	b.WriteString("\n")
	b.WriteString(m.summaryLine(year.TotalDuration, year.NoteCount, year.FocusDays))
	b.WriteString("\n\n")

	rows := make([]BarRow, 0, len(year.Months))
	for _, month := range year.Months {
		rows = append(rows, BarRow{
			Label:  fmt.Sprintf("%04d-%02d", month.Year, month.Month),
			Value:  month.TotalDuration,
			Detail: domain.FormatReadingTime(month.TotalDuration),
		})
	}
	b.WriteString(renderBarChart(rows, m.Width))
	return b.String()
}

func (m *DashboardModel) renderTotal() string {
	total := m.agg.Total()

	var b strings.Builder
	b.WriteString(styles.PeriodHeading.Render("All time"))
	b.WriteString("\n")
	b.WriteString(m.summaryLine(total.TotalDuration, total.NoteCount, total.FocusDays))
	b.WriteString("\n\n")

	years := m.agg.RecentYears()
	rows := make([]BarRow, 0, len(years))
	for _, year := range years {
		rows = append(rows, BarRow{
			Label:  fmt.Sprintf("%04d", year.Year),
			Value:  year.TotalDuration,
			Detail: domain.FormatReadingTime(year.TotalDuration),
		})
	}
	b.WriteString(renderBarChart(rows, m.Width))
	return b.String()
}

func (m *DashboardModel) summaryLine(duration int64, noteCount, focusDays int) string {
	line := fmt.Sprintf("%s across %d note(s)",
		styles.SummaryValue.Render(domain.FormatReadingTime(duration)), noteCount)
	if focusDays > 0 {
		line += fmt.Sprintf(", %d focus day(s)", focusDays)
	}
	return line
}

func (m *DashboardModel) renderHelpLine() string {
	parts := []string{
		styles.HelpKey.Render("h/l") + " " + styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("tab/1-5") + " " + styles.HelpDesc.Render("period"),
		styles.HelpKey.Render("t") + " " + styles.HelpDesc.Render("today"),
		styles.HelpKey.Render("g") + " " + styles.HelpDesc.Render("go to date"),
		styles.HelpKey.Render("L") + " " + styles.HelpDesc.Render("leaderboard"),
		styles.HelpKey.Render("?") + " " + styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("q") + " " + styles.HelpDesc.Render("quit"),
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// truncatePath shortens long note paths from the left, keeping the tail
// which carries the file name.
func truncatePath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	return "…" + path[len(path)-max+1:]
}
