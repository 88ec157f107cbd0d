package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mbaumgart/recap/internal/cli/formatter"
	"github.com/mbaumgart/recap/internal/contract"
)

func newViewCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse days interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			model := newDayViewModel(app, day)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to open (YYYY-MM-DD, default today)")

	return cmd
}

type dayLoadedMsg struct {
	day *contract.DayResult
	err error
}

type dayViewModel struct {
	app     *App
	date    time.Time
	day     *contract.DayResult
	cursor  int
	expand  bool
	loading bool
	err     error
	keys    dayViewKeys
}

type dayViewKeys struct {
	Up     key.Binding
	Down   key.Binding
	Expand key.Binding
	Prev   key.Binding
	Next   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func newDayViewModel(app *App, date time.Time) *dayViewModel {
	return &dayViewModel{
		app:     app,
		date:    date,
		loading: true,
		keys: dayViewKeys{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Expand: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "events")),
			Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
			Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
			Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rebuild")),
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
	}
}

func (m *dayViewModel) Init() tea.Cmd {
	return m.load(false)
}

func (m *dayViewModel) load(rebuild bool) tea.Cmd {
	app, date := m.app, m.date
	return func() tea.Msg {
		ctx := context.Background()
		get := app.Days.GetDay
		if rebuild {
			get = app.Days.BuildDay
		}
		day, err := get(ctx, date)
		return dayLoadedMsg{day: day, err: err}
	}
}

func (m *dayViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.day = msg.day
			if m.cursor >= len(m.day.Blocks) {
				m.cursor = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.day != nil && m.cursor < len(m.day.Blocks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Expand):
			m.expand = !m.expand
		case key.Matches(msg, m.keys.Prev):
			m.date = m.date.AddDate(0, 0, -1)
			m.cursor, m.expand, m.loading = 0, false, true
			return m, m.load(false)
		case key.Matches(msg, m.keys.Next):
			m.date = m.date.AddDate(0, 0, 1)
			m.cursor, m.expand, m.loading = 0, false, true
			return m, m.load(false)
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, m.load(true)
		}
	}
	return m, nil
}

func (m *dayViewModel) View() string {
	out := formatter.Header("Recap "+m.date.Format("Mon, 02 Jan 2006")) + "\n"

	switch {
	case m.loading:
		return out + formatter.Dim("Loading...") + "\n"
	case m.err != nil:
		return out + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	case m.day == nil || len(m.day.Blocks) == 0:
		return out + formatter.Dim("No data for this day.") + "\n" + m.helpLine()
	}

	for i := range m.day.Blocks {
		blk := &m.day.Blocks[i]
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}
		out += fmt.Sprintf("%s%s  %s\n", prefix,
			blk.StartTime.Format("15:04")+"-"+blk.EndTime.Format("15:04"),
			formatter.CategoryStyle(blk.LocationCategory).Render(blk.LocationLabel))

		if m.expand && i == m.cursor {
			out += m.renderBlockEvents(blk.ID)
		}
	}

	return out + "\n" + m.helpLine()
}

func (m *dayViewModel) renderBlockEvents(blockID string) string {
	out := ""
	for i := range m.day.Events {
		ev := &m.day.Events[i]
		if ev.BlockID != blockID {
			continue
		}
		out += fmt.Sprintf("      %s %s %s\n",
			formatter.Dim(ev.StartTime.Format("15:04")),
			formatter.StyleBlue.Render(ev.KindLabel),
			ev.Title)
	}
	if out == "" {
		out = formatter.Dim("      no events") + "\n"
	}
	return out
}

func (m *dayViewModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Expand,
		m.keys.Prev, m.keys.Next, m.keys.Reload, m.keys.Quit,
	}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += formatter.Dim("  ")
		}
		out += formatter.StyleFg.Render(b.Help().Key) + " " + formatter.Dim(b.Help().Desc)
	}
	return out + "\n"
}
