package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	fitlogapp "github.com/alexanderramin/fitlog/internal/app"
	"github.com/alexanderramin/fitlog/internal/cli/formatter"
	"github.com/alexanderramin/fitlog/internal/domain"
	"github.com/alexanderramin/fitlog/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var sort domain.SortCriterion

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Scroll, re-sort and delete workouts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs an interactive terminal; use list instead")
			}
			m := newBrowseModel(cmdContext(cmd), app.Workouts, sort, app.location())
			return app.runProgram(m, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addSortFlag(cmd.Flags(), &sort, app.defaultSort())
	return cmd
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Sort   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Delete, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var browseKeys = browseKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// workoutsLoadedMsg carries a freshly sorted list.
type workoutsLoadedMsg struct {
	workouts []domain.Workout
	err      error
}

type workoutDeletedMsg struct {
	workout *domain.Workout
	err     error
}

// browseModel lists workouts with a movable cursor. "d" asks for
// confirmation; "y" then deletes the selected workout.
type browseModel struct {
	ctx      context.Context
	workouts service.WorkoutService
	loc      *time.Location

	items   []domain.Workout
	cursor  int
	sort    domain.SortCriterion
	loading bool
	err     error
	status  string

	confirmDelete bool
	help          help.Model
}

func newBrowseModel(ctx context.Context, workouts service.WorkoutService, sort domain.SortCriterion, loc *time.Location) *browseModel {
	if sort == "" {
		sort = domain.SortDateDescending
	}
	return &browseModel{
		ctx:      ctx,
		workouts: workouts,
		loc:      loc,
		sort:     sort,
		loading:  true,
		help:     help.New(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	ctx, svc, sort := m.ctx, m.workouts, m.sort
	return func() tea.Msg {
		items, err := svc.List(ctx, fitlogapp.ListWorkoutsRequest{Sort: sort})
		return workoutsLoadedMsg{workouts: items, err: err}
	}
}

func (m *browseModel) remove(id string) tea.Cmd {
	ctx, svc := m.ctx, m.workouts
	return func() tea.Msg {
		w, err := svc.Delete(ctx, id)
		return workoutDeletedMsg{workout: w, err: err}
	}
}

func (m *browseModel) selected() (domain.Workout, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.Workout{}, false
	}
	return m.items[m.cursor], true
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.items = msg.workouts
		}
		m.cursor = min(m.cursor, max(len(m.items)-1, 0))
		return m, nil

	case workoutDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %s workout", msg.workout.Type)
		return m, m.load()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			m.confirmDelete = false
			if msg.String() == "y" {
				if w, ok := m.selected(); ok {
					return m, m.remove(w.ID)
				}
			}
			m.status = "Delete cancelled"
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *browseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, browseKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, browseKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, browseKeys.Sort):
		m.sort = m.sort.Next()
		m.status = "Sorted by " + m.sort.Label()
		return m, m.load()
	case key.Matches(msg, browseKeys.Delete):
		if _, ok := m.selected(); ok {
			m.confirmDelete = true
			m.status = ""
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Workouts"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Sorted by " + m.sort.Label()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading..."))
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case len(m.items) == 0:
		b.WriteString(formatter.Dim("No workouts yet."))
	default:
		for i, w := range m.items {
			cursor := "  "
			line := fmt.Sprintf("%-16s %-18s %8s  %s",
				w.Date.In(m.loc).Format("Mon Jan 2 15:04"),
				w.Type,
				formatter.FormatMinutes(w.DurationMin),
				formatter.FormatDistance(w.DistanceMi))
			if i == m.cursor {
				cursor = formatter.StyleHeader.Render("▸ ")
				line = formatter.StyleBold.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString("\n")
	if m.confirmDelete {
		w, _ := m.selected()
		b.WriteString(formatter.StyleYellow.Render(fmt.Sprintf("Delete %s workout? (y/n)", w.Type)))
	} else if m.status != "" {
		b.WriteString(formatter.Dim(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(browseKeys))
	return b.String()
}
