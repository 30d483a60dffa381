// Package tui is an interactive plan walkthrough. It steps forward and
// backward through a replayed run, rendering the world after each action.
//
// bubbletea follows The Elm Architecture: the App struct is the model,
// Update folds messages into it, View renders it.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elektrokombinacija/dwr-research/internal/render"
	"github.com/elektrokombinacija/dwr-research/internal/sim"
)

// App is the walkthrough model. step 0 shows the initial state; step n
// shows the world after the run's nth action.
type App struct {
	run  *sim.Run
	step int

	width  int
	height int
}

// NewApp wraps a replayed run for stepping.
func NewApp(run *sim.Run) *App {
	return &App{run: run}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return a, tea.Quit
		case "right", "l", " ", "enter":
			if a.step < len(a.run.Steps) {
				a.step++
			}
		case "left", "h":
			if a.step > 0 {
				a.step--
			}
		case "g", "home":
			a.step = 0
		case "G", "end":
			a.step = len(a.run.Steps)
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	state := a.run.Problem.Init
	action := render.Muted.Render("(initial state)")
	if a.step > 0 {
		rec := a.run.Steps[a.step-1]
		state = rec.State
		action = rec.Text
	}

	header := render.Title.Render(
		fmt.Sprintf("%s — step %d/%d", a.run.Name, a.step, len(a.run.Steps)))

	var outcome string
	if a.step == len(a.run.Steps) {
		if a.run.GoalMet {
			outcome = render.Ok.Render("plan complete, goal met")
		} else {
			outcome = render.Miss.Render("plan complete, goal missed")
		}
	} else {
		outcome = render.Muted.Render("next: " + a.run.Steps[a.step].Text)
	}

	footer := render.Muted.Render("←/→ step · g/G first/last · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		action,
		render.State(a.run.Problem, state),
		outcome,
		footer,
	) + "\n"
}

// Run opens the walkthrough in the alternate screen and blocks until the
// user quits.
func Run(run *sim.Run) error {
	_, err := tea.NewProgram(NewApp(run), tea.WithAltScreen()).Run()
	return err
}
