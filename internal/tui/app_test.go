package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elektrokombinacija/dwr-research/internal/core"
	"github.com/elektrokombinacija/dwr-research/internal/sim"
)

func createRun(t *testing.T) *sim.Run {
	t.Helper()
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	w.Connect(d1, d2)
	r1 := w.AddRobot("r1", 1, 5)
	c1 := w.AddContainer("c1", 2)
	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)

	init, err := core.NewState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{r1: d1},
		PileStacks: map[core.PileID][]core.ContainerID{p1: {c1}},
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	p := &core.Problem{
		Name:  "walkthrough",
		World: w,
		Init:  init,
		Goal:  core.NewGoal(core.InPile(c1, p2)),
	}
	plan := core.Plan{
		core.PickupAction(r1, c1, p1, d1),
		core.MoveAction(r1, d1, d2),
		core.PutdownAction(r1, c1, p2, d2),
	}
	run, err := sim.NewReplayer().Replay(p, plan)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	return run
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()
	model, _ := app.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return next
}

func TestSteppingBounds(t *testing.T) {
	app := NewApp(createRun(t))

	app = step(t, app, key("h"))
	if app.step != 0 {
		t.Fatalf("stepping back from start moved to %d", app.step)
	}

	for i := 1; i <= 3; i++ {
		app = step(t, app, key("l"))
		if app.step != i {
			t.Fatalf("after %d forward steps, at %d", i, app.step)
		}
	}
	app = step(t, app, key("l"))
	if app.step != 3 {
		t.Fatalf("stepping past the end moved to %d", app.step)
	}

	app = step(t, app, key("g"))
	if app.step != 0 {
		t.Fatalf("g should rewind to 0, at %d", app.step)
	}
	app = step(t, app, key("G"))
	if app.step != 3 {
		t.Fatalf("G should jump to the end, at %d", app.step)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		app := NewApp(createRun(t))
		_, cmd := app.Update(k)
		if cmd == nil {
			t.Fatalf("key %q should quit", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("key %q produced %T, want tea.QuitMsg", k.String(), cmd())
		}
	}
}

func TestViewTracksState(t *testing.T) {
	app := NewApp(createRun(t))

	out := app.View()
	if !strings.Contains(out, "step 0/3") || !strings.Contains(out, "initial state") {
		t.Errorf("initial view wrong:\n%s", out)
	}
	if !strings.Contains(out, "goal 0/1") {
		t.Errorf("initial view should show unmet goal:\n%s", out)
	}

	app = step(t, app, key("G"))
	out = app.View()
	if !strings.Contains(out, "step 3/3") {
		t.Errorf("final view wrong:\n%s", out)
	}
	if !strings.Contains(out, "goal met") {
		t.Errorf("final view should report the outcome:\n%s", out)
	}
	if !strings.Contains(out, "goal 1/1") {
		t.Errorf("final snapshot should show met goal:\n%s", out)
	}
}

func TestViewShowsUpcomingAction(t *testing.T) {
	app := step(t, NewApp(createRun(t)), key("l"))
	out := app.View()
	if !strings.Contains(out, "pickup(r1,c1,p1,d1)") {
		t.Errorf("view should show the applied action:\n%s", out)
	}
	if !strings.Contains(out, "next: move(r1,d1,d2)") {
		t.Errorf("view should preview the next action:\n%s", out)
	}
}
