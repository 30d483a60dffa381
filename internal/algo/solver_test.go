package algo

import (
	"errors"
	"testing"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// createFerry builds the smallest solvable problem: carry the top of p1
// across to p2. The optimal plan is pickup, move, putdown.
func createFerry(t *testing.T) *core.Problem {
	t.Helper()
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	w.Connect(d1, d2)
	w.AddRobot("r1", 1, 10)
	c1 := w.AddContainer("c1", 2)
	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)

	init, err := core.NewState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{0: d1},
		PileStacks: map[core.PileID][]core.ContainerID{p1: {c1}},
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return &core.Problem{
		Name:  "ferry",
		World: w,
		Init:  init,
		Goal:  core.NewGoal(core.InPile(c1, p2)),
	}
}

// createSwap builds the two-pile exchange: c1 and c2 trade piles across
// adjacent docks. One robot with two slots solves it in seven actions, four
// on containers and three moves.
func createSwap(t *testing.T) *core.Problem {
	t.Helper()
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	w.Connect(d1, d2)
	w.AddRobot("r1", 2, 10)
	c1 := w.AddContainer("c1", 2)
	c2 := w.AddContainer("c2", 2)
	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)

	init, err := core.NewState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{0: d1},
		PileStacks: map[core.PileID][]core.ContainerID{p1: {c1}, p2: {c2}},
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return &core.Problem{
		Name:  "swap",
		World: w,
		Init:  init,
		Goal:  core.NewGoal(core.InPile(c1, p2), core.InPile(c2, p1)),
	}
}

// createUnreachable builds a problem whose goal pile sits at a dock no
// adjacency reaches. The search space is finite, so solvers exhaust it.
func createUnreachable(t *testing.T) *core.Problem {
	t.Helper()
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	d3 := w.AddDock("d3")
	w.Connect(d1, d2) // d3 is cut off
	w.AddRobot("r1", 1, 10)
	c1 := w.AddContainer("c1", 2)
	p1 := w.AddPile("p1", d1)
	p3 := w.AddPile("p3", d3)

	init, err := core.NewState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{0: d1},
		PileStacks: map[core.PileID][]core.ContainerID{p1: {c1}},
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return &core.Problem{
		Name:  "unreachable",
		World: w,
		Init:  init,
		Goal:  core.NewGoal(core.InPile(c1, p3)),
	}
}

// TestAllSolversFindFerryPlan runs every registered solver on the ferry
// problem and replays each plan.
func TestAllSolversFindFerryPlan(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, Options{})
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			p := createFerry(t)
			res := s.Solve(p)
			if !res.Found {
				t.Fatalf("%s found no plan", s.Name())
			}
			if err := res.Plan.Validate(p); err != nil {
				t.Fatalf("%s produced an invalid plan: %v", s.Name(), err)
			}
			if res.Cost != len(res.Plan) {
				t.Errorf("Cost = %d, plan length %d", res.Cost, len(res.Plan))
			}
			if res.Generated == 0 || res.MaxOpen == 0 {
				t.Errorf("statistics missing: %+v", res)
			}
		})
	}
}

// TestOptimalSolversOnSwap verifies BFS and A* with the admissible
// heuristic both return the seven-action optimum for the pile exchange.
func TestOptimalSolversOnSwap(t *testing.T) {
	for _, name := range []string{"bfs", "astar"} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, Options{})
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			p := createSwap(t)
			res := s.Solve(p)
			if !res.Found {
				t.Fatalf("%s found no plan", s.Name())
			}
			if err := res.Plan.Validate(p); err != nil {
				t.Fatalf("invalid plan: %v", err)
			}
			if res.Cost != 7 {
				t.Errorf("%s cost = %d, want 7", s.Name(), res.Cost)
			}
		})
	}
}

// TestGreedyStillValid verifies GBFS plans replay even when longer than
// optimal.
func TestGreedyStillValid(t *testing.T) {
	s, err := New("gbfs", Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := createSwap(t)
	res := s.Solve(p)
	if !res.Found {
		t.Fatalf("%s found no plan", s.Name())
	}
	if err := res.Plan.Validate(p); err != nil {
		t.Fatalf("invalid plan: %v", err)
	}
	if res.Cost < 7 {
		t.Errorf("cost = %d below the optimum 7", res.Cost)
	}
}

// TestExhaustedSearchReportsNoPlan verifies an unreachable goal yields
// Found=false with the space fully explored, not a hang or a panic.
func TestExhaustedSearchReportsNoPlan(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, Options{})
			if err != nil {
				t.Fatalf("New(%q): %v", name, err)
			}
			res := s.Solve(createUnreachable(t))
			if res.Found {
				t.Fatalf("%s claims a plan for an unreachable goal", s.Name())
			}
			if res.Plan != nil {
				t.Errorf("no-plan result carries a plan: %v", res.Plan)
			}
			if res.Expanded == 0 {
				t.Errorf("nothing expanded before giving up")
			}
		})
	}
}

// TestNodeBudget verifies the expansion cap stops the search early.
func TestNodeBudget(t *testing.T) {
	s, err := New("bfs", Options{MaxNodes: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := s.Solve(createSwap(t))
	if res.Found {
		t.Error("one expansion cannot solve the swap")
	}
	if res.Expanded != 1 {
		t.Errorf("Expanded = %d, want 1", res.Expanded)
	}
}

// TestSatisfiedGoalNeedsNoSearch verifies a goal holding in the initial
// state returns the empty plan without expanding anything.
func TestSatisfiedGoalNeedsNoSearch(t *testing.T) {
	p := createFerry(t)
	p.Goal = core.NewGoal(core.InPile(0, 0)) // c1 already sits in p1

	for _, name := range Names() {
		s, err := New(name, Options{})
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		res := s.Solve(p)
		if !res.Found || len(res.Plan) != 0 {
			t.Errorf("%s: got (found=%v, plan=%v), want empty plan", s.Name(), res.Found, res.Plan)
		}
		if res.Expanded != 0 {
			t.Errorf("%s expanded %d states for a satisfied goal", s.Name(), res.Expanded)
		}
	}
}

// TestTraceReceivesExpansions verifies the trace hook sees the root first
// and actions on later events.
func TestTraceReceivesExpansions(t *testing.T) {
	var events []TraceEvent
	s, err := New("astar", Options{Trace: func(ev TraceEvent) { events = append(events, ev) }})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := s.Solve(createFerry(t))
	if !res.Found {
		t.Fatal("no plan found")
	}
	if len(events) == 0 {
		t.Fatal("trace saw no expansions")
	}
	if events[0].Seq != 1 || events[0].Action != "" {
		t.Errorf("first event should be the actionless root, got %+v", events[0])
	}
	if len(events) != res.Expanded {
		t.Errorf("trace saw %d events, result says %d expansions", len(events), res.Expanded)
	}
	for _, ev := range events[1:] {
		if ev.Action == "" {
			t.Errorf("non-root event without an action: %+v", ev)
		}
	}
}

// TestRegistry verifies name listing and the error paths.
func TestRegistry(t *testing.T) {
	if got := Names(); len(got) != 3 {
		t.Errorf("Names() = %v, want three solvers", got)
	}
	if _, err := New("dijkstra", Options{}); !errors.Is(err, ErrUnknownSolver) {
		t.Errorf("New(dijkstra) error = %v, want ErrUnknownSolver", err)
	}
	if _, err := New("astar", Options{Heuristic: "oracle"}); err == nil {
		t.Error("unknown heuristic should fail")
	}

	s, err := New("astar", Options{Heuristic: "blind"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Name() != "A*+blind" {
		t.Errorf("Name = %q, want A*+blind", s.Name())
	}
}
