package core

import (
	"strings"
	"testing"
)

func goalWorld(t *testing.T) (*World, State) {
	t.Helper()
	w := NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	w.Connect(d1, d2)
	w.AddRobot("r1", 2, 10)
	c1 := w.AddContainer("c1", 2)
	c2 := w.AddContainer("c2", 2)
	c3 := w.AddContainer("c3", 2)
	c4 := w.AddContainer("c4", 2)
	p1 := w.AddPile("p1", d1)
	w.AddPile("p2", d2)

	s, err := NewState(w, Setup{
		RobotDocks: map[RobotID]DockID{0: d1},
		PileStacks: map[PileID][]ContainerID{p1: {c1, c2, c3}},
		Loads:      map[RobotID][]ContainerID{0: {c4}},
	})
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return w, s
}

// TestLiteralHolds exercises each literal kind against a known state:
// p1 = [c1 c2 c3] bottom to top, c4 aboard r1, r1 at d1.
func TestLiteralHolds(t *testing.T) {
	w, s := goalWorld(t)

	tests := []struct {
		name string
		lit  Literal
		want bool
	}{
		{"member of pile", InPile(1, 0), true},
		{"member of wrong pile", InPile(1, 1), false},
		{"loaded container in no pile", InPile(3, 0), false},
		{"top of pile", PileTop(2, 0), true},
		{"buried container not top", PileTop(1, 0), false},
		{"top of empty pile", PileTop(0, 1), false},
		{"directly under", Under(1, 2, 0), true},
		{"skips a level", Under(0, 2, 0), false},
		{"inverted order", Under(2, 1, 0), false},
		{"under in wrong pile", Under(1, 2, 1), false},
		{"under with loaded container", Under(2, 3, 0), false},
		{"robot at dock", RobotAt(0, 0), true},
		{"robot at other dock", RobotAt(0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.Holds(w, s); got != tt.want {
				t.Errorf("Holds = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPileExact verifies the expansion drives a full stack description and
// holds exactly when the pile matches.
func TestPileExact(t *testing.T) {
	w, s := goalWorld(t)

	exact := NewGoal(PileExact(0, 0, 1, 2)...)
	// three members, two orderings, one top
	if len(exact.Literals) != 6 {
		t.Fatalf("PileExact expanded to %d literals, want 6", len(exact.Literals))
	}
	if !exact.Satisfied(w, s) {
		t.Errorf("exact description of the actual stack should hold")
	}

	reordered := NewGoal(PileExact(0, 1, 0, 2)...)
	if reordered.Satisfied(w, s) {
		t.Errorf("reordered stack description should not hold")
	}
	if got := reordered.Unsatisfied(w, s); got != 2 {
		t.Errorf("Unsatisfied = %d, want 2", got)
	}

	if lits := PileExact(1); lits != nil {
		t.Errorf("PileExact of an empty stack = %v, want nil", lits)
	}
}

// TestGoalDescribe verifies rendering uses entity names.
func TestGoalDescribe(t *testing.T) {
	w, _ := goalWorld(t)

	g := NewGoal(InPile(0, 1), Under(0, 2, 1)).And(PileTop(2, 1), RobotAt(0, 1))
	want := "in(c1,p2) & under(c1,c3,p2) & top(c3,p2) & at(r1,d2)"
	if got := g.Describe(w); got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}

// TestGoalValidate verifies out-of-world references are rejected.
func TestGoalValidate(t *testing.T) {
	w, _ := goalWorld(t)

	if err := NewGoal(InPile(0, 0), RobotAt(0, 1)).Validate(w); err != nil {
		t.Fatalf("valid goal rejected: %v", err)
	}

	tests := []struct {
		name string
		goal Goal
		want string
	}{
		{"unknown container", NewGoal(InPile(99, 0)), "unknown container"},
		{"unknown pile", NewGoal(PileTop(0, 99)), "unknown pile"},
		{"container under itself", NewGoal(Under(1, 1, 0)), "under itself"},
		{"unknown robot", NewGoal(RobotAt(99, 0)), "unknown robot"},
		{"unknown dock", NewGoal(RobotAt(0, 99)), "unknown dock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate(w)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

// TestAndDoesNotAliasBase verifies And copies the literal slice.
func TestAndDoesNotAliasBase(t *testing.T) {
	base := NewGoal(InPile(0, 0))
	g1 := base.And(PileTop(1, 0))
	g2 := base.And(RobotAt(0, 1))

	if len(base.Literals) != 1 {
		t.Errorf("base grew to %d literals", len(base.Literals))
	}
	if g1.Literals[1].Kind != GoalPileTop || g2.Literals[1].Kind != GoalRobotAt {
		t.Errorf("extensions interfered: %v / %v", g1.Literals, g2.Literals)
	}
}
