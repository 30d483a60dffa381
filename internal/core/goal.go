package core

import (
	"fmt"
	"strings"
)

// GoalKind classifies goal literals.
type GoalKind int

const (
	GoalInPile  GoalKind = iota // container anywhere in a pile
	GoalPileTop                 // container on top of a pile
	GoalUnder                   // container directly under another in a pile
	GoalRobotAt                 // robot at a dock
)

// Literal is one goal condition over the dynamic relations.
type Literal struct {
	Kind      GoalKind
	Container ContainerID
	Under     ContainerID // GoalUnder: the container sitting on top
	Pile      PileID
	Robot     RobotID
	Dock      DockID
}

// InPile requires container c to sit anywhere in pile p.
func InPile(c ContainerID, p PileID) Literal {
	return Literal{Kind: GoalInPile, Container: c, Pile: p}
}

// PileTop requires container c to be the top of pile p.
func PileTop(c ContainerID, p PileID) Literal {
	return Literal{Kind: GoalPileTop, Container: c, Pile: p}
}

// Under requires container c to sit directly under container above in pile p.
func Under(c, above ContainerID, p PileID) Literal {
	return Literal{Kind: GoalUnder, Container: c, Under: above, Pile: p}
}

// RobotAt requires robot r to stand at dock d.
func RobotAt(r RobotID, d DockID) Literal {
	return Literal{Kind: GoalRobotAt, Robot: r, Dock: d}
}

// PileExact expands "pile p holds exactly this stack, bottom to top" into
// membership, ordering and top literals. An empty stack yields nothing;
// emptiness is not expressible as a positive literal.
func PileExact(p PileID, bottomToTop ...ContainerID) []Literal {
	var out []Literal
	for i, c := range bottomToTop {
		out = append(out, InPile(c, p))
		if i+1 < len(bottomToTop) {
			out = append(out, Under(c, bottomToTop[i+1], p))
		}
	}
	if n := len(bottomToTop); n > 0 {
		out = append(out, PileTop(bottomToTop[n-1], p))
	}
	return out
}

// Goal is a conjunction of literals, checked externally by the planner
// after every expansion. There is no terminal state in the model itself.
type Goal struct {
	Literals []Literal
}

// NewGoal builds a goal from literals.
func NewGoal(lits ...Literal) Goal {
	return Goal{Literals: lits}
}

// And appends literals and returns the extended goal.
func (g Goal) And(lits ...Literal) Goal {
	g.Literals = append(append([]Literal(nil), g.Literals...), lits...)
	return g
}

// Holds evaluates one literal in a state.
func (l Literal) Holds(w *World, s State) bool {
	switch l.Kind {
	case GoalInPile:
		return s.Locate(l.Container).InPile(l.Pile)
	case GoalPileTop:
		top, ok := s.Top(l.Pile)
		return ok && top == l.Container
	case GoalUnder:
		below := s.Locate(l.Container)
		above := s.Locate(l.Under)
		return below.Kind == LocPile && above.Kind == LocPile &&
			below.Pile == l.Pile && above.Pile == l.Pile &&
			above.Position == below.Position+1
	case GoalRobotAt:
		return s.RobotDock(l.Robot) == l.Dock
	default:
		return false
	}
}

// Satisfied reports whether every literal holds.
func (g Goal) Satisfied(w *World, s State) bool {
	for _, l := range g.Literals {
		if !l.Holds(w, s) {
			return false
		}
	}
	return true
}

// Unsatisfied counts literals that do not hold; solvers use it as a
// goal-count heuristic.
func (g Goal) Unsatisfied(w *World, s State) int {
	n := 0
	for _, l := range g.Literals {
		if !l.Holds(w, s) {
			n++
		}
	}
	return n
}

// Validate rejects literals referencing entities outside the world.
func (g Goal) Validate(w *World) error {
	for i, l := range g.Literals {
		switch l.Kind {
		case GoalInPile, GoalPileTop:
			if int(l.Container) < 0 || int(l.Container) >= len(w.Containers) {
				return fmt.Errorf("goal literal %d: unknown container %d", i, l.Container)
			}
			if int(l.Pile) < 0 || int(l.Pile) >= len(w.Piles) {
				return fmt.Errorf("goal literal %d: unknown pile %d", i, l.Pile)
			}
		case GoalUnder:
			if int(l.Container) < 0 || int(l.Container) >= len(w.Containers) ||
				int(l.Under) < 0 || int(l.Under) >= len(w.Containers) {
				return fmt.Errorf("goal literal %d: unknown container", i)
			}
			if l.Container == l.Under {
				return fmt.Errorf("goal literal %d: container under itself", i)
			}
			if int(l.Pile) < 0 || int(l.Pile) >= len(w.Piles) {
				return fmt.Errorf("goal literal %d: unknown pile %d", i, l.Pile)
			}
		case GoalRobotAt:
			if int(l.Robot) < 0 || int(l.Robot) >= len(w.Robots) {
				return fmt.Errorf("goal literal %d: unknown robot %d", i, l.Robot)
			}
			if int(l.Dock) < 0 || int(l.Dock) >= len(w.Docks) {
				return fmt.Errorf("goal literal %d: unknown dock %d", i, l.Dock)
			}
		default:
			return fmt.Errorf("goal literal %d: unknown kind %d", i, l.Kind)
		}
	}
	return nil
}

// Describe renders the goal with entity names.
func (g Goal) Describe(w *World) string {
	parts := make([]string, 0, len(g.Literals))
	for _, l := range g.Literals {
		switch l.Kind {
		case GoalInPile:
			parts = append(parts, fmt.Sprintf("in(%s,%s)", w.Containers[l.Container].Name, w.Piles[l.Pile].Name))
		case GoalPileTop:
			parts = append(parts, fmt.Sprintf("top(%s,%s)", w.Containers[l.Container].Name, w.Piles[l.Pile].Name))
		case GoalUnder:
			parts = append(parts, fmt.Sprintf("under(%s,%s,%s)",
				w.Containers[l.Container].Name, w.Containers[l.Under].Name, w.Piles[l.Pile].Name))
		case GoalRobotAt:
			parts = append(parts, fmt.Sprintf("at(%s,%s)", w.Robots[l.Robot].Name, w.Docks[l.Dock].Name))
		}
	}
	return strings.Join(parts, " & ")
}
