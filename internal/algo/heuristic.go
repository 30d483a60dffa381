package algo

import (
	"fmt"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// Heuristic estimates remaining plan length from a state. Informed solvers
// call it once per generated state.
type Heuristic struct {
	Name     string
	Estimate func(p *core.Problem, s core.State) int
}

// Blind estimates zero everywhere. A* with Blind degrades to uniform-cost
// search.
func Blind() Heuristic {
	return Heuristic{
		Name:     "blind",
		Estimate: func(*core.Problem, core.State) int { return 0 },
	}
}

// GoalCount counts unsatisfied goal literals. Fast and effective for greedy
// search, but one putdown can satisfy several literals at once, so it can
// overestimate and costs A* its optimality guarantee.
func GoalCount() Heuristic {
	return Heuristic{
		Name: "goalcount",
		Estimate: func(p *core.Problem, s core.State) int {
			return p.Goal.Unsatisfied(p.World, s)
		},
	}
}

// Misplaced is the admissible estimate. Every pickup or putdown touches
// exactly one container and every move relocates exactly one robot, so the
// estimate charges two actions per container stacked in a pile other than
// its goal pile, one per loaded container still to be put down, and one per
// robot away from its goal dock. It never exceeds the true remaining cost.
func Misplaced() Heuristic {
	return Heuristic{
		Name: "misplaced",
		Estimate: func(p *core.Problem, s core.State) int {
			goalPile := make(map[core.ContainerID]core.PileID)
			for _, l := range p.Goal.Literals {
				switch l.Kind {
				case core.GoalInPile, core.GoalPileTop:
					goalPile[l.Container] = l.Pile
				case core.GoalUnder:
					goalPile[l.Container] = l.Pile
					goalPile[l.Under] = l.Pile
				}
			}

			h := 0
			for c, pile := range goalPile {
				loc := s.Locate(c)
				switch {
				case loc.Kind == core.LocRobot:
					h++
				case loc.Pile != pile:
					h += 2
				}
			}
			for _, l := range p.Goal.Literals {
				if l.Kind == core.GoalRobotAt && s.RobotDock(l.Robot) != l.Dock {
					h++
				}
			}
			return h
		},
	}
}

func heuristicByName(name string) (Heuristic, error) {
	switch name {
	case "blind":
		return Blind(), nil
	case "goalcount":
		return GoalCount(), nil
	case "misplaced":
		return Misplaced(), nil
	default:
		return Heuristic{}, fmt.Errorf("unknown heuristic %q", name)
	}
}

// HeuristicNames lists the heuristics the registry accepts.
func HeuristicNames() []string {
	return []string{"blind", "goalcount", "misplaced"}
}
