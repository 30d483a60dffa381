package core

// Reason says why an action is not applicable in a state. Inapplicability is
// the normal currency of the model, not an error: a search engine simply
// never takes the action. ReasonOK means the action applies.
type Reason int

const (
	ReasonOK             Reason = iota
	ReasonUnknownAction         // malformed action or out-of-range entity
	ReasonRobotElsewhere        // robot is not at the action's dock
	ReasonNotAdjacent           // move target not adjacent to the source
	ReasonDockOccupied          // move target held by another robot (exclusive-docks policy)
	ReasonPileElsewhere         // pile is not at the action's dock
	ReasonNotPileTop            // pickup target is not the pile's top
	ReasonNoFreeSlot            // every load slot is occupied
	ReasonOverweight            // container would push the robot past its weight limit
	ReasonNotLoadTop            // putdown target is not the last-loaded container
)

func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonUnknownAction:
		return "unknown action"
	case ReasonRobotElsewhere:
		return "robot elsewhere"
	case ReasonNotAdjacent:
		return "docks not adjacent"
	case ReasonDockOccupied:
		return "dock occupied"
	case ReasonPileElsewhere:
		return "pile not at dock"
	case ReasonNotPileTop:
		return "not the pile top"
	case ReasonNoFreeSlot:
		return "no free slot"
	case ReasonOverweight:
		return "over weight limit"
	case ReasonNotLoadTop:
		return "not the load top"
	default:
		return "unknown reason"
	}
}

// Applicable evaluates an action's precondition against a state without
// touching it. On failure the Reason names the first precondition that does
// not hold, checked in the order the rules state them.
func Applicable(w *World, s State, a Action) (bool, Reason) {
	if int(a.Robot) < 0 || int(a.Robot) >= len(w.Robots) {
		return false, ReasonUnknownAction
	}
	switch a.Kind {
	case Move:
		if int(a.From) < 0 || int(a.From) >= len(w.Docks) ||
			int(a.To) < 0 || int(a.To) >= len(w.Docks) {
			return false, ReasonUnknownAction
		}
		if s.RobotDock(a.Robot) != a.From {
			return false, ReasonRobotElsewhere
		}
		if !w.Adjacent(a.From, a.To) {
			return false, ReasonNotAdjacent
		}
		if w.ExclusiveDocks && s.DockOccupied(a.To, a.Robot) {
			return false, ReasonDockOccupied
		}
		return true, ReasonOK

	case Pickup:
		if int(a.Container) < 0 || int(a.Container) >= len(w.Containers) ||
			int(a.Pile) < 0 || int(a.Pile) >= len(w.Piles) ||
			int(a.Dock) < 0 || int(a.Dock) >= len(w.Docks) {
			return false, ReasonUnknownAction
		}
		if s.RobotDock(a.Robot) != a.Dock {
			return false, ReasonRobotElsewhere
		}
		if w.Piles[a.Pile].Dock != a.Dock {
			return false, ReasonPileElsewhere
		}
		if top, ok := s.Top(a.Pile); !ok || top != a.Container {
			return false, ReasonNotPileTop
		}
		if s.LoadCount(a.Robot) >= w.Robots[a.Robot].Slots {
			return false, ReasonNoFreeSlot
		}
		if s.Weight(a.Robot)+w.Weight(a.Container) > w.Robots[a.Robot].MaxWeight {
			return false, ReasonOverweight
		}
		return true, ReasonOK

	case Putdown:
		if int(a.Container) < 0 || int(a.Container) >= len(w.Containers) ||
			int(a.Pile) < 0 || int(a.Pile) >= len(w.Piles) ||
			int(a.Dock) < 0 || int(a.Dock) >= len(w.Docks) {
			return false, ReasonUnknownAction
		}
		if s.RobotDock(a.Robot) != a.Dock {
			return false, ReasonRobotElsewhere
		}
		if w.Piles[a.Pile].Dock != a.Dock {
			return false, ReasonPileElsewhere
		}
		if top, ok := s.LoadTop(a.Robot); !ok || top != a.Container {
			return false, ReasonNotLoadTop
		}
		return true, ReasonOK

	default:
		return false, ReasonUnknownAction
	}
}

// Apply executes an action as one atomic unit: it either returns the
// complete successor state, or reports false and leaves nothing half-done.
// The input state is never mutated.
func Apply(w *World, s State, a Action) (State, bool) {
	if ok, _ := Applicable(w, s, a); !ok {
		return State{}, false
	}
	next := s.Clone()
	switch a.Kind {
	case Move:
		next.robotDock[a.Robot] = a.To

	case Pickup:
		stack := next.piles[a.Pile]
		next.piles[a.Pile] = stack[:len(stack)-1]
		next.loads[a.Robot] = append(next.loads[a.Robot], a.Container)
		next.weight[a.Robot] += w.Weight(a.Container)
		next.where[a.Container] = RobotLoc(a.Robot, len(next.loads[a.Robot]))

	case Putdown:
		load := next.loads[a.Robot]
		next.loads[a.Robot] = load[:len(load)-1]
		next.piles[a.Pile] = append(next.piles[a.Pile], a.Container)
		next.weight[a.Robot] -= w.Weight(a.Container)
		next.where[a.Container] = PileLoc(a.Pile, len(next.piles[a.Pile]))
	}
	return next, true
}
