package core

import "fmt"

// Action is one ground operation: a transition rule with every parameter
// bound to a concrete entity.
type Action struct {
	Kind  ActionKind
	Robot RobotID

	// Move parameters.
	From, To DockID

	// Pickup/Putdown parameters. Dock is where robot, pile and container
	// meet; it is redundant with the pile's home dock but kept explicit so
	// an action is self-describing.
	Container ContainerID
	Pile      PileID
	Dock      DockID
}

// MoveAction builds a move of robot r from dock a to dock b.
func MoveAction(r RobotID, a, b DockID) Action {
	return Action{Kind: Move, Robot: r, From: a, To: b}
}

// PickupAction builds a pickup of container c from pile p at dock d by robot r.
func PickupAction(r RobotID, c ContainerID, p PileID, d DockID) Action {
	return Action{Kind: Pickup, Robot: r, Container: c, Pile: p, Dock: d}
}

// PutdownAction builds a putdown of container c onto pile p at dock d by robot r.
func PutdownAction(r RobotID, c ContainerID, p PileID, d DockID) Action {
	return Action{Kind: Putdown, Robot: r, Container: c, Pile: p, Dock: d}
}

// String renders the action with raw IDs, e.g. "move(r0,d1,d2)".
// World.DescribeAction substitutes scenario names.
func (a Action) String() string {
	switch a.Kind {
	case Move:
		return fmt.Sprintf("move(r%d,d%d,d%d)", a.Robot, a.From, a.To)
	case Pickup:
		return fmt.Sprintf("pickup(r%d,c%d,p%d,d%d)", a.Robot, a.Container, a.Pile, a.Dock)
	case Putdown:
		return fmt.Sprintf("putdown(r%d,c%d,p%d,d%d)", a.Robot, a.Container, a.Pile, a.Dock)
	default:
		return fmt.Sprintf("action(kind=%d)", a.Kind)
	}
}

// DescribeAction renders an action with entity names, matching the
// move/pickup/putdown notation scenarios use.
func (w *World) DescribeAction(a Action) string {
	switch a.Kind {
	case Move:
		return fmt.Sprintf("move(%s,%s,%s)", w.Robots[a.Robot].Name, w.Docks[a.From].Name, w.Docks[a.To].Name)
	case Pickup:
		return fmt.Sprintf("pickup(%s,%s,%s,%s)", w.Robots[a.Robot].Name,
			w.Containers[a.Container].Name, w.Piles[a.Pile].Name, w.Docks[a.Dock].Name)
	case Putdown:
		return fmt.Sprintf("putdown(%s,%s,%s,%s)", w.Robots[a.Robot].Name,
			w.Containers[a.Container].Name, w.Piles[a.Pile].Name, w.Docks[a.Dock].Name)
	default:
		return a.String()
	}
}

// Ground enumerates every ground action that could apply in some state:
// moves along declared adjacencies, pickups and putdowns at each pile's own
// dock. Statically impossible bindings (a pickup at a dock the pile is not
// on) are left out; dynamically inapplicable ones stay, gated by Applicable.
// The order is deterministic.
func Ground(w *World) []Action {
	var out []Action
	for _, r := range w.Robots {
		for d := range w.Docks {
			for _, to := range w.Neighbors(DockID(d)) {
				out = append(out, MoveAction(r.ID, DockID(d), to))
			}
		}
	}
	for _, r := range w.Robots {
		for _, c := range w.Containers {
			for _, p := range w.Piles {
				out = append(out, PickupAction(r.ID, c.ID, p.ID, p.Dock))
				out = append(out, PutdownAction(r.ID, c.ID, p.ID, p.Dock))
			}
		}
	}
	return out
}

// Succ pairs an applicable action with the state it produces.
type Succ struct {
	Action Action
	State  State
}

// Successors returns every applicable action in s with its resulting state,
// in deterministic order: per robot, moves first, then pickups, then
// putdowns.
func Successors(w *World, s State) []Succ {
	var out []Succ
	try := func(a Action) {
		if next, ok := Apply(w, s, a); ok {
			out = append(out, Succ{Action: a, State: next})
		}
	}
	for _, r := range w.Robots {
		at := s.RobotDock(r.ID)
		for _, to := range w.Neighbors(at) {
			try(MoveAction(r.ID, at, to))
		}
		for _, p := range w.PilesAt(at) {
			if top, ok := s.Top(p); ok {
				try(PickupAction(r.ID, top, p, at))
			}
		}
		if top, ok := s.LoadTop(r.ID); ok {
			for _, p := range w.PilesAt(at) {
				try(PutdownAction(r.ID, top, p, at))
			}
		}
	}
	return out
}
