package core

import (
	"fmt"
	"strconv"
	"strings"
)

// State is the full dynamic assignment: where every robot is and where every
// container sits. Transitions never mutate a State in place; Apply clones
// first, so values handed out by a solver stay stable in its closed set.
type State struct {
	robotDock []DockID            // robot -> dock
	piles     [][]ContainerID     // pile -> stack, index 0 = bottom
	loads     [][]ContainerID     // robot -> onboard stack, index 0 = slot 1
	weight    []int               // robot -> aggregate onboard weight
	where     []ContainerLocation // container -> location
}

// Setup is the initial assignment a scenario supplies.
type Setup struct {
	RobotDocks map[RobotID]DockID
	PileStacks map[PileID][]ContainerID  // bottom to top
	Loads      map[RobotID][]ContainerID // loading order, first loaded first
}

// NewState builds the initial state for a world from a scenario setup.
// Every robot needs a dock and every container exactly one place.
func NewState(w *World, setup Setup) (State, error) {
	s := State{
		robotDock: make([]DockID, len(w.Robots)),
		piles:     make([][]ContainerID, len(w.Piles)),
		loads:     make([][]ContainerID, len(w.Robots)),
		weight:    make([]int, len(w.Robots)),
		where:     make([]ContainerLocation, len(w.Containers)),
	}

	placed := make([]bool, len(w.Containers))
	place := func(c ContainerID, loc ContainerLocation) error {
		if int(c) < 0 || int(c) >= len(w.Containers) {
			return fmt.Errorf("unknown container %d", c)
		}
		if placed[c] {
			return fmt.Errorf("container %s placed twice", w.Containers[c].Name)
		}
		placed[c] = true
		s.where[c] = loc
		return nil
	}

	for _, r := range w.Robots {
		d, ok := setup.RobotDocks[r.ID]
		if !ok {
			return State{}, fmt.Errorf("robot %s has no starting dock", r.Name)
		}
		if int(d) < 0 || int(d) >= len(w.Docks) {
			return State{}, fmt.Errorf("robot %s starts at unknown dock %d", r.Name, d)
		}
		s.robotDock[r.ID] = d
	}

	for pid, stack := range setup.PileStacks {
		if int(pid) < 0 || int(pid) >= len(w.Piles) {
			return State{}, fmt.Errorf("setup references unknown pile %d", pid)
		}
		for i, c := range stack {
			if err := place(c, PileLoc(pid, i+1)); err != nil {
				return State{}, err
			}
		}
		s.piles[pid] = append([]ContainerID(nil), stack...)
	}

	for rid, aboard := range setup.Loads {
		if int(rid) < 0 || int(rid) >= len(w.Robots) {
			return State{}, fmt.Errorf("setup references unknown robot %d", rid)
		}
		robot := w.Robots[rid]
		if len(aboard) > robot.Slots {
			return State{}, fmt.Errorf("robot %s loaded with %d containers but has %d slots",
				robot.Name, len(aboard), robot.Slots)
		}
		for i, c := range aboard {
			if err := place(c, RobotLoc(rid, i+1)); err != nil {
				return State{}, err
			}
			s.weight[rid] += w.Weight(c)
		}
		if s.weight[rid] > robot.MaxWeight {
			return State{}, fmt.Errorf("robot %s starts over its weight limit: %d > %d",
				robot.Name, s.weight[rid], robot.MaxWeight)
		}
		s.loads[rid] = append([]ContainerID(nil), aboard...)
	}

	for c, ok := range placed {
		if !ok {
			return State{}, fmt.Errorf("container %s placed nowhere", w.Containers[c].Name)
		}
	}
	return s, nil
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := State{
		robotDock: append([]DockID(nil), s.robotDock...),
		piles:     make([][]ContainerID, len(s.piles)),
		loads:     make([][]ContainerID, len(s.loads)),
		weight:    append([]int(nil), s.weight...),
		where:     append([]ContainerLocation(nil), s.where...),
	}
	for i, p := range s.piles {
		c.piles[i] = append([]ContainerID(nil), p...)
	}
	for i, l := range s.loads {
		c.loads[i] = append([]ContainerID(nil), l...)
	}
	return c
}

// Key returns a canonical encoding of the state, used by solvers as the
// closed-set key. Weights and locations are derived facts and stay out.
func (s State) Key() string {
	var b strings.Builder
	for i, d := range s.robotDock {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(d)))
	}
	b.WriteByte('|')
	writeStacks(&b, s.piles)
	b.WriteByte('|')
	writeStacks(&b, s.loads)
	return b.String()
}

func writeStacks(b *strings.Builder, stacks [][]ContainerID) {
	for i, stack := range stacks {
		if i > 0 {
			b.WriteByte(';')
		}
		for j, c := range stack {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(c)))
		}
	}
}

// RobotDock returns the dock a robot occupies.
func (s State) RobotDock(r RobotID) DockID { return s.robotDock[r] }

// Pile returns a copy of a pile's stack, bottom to top.
func (s State) Pile(p PileID) []ContainerID {
	return append([]ContainerID(nil), s.piles[p]...)
}

// PileLen returns how many containers a pile holds.
func (s State) PileLen(p PileID) int { return len(s.piles[p]) }

// Top returns the container on top of a pile, if any.
func (s State) Top(p PileID) (ContainerID, bool) {
	stack := s.piles[p]
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// Load returns a copy of a robot's onboard stack in loading order.
func (s State) Load(r RobotID) []ContainerID {
	return append([]ContainerID(nil), s.loads[r]...)
}

// LoadCount returns how many slots a robot has filled.
func (s State) LoadCount(r RobotID) int { return len(s.loads[r]) }

// LoadTop returns the container in the highest occupied slot, if any.
// Only this container may be put down next.
func (s State) LoadTop(r RobotID) (ContainerID, bool) {
	load := s.loads[r]
	if len(load) == 0 {
		return 0, false
	}
	return load[len(load)-1], true
}

// Weight returns a robot's aggregate onboard weight.
func (s State) Weight(r RobotID) int { return s.weight[r] }

// Locate returns where a container currently sits.
func (s State) Locate(c ContainerID) ContainerLocation { return s.where[c] }

// DockOccupied reports whether any robot other than except is at dock d.
func (s State) DockOccupied(d DockID, except RobotID) bool {
	for r, at := range s.robotDock {
		if RobotID(r) != except && at == d {
			return true
		}
	}
	return false
}

// Check audits every invariant against the world: one dock per robot, each
// container in exactly one place with an agreeing location record, weights
// summing correctly and within limits, slot counts within capacity. Meant
// for tests and replay verification, not the search hot path.
func (s State) Check(w *World) error {
	if len(s.robotDock) != len(w.Robots) || len(s.piles) != len(w.Piles) ||
		len(s.loads) != len(w.Robots) || len(s.weight) != len(w.Robots) ||
		len(s.where) != len(w.Containers) {
		return fmt.Errorf("state shape does not match world")
	}
	for r, d := range s.robotDock {
		if int(d) < 0 || int(d) >= len(w.Docks) {
			return fmt.Errorf("robot %s at unknown dock %d", w.Robots[r].Name, d)
		}
	}

	seen := make([]bool, len(w.Containers))
	for pid, stack := range s.piles {
		for i, c := range stack {
			if seen[c] {
				return fmt.Errorf("container %s in two places", w.Containers[c].Name)
			}
			seen[c] = true
			want := PileLoc(PileID(pid), i+1)
			if s.where[c] != want {
				return fmt.Errorf("container %s location record disagrees with pile %s",
					w.Containers[c].Name, w.Piles[pid].Name)
			}
		}
	}
	for rid, load := range s.loads {
		robot := w.Robots[rid]
		if len(load) > robot.Slots {
			return fmt.Errorf("robot %s holds %d containers over %d slots",
				robot.Name, len(load), robot.Slots)
		}
		sum := 0
		for i, c := range load {
			if seen[c] {
				return fmt.Errorf("container %s in two places", w.Containers[c].Name)
			}
			seen[c] = true
			want := RobotLoc(RobotID(rid), i+1)
			if s.where[c] != want {
				return fmt.Errorf("container %s location record disagrees with robot %s",
					w.Containers[c].Name, robot.Name)
			}
			sum += w.Weight(c)
		}
		if sum != s.weight[rid] {
			return fmt.Errorf("robot %s weight ledger %d, onboard sum %d",
				robot.Name, s.weight[rid], sum)
		}
		if sum > robot.MaxWeight {
			return fmt.Errorf("robot %s over weight limit: %d > %d", robot.Name, sum, robot.MaxWeight)
		}
	}
	for c, ok := range seen {
		if !ok {
			return fmt.Errorf("container %s is nowhere", w.Containers[c].Name)
		}
	}
	return nil
}
