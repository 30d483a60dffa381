package core

import (
	"fmt"
	"sort"
)

// MaxSlots is the largest onboard capacity any robot can have.
const MaxSlots = 3

// Robot is a dock worker with bounded onboard capacity.
type Robot struct {
	ID        RobotID
	Name      string
	Slots     int // Onboard capacity, 1..MaxSlots
	MaxWeight int // Aggregate onboard weight limit
}

// Dock is a location robots occupy and travel between.
type Dock struct {
	ID   DockID
	Name string
}

// Container is a stackable cargo unit with a fixed weight.
type Container struct {
	ID     ContainerID
	Name   string
	Weight int
}

// Pile is a LIFO stack of containers fixed to one dock.
type Pile struct {
	ID   PileID
	Name string
	Dock DockID
}

// World holds the static part of a problem: the entity universe, the dock
// adjacency relation, and the capacity/weight attributes. Dynamic facts
// (who is where, what is stacked on what) live in State.
type World struct {
	Docks      []Dock
	Robots     []Robot
	Containers []Container
	Piles      []Pile

	// Adjacency lists moves: a robot at dock d may move to any dock in
	// Adjacency[d]. Connect mirrors edges; ConnectOneWay does not.
	Adjacency map[DockID][]DockID

	// ExclusiveDocks forbids moving onto a dock another robot occupies.
	// Off by default; scenario policy, not a universal rule.
	ExclusiveDocks bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{Adjacency: make(map[DockID][]DockID)}
}

// AddDock registers a dock and returns its ID.
func (w *World) AddDock(name string) DockID {
	id := DockID(len(w.Docks))
	w.Docks = append(w.Docks, Dock{ID: id, Name: name})
	return id
}

// AddRobot registers a robot with its slot capacity and weight limit.
func (w *World) AddRobot(name string, slots, maxWeight int) RobotID {
	id := RobotID(len(w.Robots))
	w.Robots = append(w.Robots, Robot{ID: id, Name: name, Slots: slots, MaxWeight: maxWeight})
	return id
}

// AddContainer registers a container with its weight.
func (w *World) AddContainer(name string, weight int) ContainerID {
	id := ContainerID(len(w.Containers))
	w.Containers = append(w.Containers, Container{ID: id, Name: name, Weight: weight})
	return id
}

// AddPile registers a pile at a dock.
func (w *World) AddPile(name string, at DockID) PileID {
	id := PileID(len(w.Piles))
	w.Piles = append(w.Piles, Pile{ID: id, Name: name, Dock: at})
	return id
}

// Connect adds a symmetric adjacency between two docks.
func (w *World) Connect(a, b DockID) {
	w.Adjacency[a] = append(w.Adjacency[a], b)
	w.Adjacency[b] = append(w.Adjacency[b], a)
}

// ConnectOneWay adds a directed adjacency from a to b.
func (w *World) ConnectOneWay(a, b DockID) {
	w.Adjacency[a] = append(w.Adjacency[a], b)
}

// Adjacent reports whether a robot at dock a may move to dock b.
func (w *World) Adjacent(a, b DockID) bool {
	for _, d := range w.Adjacency[a] {
		if d == b {
			return true
		}
	}
	return false
}

// Neighbors returns the docks reachable in one move from d, sorted.
func (w *World) Neighbors(d DockID) []DockID {
	out := append([]DockID(nil), w.Adjacency[d]...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PilesAt returns the piles fixed to dock d.
func (w *World) PilesAt(d DockID) []PileID {
	var out []PileID
	for _, p := range w.Piles {
		if p.Dock == d {
			out = append(out, p.ID)
		}
	}
	return out
}

// Weight returns a container's weight.
func (w *World) Weight(c ContainerID) int {
	return w.Containers[c].Weight
}

// DockByName finds a dock by name.
func (w *World) DockByName(name string) (DockID, bool) {
	for _, d := range w.Docks {
		if d.Name == name {
			return d.ID, true
		}
	}
	return 0, false
}

// RobotByName finds a robot by name.
func (w *World) RobotByName(name string) (RobotID, bool) {
	for _, r := range w.Robots {
		if r.Name == name {
			return r.ID, true
		}
	}
	return 0, false
}

// ContainerByName finds a container by name.
func (w *World) ContainerByName(name string) (ContainerID, bool) {
	for _, c := range w.Containers {
		if c.Name == name {
			return c.ID, true
		}
	}
	return 0, false
}

// PileByName finds a pile by name.
func (w *World) PileByName(name string) (PileID, bool) {
	for _, p := range w.Piles {
		if p.Name == name {
			return p.ID, true
		}
	}
	return 0, false
}

// Validate checks the static world for consistency.
func (w *World) Validate() error {
	if len(w.Docks) == 0 {
		return fmt.Errorf("world has no docks")
	}
	names := make(map[string]bool)
	checkName := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%s with empty name", kind)
		}
		if names[name] {
			return fmt.Errorf("duplicate entity name %q", name)
		}
		names[name] = true
		return nil
	}
	for _, d := range w.Docks {
		if err := checkName("dock", d.Name); err != nil {
			return err
		}
	}
	for _, r := range w.Robots {
		if err := checkName("robot", r.Name); err != nil {
			return err
		}
		if r.Slots < 1 || r.Slots > MaxSlots {
			return fmt.Errorf("robot %s: slot capacity %d outside [1,%d]", r.Name, r.Slots, MaxSlots)
		}
		if r.MaxWeight <= 0 {
			return fmt.Errorf("robot %s: weight limit must be > 0", r.Name)
		}
	}
	for _, c := range w.Containers {
		if err := checkName("container", c.Name); err != nil {
			return err
		}
		if c.Weight <= 0 {
			return fmt.Errorf("container %s: weight must be > 0", c.Name)
		}
	}
	for _, p := range w.Piles {
		if err := checkName("pile", p.Name); err != nil {
			return err
		}
		if int(p.Dock) < 0 || int(p.Dock) >= len(w.Docks) {
			return fmt.Errorf("pile %s: unknown dock %d", p.Name, p.Dock)
		}
	}
	for from, tos := range w.Adjacency {
		if int(from) < 0 || int(from) >= len(w.Docks) {
			return fmt.Errorf("adjacency from unknown dock %d", from)
		}
		for _, to := range tos {
			if int(to) < 0 || int(to) >= len(w.Docks) {
				return fmt.Errorf("adjacency %s -> unknown dock %d", w.Docks[from].Name, to)
			}
			if to == from {
				return fmt.Errorf("dock %s adjacent to itself", w.Docks[from].Name)
			}
		}
	}
	return nil
}
