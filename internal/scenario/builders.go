// Package scenario provides the stock dock-worker problems, a YAML codec
// for problem files, and a random instance generator.
package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// ErrUnknownScenario reports a built-in name the registry does not know.
var ErrUnknownScenario = errors.New("unknown scenario")

var builders = map[string]func() *core.Problem{
	"capacity":       CapacityDemo,
	"weight":         WeightDemo,
	"tricky-weight":  TrickyWeight,
	"swap":           SwapDemo,
	"redistribution": Redistribution,
}

// Names lists the built-in scenarios, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load builds a built-in scenario by name.
func Load(name string) (*core.Problem, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return build(), nil
}

// mustState builds the initial state for a hardcoded scenario. The setups
// below are fixed data; a failure here is a bug in this package.
func mustState(w *core.World, setup core.Setup) core.State {
	s, err := core.NewState(w, setup)
	if err != nil {
		panic(fmt.Sprintf("scenario: bad built-in setup: %v", err))
	}
	return s
}

// CapacityDemo is three robots with one, two and three slots on a dock
// triangle. Only the slot counts constrain the plan: the top of p1 has to
// come off before anything underneath moves.
func CapacityDemo() *core.Problem {
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	d3 := w.AddDock("d3")
	w.Connect(d1, d2)
	w.Connect(d2, d3)
	w.Connect(d3, d1)

	r1 := w.AddRobot("r1", 1, 10)
	r2 := w.AddRobot("r2", 2, 10)
	r3 := w.AddRobot("r3", 3, 10)

	c1 := w.AddContainer("c1", 2)
	c2 := w.AddContainer("c2", 2)
	c3 := w.AddContainer("c3", 2)

	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)
	p3 := w.AddPile("p3", d3)

	init := mustState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{r1: d1, r2: d2, r3: d3},
		PileStacks: map[core.PileID][]core.ContainerID{
			p1: {c1, c2},
			p2: {c3},
		},
	})

	return &core.Problem{
		Name:  "capacity",
		World: w,
		Init:  init,
		Goal: core.NewGoal(
			core.InPile(c2, p3),
			core.InPile(c1, p1),
			core.InPile(c3, p2),
		),
	}
}

// WeightDemo is the strong/weak pair: r1 can lift the heavy containers, r2
// never can, though two light ones together are fine for either. Both heavy
// containers have to cross to p3.
func WeightDemo() *core.Problem {
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	d3 := w.AddDock("d3")
	w.Connect(d1, d2)
	w.Connect(d2, d3)
	w.Connect(d3, d1)

	r1 := w.AddRobot("r1", 2, 7)
	r2 := w.AddRobot("r2", 2, 4)

	c1 := w.AddContainer("c1", 2)
	c2 := w.AddContainer("c2", 2)
	c3 := w.AddContainer("c3", 5)
	c4 := w.AddContainer("c4", 5)
	c5 := w.AddContainer("c5", 2)

	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)
	p3 := w.AddPile("p3", d3)

	init := mustState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{r1: d1, r2: d2},
		PileStacks: map[core.PileID][]core.ContainerID{
			p1: {c1, c3},
			p2: {c2, c4},
			p3: {c5},
		},
	})

	return &core.Problem{
		Name:  "weight",
		World: w,
		Init:  init,
		Goal: core.NewGoal(
			core.InPile(c3, p3),
			core.InPile(c4, p3),
			core.Under(c3, c4, p3),
			core.PileTop(c4, p3),
		),
	}
}

// TrickyWeight is the single-robot rearrangement puzzle: two slots, weight
// limit six, three four-tonners stacked on p2. The target stack on p3 has
// to be built in an order the limit never allows in one trip, so the plan
// routes through p1 as a buffer.
func TrickyWeight() *core.Problem {
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	d3 := w.AddDock("d3")
	w.Connect(d1, d2)
	w.Connect(d2, d3)
	w.Connect(d3, d1)

	r1 := w.AddRobot("r1", 2, 6)

	c1 := w.AddContainer("c1", 2)
	c2 := w.AddContainer("c2", 4)
	c3 := w.AddContainer("c3", 4)
	c4 := w.AddContainer("c4", 4)
	c5 := w.AddContainer("c5", 4)

	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)
	p3 := w.AddPile("p3", d3)

	init := mustState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{r1: d1},
		PileStacks: map[core.PileID][]core.ContainerID{
			p1: {c1, c2},
			p2: {c3, c4, c5},
		},
	})

	goal := core.NewGoal(core.PileExact(p3, c4, c5, c1, c2)...).
		And(core.InPile(c3, p2), core.PileTop(c3, p2))

	return &core.Problem{
		Name:  "tricky-weight",
		World: w,
		Init:  init,
		Goal:  goal,
	}
}

// SwapDemo trades two piles across two docks and reverses one of them: p1's
// stack returns to p2 upside down, which forces both robots to stage
// containers instead of shuttling them straight over.
func SwapDemo() *core.Problem {
	w := core.NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	w.Connect(d1, d2)

	r1 := w.AddRobot("r1", 2, 6)
	r2 := w.AddRobot("r2", 2, 6)

	c1 := w.AddContainer("c1", 2)
	c2 := w.AddContainer("c2", 2)
	c3 := w.AddContainer("c3", 2)
	c4 := w.AddContainer("c4", 2)

	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d2)

	init := mustState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{r1: d1, r2: d2},
		PileStacks: map[core.PileID][]core.ContainerID{
			p1: {c1, c2},
			p2: {c3, c4},
		},
	})

	goal := core.NewGoal(core.PileExact(p1, c3, c4)...).
		And(core.PileExact(p2, c2, c1)...)

	return &core.Problem{
		Name:  "swap",
		World: w,
		Init:  init,
		Goal:  goal,
	}
}

// Redistribution is the warehouse-scale instance: eight docks in a sparse
// mesh, twelve piles, fifteen containers, three single-slot robots, and
// docks that hold one robot at a time. Goals only ask for membership, so
// solvers fight the topology rather than stack order.
func Redistribution() *core.Problem {
	w := core.NewWorld()
	w.ExclusiveDocks = true

	d := make([]core.DockID, 9) // 1-based
	for i := 1; i <= 8; i++ {
		d[i] = w.AddDock(fmt.Sprintf("d%d", i))
	}
	edges := [][2]int{
		{1, 2}, {1, 3},
		{2, 3}, {2, 4},
		{3, 4}, {3, 5},
		{4, 5}, {4, 6},
		{5, 6}, {5, 7},
		{6, 7}, {6, 8},
		{7, 8},
		{1, 5}, {2, 6},
	}
	for _, e := range edges {
		w.Connect(d[e[0]], d[e[1]])
	}

	r1 := w.AddRobot("r1", 1, 1)
	r2 := w.AddRobot("r2", 1, 1)
	r3 := w.AddRobot("r3", 1, 1)

	c := make([]core.ContainerID, 16) // 1-based
	for i := 1; i <= 15; i++ {
		c[i] = w.AddContainer(fmt.Sprintf("c%d", i), 1)
	}

	pileDocks := []int{1, 1, 2, 3, 3, 3, 4, 5, 5, 6, 7, 8}
	p := make([]core.PileID, 13) // 1-based
	for i, at := range pileDocks {
		p[i+1] = w.AddPile(fmt.Sprintf("p%d", i+1), d[at])
	}

	init := mustState(w, core.Setup{
		RobotDocks: map[core.RobotID]core.DockID{r1: d[1], r2: d[3], r3: d[5]},
		PileStacks: map[core.PileID][]core.ContainerID{
			p[1]: {c[1], c[2], c[3]},
			p[2]: {c[4], c[5]},
			p[3]: {c[6], c[7]},
			p[4]: {c[8]},
			p[5]: {c[9], c[10]},
			p[6]: {c[11]},
			p[7]: {c[12]},
			p[8]: {c[13]},
			p[9]: {c[14], c[15]},
		},
	})

	return &core.Problem{
		Name:  "redistribution",
		World: w,
		Init:  init,
		Goal: core.NewGoal(
			core.InPile(c[1], p[1]),
			core.InPile(c[2], p[1]),
			core.InPile(c[3], p[3]),
			core.InPile(c[4], p[3]),
			core.InPile(c[5], p[4]),
			core.InPile(c[6], p[4]),
			core.InPile(c[7], p[7]),
			core.InPile(c[8], p[7]),
			core.InPile(c[9], p[8]),
			core.InPile(c[10], p[8]),
			core.InPile(c[11], p[10]),
			core.InPile(c[12], p[10]),
			core.InPile(c[13], p[11]),
			core.InPile(c[14], p[11]),
			core.InPile(c[15], p[12]),
		),
	}
}
