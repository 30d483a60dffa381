package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// File is the on-disk scenario format. Entity references are by name; pile
// stacks and robot loads list bottom to top.
type File struct {
	Name           string          `yaml:"name"`
	ExclusiveDocks bool            `yaml:"exclusive_docks,omitempty"`
	Docks          []string        `yaml:"docks"`
	Edges          [][2]string     `yaml:"edges,omitempty"`
	OneWayEdges    [][2]string     `yaml:"one_way_edges,omitempty"`
	Robots         []RobotSpec     `yaml:"robots"`
	Containers     []ContainerSpec `yaml:"containers,omitempty"`
	Piles          []PileSpec      `yaml:"piles,omitempty"`
	Goal           GoalSpec        `yaml:"goal"`
}

type RobotSpec struct {
	Name      string   `yaml:"name"`
	Slots     int      `yaml:"slots"`
	MaxWeight int      `yaml:"max_weight"`
	At        string   `yaml:"at"`
	Load      []string `yaml:"load,omitempty"`
}

type ContainerSpec struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

type PileSpec struct {
	Name  string   `yaml:"name"`
	Dock  string   `yaml:"dock"`
	Stack []string `yaml:"stack,omitempty"`
}

type GoalSpec struct {
	InPile  []MemberSpec  `yaml:"in_pile,omitempty"`
	PileTop []MemberSpec  `yaml:"pile_top,omitempty"`
	Under   []UnderSpec   `yaml:"under,omitempty"`
	RobotAt []RobotAtSpec `yaml:"robot_at,omitempty"`
}

type MemberSpec struct {
	Container string `yaml:"container"`
	Pile      string `yaml:"pile"`
}

type UnderSpec struct {
	Below string `yaml:"below"`
	Above string `yaml:"above"`
	Pile  string `yaml:"pile"`
}

type RobotAtSpec struct {
	Robot string `yaml:"robot"`
	Dock  string `yaml:"dock"`
}

// FromFile reads, schema-checks and resolves a scenario file.
func FromFile(path string) (*core.Problem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(b); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p, err := f.Problem()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save writes a problem as a scenario file.
func Save(path string, p *core.Problem) error {
	b, err := yaml.Marshal(FromProblem(p))
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Problem resolves the file's names into a validated problem.
func (f *File) Problem() (*core.Problem, error) {
	w := core.NewWorld()
	w.ExclusiveDocks = f.ExclusiveDocks

	for _, name := range f.Docks {
		w.AddDock(name)
	}
	dock := func(name string) (core.DockID, error) {
		id, ok := w.DockByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown dock %q", name)
		}
		return id, nil
	}

	for _, e := range f.Edges {
		a, err := dock(e[0])
		if err != nil {
			return nil, fmt.Errorf("edge: %w", err)
		}
		b, err := dock(e[1])
		if err != nil {
			return nil, fmt.Errorf("edge: %w", err)
		}
		w.Connect(a, b)
	}
	for _, e := range f.OneWayEdges {
		a, err := dock(e[0])
		if err != nil {
			return nil, fmt.Errorf("one-way edge: %w", err)
		}
		b, err := dock(e[1])
		if err != nil {
			return nil, fmt.Errorf("one-way edge: %w", err)
		}
		w.ConnectOneWay(a, b)
	}

	for _, c := range f.Containers {
		w.AddContainer(c.Name, c.Weight)
	}
	container := func(name string) (core.ContainerID, error) {
		id, ok := w.ContainerByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown container %q", name)
		}
		return id, nil
	}

	setup := core.Setup{
		RobotDocks: make(map[core.RobotID]core.DockID),
		PileStacks: make(map[core.PileID][]core.ContainerID),
		Loads:      make(map[core.RobotID][]core.ContainerID),
	}

	for _, r := range f.Robots {
		id := w.AddRobot(r.Name, r.Slots, r.MaxWeight)
		at, err := dock(r.At)
		if err != nil {
			return nil, fmt.Errorf("robot %s: %w", r.Name, err)
		}
		setup.RobotDocks[id] = at
		for _, name := range r.Load {
			c, err := container(name)
			if err != nil {
				return nil, fmt.Errorf("robot %s load: %w", r.Name, err)
			}
			setup.Loads[id] = append(setup.Loads[id], c)
		}
	}

	for _, p := range f.Piles {
		at, err := dock(p.Dock)
		if err != nil {
			return nil, fmt.Errorf("pile %s: %w", p.Name, err)
		}
		id := w.AddPile(p.Name, at)
		for _, name := range p.Stack {
			c, err := container(name)
			if err != nil {
				return nil, fmt.Errorf("pile %s: %w", p.Name, err)
			}
			setup.PileStacks[id] = append(setup.PileStacks[id], c)
		}
	}

	pile := func(name string) (core.PileID, error) {
		id, ok := w.PileByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown pile %q", name)
		}
		return id, nil
	}
	robot := func(name string) (core.RobotID, error) {
		id, ok := w.RobotByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown robot %q", name)
		}
		return id, nil
	}

	var lits []core.Literal
	for _, m := range f.Goal.InPile {
		c, err := container(m.Container)
		if err != nil {
			return nil, fmt.Errorf("goal in_pile: %w", err)
		}
		p, err := pile(m.Pile)
		if err != nil {
			return nil, fmt.Errorf("goal in_pile: %w", err)
		}
		lits = append(lits, core.InPile(c, p))
	}
	for _, m := range f.Goal.PileTop {
		c, err := container(m.Container)
		if err != nil {
			return nil, fmt.Errorf("goal pile_top: %w", err)
		}
		p, err := pile(m.Pile)
		if err != nil {
			return nil, fmt.Errorf("goal pile_top: %w", err)
		}
		lits = append(lits, core.PileTop(c, p))
	}
	for _, u := range f.Goal.Under {
		below, err := container(u.Below)
		if err != nil {
			return nil, fmt.Errorf("goal under: %w", err)
		}
		above, err := container(u.Above)
		if err != nil {
			return nil, fmt.Errorf("goal under: %w", err)
		}
		p, err := pile(u.Pile)
		if err != nil {
			return nil, fmt.Errorf("goal under: %w", err)
		}
		lits = append(lits, core.Under(below, above, p))
	}
	for _, ra := range f.Goal.RobotAt {
		r, err := robot(ra.Robot)
		if err != nil {
			return nil, fmt.Errorf("goal robot_at: %w", err)
		}
		d, err := dock(ra.Dock)
		if err != nil {
			return nil, fmt.Errorf("goal robot_at: %w", err)
		}
		lits = append(lits, core.RobotAt(r, d))
	}

	init, err := core.NewState(w, setup)
	if err != nil {
		return nil, err
	}
	p := &core.Problem{
		Name:  f.Name,
		World: w,
		Init:  init,
		Goal:  core.NewGoal(lits...),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// FromProblem renders a problem back into the file format. Symmetric
// adjacencies collapse to one edge entry; leftover directed ones go to
// one_way_edges.
func FromProblem(p *core.Problem) *File {
	w := p.World
	f := &File{
		Name:           p.Name,
		ExclusiveDocks: w.ExclusiveDocks,
	}

	for _, d := range w.Docks {
		f.Docks = append(f.Docks, d.Name)
	}

	type edge struct{ a, b core.DockID }
	directed := make(map[edge]bool)
	for from, tos := range w.Adjacency {
		for _, to := range tos {
			directed[edge{from, to}] = true
		}
	}
	var pairs, oneWay []edge
	for e := range directed {
		back := edge{e.b, e.a}
		switch {
		case directed[back] && e.a < e.b:
			pairs = append(pairs, e)
		case !directed[back]:
			oneWay = append(oneWay, e)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
	sort.Slice(oneWay, func(i, j int) bool {
		if oneWay[i].a != oneWay[j].a {
			return oneWay[i].a < oneWay[j].a
		}
		return oneWay[i].b < oneWay[j].b
	})
	for _, e := range pairs {
		f.Edges = append(f.Edges, [2]string{w.Docks[e.a].Name, w.Docks[e.b].Name})
	}
	for _, e := range oneWay {
		f.OneWayEdges = append(f.OneWayEdges, [2]string{w.Docks[e.a].Name, w.Docks[e.b].Name})
	}

	for _, r := range w.Robots {
		spec := RobotSpec{
			Name:      r.Name,
			Slots:     r.Slots,
			MaxWeight: r.MaxWeight,
			At:        w.Docks[p.Init.RobotDock(r.ID)].Name,
		}
		for _, c := range p.Init.Load(r.ID) {
			spec.Load = append(spec.Load, w.Containers[c].Name)
		}
		f.Robots = append(f.Robots, spec)
	}

	for _, c := range w.Containers {
		f.Containers = append(f.Containers, ContainerSpec{Name: c.Name, Weight: c.Weight})
	}

	for _, pl := range w.Piles {
		spec := PileSpec{Name: pl.Name, Dock: w.Docks[pl.Dock].Name}
		for _, c := range p.Init.Pile(pl.ID) {
			spec.Stack = append(spec.Stack, w.Containers[c].Name)
		}
		f.Piles = append(f.Piles, spec)
	}

	for _, l := range p.Goal.Literals {
		switch l.Kind {
		case core.GoalInPile:
			f.Goal.InPile = append(f.Goal.InPile, MemberSpec{
				Container: w.Containers[l.Container].Name,
				Pile:      w.Piles[l.Pile].Name,
			})
		case core.GoalPileTop:
			f.Goal.PileTop = append(f.Goal.PileTop, MemberSpec{
				Container: w.Containers[l.Container].Name,
				Pile:      w.Piles[l.Pile].Name,
			})
		case core.GoalUnder:
			f.Goal.Under = append(f.Goal.Under, UnderSpec{
				Below: w.Containers[l.Container].Name,
				Above: w.Containers[l.Under].Name,
				Pile:  w.Piles[l.Pile].Name,
			})
		case core.GoalRobotAt:
			f.Goal.RobotAt = append(f.Goal.RobotAt, RobotAtSpec{
				Robot: w.Robots[l.Robot].Name,
				Dock:  w.Docks[l.Dock].Name,
			})
		}
	}

	return f
}
