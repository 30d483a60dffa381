package pddl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// Problem renders the STRIPS problem for an instance: objects, the initial
// state compiled into the one-hot vocabulary, and the goal conjunction.
func Problem(p *core.Problem) string {
	w := p.World
	u := buildUniverse(w)
	var b strings.Builder

	fmt.Fprintf(&b, "(define (problem %s)\n", ident(p.Name))
	fmt.Fprintf(&b, "  (:domain %s)\n", DomainName)

	b.WriteString("  (:objects\n")
	writeObjects(&b, robotNames(w), "robot")
	writeObjects(&b, dockNames(w), "dock")
	writeObjects(&b, containerNames(w), "container")
	writeObjects(&b, pileNames(w), "pile")
	b.WriteString("  )\n")

	b.WriteString("  (:init\n")
	for _, atom := range initAtoms(p, u) {
		fmt.Fprintf(&b, "    %s\n", atom)
	}
	b.WriteString("  )\n")

	b.WriteString("  (:goal (and\n")
	for _, atom := range goalAtoms(p) {
		fmt.Fprintf(&b, "    %s\n", atom)
	}
	b.WriteString("  ))\n)\n")
	return b.String()
}

// Write renders both files for a problem into dir as domain.pddl and
// problem.pddl, creating dir if needed.
func Write(dir string, p *core.Problem) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pddl: %w", err)
	}
	domainPath := filepath.Join(dir, "domain.pddl")
	if err := os.WriteFile(domainPath, []byte(Domain(p.World)), 0o644); err != nil {
		return fmt.Errorf("pddl: %w", err)
	}
	problemPath := filepath.Join(dir, "problem.pddl")
	if err := os.WriteFile(problemPath, []byte(Problem(p)), 0o644); err != nil {
		return fmt.Errorf("pddl: %w", err)
	}
	return nil
}

// ident maps an entity or problem name onto the PDDL identifier alphabet.
func ident(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}

func writeObjects(b *strings.Builder, names []string, typ string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "    %s - %s\n", strings.Join(names, " "), typ)
}

func robotNames(w *core.World) []string {
	out := make([]string, len(w.Robots))
	for i, r := range w.Robots {
		out[i] = ident(r.Name)
	}
	sort.Strings(out)
	return out
}

func dockNames(w *core.World) []string {
	out := make([]string, len(w.Docks))
	for i, d := range w.Docks {
		out[i] = ident(d.Name)
	}
	sort.Strings(out)
	return out
}

func containerNames(w *core.World) []string {
	out := make([]string, len(w.Containers))
	for i, c := range w.Containers {
		out[i] = ident(c.Name)
	}
	sort.Strings(out)
	return out
}

func pileNames(w *core.World) []string {
	out := make([]string, len(w.Piles))
	for i, p := range w.Piles {
		out[i] = ident(p.Name)
	}
	sort.Strings(out)
	return out
}

// initAtoms compiles the static world and the dynamic initial state into
// ground atoms, grouped by predicate family and sorted within each group.
func initAtoms(p *core.Problem, u universe) []string {
	w := p.World
	s := p.Init
	var atoms []string
	add := func(group *[]string, format string, args ...any) {
		*group = append(*group, fmt.Sprintf(format, args...))
	}
	flush := func(group []string) {
		sort.Strings(group)
		atoms = append(atoms, group...)
	}

	var adj []string
	for _, d := range w.Docks {
		for _, n := range w.Neighbors(d.ID) {
			add(&adj, "(adjacent %s %s)", ident(d.Name), ident(w.Docks[n].Name))
		}
	}
	flush(adj)

	var atDock []string
	for _, pl := range w.Piles {
		add(&atDock, "(pile-at %s %s)", ident(pl.Name), ident(w.Docks[pl.Dock].Name))
	}
	flush(atDock)

	var cargo []string
	for _, c := range w.Containers {
		add(&cargo, "(cargo-w%d %s)", c.Weight, ident(c.Name))
	}
	flush(cargo)

	var caps []string
	for _, r := range w.Robots {
		for k := 1; k <= r.Slots; k++ {
			add(&caps, "(can-stow-%d %s)", k, ident(r.Name))
		}
		for _, v := range u.levels {
			if v <= r.MaxWeight {
				add(&caps, "(limit-w%d %s)", v, ident(r.Name))
			}
		}
	}
	flush(caps)

	var robots []string
	for _, r := range w.Robots {
		name := ident(r.Name)
		dock := w.Docks[s.RobotDock(r.ID)]
		add(&robots, "(robot-at %s %s)", name, ident(dock.Name))
		add(&robots, "(load-%d %s)", s.LoadCount(r.ID), name)
		add(&robots, "(carrying-w%d %s)", s.Weight(r.ID), name)
		for i, c := range s.Load(r.ID) {
			add(&robots, "(in-slot-%d %s %s)", i+1, name, ident(w.Containers[c].Name))
		}
	}
	flush(robots)

	var piles []string
	for _, pl := range w.Piles {
		name := ident(pl.Name)
		stack := s.Pile(pl.ID)
		if len(stack) == 0 {
			add(&piles, "(pile-empty %s)", name)
			continue
		}
		for i, c := range stack {
			cname := ident(w.Containers[c].Name)
			add(&piles, "(in-pile %s %s)", cname, name)
			if i == 0 {
				add(&piles, "(bottom %s %s)", cname, name)
			}
			if i == len(stack)-1 {
				add(&piles, "(on-top %s %s)", cname, name)
			}
			if i > 0 {
				below := ident(w.Containers[stack[i-1]].Name)
				add(&piles, "(under %s %s %s)", below, cname, name)
			}
		}
	}
	flush(piles)

	if w.ExclusiveDocks {
		var free []string
		for _, d := range w.Docks {
			if !s.DockOccupied(d.ID, -1) {
				add(&free, "(dock-free %s)", ident(d.Name))
			}
		}
		flush(free)
	}

	return atoms
}

// goalAtoms translates the goal conjunction literal by literal.
func goalAtoms(p *core.Problem) []string {
	w := p.World
	var atoms []string
	for _, lit := range p.Goal.Literals {
		switch lit.Kind {
		case core.GoalInPile:
			atoms = append(atoms, fmt.Sprintf("(in-pile %s %s)",
				ident(w.Containers[lit.Container].Name), ident(w.Piles[lit.Pile].Name)))
		case core.GoalPileTop:
			atoms = append(atoms, fmt.Sprintf("(on-top %s %s)",
				ident(w.Containers[lit.Container].Name), ident(w.Piles[lit.Pile].Name)))
		case core.GoalUnder:
			atoms = append(atoms, fmt.Sprintf("(under %s %s %s)",
				ident(w.Containers[lit.Container].Name), ident(w.Containers[lit.Under].Name),
				ident(w.Piles[lit.Pile].Name)))
		case core.GoalRobotAt:
			atoms = append(atoms, fmt.Sprintf("(robot-at %s %s)",
				ident(w.Robots[lit.Robot].Name), ident(w.Docks[lit.Dock].Name)))
		}
	}
	return atoms
}
