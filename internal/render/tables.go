package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elektrokombinacija/dwr-research/internal/core"
	"github.com/elektrokombinacija/dwr-research/internal/sim"
)

// State renders a dock-by-dock snapshot: each dock's piles bottom to top,
// and the robots standing there with their current load.
func State(p *core.Problem, s core.State) string {
	w := p.World
	var lines []string
	for _, d := range w.Docks {
		lines = append(lines, dockStyle.Render(d.Name))
		for _, pid := range w.PilesAt(d.ID) {
			lines = append(lines, fmt.Sprintf("  %s: %s",
				w.Piles[pid].Name, stackText(w, s.Pile(pid))))
		}
		for _, r := range w.Robots {
			if s.RobotDock(r.ID) != d.ID {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s %s %s",
				robotStyle.Render(r.Name),
				stackText(w, s.Load(r.ID)),
				Muted.Render(fmt.Sprintf("%d/%d slots %d/%d wt",
					s.LoadCount(r.ID), r.Slots, s.Weight(r.ID), r.MaxWeight))))
		}
	}
	lines = append(lines, goalLine(p, s))
	return Box.Render(strings.Join(lines, "\n"))
}

func stackText(w *core.World, stack []core.ContainerID) string {
	if len(stack) == 0 {
		return Muted.Render("empty")
	}
	names := make([]string, len(stack))
	for i, c := range stack {
		names[i] = w.Containers[c].Name
	}
	return cargoStyle.Render("[" + strings.Join(names, " ") + "]")
}

func goalLine(p *core.Problem, s core.State) string {
	missing := p.Goal.Unsatisfied(p.World, s)
	total := len(p.Goal.Literals)
	if missing == 0 {
		return Ok.Render(fmt.Sprintf("goal %d/%d", total, total))
	}
	return Miss.Render(fmt.Sprintf("goal %d/%d", total-missing, total))
}

// Plan renders a numbered action listing with names resolved.
func Plan(p *core.Problem, plan core.Plan) string {
	if len(plan) == 0 {
		return Muted.Render("(empty plan)")
	}
	w := p.World
	width := len(fmt.Sprint(len(plan)))
	var b strings.Builder
	for i, a := range plan {
		style := moveStyle
		switch a.Kind {
		case core.Pickup:
			style = pickupStyle
		case core.Putdown:
			style = putdownStyle
		}
		fmt.Fprintf(&b, "%*d. %s\n", width, i+1, style.Render(w.DescribeAction(a)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RunSummary renders a replayed run: outcome, totals, and one row per
// acting robot.
func RunSummary(run *sim.Run) string {
	var b strings.Builder
	b.WriteString(Title.Render(run.Name))
	b.WriteString("  ")
	if run.GoalMet {
		b.WriteString(Ok.Render("goal met"))
	} else {
		b.WriteString(Miss.Render("goal missed"))
	}
	fmt.Fprintf(&b, "\n%s\n",
		Muted.Render(fmt.Sprintf("%d steps, %d pile ops", len(run.Steps), run.PileOps)))

	names := make([]string, 0, len(run.Robots))
	for name := range run.Robots {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		st := run.Robots[name]
		rows = append(rows, []string{
			name,
			fmt.Sprint(st.Moves),
			fmt.Sprint(st.Pickups),
			fmt.Sprint(st.Putdowns),
			fmt.Sprint(st.MaxWeight),
			fmt.Sprint(st.MaxSlots),
		})
	}
	b.WriteString(Table([]string{"robot", "moves", "pickups", "putdowns", "max wt", "max slots"}, rows))
	return b.String()
}

// Table renders left-aligned columns sized to their widest cell. Cells are
// plain text; only the header row is styled, so widths stay honest.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(Title.Render(line(headers)))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(line(row))
	}
	return b.String()
}
