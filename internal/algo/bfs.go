package algo

import (
	"time"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// BFS is breadth-first search over the state space. Complete, and optimal
// because every action costs one. The baseline the informed solvers are
// measured against.
type BFS struct {
	MaxNodes int
	Trace    TraceFunc
}

// NewBFS creates a breadth-first solver.
func NewBFS(opts Options) *BFS {
	return &BFS{MaxNodes: opts.MaxNodes, Trace: opts.Trace}
}

func (b *BFS) Name() string { return "BFS" }

// Solve runs breadth-first search from the problem's initial state.
// Duplicate states are dropped when generated, which keeps the queue to one
// entry per reachable state.
func (b *BFS) Solve(p *core.Problem) *Result {
	start := time.Now()
	res := &Result{}

	root := &searchNode{state: p.Init, key: p.Init.Key()}
	queue := []*searchNode{root}
	seen := map[string]bool{root.key: true}
	res.Generated = 1
	res.MaxOpen = 1

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if p.Goal.Satisfied(p.World, n.state) {
			res.Plan = reconstructPlan(n)
			res.Found = true
			res.Cost = len(res.Plan)
			break
		}

		res.Expanded++
		if b.Trace != nil {
			ev := TraceEvent{Seq: res.Expanded, G: n.g, Key: n.key}
			if n.parent != nil {
				ev.Action = n.action.String()
			}
			b.Trace(ev)
		}
		if b.MaxNodes > 0 && res.Expanded >= b.MaxNodes {
			break
		}

		for _, succ := range core.Successors(p.World, n.state) {
			key := succ.State.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, &searchNode{
				state:  succ.State,
				key:    key,
				action: succ.Action,
				g:      n.g + 1,
				parent: n,
			})
			res.Generated++
			if len(queue) > res.MaxOpen {
				res.MaxOpen = len(queue)
			}
		}
	}

	res.Duration = time.Since(start)
	return res
}
