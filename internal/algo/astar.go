package algo

import (
	"container/heap"
	"time"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// searchNode is one frontier entry. The root has a nil parent; every other
// node records the action that produced it.
type searchNode struct {
	state  core.State
	key    string
	action core.Action
	g      int // actions from the root
	h      int // heuristic estimate
	f      int // priority
	parent *searchNode
	index  int // heap index
	seq    int // insertion order, breaks priority ties FIFO
}

// searchHeap implements heap.Interface.
type searchHeap []*searchNode

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *searchHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// AStar is best-first search ordered by g+h. With an admissible heuristic
// the plan it returns is shortest.
type AStar struct {
	Heuristic Heuristic
	MaxNodes  int
	Trace     TraceFunc
}

// NewAStar creates an A* solver with the given heuristic.
func NewAStar(h Heuristic, opts Options) *AStar {
	return &AStar{Heuristic: h, MaxNodes: opts.MaxNodes, Trace: opts.Trace}
}

func (a *AStar) Name() string { return "A*+" + a.Heuristic.Name }

// Solve runs A* from the problem's initial state.
func (a *AStar) Solve(p *core.Problem) *Result {
	return bestFirst(p, a.Heuristic, false, a.MaxNodes, a.Trace)
}

// bestFirst is the engine behind A* and GBFS; greedy drops g from the
// priority. States are deduplicated by their canonical key, so each state
// is expanded at most once.
func bestFirst(p *core.Problem, h Heuristic, greedy bool, maxNodes int, trace TraceFunc) *Result {
	start := time.Now()
	res := &Result{}

	priority := func(g, est int) int {
		if greedy {
			return est
		}
		return g + est
	}

	open := &searchHeap{}
	heap.Init(open)
	seq := 0
	push := func(n *searchNode) {
		n.seq = seq
		seq++
		heap.Push(open, n)
		res.Generated++
		if open.Len() > res.MaxOpen {
			res.MaxOpen = open.Len()
		}
	}

	rootEst := h.Estimate(p, p.Init)
	push(&searchNode{state: p.Init, key: p.Init.Key(), h: rootEst, f: priority(0, rootEst)})

	closed := make(map[string]bool)
	for open.Len() > 0 {
		n := heap.Pop(open).(*searchNode)
		if closed[n.key] {
			continue
		}
		closed[n.key] = true

		if p.Goal.Satisfied(p.World, n.state) {
			res.Plan = reconstructPlan(n)
			res.Found = true
			res.Cost = len(res.Plan)
			break
		}

		res.Expanded++
		if trace != nil {
			ev := TraceEvent{Seq: res.Expanded, G: n.g, H: n.h, Key: n.key}
			if n.parent != nil {
				ev.Action = n.action.String()
			}
			trace(ev)
		}
		if maxNodes > 0 && res.Expanded >= maxNodes {
			break
		}

		for _, succ := range core.Successors(p.World, n.state) {
			key := succ.State.Key()
			if closed[key] {
				continue
			}
			est := h.Estimate(p, succ.State)
			push(&searchNode{
				state:  succ.State,
				key:    key,
				action: succ.Action,
				g:      n.g + 1,
				h:      est,
				f:      priority(n.g+1, est),
				parent: n,
			})
		}
	}

	res.Duration = time.Since(start)
	return res
}

// reconstructPlan walks parent pointers back to the root.
func reconstructPlan(n *searchNode) core.Plan {
	var rev []core.Action
	for ; n.parent != nil; n = n.parent {
		rev = append(rev, n.action)
	}
	plan := make(core.Plan, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		plan = append(plan, rev[i])
	}
	return plan
}
