package algo

import "github.com/elektrokombinacija/dwr-research/internal/core"

// GBFS is greedy best-first search ordered by h alone. Fast, not optimal.
type GBFS struct {
	Heuristic Heuristic
	MaxNodes  int
	Trace     TraceFunc
}

// NewGBFS creates a greedy best-first solver with the given heuristic.
func NewGBFS(h Heuristic, opts Options) *GBFS {
	return &GBFS{Heuristic: h, MaxNodes: opts.MaxNodes, Trace: opts.Trace}
}

func (g *GBFS) Name() string { return "GBFS+" + g.Heuristic.Name }

// Solve runs greedy best-first search from the problem's initial state.
func (g *GBFS) Solve(p *core.Problem) *Result {
	return bestFirst(p, g.Heuristic, true, g.MaxNodes, g.Trace)
}
