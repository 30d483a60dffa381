// Package algo implements planners for the dock-worker domain.
package algo

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// Solver is the interface for planning algorithms.
type Solver interface {
	// Solve searches for a plan. The result is never nil; Found reports
	// whether a plan was reached before the search space or the node
	// budget ran out.
	Solve(p *core.Problem) *Result

	// Name returns the algorithm name, including the heuristic where one
	// is in play.
	Name() string
}

// Result carries the plan and the search statistics.
type Result struct {
	Plan      core.Plan
	Found     bool
	Cost      int // plan length, every action costs one
	Expanded  int // states popped and expanded
	Generated int // states pushed onto the frontier
	MaxOpen   int // frontier high-water mark
	Duration  time.Duration
}

// TraceEvent describes one expansion, for search tracing.
type TraceEvent struct {
	Seq    int    `json:"seq"`
	G      int    `json:"g"`
	H      int    `json:"h"`
	Action string `json:"action,omitempty"`
	Key    string `json:"key"`
}

// TraceFunc receives expansion events as a search runs.
type TraceFunc func(TraceEvent)

// Options configures a solver built through the registry.
type Options struct {
	// MaxNodes caps expansions; zero or negative means unbounded.
	MaxNodes int
	// Heuristic names the heuristic for informed solvers. Empty picks the
	// solver's default.
	Heuristic string
	// Trace, when set, receives one event per expansion.
	Trace TraceFunc
}

// ErrNoPlan reports an exhausted search. Solvers signal this through
// Result.Found; callers that need an error wrap this sentinel.
var ErrNoPlan = errors.New("no plan found")

// ErrUnknownSolver reports a solver name the registry does not know.
var ErrUnknownSolver = errors.New("unknown solver")

// New builds a solver by registry name.
func New(name string, opts Options) (Solver, error) {
	switch name {
	case "bfs":
		return NewBFS(opts), nil
	case "astar":
		h, err := heuristicByName(defaultName(opts.Heuristic, "misplaced"))
		if err != nil {
			return nil, err
		}
		return NewAStar(h, opts), nil
	case "gbfs":
		h, err := heuristicByName(defaultName(opts.Heuristic, "goalcount"))
		if err != nil {
			return nil, err
		}
		return NewGBFS(h, opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}

// Names lists the registry names, sorted.
func Names() []string {
	names := []string{"astar", "bfs", "gbfs"}
	sort.Strings(names)
	return names
}

func defaultName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
