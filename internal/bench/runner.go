// Package bench runs scenario-by-solver grids and records the outcome of
// every run: wall time, search effort, plan length, and whether the plan
// survives independent validation.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/dwr-research/internal/algo"
	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// Entry is one (scenario, solver) run.
type Entry struct {
	ID        string
	Scenario  string
	Solver    string
	Found     bool
	Valid     bool // plan replayed through the transition rules and reached the goal
	PlanLen   int
	Expanded  int
	Generated int
	MaxOpen   int
	Duration  time.Duration
	Err       string
}

// Runner executes grids with shared solver settings.
type Runner struct {
	logger    *slog.Logger
	maxNodes  int
	heuristic string
	trace     *TraceWriter
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger routes run logs somewhere; the default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMaxNodes caps expansions per run; zero means unbounded.
func WithMaxNodes(n int) Option {
	return func(r *Runner) { r.maxNodes = n }
}

// WithHeuristic selects the heuristic for informed solvers.
func WithHeuristic(name string) Option {
	return func(r *Runner) { r.heuristic = name }
}

// WithTrace records every expansion of every run into a trace stream.
func WithTrace(tw *TraceWriter) Option {
	return func(r *Runner) { r.trace = tw }
}

// NewRunner builds a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Grid runs every solver on every problem and returns one entry per pair,
// problems outermost. Unknown solver or heuristic names fail before any
// search runs; an exhausted search is a recorded result, not an error.
// The context is checked between runs, so cancellation keeps completed
// entries out of the result rather than returning a partial grid.
func (r *Runner) Grid(ctx context.Context, problems []*core.Problem, solvers []string) ([]Entry, error) {
	for _, name := range solvers {
		if _, err := algo.New(name, algo.Options{Heuristic: r.heuristic}); err != nil {
			return nil, err
		}
	}

	entries := make([]Entry, 0, len(problems)*len(solvers))
	for _, p := range problems {
		for _, name := range solvers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			entry, err := r.run(p, name)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *Runner) run(p *core.Problem, solverName string) (Entry, error) {
	id := uuid.NewString()
	opts := algo.Options{MaxNodes: r.maxNodes, Heuristic: r.heuristic}
	if r.trace != nil {
		opts.Trace = func(ev algo.TraceEvent) {
			rec := TraceRecord{Run: id, Scenario: p.Name, Solver: solverName, TraceEvent: ev}
			if err := r.trace.Write(rec); err != nil {
				r.logger.Warn("trace write failed", "run", id, "err", err)
			}
		}
	}

	s, err := algo.New(solverName, opts)
	if err != nil {
		return Entry{}, err
	}
	res := s.Solve(p)

	entry := Entry{
		ID:        id,
		Scenario:  p.Name,
		Solver:    s.Name(),
		Found:     res.Found,
		PlanLen:   res.Cost,
		Expanded:  res.Expanded,
		Generated: res.Generated,
		MaxOpen:   res.MaxOpen,
		Duration:  res.Duration,
	}
	if res.Found {
		if err := res.Plan.Validate(p); err != nil {
			entry.Err = fmt.Sprintf("invalid plan: %v", err)
		} else {
			entry.Valid = true
		}
	}

	r.logger.Info("run complete",
		"run", id,
		"scenario", entry.Scenario,
		"solver", entry.Solver,
		"found", entry.Found,
		"valid", entry.Valid,
		"len", entry.PlanLen,
		"expanded", entry.Expanded,
		"ms", entry.Duration.Milliseconds())
	return entry, nil
}
