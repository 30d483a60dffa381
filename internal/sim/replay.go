// Package sim replays plans against the transition rules, step by step,
// and collects execution metrics per robot.
package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// StepRecord is one executed plan step with the state it produced.
type StepRecord struct {
	Step   int         `json:"step"` // 1-based
	Action core.Action `json:"-"`
	Text   string      `json:"action"`
	State  core.State  `json:"-"`

	// Acting robot's load after the step.
	SlotsUsed int `json:"slots_used"`
	Weight    int `json:"weight"`
}

// RobotStats aggregates one robot's activity over a run.
type RobotStats struct {
	Moves     int `json:"moves"`
	Pickups   int `json:"pickups"`
	Putdowns  int `json:"putdowns"`
	MaxWeight int `json:"max_weight"` // heaviest load carried at any point
	MaxSlots  int `json:"max_slots"`  // most slots in use at any point
}

// Run is the full trace of a replayed plan. Robots and Piles are keyed by
// name; entities that never see an action have no entry.
type Run struct {
	Problem *core.Problem         `json:"-"`
	Name    string                `json:"name"`
	Steps   []StepRecord          `json:"steps"`
	Final   core.State            `json:"-"`
	GoalMet bool                  `json:"goal_met"`
	Robots  map[string]RobotStats `json:"robots"`

	// Piles counts the churn per pile, pickups and putdowns together;
	// PileOps is the total.
	Piles   map[string]int `json:"piles"`
	PileOps int            `json:"pile_ops"`
}

// Export writes the run as indented JSON.
func (r *Run) Export(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Option configures a Replayer.
type Option func(*Replayer)

// WithLogger sets a structured logger for per-step reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Replayer) {
		r.logger = logger
	}
}

// Replayer executes plans one action at a time.
type Replayer struct {
	logger *slog.Logger
}

// NewReplayer creates a replayer. Without options it stays silent.
func NewReplayer(opts ...Option) *Replayer {
	r := &Replayer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Replay runs the plan from the problem's initial state. It stops at the
// first inapplicable step with the step number and the failed precondition.
// A plan that applies cleanly but misses the goal is not an error; the run
// reports GoalMet false.
func (r *Replayer) Replay(p *core.Problem, plan core.Plan) (*Run, error) {
	w := p.World
	run := &Run{
		Problem: p,
		Name:    p.Name,
		Robots:  make(map[string]RobotStats),
		Piles:   make(map[string]int),
	}

	s := p.Init
	for i, a := range plan {
		ok, reason := core.Applicable(w, s, a)
		if !ok {
			r.logger.Error("step rejected",
				"step", i+1, "action", w.DescribeAction(a), "reason", reason.String())
			return nil, fmt.Errorf("step %d: %s: %s", i+1, w.DescribeAction(a), reason)
		}
		next, _ := core.Apply(w, s, a)
		s = next

		actor := w.Robots[a.Robot].Name
		stats := run.Robots[actor]
		switch a.Kind {
		case core.Move:
			stats.Moves++
		case core.Pickup:
			stats.Pickups++
			run.Piles[w.Piles[a.Pile].Name]++
			run.PileOps++
		case core.Putdown:
			stats.Putdowns++
			run.Piles[w.Piles[a.Pile].Name]++
			run.PileOps++
		}
		if wgt := s.Weight(a.Robot); wgt > stats.MaxWeight {
			stats.MaxWeight = wgt
		}
		if n := s.LoadCount(a.Robot); n > stats.MaxSlots {
			stats.MaxSlots = n
		}
		run.Robots[actor] = stats

		run.Steps = append(run.Steps, StepRecord{
			Step:      i + 1,
			Action:    a,
			Text:      w.DescribeAction(a),
			State:     s,
			SlotsUsed: s.LoadCount(a.Robot),
			Weight:    s.Weight(a.Robot),
		})
		r.logger.Debug("step applied",
			"step", i+1, "action", w.DescribeAction(a),
			"slots", s.LoadCount(a.Robot), "weight", s.Weight(a.Robot))
	}

	run.Final = s
	run.GoalMet = p.Goal.Satisfied(w, s)
	r.logger.Info("replay finished",
		"plan", p.Name, "steps", len(plan), "goal_met", run.GoalMet, "pile_ops", run.PileOps)
	return run, nil
}
