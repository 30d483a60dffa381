package core

import "fmt"

// Problem bundles a world, its initial state and a goal: everything a
// planner needs.
type Problem struct {
	Name  string
	World *World
	Init  State
	Goal  Goal
}

// Validate checks the whole bundle: static world, initial invariants, goal
// entity references.
func (p *Problem) Validate() error {
	if p.World == nil {
		return fmt.Errorf("problem %s: nil world", p.Name)
	}
	if err := p.World.Validate(); err != nil {
		return fmt.Errorf("problem %s: %w", p.Name, err)
	}
	if err := p.Init.Check(p.World); err != nil {
		return fmt.Errorf("problem %s: initial state: %w", p.Name, err)
	}
	if err := p.Goal.Validate(p.World); err != nil {
		return fmt.Errorf("problem %s: %w", p.Name, err)
	}
	return nil
}

// Plan is a strict sequence of ground actions.
type Plan []Action

// Validate replays the plan from the problem's initial state. It fails on
// the first inapplicable step, and on a final state that misses the goal.
func (plan Plan) Validate(p *Problem) error {
	s := p.Init
	for i, a := range plan {
		if ok, reason := Applicable(p.World, s, a); !ok {
			return fmt.Errorf("step %d: %s inapplicable: %s", i+1, p.World.DescribeAction(a), reason)
		}
		next, ok := Apply(p.World, s, a)
		if !ok {
			return fmt.Errorf("step %d: %s failed to apply", i+1, p.World.DescribeAction(a))
		}
		s = next
	}
	if !p.Goal.Satisfied(p.World, s) {
		return fmt.Errorf("plan ends %d literal(s) short of the goal", p.Goal.Unsatisfied(p.World, s))
	}
	return nil
}

// Final replays the plan and returns the resulting state without goal
// checking. Steps must all apply.
func (plan Plan) Final(p *Problem) (State, error) {
	s := p.Init
	for i, a := range plan {
		next, ok := Apply(p.World, s, a)
		if !ok {
			_, reason := Applicable(p.World, s, a)
			return State{}, fmt.Errorf("step %d: %s inapplicable: %s", i+1, p.World.DescribeAction(a), reason)
		}
		s = next
	}
	return s, nil
}
