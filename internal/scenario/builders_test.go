package scenario_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/dwr-research/internal/algo"
	"github.com/elektrokombinacija/dwr-research/internal/core"
	"github.com/elektrokombinacija/dwr-research/internal/scenario"
)

func TestBuiltinsAreValid(t *testing.T) {
	names := scenario.Names()
	assert.Equal(t, []string{"capacity", "redistribution", "swap", "tricky-weight", "weight"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := scenario.Load(name)
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, name, p.Name)
			// Every stock scenario leaves work to do.
			assert.False(t, p.Goal.Satisfied(p.World, p.Init))
		})
	}
}

func TestLoadUnknownName(t *testing.T) {
	_, err := scenario.Load("warehouse-13")
	require.Error(t, err)
	assert.True(t, errors.Is(err, scenario.ErrUnknownScenario))
}

func TestCapacityDemoSolvedOptimally(t *testing.T) {
	p, err := scenario.Load("capacity")
	require.NoError(t, err)

	s, err := algo.New("astar", algo.Options{})
	require.NoError(t, err)

	res := s.Solve(p)
	require.True(t, res.Found)
	require.NoError(t, res.Plan.Validate(p))
	// Only c2 is out of place: pickup, one move, putdown.
	assert.Equal(t, 3, res.Cost)
}

func TestWeightDemoHeaviesRideTheStrongRobot(t *testing.T) {
	p, err := scenario.Load("weight")
	require.NoError(t, err)
	w := p.World

	s, err := algo.New("astar", algo.Options{})
	require.NoError(t, err)

	res := s.Solve(p)
	require.True(t, res.Found)
	require.NoError(t, res.Plan.Validate(p))

	r1, ok := w.RobotByName("r1")
	require.True(t, ok)
	heavyPickups := 0
	for _, a := range res.Plan {
		if a.Kind != core.Pickup {
			continue
		}
		if w.Weight(a.Container) > 4 {
			heavyPickups++
			assert.Equal(t, r1, a.Robot, "only r1 can lift %s", w.Containers[a.Container].Name)
		}
	}
	assert.GreaterOrEqual(t, heavyPickups, 2, "both heavy containers have to move")
}

func TestSwapDemoSolvable(t *testing.T) {
	p, err := scenario.Load("swap")
	require.NoError(t, err)

	s, err := algo.New("astar", algo.Options{})
	require.NoError(t, err)

	res := s.Solve(p)
	require.True(t, res.Found)
	require.NoError(t, res.Plan.Validate(p))
	assert.Equal(t, len(res.Plan), res.Cost)
}

// TestTrickyWeightReferencePlan replays a hand-checked plan instead of
// searching: it stages c5 on p1, ferries c4 and c5 over one at a time, and
// finishes with the light c1 riding together with c2.
func TestTrickyWeightReferencePlan(t *testing.T) {
	p, err := scenario.Load("tricky-weight")
	require.NoError(t, err)
	w := p.World

	dock := func(n string) core.DockID {
		id, ok := w.DockByName(n)
		require.True(t, ok, n)
		return id
	}
	pile := func(n string) core.PileID {
		id, ok := w.PileByName(n)
		require.True(t, ok, n)
		return id
	}
	cont := func(n string) core.ContainerID {
		id, ok := w.ContainerByName(n)
		require.True(t, ok, n)
		return id
	}
	r1, ok := w.RobotByName("r1")
	require.True(t, ok)

	move := func(from, to string) core.Action {
		return core.MoveAction(r1, dock(from), dock(to))
	}
	pickup := func(c, p, d string) core.Action {
		return core.PickupAction(r1, cont(c), pile(p), dock(d))
	}
	putdown := func(c, p, d string) core.Action {
		return core.PutdownAction(r1, cont(c), pile(p), dock(d))
	}

	plan := core.Plan{
		move("d1", "d2"),
		pickup("c5", "p2", "d2"),
		move("d2", "d1"),
		putdown("c5", "p1", "d1"),
		move("d1", "d2"),
		pickup("c4", "p2", "d2"),
		move("d2", "d3"),
		putdown("c4", "p3", "d3"),
		move("d3", "d1"),
		pickup("c5", "p1", "d1"),
		move("d1", "d3"),
		putdown("c5", "p3", "d3"),
		move("d3", "d1"),
		pickup("c2", "p1", "d1"),
		pickup("c1", "p1", "d1"),
		move("d1", "d3"),
		putdown("c1", "p3", "d3"),
		putdown("c2", "p3", "d3"),
	}

	require.NoError(t, plan.Validate(p))

	final, err := plan.Final(p)
	require.NoError(t, err)
	assert.Equal(t,
		[]core.ContainerID{cont("c4"), cont("c5"), cont("c1"), cont("c2")},
		final.Pile(pile("p3")))
}

func TestRedistributionShape(t *testing.T) {
	p, err := scenario.Load("redistribution")
	require.NoError(t, err)
	w := p.World

	assert.Len(t, w.Docks, 8)
	assert.Len(t, w.Piles, 12)
	assert.Len(t, w.Containers, 15)
	assert.True(t, w.ExclusiveDocks)

	// Single-slot unit-weight robots: pure routing, no stacking tricks.
	for _, r := range w.Robots {
		assert.Equal(t, 1, r.Slots)
		assert.Equal(t, 1, r.MaxWeight)
	}
	assert.Len(t, p.Goal.Literals, 15)
}
