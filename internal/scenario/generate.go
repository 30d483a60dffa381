package scenario

import (
	"fmt"
	"math/rand"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// GenConfig defines parameters for random instance generation. The same
// config always yields the same problem.
type GenConfig struct {
	Seed           int64
	Docks          int
	Robots         int
	Containers     int
	Piles          int
	WalkSteps      int // random-walk length that produces the goal
	GoalContainers int // containers pinned by the goal; 0 pins all in piles
	ExclusiveDocks bool
}

// Generate builds a random but solvable problem. Docks form a ring with a
// few chords, containers scatter over the piles, and the goal is read off a
// random walk of valid transitions from the initial state, so a plan always
// exists.
func Generate(cfg GenConfig) (*core.Problem, error) {
	if cfg.Docks < 2 {
		return nil, fmt.Errorf("generate: need at least 2 docks, have %d", cfg.Docks)
	}
	if cfg.Robots < 1 {
		return nil, fmt.Errorf("generate: need at least 1 robot, have %d", cfg.Robots)
	}
	if cfg.ExclusiveDocks && cfg.Robots > cfg.Docks {
		return nil, fmt.Errorf("generate: %d robots cannot share %d exclusive docks", cfg.Robots, cfg.Docks)
	}
	if cfg.Piles < 1 {
		return nil, fmt.Errorf("generate: need at least 1 pile, have %d", cfg.Piles)
	}
	if cfg.Containers < 1 {
		return nil, fmt.Errorf("generate: need at least 1 container, have %d", cfg.Containers)
	}
	if cfg.WalkSteps <= 0 {
		cfg.WalkSteps = 40
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	w := core.NewWorld()
	w.ExclusiveDocks = cfg.ExclusiveDocks

	docks := make([]core.DockID, cfg.Docks)
	for i := range docks {
		docks[i] = w.AddDock(fmt.Sprintf("d%d", i+1))
	}
	for i := range docks {
		w.Connect(docks[i], docks[(i+1)%len(docks)])
	}
	for n := cfg.Docks / 3; n > 0; n-- {
		a := rng.Intn(cfg.Docks)
		b := rng.Intn(cfg.Docks)
		if a == b || w.Adjacent(docks[a], docks[b]) {
			continue
		}
		w.Connect(docks[a], docks[b])
	}

	weights := []int{2, 2, 2, 4, 4, 6}
	containers := make([]core.ContainerID, cfg.Containers)
	for i := range containers {
		containers[i] = w.AddContainer(fmt.Sprintf("c%d", i+1), weights[rng.Intn(len(weights))])
	}

	piles := make([]core.PileID, cfg.Piles)
	for i := range piles {
		piles[i] = w.AddPile(fmt.Sprintf("p%d", i+1), docks[rng.Intn(len(docks))])
	}

	setup := core.Setup{
		RobotDocks: make(map[core.RobotID]core.DockID),
		PileStacks: make(map[core.PileID][]core.ContainerID),
	}

	// Every robot gets enough margin for the heaviest container, so no
	// container is permanently strandable.
	for i := 0; i < cfg.Robots; i++ {
		slots := 1 + rng.Intn(core.MaxSlots)
		maxWeight := 6 + 2*rng.Intn(3)
		id := w.AddRobot(fmt.Sprintf("r%d", i+1), slots, maxWeight)
		if cfg.ExclusiveDocks {
			setup.RobotDocks[id] = docks[i]
		} else {
			setup.RobotDocks[id] = docks[rng.Intn(len(docks))]
		}
	}

	for _, c := range containers {
		p := piles[rng.Intn(len(piles))]
		setup.PileStacks[p] = append(setup.PileStacks[p], c)
	}

	init, err := core.NewState(w, setup)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	// A walk can end up where it started; rewalk a few times before
	// accepting a goal the initial state already satisfies.
	var goal core.Goal
	for attempt := 0; ; attempt++ {
		goal, err = walkGoal(w, init, rng, cfg)
		if err != nil {
			return nil, err
		}
		if attempt == 2 || !goal.Satisfied(w, init) {
			break
		}
	}

	p := &core.Problem{
		Name:  fmt.Sprintf("gen-%d", cfg.Seed),
		World: w,
		Init:  init,
		Goal:  goal,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return p, nil
}

// walkGoal walks valid transitions from init and pins container positions
// in the state it ends up in. Containers still aboard a robot when the walk
// ends are left unpinned.
func walkGoal(w *core.World, init core.State, rng *rand.Rand, cfg GenConfig) (core.Goal, error) {
	s := init
	for i := 0; i < cfg.WalkSteps; i++ {
		succs := core.Successors(w, s)
		if len(succs) == 0 {
			break
		}
		s = succs[rng.Intn(len(succs))].State
	}

	var inPiles []core.ContainerID
	for _, c := range w.Containers {
		if s.Locate(c.ID).Kind == core.LocPile {
			inPiles = append(inPiles, c.ID)
		}
	}
	if len(inPiles) == 0 {
		return core.Goal{}, fmt.Errorf("generate: walk left no container in a pile")
	}

	picked := inPiles
	if cfg.GoalContainers > 0 && cfg.GoalContainers < len(inPiles) {
		rng.Shuffle(len(inPiles), func(i, j int) {
			inPiles[i], inPiles[j] = inPiles[j], inPiles[i]
		})
		picked = inPiles[:cfg.GoalContainers]
	}

	var lits []core.Literal
	for _, c := range picked {
		lits = append(lits, core.InPile(c, s.Locate(c).Pile))
	}
	return core.NewGoal(lits...), nil
}
