package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/dwr-research/internal/scenario"
)

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range scenario.Names() {
		t.Run(name, func(t *testing.T) {
			want, err := scenario.Load(name)
			require.NoError(t, err)

			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, scenario.Save(path, want))

			got, err := scenario.FromFile(path)
			require.NoError(t, err)

			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.Init.Key(), got.Init.Key())
			assert.Equal(t, want.Goal.Describe(want.World), got.Goal.Describe(got.World))
			assert.Equal(t, want.World.ExclusiveDocks, got.World.ExclusiveDocks)
		})
	}
}

func TestFromFileResolvesLoadsAndOneWayEdges(t *testing.T) {
	const doc = `
name: conveyor
docks: [d1, d2, d3]
edges:
  - [d1, d2]
one_way_edges:
  - [d2, d3]
robots:
  - {name: r1, slots: 2, max_weight: 6, at: d2, load: [c1, c2]}
containers:
  - {name: c1, weight: 2}
  - {name: c2, weight: 2}
  - {name: c3, weight: 4}
piles:
  - {name: p1, dock: d1, stack: [c3]}
  - {name: p2, dock: d3}
goal:
  in_pile:
    - {container: c1, pile: p2}
  robot_at:
    - {robot: r1, dock: d3}
`
	path := filepath.Join(t.TempDir(), "conveyor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p, err := scenario.FromFile(path)
	require.NoError(t, err)
	w := p.World

	d2, ok := w.DockByName("d2")
	require.True(t, ok)
	d3, ok := w.DockByName("d3")
	require.True(t, ok)
	assert.True(t, w.Adjacent(d2, d3))
	assert.False(t, w.Adjacent(d3, d2), "conveyor edge only runs one way")

	r1, ok := w.RobotByName("r1")
	require.True(t, ok)
	assert.Len(t, p.Init.Load(r1), 2)
	assert.Equal(t, 4, p.Init.Weight(r1))

	// The conveyor edge must survive a save/load cycle.
	back := filepath.Join(t.TempDir(), "back.yaml")
	require.NoError(t, scenario.Save(back, p))
	p2, err := scenario.FromFile(back)
	require.NoError(t, err)
	assert.Equal(t, p.Init.Key(), p2.Init.Key())
	assert.False(t, p2.World.Adjacent(d3, d2))
}

func TestFromFileRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "unknown key",
			doc: `
name: typo
docks: [d1]
robbots:
  - {name: r1, slots: 1, max_weight: 1, at: d1}
`,
			wantErr: "scenario schema",
		},
		{
			name: "slots out of range",
			doc: `
name: greedy
docks: [d1]
robots:
  - {name: r1, slots: 5, max_weight: 10, at: d1}
`,
			wantErr: "scenario schema",
		},
		{
			name: "no robots",
			doc: `
name: empty
docks: [d1]
robots: []
`,
			wantErr: "scenario schema",
		},
		{
			name: "missing scenario name",
			doc: `
docks: [d1]
robots:
  - {name: r1, slots: 1, max_weight: 1, at: d1}
`,
			wantErr: "scenario schema",
		},
		{
			name: "robot at unknown dock",
			doc: `
name: lost
docks: [d1]
robots:
  - {name: r1, slots: 1, max_weight: 1, at: d9}
`,
			wantErr: `unknown dock "d9"`,
		},
		{
			name: "stack references unknown container",
			doc: `
name: ghost
docks: [d1]
robots:
  - {name: r1, slots: 1, max_weight: 1, at: d1}
piles:
  - {name: p1, dock: d1, stack: [c7]}
`,
			wantErr: `unknown container "c7"`,
		},
		{
			name: "goal references unknown pile",
			doc: `
name: nowhere
docks: [d1]
robots:
  - {name: r1, slots: 1, max_weight: 1, at: d1}
containers:
  - {name: c1, weight: 1}
piles:
  - {name: p1, dock: d1, stack: [c1]}
goal:
  in_pile:
    - {container: c1, pile: p9}
`,
			wantErr: `unknown pile "p9"`,
		},
	}

	dir := t.TempDir()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.doc), 0o644))

			_, err := scenario.FromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFromFileMissingFile(t *testing.T) {
	_, err := scenario.FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
