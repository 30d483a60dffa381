package core

import (
	"strings"
	"testing"
)

// TestWorldLookups verifies name lookups and adjacency views on a small
// triangle layout.
func TestWorldLookups(t *testing.T) {
	w := NewWorld()
	d1 := w.AddDock("d1")
	d2 := w.AddDock("d2")
	d3 := w.AddDock("d3")
	w.Connect(d3, d1)
	w.Connect(d1, d2)
	r1 := w.AddRobot("r1", 2, 8)
	c1 := w.AddContainer("c1", 2)
	p1 := w.AddPile("p1", d1)
	p2 := w.AddPile("p2", d1)

	if got, ok := w.DockByName("d2"); !ok || got != d2 {
		t.Errorf("DockByName(d2) = (%d, %v), want (%d, true)", got, ok, d2)
	}
	if _, ok := w.DockByName("d9"); ok {
		t.Error("DockByName should miss on an unknown name")
	}
	if got, ok := w.RobotByName("r1"); !ok || got != r1 {
		t.Errorf("RobotByName(r1) = (%d, %v)", got, ok)
	}
	if got, ok := w.ContainerByName("c1"); !ok || got != c1 {
		t.Errorf("ContainerByName(c1) = (%d, %v)", got, ok)
	}
	if got, ok := w.PileByName("p2"); !ok || got != p2 {
		t.Errorf("PileByName(p2) = (%d, %v)", got, ok)
	}

	if !w.Adjacent(d1, d2) || !w.Adjacent(d2, d1) {
		t.Error("Connect should declare both directions")
	}
	if w.Adjacent(d2, d3) {
		t.Error("d2 and d3 were never connected")
	}
	if got := w.Neighbors(d1); len(got) != 2 || got[0] != d2 || got[1] != d3 {
		t.Errorf("Neighbors(d1) = %v, want sorted [%d %d]", got, d2, d3)
	}
	if got := w.PilesAt(d1); len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Errorf("PilesAt(d1) = %v, want [%d %d]", got, p1, p2)
	}
	if got := w.PilesAt(d3); len(got) != 0 {
		t.Errorf("PilesAt(d3) = %v, want empty", got)
	}
	if got := w.Weight(c1); got != 2 {
		t.Errorf("Weight(c1) = %d, want 2", got)
	}
}

// TestWorldValidate verifies the structural checks catch duplicate names,
// bad slot counts, and bad weights.
func TestWorldValidate(t *testing.T) {
	valid := func() *World {
		w := NewWorld()
		d1 := w.AddDock("d1")
		d2 := w.AddDock("d2")
		w.Connect(d1, d2)
		w.AddRobot("r1", 3, 10)
		w.AddContainer("c1", 2)
		w.AddPile("p1", d1)
		return w
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid world rejected: %v", err)
	}

	tests := []struct {
		name  string
		build func() *World
		want  string
	}{
		{
			"duplicate name across kinds",
			func() *World {
				w := valid()
				w.AddPile("r1", 0)
				return w
			},
			"duplicate entity name",
		},
		{
			"empty name",
			func() *World {
				w := valid()
				w.AddDock("")
				return w
			},
			"empty name",
		},
		{
			"zero slots",
			func() *World {
				w := valid()
				w.AddRobot("r2", 0, 10)
				return w
			},
			"slot capacity",
		},
		{
			"too many slots",
			func() *World {
				w := valid()
				w.AddRobot("r2", MaxSlots+1, 10)
				return w
			},
			"slot capacity",
		},
		{
			"non-positive weight",
			func() *World {
				w := valid()
				w.AddContainer("c2", 0)
				return w
			},
			"weight",
		},
		{
			"self adjacency",
			func() *World {
				w := valid()
				w.Connect(0, 0)
				return w
			},
			"itself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
