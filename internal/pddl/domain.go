// Package pddl exports problems as classical STRIPS text for external
// planners. Integer weights and slot counts do not exist there, so the
// exporter compiles them away: weight totals and load counts become one-hot
// predicate families, and pickup/putdown become schema sets specialized per
// slot index and weight-level pair. Every family is generated from the
// world's actual containers and robots, never from a hand-kept table.
package pddl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elektrokombinacija/dwr-research/internal/core"
)

// DomainName is the domain referenced by every exported problem.
const DomainName = "dock-worker"

// universe is the weight/slot vocabulary a world can reach: sums[j] holds
// every carried total achievable with exactly j distinct containers, capped
// at the strongest robot's limit.
type universe struct {
	maxSlots int
	maxCap   int
	sums     []map[int]bool
	weights  []int // distinct container weights, sorted
	levels   []int // union of sums, sorted
}

func buildUniverse(w *core.World) universe {
	u := universe{}
	for _, r := range w.Robots {
		if r.Slots > u.maxSlots {
			u.maxSlots = r.Slots
		}
		if r.MaxWeight > u.maxCap {
			u.maxCap = r.MaxWeight
		}
	}

	u.sums = make([]map[int]bool, u.maxSlots+1)
	for i := range u.sums {
		u.sums[i] = make(map[int]bool)
	}
	u.sums[0][0] = true

	seen := make(map[int]bool)
	for _, c := range w.Containers {
		if !seen[c.Weight] {
			seen[c.Weight] = true
			u.weights = append(u.weights, c.Weight)
		}
		for j := u.maxSlots - 1; j >= 0; j-- {
			for s := range u.sums[j] {
				if s+c.Weight <= u.maxCap {
					u.sums[j+1][s+c.Weight] = true
				}
			}
		}
	}
	sort.Ints(u.weights)

	all := make(map[int]bool)
	for _, set := range u.sums {
		for s := range set {
			all[s] = true
		}
	}
	for s := range all {
		u.levels = append(u.levels, s)
	}
	sort.Ints(u.levels)
	return u
}

// schema is one (slot index, prior total, container weight) pickup/putdown
// pair. It exists only if the pair is realizable in this world.
type schema struct {
	slot  int // slot being filled or vacated, 1-based
	prior int // carried total before the pickup / after the putdown
	cargo int // weight of the container changing hands
}

func (u universe) schemas(w *core.World) []schema {
	var out []schema
	for k := 1; k <= u.maxSlots; k++ {
		feasible := false
		for _, r := range w.Robots {
			if r.Slots >= k {
				feasible = true
			}
		}
		if !feasible {
			continue
		}
		for _, a := range sortedKeys(u.sums[k-1]) {
			for _, b := range u.weights {
				if !u.sums[k][a+b] {
					continue
				}
				admits := false
				for _, r := range w.Robots {
					if r.Slots >= k && r.MaxWeight >= a+b {
						admits = true
					}
				}
				if admits {
					out = append(out, schema{slot: k, prior: a, cargo: b})
				}
			}
		}
	}
	return out
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Domain renders the STRIPS domain for a world. The output is fully
// determined by the world: same entities, same text.
func Domain(w *core.World) string {
	u := buildUniverse(w)
	var b strings.Builder

	fmt.Fprintf(&b, "; %s: one-hot compilation of the integer weight/slot model\n", DomainName)
	fmt.Fprintf(&b, "(define (domain %s)\n", DomainName)
	b.WriteString("  (:requirements :strips :typing)\n")
	b.WriteString("  (:types robot dock container pile)\n\n")

	b.WriteString("  (:predicates\n")
	b.WriteString("    (adjacent ?from - dock ?to - dock)\n")
	b.WriteString("    (robot-at ?r - robot ?d - dock)\n")
	b.WriteString("    (pile-at ?p - pile ?d - dock)\n")
	b.WriteString("    (in-pile ?c - container ?p - pile)\n")
	b.WriteString("    (on-top ?c - container ?p - pile)\n")
	b.WriteString("    (bottom ?c - container ?p - pile)\n")
	b.WriteString("    (under ?below - container ?above - container ?p - pile)\n")
	b.WriteString("    (pile-empty ?p - pile)\n")
	if w.ExclusiveDocks {
		b.WriteString("    (dock-free ?d - dock)\n")
	}
	for n := 0; n <= u.maxSlots; n++ {
		fmt.Fprintf(&b, "    (load-%d ?r - robot)\n", n)
	}
	for k := 1; k <= u.maxSlots; k++ {
		fmt.Fprintf(&b, "    (can-stow-%d ?r - robot)\n", k)
		fmt.Fprintf(&b, "    (in-slot-%d ?r - robot ?c - container)\n", k)
	}
	for _, v := range u.levels {
		fmt.Fprintf(&b, "    (carrying-w%d ?r - robot)\n", v)
		fmt.Fprintf(&b, "    (limit-w%d ?r - robot)\n", v)
	}
	for _, v := range u.weights {
		fmt.Fprintf(&b, "    (cargo-w%d ?c - container)\n", v)
	}
	b.WriteString("  )\n\n")

	writeMove(&b, w.ExclusiveDocks)
	for _, sc := range u.schemas(w) {
		writePickup(&b, sc, false)
		writePickup(&b, sc, true)
		writePutdown(&b, sc, false)
		writePutdown(&b, sc, true)
	}

	b.WriteString(")\n")
	return b.String()
}

func writeMove(b *strings.Builder, exclusive bool) {
	b.WriteString("  (:action move\n")
	b.WriteString("    :parameters (?r - robot ?from - dock ?to - dock)\n")
	if exclusive {
		b.WriteString("    :precondition (and (robot-at ?r ?from) (adjacent ?from ?to) (dock-free ?to))\n")
		b.WriteString("    :effect (and (not (robot-at ?r ?from)) (robot-at ?r ?to)\n")
		b.WriteString("                 (not (dock-free ?to)) (dock-free ?from)))\n\n")
		return
	}
	b.WriteString("    :precondition (and (robot-at ?r ?from) (adjacent ?from ?to))\n")
	b.WriteString("    :effect (and (not (robot-at ?r ?from)) (robot-at ?r ?to)))\n\n")
}

// writePickup emits the pickup schema for one (slot, prior, cargo) triple.
// The last variant takes the pile's only container; the plain one exposes
// the container underneath.
func writePickup(b *strings.Builder, sc schema, last bool) {
	total := sc.prior + sc.cargo
	name := fmt.Sprintf("pickup-s%d-w%d-c%d", sc.slot, sc.prior, sc.cargo)
	params := "(?r - robot ?c - container ?u - container ?p - pile ?d - dock)"
	if last {
		name += "-last"
		params = "(?r - robot ?c - container ?p - pile ?d - dock)"
	}

	fmt.Fprintf(b, "  (:action %s\n", name)
	fmt.Fprintf(b, "    :parameters %s\n", params)
	fmt.Fprintf(b, "    :precondition (and (robot-at ?r ?d) (pile-at ?p ?d)\n")
	fmt.Fprintf(b, "                       (on-top ?c ?p)")
	if last {
		fmt.Fprintf(b, " (bottom ?c ?p)\n")
	} else {
		fmt.Fprintf(b, " (under ?u ?c ?p)\n")
	}
	fmt.Fprintf(b, "                       (load-%d ?r) (can-stow-%d ?r)\n", sc.slot-1, sc.slot)
	fmt.Fprintf(b, "                       (carrying-w%d ?r) (cargo-w%d ?c) (limit-w%d ?r))\n",
		sc.prior, sc.cargo, total)
	fmt.Fprintf(b, "    :effect (and (not (on-top ?c ?p)) (not (in-pile ?c ?p))\n")
	if last {
		fmt.Fprintf(b, "                 (not (bottom ?c ?p)) (pile-empty ?p)\n")
	} else {
		fmt.Fprintf(b, "                 (not (under ?u ?c ?p)) (on-top ?u ?p)\n")
	}
	fmt.Fprintf(b, "                 (in-slot-%d ?r ?c)\n", sc.slot)
	fmt.Fprintf(b, "                 (not (load-%d ?r)) (load-%d ?r)\n", sc.slot-1, sc.slot)
	fmt.Fprintf(b, "                 (not (carrying-w%d ?r)) (carrying-w%d ?r)))\n\n", sc.prior, total)
}

// writePutdown emits the reverse schema. The first variant starts a new
// stack on an empty pile; the plain one stacks onto the current top.
func writePutdown(b *strings.Builder, sc schema, first bool) {
	total := sc.prior + sc.cargo
	name := fmt.Sprintf("putdown-s%d-w%d-c%d", sc.slot, total, sc.cargo)
	params := "(?r - robot ?c - container ?u - container ?p - pile ?d - dock)"
	if first {
		name += "-first"
		params = "(?r - robot ?c - container ?p - pile ?d - dock)"
	}

	fmt.Fprintf(b, "  (:action %s\n", name)
	fmt.Fprintf(b, "    :parameters %s\n", params)
	fmt.Fprintf(b, "    :precondition (and (robot-at ?r ?d) (pile-at ?p ?d)\n")
	fmt.Fprintf(b, "                       (in-slot-%d ?r ?c) (load-%d ?r)\n", sc.slot, sc.slot)
	if first {
		fmt.Fprintf(b, "                       (pile-empty ?p)\n")
	} else {
		fmt.Fprintf(b, "                       (on-top ?u ?p)\n")
	}
	fmt.Fprintf(b, "                       (carrying-w%d ?r) (cargo-w%d ?c))\n", total, sc.cargo)
	fmt.Fprintf(b, "    :effect (and (not (in-slot-%d ?r ?c))\n", sc.slot)
	fmt.Fprintf(b, "                 (not (load-%d ?r)) (load-%d ?r)\n", sc.slot, sc.slot-1)
	fmt.Fprintf(b, "                 (not (carrying-w%d ?r)) (carrying-w%d ?r)\n", total, sc.prior)
	if first {
		fmt.Fprintf(b, "                 (not (pile-empty ?p)) (bottom ?c ?p)\n")
	} else {
		fmt.Fprintf(b, "                 (not (on-top ?u ?p)) (under ?u ?c ?p)\n")
	}
	fmt.Fprintf(b, "                 (on-top ?c ?p) (in-pile ?c ?p)))\n\n")
}
