// SPDX-License-Identifier: MIT
//
// File: invariants.go
// Role: Validate checks the nine consistency invariants of spec.md §3 (and
// the five properties of spec.md §8) against a Core. It is not on any hot
// path — operation drivers do not call it — it exists for tests and for
// callers that want an optional debug-mode consistency pass after a batch
// of mutations.
package mesh

import (
	"fmt"
	"strings"

	"github.com/arcmesh/meshgraph/geometry"
)

// Validate walks every arc, edge, and face and reports every invariant
// violation it finds, joined into a single error. It returns nil if c is
// consistent.
func Validate[VG geometry.Positioned[VG], AG any, EG any, FG any](c *Core[VG, AG, EG, FG]) error {
	var problems []string

	arcs := c.Arcs().Entries()
	byKey := make(map[ArcKey]*Arc[AG], len(arcs))
	for _, e := range arcs {
		byKey[e.Key] = e.Value
	}

	for _, e := range arcs {
		k, a := e.Key, e.Value

		// Invariant 9: no self-incident arcs.
		if k.Source == k.Destination {
			problems = append(problems, fmt.Sprintf("arc %v: source equals destination", k))
		}

		// Invariant 7 is structural in this representation: arcs are keyed
		// by (source, destination), so the store itself cannot hold two
		// arcs for the same ordered pair.

		// Invariant 2: opposite involution, and the key-algebra identity.
		if a.Opposite != k.Opposite() {
			problems = append(problems, fmt.Sprintf("arc %v: Opposite field %v does not match key algebra", k, a.Opposite))
		}
		if opp, ok := byKey[a.Opposite]; ok {
			if opp.Opposite != k {
				problems = append(problems, fmt.Sprintf("arc %v: opposite %v does not point back", k, a.Opposite))
			}
		} else {
			problems = append(problems, fmt.Sprintf("arc %v: opposite %v does not exist", k, a.Opposite))
		}

		// Invariant 1 (partial, arc-local): Next/Previous/Edge/Face must
		// resolve if set.
		if _, ok := byKey[a.Next]; !ok {
			problems = append(problems, fmt.Sprintf("arc %v: next %v does not exist", k, a.Next))
		} else if next := byKey[a.Next]; next.Previous != k {
			problems = append(problems, fmt.Sprintf("arc %v: next %v does not point back via previous", k, a.Next))
		}
		if _, ok := byKey[a.Previous]; !ok {
			problems = append(problems, fmt.Sprintf("arc %v: previous %v does not exist", k, a.Previous))
		}
		if _, ok := c.Edges().Get(a.Edge); !ok {
			problems = append(problems, fmt.Sprintf("arc %v: edge %v does not exist", k, a.Edge))
		}
		if a.Face != NilFace {
			if _, ok := c.Faces().Get(a.Face); !ok {
				problems = append(problems, fmt.Sprintf("arc %v: face %v does not exist", k, a.Face))
			}
		}
		if _, ok := c.Vertices().Get(k.Source); !ok {
			problems = append(problems, fmt.Sprintf("arc %v: source vertex does not exist", k))
		}
		if _, ok := c.Vertices().Get(k.Destination); !ok {
			problems = append(problems, fmt.Sprintf("arc %v: destination vertex does not exist", k))
		}
	}

	// Invariant 3 & 4: ring closure and face assignment.
	for _, e := range c.Faces().Entries() {
		fk, f := e.Key, e.Value
		seen := map[ArcKey]bool{}
		cur := f.Arc
		steps := 0
		const guard = 1 << 20
		for {
			arc, ok := byKey[cur]
			if cur.IsNil() || !ok || !arc.belongsToFace(fk) {
				problems = append(problems, fmt.Sprintf("face %v: ring does not close through face-assigned arcs", fk))

				break
			}
			if seen[cur] {
				if cur != f.Arc {
					problems = append(problems, fmt.Sprintf("face %v: ring revisits an arc before closing", fk))
				}

				break
			}
			seen[cur] = true
			steps++
			if steps > guard {
				problems = append(problems, fmt.Sprintf("face %v: ring did not close within a reasonable bound", fk))

				break
			}
			cur = arc.Next
			if cur == f.Arc {
				break
			}
		}
		if steps < 3 {
			problems = append(problems, fmt.Sprintf("face %v: ring closed in fewer than 3 steps (arity %d)", fk, steps))
		}
	}

	// Invariant 5: boundary closure (boundary arcs form disjoint cycles
	// under Next).
	for _, e := range arcs {
		k, a := e.Key, e.Value
		if a.Face != NilFace {
			continue
		}
		cur := a.Next
		steps := 0
		const guard = 1 << 20
		for cur != k {
			next, ok := byKey[cur]
			if !ok || next.Face != NilFace {
				problems = append(problems, fmt.Sprintf("boundary arc %v: loop does not close through boundary arcs", k))

				break
			}
			cur = next.Next
			steps++
			if steps > guard {
				problems = append(problems, fmt.Sprintf("boundary arc %v: loop did not close within a reasonable bound", k))

				break
			}
		}
	}

	// Invariant 6: vertex star (opposite-then-next from v.Arc visits
	// exactly the arcs with source v).
	for _, e := range c.Vertices().Entries() {
		vk, v := e.Key, e.Value
		if v.Arc.IsNil() {
			continue
		}
		outgoing := map[ArcKey]bool{}
		for _, ae := range arcs {
			if ae.Key.Source == vk {
				outgoing[ae.Key] = true
			}
		}
		visited := map[ArcKey]bool{}
		cur := v.Arc
		const guard = 1 << 20
		for i := 0; i < guard; i++ {
			if cur.Source != vk {
				problems = append(problems, fmt.Sprintf("vertex %v: star left the vertex at arc %v", vk, cur))

				break
			}
			if visited[cur] {
				break
			}
			visited[cur] = true
			a, ok := byKey[cur]
			if !ok {
				problems = append(problems, fmt.Sprintf("vertex %v: star references missing arc %v", vk, cur))

				break
			}
			opp, ok := byKey[a.Opposite]
			if !ok {
				problems = append(problems, fmt.Sprintf("vertex %v: star references missing opposite %v", vk, a.Opposite))

				break
			}
			cur = opp.Next
			if cur == v.Arc {
				break
			}
		}
		if len(visited) != len(outgoing) {
			problems = append(problems, fmt.Sprintf("vertex %v: star visited %d arcs, expected %d outgoing", vk, len(visited), len(outgoing)))
		}
	}

	// Invariant 8: edge pairing.
	for _, e := range c.Edges().Entries() {
		ek, edge := e.Key, e.Value
		a, ok := byKey[edge.Arc]
		if !ok {
			problems = append(problems, fmt.Sprintf("edge %v: canonical arc %v does not exist", ek, edge.Arc))

			continue
		}
		if a.Edge != ek {
			problems = append(problems, fmt.Sprintf("edge %v: canonical arc %v does not reference it back", ek, edge.Arc))
		}
		opp, ok := byKey[a.Opposite]
		if !ok || opp.Edge != ek {
			problems = append(problems, fmt.Sprintf("edge %v: opposite arc does not reference it back", ek))
		}
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("mesh: invariant violations:\n  %s", strings.Join(problems, "\n  "))
}

// belongsToFace reports whether the arc is assigned to face f.
func (a *Arc[AG]) belongsToFace(f FaceKey) bool { return a.Face == f }
