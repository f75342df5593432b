// SPDX-License-Identifier: MIT
//
// File: ring.go
// Role: Ring distance queries over an interior cycle (spec.md §4.2).
package meshview

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// Ring is a read-only binding over the interior cycle reachable from a
// single starting arc via Next. It answers hop-distance queries between
// two vertices that occur as arc sources along the cycle.
type Ring[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	start Arc[VG, AG, EG, FG]
}

// Distance returns the hop count, walking Next from the arc whose source
// is a, to the arc whose source is b. It reports false if the ring never
// starts at a, or if the walk closes back to its start (or runs out of
// links) before reaching a vertex whose source is b.
func (r Ring[VG, AG, EG, FG]) Distance(a, b mesh.VertexKey) (int, bool) {
	cur, ok := r.findStart(a)
	if !ok {
		return 0, false
	}

	start := cur
	dist := 0
	for {
		src, ok := cur.Source()
		if !ok {
			return 0, false
		}
		if src.Key() == b {
			return dist, true
		}
		next, ok := cur.Next()
		if !ok {
			return 0, false
		}
		if next.Key() == start.Key() {
			return 0, false
		}
		cur = next
		dist++
	}
}

// findStart walks the full cycle once looking for the arc whose source is
// vk, returning it as the new starting point for a Distance walk.
func (r Ring[VG, AG, EG, FG]) findStart(vk mesh.VertexKey) (Arc[VG, AG, EG, FG], bool) {
	cur := r.start
	for {
		src, ok := cur.Source()
		if !ok {
			return Arc[VG, AG, EG, FG]{}, false
		}
		if src.Key() == vk {
			return cur, true
		}
		next, ok := cur.Next()
		if !ok {
			return Arc[VG, AG, EG, FG]{}, false
		}
		if next.Key() == r.start.Key() {
			return Arc[VG, AG, EG, FG]{}, false
		}
		cur = next
	}
}
