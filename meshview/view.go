// SPDX-License-Identifier: MIT
//
// Package meshview provides read-only bindings (core reference, key) over a
// mesh.Core, with convenient traversal over next/previous/opposite/face/
// vertex (spec.md §4.2). Views never mutate; any traversal that would
// require a missing link returns "unreachable" (ok == false, or the key is
// simply absent from an iter.Seq) rather than failing the program.
package meshview

import (
	"iter"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// Vertex is a read-only binding to a live vertex.
type Vertex[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	core *mesh.Core[VG, AG, EG, FG]
	key  mesh.VertexKey
}

// BindVertex binds key against core, or reports false if key is not live.
func BindVertex[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], key mesh.VertexKey) (Vertex[VG, AG, EG, FG], bool) {
	if _, ok := core.Vertices().Get(key); !ok {
		return Vertex[VG, AG, EG, FG]{}, false
	}

	return Vertex[VG, AG, EG, FG]{core: core, key: key}, true
}

// Key returns the vertex's key.
func (v Vertex[VG, AG, EG, FG]) Key() mesh.VertexKey { return v.key }

// Geometry returns the vertex's payload.
func (v Vertex[VG, AG, EG, FG]) Geometry() VG {
	p, _ := v.core.Vertices().Get(v.key)

	return p.Geometry
}

// OutgoingArc returns the vertex's recorded outgoing arc, or false if the
// vertex is isolated.
func (v Vertex[VG, AG, EG, FG]) OutgoingArc() (Arc[VG, AG, EG, FG], bool) {
	p, ok := v.core.Vertices().Get(v.key)
	if !ok || p.Arc.IsNil() {
		return Arc[VG, AG, EG, FG]{}, false
	}

	return BindArc(v.core, p.Arc)
}

// OutgoingArcs yields every arc whose source is this vertex, by walking
// "opposite then next" from the vertex's recorded outgoing arc — the same
// walk invariant 6 (spec.md §3) requires to be exhaustive over a consistent
// mesh. It stops (without yielding a duplicate) if a link is missing.
func (v Vertex[VG, AG, EG, FG]) OutgoingArcs() iter.Seq[Arc[VG, AG, EG, FG]] {
	return func(yield func(Arc[VG, AG, EG, FG]) bool) {
		start, ok := v.OutgoingArc()
		if !ok {
			return
		}
		cur := start
		for {
			if !yield(cur) {
				return
			}
			opp, ok := cur.Opposite()
			if !ok {
				return
			}
			next, ok := opp.Next()
			if !ok {
				return
			}
			if next.Key() == start.Key() {
				return
			}
			cur = next
		}
	}
}

// IncomingArcs yields every arc whose destination is this vertex, derived
// from OutgoingArcs by taking each outgoing arc's opposite.
func (v Vertex[VG, AG, EG, FG]) IncomingArcs() iter.Seq[Arc[VG, AG, EG, FG]] {
	return func(yield func(Arc[VG, AG, EG, FG]) bool) {
		for out := range v.OutgoingArcs() {
			opp, ok := out.Opposite()
			if !ok {
				continue
			}
			if !yield(opp) {
				return
			}
		}
	}
}
