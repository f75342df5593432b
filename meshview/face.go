// SPDX-License-Identifier: MIT
//
// File: face.go
// Role: Face view (spec.md §4.2).
package meshview

import (
	"iter"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// Face is a read-only binding to a live face.
type Face[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	core *mesh.Core[VG, AG, EG, FG]
	key  mesh.FaceKey
}

// BindFace binds key against core, or reports false if key is not live.
func BindFace[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], key mesh.FaceKey) (Face[VG, AG, EG, FG], bool) {
	if _, ok := core.Faces().Get(key); !ok {
		return Face[VG, AG, EG, FG]{}, false
	}

	return Face[VG, AG, EG, FG]{core: core, key: key}, true
}

// Key returns the face's key.
func (f Face[VG, AG, EG, FG]) Key() mesh.FaceKey { return f.key }

// Geometry returns the face's payload.
func (f Face[VG, AG, EG, FG]) Geometry() FG {
	p, _ := f.core.Faces().Get(f.key)

	return p.Geometry
}

// arc returns one interior arc of the face (its recorded anchor), or false
// if the face is gone.
func (f Face[VG, AG, EG, FG]) arc() (Arc[VG, AG, EG, FG], bool) {
	p, ok := f.core.Faces().Get(f.key)
	if !ok {
		return Arc[VG, AG, EG, FG]{}, false
	}

	return BindArc(f.core, p.Arc)
}

// InteriorArcs walks Next from the face's anchor arc, yielding each
// interior arc exactly once.
func (f Face[VG, AG, EG, FG]) InteriorArcs() iter.Seq[Arc[VG, AG, EG, FG]] {
	return func(yield func(Arc[VG, AG, EG, FG]) bool) {
		start, ok := f.arc()
		if !ok {
			return
		}
		cur := start
		for {
			if !yield(cur) {
				return
			}
			next, ok := cur.Next()
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

// Vertices walks InteriorArcs, yielding each arc's source vertex in ring
// order.
func (f Face[VG, AG, EG, FG]) Vertices() iter.Seq[Vertex[VG, AG, EG, FG]] {
	return func(yield func(Vertex[VG, AG, EG, FG]) bool) {
		for a := range f.InteriorArcs() {
			src, ok := a.Source()
			if !ok {
				return
			}
			if !yield(src) {
				return
			}
		}
	}
}

// Arity returns the number of interior arcs (equivalently, vertices) of the
// face.
func (f Face[VG, AG, EG, FG]) Arity() int {
	n := 0
	for range f.InteriorArcs() {
		n++
	}

	return n
}

// Ring returns a Ring bound to this face's cycle, for distance queries.
func (f Face[VG, AG, EG, FG]) Ring() Ring[VG, AG, EG, FG] {
	start, _ := f.arc()

	return Ring[VG, AG, EG, FG]{start: start}
}
