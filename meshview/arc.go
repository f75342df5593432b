// SPDX-License-Identifier: MIT
//
// File: arc.go
// Role: Arc view (spec.md §4.2).
package meshview

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// Arc is a read-only binding to a live arc.
type Arc[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	core *mesh.Core[VG, AG, EG, FG]
	key  mesh.ArcKey
}

// BindArc binds key against core, or reports false if key is not live.
func BindArc[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], key mesh.ArcKey) (Arc[VG, AG, EG, FG], bool) {
	if _, ok := core.Arcs().Get(key); !ok {
		return Arc[VG, AG, EG, FG]{}, false
	}

	return Arc[VG, AG, EG, FG]{core: core, key: key}, true
}

// Key returns the arc's key.
func (a Arc[VG, AG, EG, FG]) Key() mesh.ArcKey { return a.key }

// Geometry returns the arc's payload.
func (a Arc[VG, AG, EG, FG]) Geometry() AG {
	p, _ := a.core.Arcs().Get(a.key)

	return p.Geometry
}

// Source returns the arc's source vertex.
func (a Arc[VG, AG, EG, FG]) Source() (Vertex[VG, AG, EG, FG], bool) {
	return BindVertex(a.core, a.key.Source)
}

// Destination returns the arc's destination vertex.
func (a Arc[VG, AG, EG, FG]) Destination() (Vertex[VG, AG, EG, FG], bool) {
	return BindVertex(a.core, a.key.Destination)
}

// Opposite returns the reverse-direction arc along the same edge.
func (a Arc[VG, AG, EG, FG]) Opposite() (Arc[VG, AG, EG, FG], bool) {
	return BindArc(a.core, a.key.Opposite())
}

// Next returns the next arc around this arc's ring (face interior or
// boundary loop).
func (a Arc[VG, AG, EG, FG]) Next() (Arc[VG, AG, EG, FG], bool) {
	p, ok := a.core.Arcs().Get(a.key)
	if !ok {
		return Arc[VG, AG, EG, FG]{}, false
	}

	return BindArc(a.core, p.Next)
}

// Previous returns the previous arc around this arc's ring.
func (a Arc[VG, AG, EG, FG]) Previous() (Arc[VG, AG, EG, FG], bool) {
	p, ok := a.core.Arcs().Get(a.key)
	if !ok {
		return Arc[VG, AG, EG, FG]{}, false
	}

	return BindArc(a.core, p.Previous)
}

// Face returns the arc's incident face, or false if the arc is a boundary
// arc.
func (a Arc[VG, AG, EG, FG]) Face() (Face[VG, AG, EG, FG], bool) {
	p, ok := a.core.Arcs().Get(a.key)
	if !ok || p.Face == mesh.NilFace {
		return Face[VG, AG, EG, FG]{}, false
	}

	return BindFace(a.core, p.Face)
}

// Edge returns the undirected edge this arc and its opposite share.
func (a Arc[VG, AG, EG, FG]) Edge() (edge EG, ok bool) {
	p, ok := a.core.Arcs().Get(a.key)
	if !ok {
		return edge, false
	}
	e, ok := a.core.Edges().Get(p.Edge)
	if !ok {
		return edge, false
	}

	return e.Geometry, true
}

// IsBoundary reports whether the arc has no incident face.
func (a Arc[VG, AG, EG, FG]) IsBoundary() bool {
	p, ok := a.core.Arcs().Get(a.key)

	return ok && p.Face == mesh.NilFace
}
