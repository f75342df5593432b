// SPDX-License-Identifier: MIT
//
// File: vertex.go
// Role: VertexMutation, the innermost mutation layer (spec.md §4.4).
package meshmutate

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// VertexMutation gives exclusive write access to a Core's vertex store. It
// is the innermost of the three stacked mutation layers; EdgeMutation
// embeds it to reuse InsertVertex and read-only access to the lower store.
type VertexMutation[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	core *mesh.Core[VG, AG, EG, FG]
}

// Core exposes the underlying Core for read-only access and for snapshot
// re-use mid-transaction (spec.md §4.4).
func (m *VertexMutation[VG, AG, EG, FG]) Core() *mesh.Core[VG, AG, EG, FG] { return m.core }

// InsertVertex inserts a new, isolated vertex and returns its key.
func (m *VertexMutation[VG, AG, EG, FG]) InsertVertex(geom VG) mesh.VertexKey {
	return m.core.InsertVertex(geom)
}

// bindVertexOutgoingArc records ab as v's outgoing arc if v has none yet.
// Later links overwrite nothing: any outgoing arc already on file remains
// a valid star entry point (invariant 6 needs only one entry point, not a
// canonical one).
func (m *VertexMutation[VG, AG, EG, FG]) bindVertexOutgoingArc(v mesh.VertexKey, ab mesh.ArcKey) {
	p, ok := m.core.Vertices().Get(v)
	if ok && p.Arc.IsNil() {
		p.Arc = ab
	}
}
