// SPDX-License-Identifier: MIT
//
// File: edge.go
// Role: EdgeMutation, the second mutation layer (spec.md §4.4), plus
// ArcBridgeCache (spec.md §4.3.7), which is specified as "used transitively"
// by face bridging rather than exposed as its own top-level operation.
package meshmutate

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// EdgeMutation wraps VertexMutation and gives exclusive write access to a
// Core's arc and edge stores.
type EdgeMutation[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	VertexMutation[VG, AG, EG, FG]
}

// GetOrInsertEdge returns the existing edge and arc pair for (source,
// destination) if one is already live, or inserts a fresh pair of opposite
// boundary arcs sharing a new edge. arcGeometry is installed on both the
// forward and reverse arc when a new pair is created; the edge payload
// itself gets a zero-valued EG (the operation drivers that call this only
// ever need to plan an *arc*'s geometry per spec.md §4.5's `(G::Arc,
// G::Face)` pair — there is no independent per-call edge geometry input in
// spec.md §6's programmatic surface).
func (m *EdgeMutation[VG, AG, EG, FG]) GetOrInsertEdge(source, destination mesh.VertexKey, arcGeometry AG) (mesh.EdgeKey, mesh.ArcKey, mesh.ArcKey) {
	forward := mesh.ArcKey{Source: source, Destination: destination}
	reverse := forward.Opposite()

	if fwd, ok := m.core.Arcs().Get(forward); ok {
		return fwd.Edge, forward, reverse
	}

	var zero EG
	edgeKey := m.core.Edges().Insert(&mesh.Edge[EG]{Arc: forward, Geometry: zero})

	m.core.Arcs().InsertAt(forward, &mesh.Arc[AG]{
		Opposite: reverse,
		Next:     forward,
		Previous: forward,
		Face:     mesh.NilFace,
		Edge:     edgeKey,
		Geometry: arcGeometry,
	})
	m.core.Arcs().InsertAt(reverse, &mesh.Arc[AG]{
		Opposite: forward,
		Next:     reverse,
		Previous: reverse,
		Face:     mesh.NilFace,
		Edge:     edgeKey,
		Geometry: arcGeometry,
	})

	m.bindVertexOutgoingArc(source, forward)
	m.bindVertexOutgoingArc(destination, reverse)

	return edgeKey, forward, reverse
}

// ConnectNeighboringArcs sets ab.next = bc and bc.previous = ab.
func (m *EdgeMutation[VG, AG, EG, FG]) ConnectNeighboringArcs(ab, bc mesh.ArcKey) error {
	a, ok := m.core.Arcs().Get(ab)
	if !ok {
		return mesh.NotFound("ConnectNeighboringArcs")
	}
	b, ok := m.core.Arcs().Get(bc)
	if !ok {
		return mesh.NotFound("ConnectNeighboringArcs")
	}
	a.Next = bc
	b.Previous = ab

	return nil
}

// ConnectArcToFace sets ab.face = face.
func (m *EdgeMutation[VG, AG, EG, FG]) ConnectArcToFace(ab mesh.ArcKey, face mesh.FaceKey) error {
	a, ok := m.core.Arcs().Get(ab)
	if !ok {
		return mesh.NotFound("ConnectArcToFace")
	}
	a.Face = face

	return nil
}

// DisconnectArcFromFace clears ab.face, returning it to boundary status.
func (m *EdgeMutation[VG, AG, EG, FG]) DisconnectArcFromFace(ab mesh.ArcKey) error {
	a, ok := m.core.Arcs().Get(ab)
	if !ok {
		return mesh.NotFound("DisconnectArcFromFace")
	}
	a.Face = mesh.NilFace

	return nil
}

// ArcBridgeCache records the plan to join two boundary arcs with a
// quadrilateral face, by reducing to a FaceInsertCache over the induced
// vertex ring [a, b, c, d] where ab.Source=a, ab.Destination=b,
// cd.Source=c, cd.Destination=d. Reusing FaceInsertCache this way is
// possible because inserting that face's interior will, via
// GetOrInsertEdge, find and re-occupy both ab and cd rather than creating
// new edges for them — exactly what bridging two existing boundary arcs
// means.
//
// Exported a second time as EdgeBridgeCache (spec.md §2 names it among the
// first-class caches under that name).
type ArcBridgeCache[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	insert *FaceInsertCache[VG, AG, EG, FG]
}

// EdgeBridgeCache is ArcBridgeCache under the name spec.md §2's component
// table uses.
type EdgeBridgeCache[VG geometry.Positioned[VG], AG any, EG any, FG any] = ArcBridgeCache[VG, AG, EG, FG]

// SnapshotArcBridge validates that ab and cd are both live boundary arcs
// and that the induced quad ring [a, b, c, d] satisfies FaceInsertCache's
// preconditions.
func SnapshotArcBridge[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], ab, cd mesh.ArcKey, faceGeometry FG) (*ArcBridgeCache[VG, AG, EG, FG], error) {
	const op = "ArcBridge"

	arcAB, ok := core.Arcs().Get(ab)
	if !ok {
		return nil, mesh.NotFound(op)
	}
	if arcAB.Face != mesh.NilFace {
		return nil, mesh.Malformed(op)
	}
	arcCD, ok := core.Arcs().Get(cd)
	if !ok {
		return nil, mesh.NotFound(op)
	}
	if arcCD.Face != mesh.NilFace {
		return nil, mesh.Malformed(op)
	}

	vertices := []mesh.VertexKey{ab.Source, ab.Destination, cd.Source, cd.Destination}

	var zeroArcGeom AG
	insert, err := SnapshotFaceInsert(core, vertices, zeroArcGeom, faceGeometry)
	if err != nil {
		return nil, err
	}

	return &ArcBridgeCache[VG, AG, EG, FG]{insert: insert}, nil
}
