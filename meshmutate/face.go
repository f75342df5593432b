// SPDX-License-Identifier: MIT
//
// File: face.go
// Role: FaceMutation, the outermost mutation layer, and the operation
// drivers (spec.md §4.4, §4.5, §4.6). Every driver here takes a mutation
// handle and a cache that already passed its Snapshot* validation; no
// driver re-validates, matching spec.md §4.3's split between pure
// validation and exclusive-write phases.
package meshmutate

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// FaceMutation wraps EdgeMutation and gives exclusive write access to a
// Core's face store.
type FaceMutation[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	EdgeMutation[VG, AG, EG, FG]
}

// InsertFaceWithCache drives spec.md §4.5's insert_face: get-or-insert an
// interior arc for each consecutive vertex pair, allocate the face,
// connect the interior ring, then repair exterior boundary connectivity.
func (m *FaceMutation[VG, AG, EG, FG]) InsertFaceWithCache(cache *FaceInsertCache[VG, AG, EG, FG]) (mesh.FaceKey, error) {
	const op = "FaceInsert"

	n := len(cache.vertices)
	arcs := make([]mesh.ArcKey, n)
	for i := 0; i < n; i++ {
		a, b := cache.vertices[i], cache.vertices[(i+1)%n]
		_, ab, _ := m.GetOrInsertEdge(a, b, cache.arcGeometry)
		arcs[i] = ab
	}

	face := m.core.Faces().Insert(&mesh.Face[FG]{Arc: arcs[0], Geometry: cache.faceGeometry})

	if err := m.connectFaceInterior(arcs, face); err != nil {
		return mesh.NilFace, mesh.Wrap(mesh.TopologyMalformed, op, err)
	}
	if err := m.connectFaceExterior(arcs, cache.incoming, cache.outgoing); err != nil {
		return mesh.NilFace, mesh.Wrap(mesh.TopologyMalformed, op, err)
	}

	return face, nil
}

// connectFaceInterior links each consecutive pair of the new face's
// interior arcs and assigns the face to each.
func (m *FaceMutation[VG, AG, EG, FG]) connectFaceInterior(arcs []mesh.ArcKey, face mesh.FaceKey) error {
	n := len(arcs)
	for i := 0; i < n; i++ {
		ab, bc := arcs[i], arcs[(i+1)%n]
		if err := m.ConnectNeighboringArcs(ab, bc); err != nil {
			return err
		}
		if err := m.ConnectArcToFace(ab, face); err != nil {
			return err
		}
	}

	return nil
}

// connectFaceExterior implements spec.md §4.6's exterior connectivity
// repair: for each interior arc ab whose opposite ba is a boundary arc,
// find ax (an outgoing boundary arc at a) and xb (an incoming boundary arc
// at b) and splice ba between them. The incoming/outgoing candidate sets
// are read from the cache's snapshot, frozen before this operation's
// writes began; boundary status is re-checked live against the core,
// since earlier iterations of this same loop can turn a candidate
// boundary arc into an interior one.
func (m *FaceMutation[VG, AG, EG, FG]) connectFaceExterior(arcs []mesh.ArcKey, incoming, outgoing map[mesh.VertexKey][]mesh.ArcKey) error {
	for _, ab := range arcs {
		a, b := ab.Source, ab.Destination
		ba := ab.Opposite()

		baArc, ok := m.core.Arcs().Get(ba)
		if !ok {
			return mesh.NotFound("connectFaceExterior")
		}
		if baArc.Face != mesh.NilFace {
			continue
		}

		ax, foundAX := m.findBoundaryCandidate(outgoing[a])
		if !foundAX {
			prev, ok := m.core.Arcs().Get(ab)
			if !ok {
				return mesh.NotFound("connectFaceExterior")
			}
			ax = prev.Previous.Opposite()
		}

		xb, foundXB := m.findBoundaryCandidate(incoming[b])
		if !foundXB {
			cur, ok := m.core.Arcs().Get(ab)
			if !ok {
				return mesh.NotFound("connectFaceExterior")
			}
			xb = cur.Next.Opposite()
		}

		if err := m.ConnectNeighboringArcs(xb, ba); err != nil {
			return err
		}
		if err := m.ConnectNeighboringArcs(ba, ax); err != nil {
			return err
		}
	}

	return nil
}

// findBoundaryCandidate returns the first arc in candidates that is
// currently a boundary arc, preserving the snapshot's capture order.
func (m *FaceMutation[VG, AG, EG, FG]) findBoundaryCandidate(candidates []mesh.ArcKey) (mesh.ArcKey, bool) {
	for _, k := range candidates {
		if arc, ok := m.core.Arcs().Get(k); ok && arc.Face == mesh.NilFace {
			return k, true
		}
	}

	return mesh.NilArc, false
}

// RemoveFaceWithCache drives spec.md §4.5's remove: it clears the face
// field of every interior arc and removes the face payload. Arcs, edges,
// and vertices left dangling are not swept here — the surrounding
// operation (or the caller) is responsible, per spec.md §4.5.
func (m *FaceMutation[VG, AG, EG, FG]) RemoveFaceWithCache(cache *FaceRemoveCache) (FG, error) {
	var zero FG

	for _, ab := range cache.arcs {
		if err := m.DisconnectArcFromFace(ab); err != nil {
			return zero, mesh.Wrap(mesh.TopologyMalformed, "FaceRemove", err)
		}
	}

	payload, ok := m.core.Faces().Remove(cache.face)
	if !ok {
		return zero, mesh.NotFound("FaceRemove")
	}

	return payload.Geometry, nil
}

// SplitFaceWithCache drives spec.md §4.5's split: remove the face, then
// insert two new faces over the left and right vertex paths. Both new
// faces reuse the split edge via GetOrInsertEdge, which is why the
// diagonal becomes a shared pair of opposite interior arcs rather than two
// independent edges.
func (m *FaceMutation[VG, AG, EG, FG]) SplitFaceWithCache(cache *FaceSplitCache[VG, AG, EG, FG]) (mesh.ArcKey, error) {
	const op = "FaceSplit"

	if _, err := m.RemoveFaceWithCache(cache.remove); err != nil {
		return mesh.NilArc, err
	}

	var zeroArc AG
	leftCache, err := SnapshotFaceInsert(m.core, cache.left, zeroArc, cache.faceGeometry)
	if err != nil {
		return mesh.NilArc, mesh.Wrap(mesh.TopologyConflict, op, err)
	}
	if _, err := m.InsertFaceWithCache(leftCache); err != nil {
		return mesh.NilArc, err
	}

	rightCache, err := SnapshotFaceInsert(m.core, cache.right, zeroArc, cache.faceGeometry)
	if err != nil {
		return mesh.NilArc, mesh.Wrap(mesh.TopologyConflict, op, err)
	}
	if _, err := m.InsertFaceWithCache(rightCache); err != nil {
		return mesh.NilArc, err
	}

	return mesh.ArcKey{Source: cache.left[0], Destination: cache.right[0]}, nil
}

// PokeFaceWithCache drives spec.md §4.5's poke: remove the face, insert
// the interior vertex, then insert a triangle over each consecutive
// perimeter pair and the new vertex.
func (m *FaceMutation[VG, AG, EG, FG]) PokeFaceWithCache(cache *FacePokeCache[VG, AG, EG, FG]) (mesh.VertexKey, error) {
	faceGeometry, err := m.RemoveFaceWithCache(cache.remove)
	if err != nil {
		return mesh.NilVertex, err
	}

	center := m.InsertVertex(cache.vertexGeometry)

	var zeroArc AG
	n := len(cache.vertices)
	for i := 0; i < n; i++ {
		triangle := []mesh.VertexKey{cache.vertices[i], cache.vertices[(i+1)%n], center}
		triCache, err := SnapshotFaceInsert(m.core, triangle, zeroArc, faceGeometry)
		if err != nil {
			return mesh.NilVertex, mesh.Wrap(mesh.TopologyConflict, "FacePoke", err)
		}
		if _, err := m.InsertFaceWithCache(triCache); err != nil {
			return mesh.NilVertex, err
		}
	}

	return center, nil
}

// BridgeFacesWithCache drives spec.md §4.5's bridge: remove both faces,
// then join each paired interior arc — source arcs in original order,
// destination arcs in reverse — with a quadrilateral via ArcBridgeCache.
// Pairing the destination ring in reverse is required for the bridged
// quads to be consistently wound; see DESIGN.md for why "reverse" (rather
// than some other pairing) is the resolution kept here.
func (m *FaceMutation[VG, AG, EG, FG]) BridgeFacesWithCache(cache *FaceBridgeCache[VG, AG, EG, FG]) error {
	const op = "FaceBridge"

	if _, err := m.RemoveFaceWithCache(cache.removeA); err != nil {
		return err
	}
	if _, err := m.RemoveFaceWithCache(cache.removeB); err != nil {
		return err
	}

	n := len(cache.source)
	for i := 0; i < n; i++ {
		ab := cache.source[i]
		cd := cache.destination[n-1-i]

		var zeroFace FG
		bridgeCache, err := SnapshotArcBridge(m.core, ab, cd, zeroFace)
		if err != nil {
			return mesh.Wrap(mesh.TopologyConflict, op, err)
		}
		if _, err := m.InsertFaceWithCache(bridgeCache.insert); err != nil {
			return err
		}
	}

	return nil
}

// ExtrudeFaceWithCache drives spec.md §4.5's extrude: remove the face,
// insert the translated destination vertices, insert the extruded top
// face over them, then insert one side quadrilateral per consecutive pair
// of source/destination vertices.
func (m *FaceMutation[VG, AG, EG, FG]) ExtrudeFaceWithCache(cache *FaceExtrudeCache[VG, AG, EG, FG]) (mesh.FaceKey, error) {
	const op = "FaceExtrude"

	if _, err := m.RemoveFaceWithCache(cache.remove); err != nil {
		return mesh.NilFace, err
	}

	n := len(cache.sources)
	destinations := make([]mesh.VertexKey, n)
	for i, geom := range cache.destinations {
		destinations[i] = m.InsertVertex(geom)
	}

	var zeroArc AG
	topCache, err := SnapshotFaceInsert(m.core, destinations, zeroArc, cache.faceGeometry)
	if err != nil {
		return mesh.NilFace, mesh.Wrap(mesh.TopologyConflict, op, err)
	}
	top, err := m.InsertFaceWithCache(topCache)
	if err != nil {
		return mesh.NilFace, err
	}

	for i := 0; i < n; i++ {
		s1, s2 := cache.sources[i], cache.sources[(i+1)%n]
		d1, d2 := destinations[i], destinations[(i+1)%n]
		side := []mesh.VertexKey{s1, s2, d2, d1}
		sideCache, err := SnapshotFaceInsert(m.core, side, zeroArc, cache.faceGeometry)
		if err != nil {
			return mesh.NilFace, mesh.Wrap(mesh.TopologyConflict, op, err)
		}
		if _, err := m.InsertFaceWithCache(sideCache); err != nil {
			return mesh.NilFace, err
		}
	}

	return top, nil
}
