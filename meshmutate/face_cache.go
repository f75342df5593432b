// SPDX-License-Identifier: MIT
//
// File: face_cache.go
// Role: the snapshot half of every face-level operation (spec.md §4.3).
// Every Snapshot* function here runs against an immutable *mesh.Core and
// either returns a fully validated plan or a *mesh.Error — no writes occur
// until the returned cache reaches a driver in face.go.
package meshmutate

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
	"github.com/arcmesh/meshgraph/meshview"
)

// FaceInsertCache is the validated plan for inserting a new face over an
// ordered vertex ring (spec.md §4.3.1).
type FaceInsertCache[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	vertices     []mesh.VertexKey
	arcGeometry  AG
	faceGeometry FG
	incoming     map[mesh.VertexKey][]mesh.ArcKey
	outgoing     map[mesh.VertexKey][]mesh.ArcKey
}

// SnapshotFaceInsert validates vertexKeys per spec.md §4.3.1 and captures
// each vertex's live incoming/outgoing arc sets for the exterior repair
// pass (spec.md §4.6).
func SnapshotFaceInsert[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], vertexKeys []mesh.VertexKey, arcGeometry AG, faceGeometry FG) (*FaceInsertCache[VG, AG, EG, FG], error) {
	const op = "FaceInsert"

	n := len(vertexKeys)
	if n < 3 {
		return nil, mesh.InvalidArity(op)
	}

	set := make(map[mesh.VertexKey]bool, n)
	for _, v := range vertexKeys {
		if set[v] {
			return nil, mesh.Malformed(op)
		}
		set[v] = true
	}

	for _, v := range vertexKeys {
		if _, ok := core.Vertices().Get(v); !ok {
			return nil, mesh.NotFound(op)
		}
	}

	// Let the previous pair be AB and the next pair be BC, with vertices A,
	// B, C occurring in that order along the proposed ring. If AB already
	// exists and already has a face, the ring would re-occupy an interior
	// arc. If BC does not yet exist, and AB already has a `next` arc whose
	// destination lies inside the proposed vertex set, then that existing
	// arc would have to serve two incompatible rings at once — the new
	// face would bisect an existing one.
	for i := 0; i < n; i++ {
		a, b := vertexKeys[i], vertexKeys[(i+1)%n]
		abKey := mesh.ArcKey{Source: a, Destination: b}

		ab, abExists := core.Arcs().Get(abKey)
		if abExists && ab.Face != mesh.NilFace {
			return nil, mesh.Conflict(op)
		}

		// bcKey's destination is encoded directly in ab.Next (an ArcKey),
		// so no extra store lookup is needed to test whether ab's existing
		// "next" would have to serve two rings at once.
		bcKey := mesh.ArcKey{Source: b, Destination: vertexKeys[(i+2)%n]}
		if _, bcExists := core.Arcs().Get(bcKey); !bcExists && abExists && set[ab.Next.Destination] {
			return nil, mesh.Conflict(op)
		}
	}

	incoming := make(map[mesh.VertexKey][]mesh.ArcKey, n)
	outgoing := make(map[mesh.VertexKey][]mesh.ArcKey, n)
	for _, v := range vertexKeys {
		incoming[v] = nil
		outgoing[v] = nil
	}
	for _, e := range core.Arcs().Entries() {
		if _, ok := set[e.Key.Source]; ok {
			outgoing[e.Key.Source] = append(outgoing[e.Key.Source], e.Key)
		}
		if _, ok := set[e.Key.Destination]; ok {
			incoming[e.Key.Destination] = append(incoming[e.Key.Destination], e.Key)
		}
	}

	vertices := make([]mesh.VertexKey, n)
	copy(vertices, vertexKeys)

	return &FaceInsertCache[VG, AG, EG, FG]{
		vertices:     vertices,
		arcGeometry:  arcGeometry,
		faceGeometry: faceGeometry,
		incoming:     incoming,
		outgoing:     outgoing,
	}, nil
}

// FaceRemoveCache is the validated plan for removing a face (spec.md
// §4.3.2): its key and the ordered interior arcs that bound it.
type FaceRemoveCache struct {
	face mesh.FaceKey
	arcs []mesh.ArcKey
}

// SnapshotFaceRemove validates that face exists and records its interior
// ring in traversal order.
func SnapshotFaceRemove[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], face mesh.FaceKey) (*FaceRemoveCache, error) {
	const op = "FaceRemove"

	view, ok := meshview.BindFace(core, face)
	if !ok {
		return nil, mesh.NotFound(op)
	}

	var arcs []mesh.ArcKey
	for a := range view.InteriorArcs() {
		arcs = append(arcs, a.Key())
	}
	if len(arcs) < 3 {
		return nil, mesh.InvalidArity(op)
	}

	return &FaceRemoveCache{face: face, arcs: arcs}, nil
}

// FaceSplitCache is the validated plan for splitting a face along a
// source/destination vertex diagonal (spec.md §4.3.3).
type FaceSplitCache[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	remove       *FaceRemoveCache
	left         []mesh.VertexKey
	right        []mesh.VertexKey
	faceGeometry FG
}

// SnapshotFaceSplit validates that source and destination are non-adjacent
// vertices of face (ring distance > 1 walking either way round) and records
// the two vertex paths the split produces.
func SnapshotFaceSplit[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], face mesh.FaceKey, source, destination mesh.VertexKey) (*FaceSplitCache[VG, AG, EG, FG], error) {
	const op = "FaceSplit"

	view, ok := meshview.BindFace(core, face)
	if !ok {
		return nil, mesh.NotFound(op)
	}

	dist, ok := view.Ring().Distance(source, destination)
	if !ok || dist <= 1 || dist >= view.Arity()-1 {
		return nil, mesh.Malformed(op)
	}

	var perimeter []mesh.VertexKey
	for v := range view.Vertices() {
		perimeter = append(perimeter, v.Key())
	}

	i, j := indexOf(perimeter, source), indexOf(perimeter, destination)
	if i < 0 || j < 0 {
		return nil, mesh.Malformed(op)
	}

	remove, err := SnapshotFaceRemove(core, face)
	if err != nil {
		return nil, err
	}

	return &FaceSplitCache[VG, AG, EG, FG]{
		remove:       remove,
		left:         ringSlice(perimeter, i, j),
		right:        ringSlice(perimeter, j, i),
		faceGeometry: view.Geometry(),
	}, nil
}

// indexOf returns the index of v within keys, or -1 if absent.
func indexOf(keys []mesh.VertexKey, v mesh.VertexKey) int {
	for i, k := range keys {
		if k == v {
			return i
		}
	}

	return -1
}

// ringSlice returns keys[i], keys[i+1], ..., keys[j] inclusive, wrapping
// modulo len(keys).
func ringSlice(keys []mesh.VertexKey, i, j int) []mesh.VertexKey {
	n := len(keys)
	out := []mesh.VertexKey{keys[i]}
	for k := i; k != j; k = (k + 1) % n {
		next := (k + 1) % n
		out = append(out, keys[next])
	}

	return out
}

// FacePokeCache is the validated plan for poking a face with a new
// interior vertex (spec.md §4.3.4).
type FacePokeCache[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	vertices       []mesh.VertexKey
	vertexGeometry VG
	remove         *FaceRemoveCache
}

// SnapshotFacePoke validates that face exists and records its vertex ring
// plus the payload to install at the new interior vertex.
func SnapshotFacePoke[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], face mesh.FaceKey, vertexGeometry VG) (*FacePokeCache[VG, AG, EG, FG], error) {
	view, ok := meshview.BindFace(core, face)
	if !ok {
		return nil, mesh.NotFound("FacePoke")
	}

	var vertices []mesh.VertexKey
	for v := range view.Vertices() {
		vertices = append(vertices, v.Key())
	}

	remove, err := SnapshotFaceRemove(core, face)
	if err != nil {
		return nil, err
	}

	return &FacePokeCache[VG, AG, EG, FG]{vertices: vertices, vertexGeometry: vertexGeometry, remove: remove}, nil
}

// FaceBridgeCache is the validated plan for bridging two equal-arity faces
// with a ring of quadrilaterals (spec.md §4.3.5).
type FaceBridgeCache[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	source      []mesh.ArcKey
	destination []mesh.ArcKey
	removeA     *FaceRemoveCache
	removeB     *FaceRemoveCache
}

// SnapshotFaceBridge validates that both faces exist and share an arity;
// it records both interior arc rings for the driver.
func SnapshotFaceBridge[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], faceA, faceB mesh.FaceKey) (*FaceBridgeCache[VG, AG, EG, FG], error) {
	const op = "FaceBridge"

	removeA, err := SnapshotFaceRemove(core, faceA)
	if err != nil {
		return nil, err
	}
	removeB, err := SnapshotFaceRemove(core, faceB)
	if err != nil {
		return nil, err
	}
	if len(removeA.arcs) != len(removeB.arcs) {
		return nil, mesh.NonUniformArity(op)
	}

	return &FaceBridgeCache[VG, AG, EG, FG]{
		source:      removeA.arcs,
		destination: removeB.arcs,
		removeA:     removeA,
		removeB:     removeB,
	}, nil
}

// FaceExtrudeCache is the validated plan for extruding a face along a
// translation vector (spec.md §4.3.6).
type FaceExtrudeCache[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	sources      []mesh.VertexKey
	destinations []VG
	faceGeometry FG
	remove       *FaceRemoveCache
}

// SnapshotFaceExtrude validates that face exists and pre-computes each
// source vertex's translated destination payload.
func SnapshotFaceExtrude[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], face mesh.FaceKey, translation geometry.Vector3) (*FaceExtrudeCache[VG, AG, EG, FG], error) {
	view, ok := meshview.BindFace(core, face)
	if !ok {
		return nil, mesh.NotFound("FaceExtrude")
	}

	var sources []mesh.VertexKey
	var destinations []VG
	for v := range view.Vertices() {
		sources = append(sources, v.Key())
		destinations = append(destinations, v.Geometry().Translate(translation))
	}

	remove, err := SnapshotFaceRemove(core, face)
	if err != nil {
		return nil, err
	}

	return &FaceExtrudeCache[VG, AG, EG, FG]{
		sources:      sources,
		destinations: destinations,
		faceGeometry: view.Geometry(),
		remove:       remove,
	}, nil
}
