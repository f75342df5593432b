// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: one-call snapshot-then-drive wrappers on *Mutation (spec.md §6's
// semantic programmatic API), each guarding against an already-poisoned
// mutation and poisoning it on failure.
package meshmutate

import (
	"go.uber.org/zap"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// InsertFace snapshots and drives a face insertion over vertexKeys.
func (m *Mutation[VG, AG, EG, FG]) InsertFace(vertexKeys []mesh.VertexKey, arcGeometry AG, faceGeometry FG) (mesh.FaceKey, error) {
	if err := m.failed(); err != nil {
		return mesh.NilFace, err
	}

	cache, err := SnapshotFaceInsert(m.core, vertexKeys, arcGeometry, faceGeometry)
	if err != nil {
		return mesh.NilFace, err
	}

	face, err := m.InsertFaceWithCache(cache)
	if err != nil {
		return mesh.NilFace, m.poison(err)
	}
	m.logOp("FaceInsert", zap.Uint64("face", uint64(face)), zap.Int("arity", len(vertexKeys)))

	return face, nil
}

// RemoveFace snapshots and drives a face removal.
func (m *Mutation[VG, AG, EG, FG]) RemoveFace(face mesh.FaceKey) (FG, error) {
	var zero FG
	if err := m.failed(); err != nil {
		return zero, err
	}

	cache, err := SnapshotFaceRemove(m.core, face)
	if err != nil {
		return zero, err
	}

	geom, err := m.RemoveFaceWithCache(cache)
	if err != nil {
		return zero, m.poison(err)
	}
	m.logOp("FaceRemove", zap.Uint64("face", uint64(face)))

	return geom, nil
}

// SplitFace snapshots and drives a face split along the source/destination
// diagonal.
func (m *Mutation[VG, AG, EG, FG]) SplitFace(face mesh.FaceKey, source, destination mesh.VertexKey) (mesh.ArcKey, error) {
	if err := m.failed(); err != nil {
		return mesh.NilArc, err
	}

	cache, err := SnapshotFaceSplit(m.core, face, source, destination)
	if err != nil {
		return mesh.NilArc, err
	}

	diagonal, err := m.SplitFaceWithCache(cache)
	if err != nil {
		return mesh.NilArc, m.poison(err)
	}
	m.logOp("FaceSplit", zap.Uint64("face", uint64(face)))

	return diagonal, nil
}

// PokeFace snapshots and drives a face poke with vertexGeometry at the new
// interior vertex.
func (m *Mutation[VG, AG, EG, FG]) PokeFace(face mesh.FaceKey, vertexGeometry VG) (mesh.VertexKey, error) {
	if err := m.failed(); err != nil {
		return mesh.NilVertex, err
	}

	cache, err := SnapshotFacePoke(m.core, face, vertexGeometry)
	if err != nil {
		return mesh.NilVertex, err
	}

	center, err := m.PokeFaceWithCache(cache)
	if err != nil {
		return mesh.NilVertex, m.poison(err)
	}
	m.logOp("FacePoke", zap.Uint64("face", uint64(face)), zap.Uint64("center", uint64(center)))

	return center, nil
}

// BridgeFaces snapshots and drives bridging faceA and faceB.
func (m *Mutation[VG, AG, EG, FG]) BridgeFaces(faceA, faceB mesh.FaceKey) error {
	if err := m.failed(); err != nil {
		return err
	}

	cache, err := SnapshotFaceBridge(m.core, faceA, faceB)
	if err != nil {
		return err
	}

	if err := m.BridgeFacesWithCache(cache); err != nil {
		return m.poison(err)
	}
	m.logOp("FaceBridge", zap.Uint64("faceA", uint64(faceA)), zap.Uint64("faceB", uint64(faceB)))

	return nil
}

// SplitEdge snapshots and drives splitting the edge between a and b,
// installing vertexGeometry at the new interior vertex.
func (m *Mutation[VG, AG, EG, FG]) SplitEdge(a, b mesh.VertexKey, vertexGeometry VG) (mesh.VertexKey, error) {
	if err := m.failed(); err != nil {
		return mesh.NilVertex, err
	}

	cache, err := SnapshotEdgeSplit(m.core, a, b, vertexGeometry)
	if err != nil {
		return mesh.NilVertex, err
	}

	v, err := m.SplitEdgeWithCache(cache)
	if err != nil {
		return mesh.NilVertex, m.poison(err)
	}
	m.logOp("EdgeSplit", zap.Uint64("a", uint64(a)), zap.Uint64("b", uint64(b)), zap.Uint64("v", uint64(v)))

	return v, nil
}

// ExtrudeFace snapshots and drives extruding face along translation.
func (m *Mutation[VG, AG, EG, FG]) ExtrudeFace(face mesh.FaceKey, translation geometry.Vector3) (mesh.FaceKey, error) {
	if err := m.failed(); err != nil {
		return mesh.NilFace, err
	}

	cache, err := SnapshotFaceExtrude(m.core, face, translation)
	if err != nil {
		return mesh.NilFace, err
	}

	top, err := m.ExtrudeFaceWithCache(cache)
	if err != nil {
		return mesh.NilFace, m.poison(err)
	}
	m.logOp("FaceExtrude", zap.Uint64("source", uint64(face)), zap.Uint64("top", uint64(top)))

	return top, nil
}
