package meshmutate_test

import (
	"testing"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
	"github.com/arcmesh/meshgraph/meshmutate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCube wires the classic 8-vertex, 6-quad, 12-edge cube topology by
// inserting one quad per face, in an order and winding chosen so every
// shared edge appears in opposite directions on its two faces — letting
// the exterior connectivity repair splice each new face into the boundary
// left behind by the previous ones.
func buildCube(t *testing.T, m *meshmutate.Mutation[vg, ag, eg, fg]) (vertices [8]mesh.VertexKey, faces [6]mesh.FaceKey) {
	t.Helper()

	coords := [8][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for i, c := range coords {
		vertices[i] = m.InsertVertex(point(c[0], c[1], c[2]))
	}
	v := vertices

	rings := [6][4]mesh.VertexKey{
		{v[0], v[1], v[5], v[4]}, // front
		{v[1], v[2], v[6], v[5]}, // right
		{v[2], v[3], v[7], v[6]}, // back
		{v[3], v[0], v[4], v[7]}, // left
		{v[4], v[5], v[6], v[7]}, // top
		{v[3], v[2], v[1], v[0]}, // bottom
	}
	for i, ring := range rings {
		faces[i] = insertFace(t, m, ring[:], "cube")
	}

	return vertices, faces
}

func TestCubeClosesWithNoBoundaryArcs(t *testing.T) {
	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)
	_, faces := buildCube(t, m)

	require.Equal(t, 6, core.Faces().Len())
	require.Equal(t, 8, core.Vertices().Len())
	require.Equal(t, 12, core.Edges().Len())
	require.Equal(t, 24, core.Arcs().Len())

	for _, e := range core.Arcs().Entries() {
		assert.False(t, e.Value.IsBoundary(), "a fully closed cube has no boundary arcs")
	}
	for _, f := range faces {
		_, ok := core.Faces().Get(f)
		assert.True(t, ok)
	}

	require.NoError(t, mesh.Validate(core))
}

func TestExtrudeCubeFaceScenario(t *testing.T) {
	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)
	_, faces := buildCube(t, m)

	top, err := m.ExtrudeFace(faces[4], geometry.Vector3{X: 0, Y: 0, Z: 1})
	require.NoError(t, err)

	// -1 removed original top quad, +1 new top quad, +4 side quads.
	assert.Equal(t, 6-1+1+4, core.Faces().Len())
	// +4 new vertices for the extruded top.
	assert.Equal(t, 8+4, core.Vertices().Len())

	_, ok := core.Faces().Get(top)
	assert.True(t, ok)

	boundaryCount := 0
	for _, e := range core.Arcs().Entries() {
		if e.Value.IsBoundary() {
			boundaryCount++
		}
	}
	assert.Equal(t, 0, boundaryCount, "extruding one face of a closed solid keeps it closed")

	require.NoError(t, mesh.Validate(core))
}

// TestInsertRemoveIdempotence exercises the insert/remove idempotence law:
// inserting a face then removing it restores the same vertex, arc, and
// edge populations (spec.md §8). Face removal does not sweep arcs or edges,
// so the ring's edges are created before the populations are recorded.
func TestInsertRemoveIdempotence(t *testing.T) {
	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)

	v1 := m.InsertVertex(point(0, 0, 0))
	v2 := m.InsertVertex(point(1, 0, 0))
	v3 := m.InsertVertex(point(1, 1, 0))
	v4 := m.InsertVertex(point(0, 1, 0))

	ring := []mesh.VertexKey{v1, v2, v3, v4}
	for i := range ring {
		m.GetOrInsertEdge(ring[i], ring[(i+1)%len(ring)], "")
	}

	verticesBefore := core.Vertices().Len()
	arcsBefore := core.Arcs().Len()
	edgesBefore := core.Edges().Len()

	face, err := m.InsertFace(ring, "", "quad")
	require.NoError(t, err)

	_, err = m.RemoveFace(face)
	require.NoError(t, err)

	assert.Equal(t, verticesBefore, core.Vertices().Len())
	assert.Equal(t, arcsBefore, core.Arcs().Len())
	assert.Equal(t, edgesBefore, core.Edges().Len())

	for _, e := range core.Arcs().Entries() {
		assert.Equal(t, mesh.NilFace, e.Value.Face, "removal clears face assignment on every surviving arc")
	}
}

// TestSplitPreservesCoverage exercises the split-coverage law: after
// split(f, s, d), the two new faces' interior arcs cover the original
// face's arcs plus one new pair on the split diagonal.
func TestSplitPreservesCoverage(t *testing.T) {
	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)

	v1 := m.InsertVertex(point(0, 0, 0))
	v2 := m.InsertVertex(point(1, 0, 0))
	v3 := m.InsertVertex(point(1, 1, 0))
	v4 := m.InsertVertex(point(0, 1, 0))
	face := insertFace(t, m, []mesh.VertexKey{v1, v2, v3, v4}, "quad")

	originalArcs := map[mesh.ArcKey]bool{
		{Source: v1, Destination: v2}: true,
		{Source: v2, Destination: v3}: true,
		{Source: v3, Destination: v4}: true,
		{Source: v4, Destination: v1}: true,
	}

	diagonal, err := m.SplitFace(face, v1, v3)
	require.NoError(t, err)

	resultingInterior := map[mesh.ArcKey]bool{}
	for _, e := range core.Arcs().Entries() {
		if e.Value.Face != mesh.NilFace {
			resultingInterior[e.Key] = true
		}
	}

	for ab := range originalArcs {
		assert.True(t, resultingInterior[ab], "original arc %v should still be interior after split", ab)
	}
	assert.True(t, resultingInterior[diagonal])
	assert.True(t, resultingInterior[diagonal.Opposite()])
	assert.Equal(t, len(originalArcs)+2, len(resultingInterior))
}
