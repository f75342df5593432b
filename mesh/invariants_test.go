package mesh_test

import (
	"sort"
	"testing"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
	"github.com/arcmesh/meshgraph/meshmutate"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildValidQuad(t *testing.T) *mesh.Core[vg, ag, eg, fg] {
	t.Helper()

	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)

	v1 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 0, Y: 0, Z: 0}})
	v2 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 1, Y: 0, Z: 0}})
	v3 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 1, Y: 1, Z: 0}})
	v4 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 0, Y: 1, Z: 0}})

	_, err := m.InsertFace([]mesh.VertexKey{v1, v2, v3, v4}, "", "quad")
	require.NoError(t, err)

	return core
}

func TestValidateAcceptsWellFormedMesh(t *testing.T) {
	core := buildValidQuad(t)
	assert.NoError(t, mesh.Validate(core))
}

func TestValidateDetectsSelfIncidentArc(t *testing.T) {
	core := mesh.Empty[vg, ag, eg, fg]()
	v := core.InsertVertex(geometry.Point{})
	k := mesh.ArcKey{Source: v, Destination: v}
	core.Arcs().InsertAt(k, &mesh.Arc[ag]{Opposite: k, Next: k, Previous: k, Edge: mesh.NilEdge, Face: mesh.NilFace})

	err := mesh.Validate(core)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source equals destination")
}

func TestValidateDetectsBrokenOppositeLink(t *testing.T) {
	core := buildValidQuad(t)

	var someKey mesh.ArcKey
	for _, e := range core.Arcs().Entries() {
		someKey = e.Key

		break
	}
	arc, ok := core.Arcs().Get(someKey)
	require.True(t, ok)
	// Corrupt it to point at itself instead of the true opposite.
	arc.Opposite = someKey

	err := mesh.Validate(core)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key algebra")
}

func TestValidateDetectsDanglingFaceReference(t *testing.T) {
	core := buildValidQuad(t)

	var someKey mesh.ArcKey
	for _, e := range core.Arcs().Entries() {
		if e.Value.Face != mesh.NilFace {
			someKey = e.Key

			break
		}
	}
	arc, ok := core.Arcs().Get(someKey)
	require.True(t, ok)
	arc.Face = mesh.FaceKey(999999)

	err := mesh.Validate(core)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "face")
}

func TestValidateDetectsUnclosedBoundaryRing(t *testing.T) {
	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)

	a := m.InsertVertex(geometry.Point{})
	b := m.InsertVertex(geometry.Point{})
	_, ab, _ := m.GetOrInsertEdge(a, b, "")

	arc, ok := core.Arcs().Get(ab)
	require.True(t, ok)
	// Point Next at a key that was never inserted.
	arc.Next = mesh.ArcKey{Source: b, Destination: mesh.VertexKey(999999)}

	err := mesh.Validate(core)
	require.Error(t, err)
}

func TestValidateDetectsVertexStarMismatch(t *testing.T) {
	core := buildValidQuad(t)

	var vk mesh.VertexKey
	for _, e := range core.Vertices().Entries() {
		vk = e.Key

		break
	}
	v, ok := core.Vertices().Get(vk)
	require.True(t, ok)
	v.Arc = mesh.ArcKey{Source: vk, Destination: vk}

	err := mesh.Validate(core)
	require.Error(t, err)
}

// TestTwoIndependentlyBuiltQuadsAreStructurallyIdentical builds the same
// quad mesh twice, independently, and diffs the sorted arc-key sets
// structurally — a well-formed mesh's topology should not depend on which
// call built it.
func TestTwoIndependentlyBuiltQuadsAreStructurallyIdentical(t *testing.T) {
	first := buildValidQuad(t)
	second := buildValidQuad(t)

	keysOf := func(c *mesh.Core[vg, ag, eg, fg]) []mesh.ArcKey {
		var keys []mesh.ArcKey
		for _, e := range c.Arcs().Entries() {
			keys = append(keys, e.Key)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].Source != keys[j].Source {
				return keys[i].Source < keys[j].Source
			}

			return keys[i].Destination < keys[j].Destination
		})

		return keys
	}

	if diff := cmp.Diff(keysOf(first), keysOf(second)); diff != "" {
		t.Fatalf("structurally identical meshes produced different arc key sets (-first +second):\n%s", diff)
	}
}
