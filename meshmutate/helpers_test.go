package meshmutate_test

import (
	"testing"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
	"github.com/arcmesh/meshgraph/meshmutate"
	"github.com/stretchr/testify/require"
)

type (
	vg = geometry.Point
	ag = string
	eg = string
	fg = string
)

func point(x, y, z float64) vg {
	return geometry.Point{Vector3: geometry.Vector3{X: x, Y: y, Z: z}}
}

// insertFace is a small test-only convenience around Mutation.InsertFace
// that fails the test immediately on error.
func insertFace(t *testing.T, m *meshmutate.Mutation[vg, ag, eg, fg], vertices []mesh.VertexKey, label string) mesh.FaceKey {
	t.Helper()

	f, err := m.InsertFace(vertices, "", label)
	require.NoError(t, err)

	return f
}
