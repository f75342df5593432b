package mesh_test

import (
	"testing"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concrete payload types shared by the mesh package's tests: a positioned
// vertex geometry, and opaque string payloads for arcs/edges/faces.
type (
	vg = geometry.Point
	ag = string
	eg = string
	fg = string
)

func TestEmptyCoreHasNoEntities(t *testing.T) {
	c := mesh.Empty[vg, ag, eg, fg]()

	assert.Equal(t, 0, c.Vertices().Len())
	assert.Equal(t, 0, c.Arcs().Len())
	assert.Equal(t, 0, c.Edges().Len())
	assert.Equal(t, 0, c.Faces().Len())
}

func TestInsertVertexAssignsKeysNeverReused(t *testing.T) {
	c := mesh.Empty[vg, ag, eg, fg]()

	v1 := c.InsertVertex(geometry.Point{})
	v2 := c.InsertVertex(geometry.Point{})
	require.NotEqual(t, v1, v2)

	c.Vertices().Remove(v1)
	v3 := c.InsertVertex(geometry.Point{})
	assert.NotEqual(t, v1, v3)
}

func TestArcKeyOpposite(t *testing.T) {
	a := mesh.ArcKey{Source: 1, Destination: 2}
	assert.Equal(t, mesh.ArcKey{Source: 2, Destination: 1}, a.Opposite())
	assert.True(t, mesh.NilArc.IsNil())
	assert.False(t, a.IsNil())
}
