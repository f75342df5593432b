// Package mesh_test also verifies thread-safety of a committed Core under
// concurrent read-only traversal.
package mesh_test

import (
	"context"
	"testing"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
	"github.com/arcmesh/meshgraph/meshmutate"
	"github.com/arcmesh/meshgraph/meshview"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// buildConcurrencyFixture wires a small two-face mesh (two disjoint quads)
// once, before any goroutines start reading it.
func buildConcurrencyFixture(t *testing.T) *mesh.Core[vg, ag, eg, fg] {
	t.Helper()

	core := mesh.Empty[vg, ag, eg, fg]()
	m := meshmutate.Begin(core)

	a1 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 0, Y: 0, Z: 0}})
	a2 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 1, Y: 0, Z: 0}})
	a3 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 1, Y: 1, Z: 0}})
	a4 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 0, Y: 1, Z: 0}})
	_, err := m.InsertFace([]mesh.VertexKey{a1, a2, a3, a4}, "", "front")
	require.NoError(t, err)

	b1 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 2, Y: 0, Z: 0}})
	b2 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 3, Y: 0, Z: 0}})
	b3 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 3, Y: 1, Z: 0}})
	b4 := m.InsertVertex(geometry.Point{Vector3: geometry.Vector3{X: 2, Y: 1, Z: 0}})
	_, err = m.InsertFace([]mesh.VertexKey{b1, b2, b3, b4}, "", "back")
	require.NoError(t, err)

	return core
}

// TestConcurrentFaceTraversal runs many goroutines walking every face's
// interior ring at once, asserting a committed Core can be read freely
// from multiple goroutines without a race (spec.md §5).
func TestConcurrentFaceTraversal(t *testing.T) {
	core := buildConcurrencyFixture(t)

	const readers = 64
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			total := 0
			for _, e := range core.Faces().Entries() {
				view, ok := meshview.BindFace(core, e.Key)
				if !ok {
					continue
				}
				for range view.InteriorArcs() {
					total++
				}
			}
			require.Equal(t, 8, total)

			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestConcurrentVertexStarReads mixes concurrent vertex-star walks and
// vertex lookups against the same committed Core.
func TestConcurrentVertexStarReads(t *testing.T) {
	core := buildConcurrencyFixture(t)

	const readers = 32
	g, _ := errgroup.WithContext(context.Background())
	for _, e := range core.Vertices().Entries() {
		key := e.Key
		g.Go(func() error {
			view, ok := meshview.BindVertex(core, key)
			if !ok {
				return nil
			}
			for range view.OutgoingArcs() {
			}

			return nil
		})
	}
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			_ = core.Vertices().Len()
			_ = core.Arcs().Len()

			return nil
		})
	}
	require.NoError(t, g.Wait())
}
