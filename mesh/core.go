// SPDX-License-Identifier: MIT
//
// File: core.go
// Role: Core, the fused four-store graph value (spec.md §3, §4.2).
// Concurrency:
//   - Each store guards its own map/order slice with its own RWMutex.
//   - A committed Core may be read from multiple goroutines freely
//     (spec.md §5); see mesh/concurrency_test.go.
//   - Mutation (meshmutate) assumes exclusive access between Begin and
//     Commit; it does not add its own locking on top of the stores'.
package mesh

import (
	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/store"
)

// Core is the graph value itself: the union of four KeyedStores (vertices,
// arcs, edges, faces). VG is the vertex geometry type, bound by
// geometry.Positioned so FaceExtrude can translate it; AG, EG, and FG are
// opaque arc/edge/face geometry payloads with no bound.
type Core[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	vertices *store.AutoKeyStore[*Vertex[VG]]
	arcs     *store.Store[ArcKey, *Arc[AG]]
	edges    *store.AutoKeyStore[*Edge[EG]]
	faces    *store.AutoKeyStore[*Face[FG]]
}

// Option configures a Core at construction time, the same functional-option
// shape as the teacher's core.GraphOption/core.NewGraph(opts...). There is
// presently nothing to configure beyond construction-time hints; the hook
// exists so new Core-wide settings have somewhere to go without changing
// Empty's signature.
type Option[VG geometry.Positioned[VG], AG any, EG any, FG any] func(*config)

type config struct {
	vertexCapacityHint int
}

// WithCapacityHint records an expected vertex count in the configuration.
// Empty does not preallocate from it: passing any number, or omitting the
// option entirely, changes no observable behavior.
func WithCapacityHint[VG geometry.Positioned[VG], AG any, EG any, FG any](n int) Option[VG, AG, EG, FG] {
	return func(cfg *config) { cfg.vertexCapacityHint = n }
}

// Empty constructs a Core with no vertices, arcs, edges, or faces.
func Empty[VG geometry.Positioned[VG], AG any, EG any, FG any](opts ...Option[VG, AG, EG, FG]) *Core[VG, AG, EG, FG] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Core[VG, AG, EG, FG]{
		vertices: store.NewAutoKeyStore[*Vertex[VG]](),
		arcs:     store.New[ArcKey, *Arc[AG]](),
		edges:    store.NewAutoKeyStore[*Edge[EG]](),
		faces:    store.NewAutoKeyStore[*Face[FG]](),
	}
}

// InsertVertex inserts a new vertex with no outgoing arc yet and returns its
// key.
func (c *Core[VG, AG, EG, FG]) InsertVertex(geom VG) VertexKey {
	return c.vertices.Insert(&Vertex[VG]{Arc: NilArc, Geometry: geom})
}

// Vertices exposes the vertex store.
func (c *Core[VG, AG, EG, FG]) Vertices() *store.AutoKeyStore[*Vertex[VG]] { return c.vertices }

// Arcs exposes the arc store.
func (c *Core[VG, AG, EG, FG]) Arcs() *store.Store[ArcKey, *Arc[AG]] { return c.arcs }

// Edges exposes the edge store.
func (c *Core[VG, AG, EG, FG]) Edges() *store.AutoKeyStore[*Edge[EG]] { return c.edges }

// Faces exposes the face store.
func (c *Core[VG, AG, EG, FG]) Faces() *store.AutoKeyStore[*Face[FG]] { return c.faces }
