// SPDX-License-Identifier: MIT
//
// File: keys.go
// Role: the four entity key types and the arc-key algebra (spec.md §3, §4.1).
package mesh

import "github.com/arcmesh/meshgraph/store"

// VertexKey, EdgeKey, and FaceKey are minted by their respective
// store.AutoKeyStore on insert and never reused within a Core's lifetime.
type (
	VertexKey = store.Key
	EdgeKey   = store.Key
	FaceKey   = store.Key
)

// ArcKey is the ordered pair of endpoint vertex keys that identifies a
// directed half-edge. Arc keys are derived, not generated: inserting an arc
// for a pair that already has a live entry is an error (spec.md §4.1), and
// the opposite of (a, b) is (b, a) by construction — no field dereference
// needed to find it.
type ArcKey struct {
	Source      VertexKey
	Destination VertexKey
}

// NilVertex, NilEdge, and NilFace are the reserved, never-issued keys for
// their respective stores (store.NilKey, spelled out per entity kind for
// readability at call sites).
const (
	NilVertex = store.NilKey
	NilEdge   = store.NilKey
	NilFace   = store.NilKey
)

// NilArc is the zero ArcKey. Because VertexKey(0) (store.NilKey) is never a
// live vertex, NilArc can never collide with a real arc key — invariant 9
// (no self-incident arcs) already forbids Source == Destination, and a nil
// vertex key can't be part of any real pair either. It is used as the "no
// arc" sentinel for Vertex.Arc.
var NilArc = ArcKey{}

// IsNil reports whether k is the reserved "no arc" sentinel.
func (k ArcKey) IsNil() bool { return k == NilArc }

// Opposite returns the arc key for the reverse direction along the same
// geometric edge.
func (k ArcKey) Opposite() ArcKey { return ArcKey{Source: k.Destination, Destination: k.Source} }
