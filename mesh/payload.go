// SPDX-License-Identifier: MIT
//
// File: payload.go
// Role: the four entity payload types (spec.md §3).
package mesh

// Vertex is a point in the mesh's 1-skeleton. Arc is the vertex's outgoing
// arc, or NilArc if the vertex is isolated. Geometry is an opaque payload
// the engine only copies and forwards, except where the caller's VG also
// satisfies geometry.Positioned, in which case FaceExtrude reads and
// transforms it.
type Vertex[VG any] struct {
	Arc      ArcKey
	Geometry VG
}

// Arc is a directed half-edge. Opposite is the reverse direction along the
// same edge; Next/Previous are the cyclic links around whichever ring this
// arc belongs to (a face's interior, or a boundary loop); Face is the
// incident face, or store.NilKey if this is a boundary arc; Edge is the
// undirected edge this arc and its opposite share.
type Arc[AG any] struct {
	Opposite ArcKey
	Next     ArcKey
	Previous ArcKey
	Face     FaceKey
	Edge     EdgeKey
	Geometry AG
}

// IsBoundary reports whether the arc has no incident face.
func (a *Arc[AG]) IsBoundary() bool { return a.Face == NilFace }

// Edge is an undirected pair of opposite arcs. Arc names one of the two
// (the "canonical" one, by convention the one that was live first).
type Edge[EG any] struct {
	Arc      ArcKey
	Geometry EG
}

// Face is a polygonal region bounded by a cycle of interior arcs. Arc names
// any one of them.
type Face[FG any] struct {
	Arc      ArcKey
	Geometry FG
}
