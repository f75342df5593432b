// Package geometry provides the minimal vector and position primitives the
// mesh packages need to stay generic over caller-supplied geometry payloads.
//
// The engine itself never does anything more sophisticated with these types
// than add and copy them: numerical robustness of geometric computation is
// explicitly out of scope (see spec.md §1 Non-goals). What the engine does
// need is a capability bound — Positioned — so that FaceExtrude can ask a
// vertex geometry type for its position and for a translated copy of
// itself without knowing anything else about that type.
package geometry

// Vector3 is an opaque three-dimensional vector, used both for positions and
// for translations. It carries no validation or normalization; it is moved
// around and added, nothing more.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Positioned is the capability bound a vertex geometry type must satisfy to
// be used with FaceExtrude: it must expose its own position and be able to
// produce a translated copy of itself. Self is the implementing type itself
// (the usual Go self-referential generic constraint), so Translate returns
// the same concrete geometry type it was called on rather than an interface.
type Positioned[Self any] interface {
	Position() Vector3
	Translate(Vector3) Self
}

// Point is a ready-to-use vertex geometry: a bare position and nothing else.
// It satisfies Positioned[Point].
type Point struct {
	Vector3
}

// Position returns the point's position.
func (p Point) Position() Vector3 { return p.Vector3 }

// Translate returns a copy of p moved by v.
func (p Point) Translate(v Vector3) Point {
	return Point{Vector3: p.Vector3.Add(v)}
}
