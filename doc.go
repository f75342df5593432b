// Package meshgraph is the module root for the half-edge mesh topology
// engine: an in-memory graph representing 2-manifold (and
// manifold-with-boundary) polygonal surfaces, plus the transactional
// mutation layer that performs local topological surgery on it.
//
// There is no code at this level. The engine is organized under five
// subpackages:
//
//	geometry/   — vector/position primitives and the capability bound
//	              vertex geometries satisfy for extrusion
//	store/      — the generational keyed table every entity lives in
//	mesh/       — the Core graph value, entity payloads, and the typed
//	              error taxonomy and invariant checker
//	meshview/   — read-only traversal over a Core (next/previous/
//	              opposite/face/vertex)
//	meshmutate/ — snapshot caches, the stacked mutation writers, and the
//	              operation drivers (insert/remove/split/poke/bridge/
//	              extrude a face, split an edge; arc bridging runs only
//	              inside face bridging)
//
// This module does not parse files, does not speak a wire protocol, and
// does not expose a CLI: it is a pure in-memory topology library, fed by
// a caller-supplied stream of vertex keys and payload values.
package meshgraph
