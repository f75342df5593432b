// SPDX-License-Identifier: MIT
//
// File: mutation.go
// Role: Mutation, the top-level transaction handle (spec.md §4.4, §4.7).
package meshmutate

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arcmesh/meshgraph/geometry"
	"github.com/arcmesh/meshgraph/mesh"
)

// Mutation is a single in-flight transaction against a *mesh.Core. It
// embeds FaceMutation, which embeds EdgeMutation, which embeds
// VertexMutation, so every mutation layer's methods are reachable directly
// on a *Mutation (the same stacked shape
// original_source/plexus/src/graph/mutation/face.rs builds with nested
// Deref/DerefMut; Go gets it from struct embedding without needing either).
//
// Mutation takes its Core by reference, not by value: Go has no move
// semantics, so the contract (documented on Begin) is that the caller must
// not touch the *mesh.Core passed to Begin until Commit returns. A failed
// driver call made through one of the one-call wrappers in ops.go poisons
// the Mutation: the causing error is stored, and every later call to those
// wrappers or to Commit returns it immediately without touching the core
// again. The embedded layer methods (InsertVertex, GetOrInsertEdge, the
// *WithCache drivers, ...) do not check or set the stored error. This
// is the "reference-with-poisoning" resolution of spec.md §5's
// Cancellation note recorded in DESIGN.md.
type Mutation[VG geometry.Positioned[VG], AG any, EG any, FG any] struct {
	FaceMutation[VG, AG, EG, FG]

	logger   *zap.Logger
	poisoned error
}

// Option configures a Mutation at Begin time.
type Option[VG geometry.Positioned[VG], AG any, EG any, FG any] func(*Mutation[VG, AG, EG, FG])

// WithLogger installs logger for Debug-level events, one per driver
// invocation. A nil logger (or omitting this option) is equivalent to
// zap.NewNop(): logging is always nil-safe.
func WithLogger[VG geometry.Positioned[VG], AG any, EG any, FG any](logger *zap.Logger) Option[VG, AG, EG, FG] {
	return func(m *Mutation[VG, AG, EG, FG]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Begin starts a mutation over core. The caller must not read or write
// core directly again until Commit returns it.
func Begin[VG geometry.Positioned[VG], AG any, EG any, FG any](core *mesh.Core[VG, AG, EG, FG], opts ...Option[VG, AG, EG, FG]) *Mutation[VG, AG, EG, FG] {
	m := &Mutation[VG, AG, EG, FG]{
		FaceMutation: FaceMutation[VG, AG, EG, FG]{
			EdgeMutation: EdgeMutation[VG, AG, EG, FG]{
				VertexMutation: VertexMutation[VG, AG, EG, FG]{core: core},
			},
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Commit returns the mutated Core, or the stored error if the mutation is
// poisoned.
func (m *Mutation[VG, AG, EG, FG]) Commit() (*mesh.Core[VG, AG, EG, FG], error) {
	if m.poisoned != nil {
		return nil, m.poisoned
	}

	return m.core, nil
}

// poison records err (wrapped with a stack trace) as the mutation's
// terminal failure. It returns the wrapped error so driver wrapper methods
// can both poison and propagate in one line.
func (m *Mutation[VG, AG, EG, FG]) poison(err error) error {
	wrapped := errors.WithStack(err)
	m.poisoned = wrapped

	return wrapped
}

// failed reports the stored error if this Mutation is already poisoned.
func (m *Mutation[VG, AG, EG, FG]) failed() error { return m.poisoned }

// logOp emits one Debug event naming op and the keys it touched, if a
// logger was installed.
func (m *Mutation[VG, AG, EG, FG]) logOp(op string, fields ...zap.Field) {
	m.logger.Debug(op, fields...)
}
