// Package fragment defines the unit model of a specification run: the
// Fragment itself (one declared test unit), the Group (a maximal run of
// fragments without a strict ordering boundary), the Outcome of executing
// one fragment, and the Executing handle that resolves to an Outcome
// exactly once.
//
// Everything in this package is consumed by the scheduler but owned by the
// authoring layer: fragments are immutable after construction, and the
// check a fragment carries is an opaque closure the scheduler never
// interprets.
package fragment
