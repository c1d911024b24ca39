// Package schedule is the execution strategy for a specification run. It
// folds over the ordered fragment groups, producing one Executing handle
// per fragment, and coordinates three concerns across group boundaries:
//
//   - strategy dispatch: each group runs sequentially, in a random
//     intra-group order, or concurrently on a bounded worker pool,
//     according to the merged run/group configuration;
//   - the group barrier: no concurrent fragment starts before every
//     fragment of the previous group has resolved, and a Step is never
//     concurrent with the groups on either side of it;
//   - skip propagation: after each group, a gate decides whether the next
//     group must be forced to resolve Skipped, based on the configured
//     stop-on-fail / stop-on-skip flags and stop-on-fail steps.
//
// The fold itself stays lazy where the strategy is lazy: the skip gate is
// only evaluated when a fragment of the next group is first awaited (or
// when a barrier wait has already resolved the previous group), so a
// sequential run executes nothing until the caller starts awaiting.
package schedule
