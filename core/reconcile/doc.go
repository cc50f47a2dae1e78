// Package reconcile compares the objects a node holds against the objects
// the remote index assigns to it.
//
// # Diff
//
// Diff takes a LocalCatalog and a RemoteCatalog and produces a DiffReport:
//
//   - unexpectedLocal: local objects absent from every remote bag (orphans).
//   - missingObjectsPerBag: for each bag, the objects it lists that are not
//     held locally, in the bag's own order. Bags with nothing missing are
//     omitted.
//   - missingObjectsTotal: the number of distinct missing objects. An object
//     missing from two bags is listed under both but counted once, so the
//     total can be lower than the sum of the per-bag lists.
//
// Diff is a pure function over in-memory sets; both catalogs are fully
// materialized before comparison.
//
// # Plans
//
// BuildPlan turns a report into a list of actions (currently deleting local
// orphans). ApplyPlan executes them through a Mutator, and only when the
// options are confirmed and not a dry run. Mutators that also implement
// BatchDeleter get every key in a single call.
//
// # Usage Example
//
//	report := reconcile.Diff(local, remote)
//	plan := reconcile.BuildPlan(report)
//	executed, err := reconcile.ApplyPlan(ctx, remover, plan, reconcile.ReconcileOptions{Confirmed: true})
package reconcile
