// Package audit ties the listing, collection and reconciliation steps
// together.
//
// Service runs the three audit steps the command line exposes. Each step
// persists its record through core/catalog so the steps can run in separate
// invocations:
//
//   - SnapshotLocal lists the node's objects and writes local.json.
//   - SnapshotRemote lists the bucket's bags, collects their accepted objects
//     and writes remote.json (remote_<filter>.json when filtered).
//   - Diff reads both records and writes diff.json (diff_<filter>.json).
//
// PlanPrune and Prune turn a persisted diff into deletions of local orphans.
//
// Handler serves the persisted records read-only over HTTP:
//
//	GET /audit/local
//	GET /audit/remote?bag=<filter>
//	GET /audit/diff?bag=<filter>
//	GET /audit/history?limit=<n>
//
// A non-numeric bag answers 400, a record never written 404 and a malformed
// one 500. History answers 503 when no database is configured.
package audit
