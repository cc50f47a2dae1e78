// Package catalog defines the records persisted between storage-audit runs
// and the file store that reads and writes them.
//
// Three records exist, each a versioned JSON envelope:
//   - LocalCatalog: the object ids held by the node, sorted.
//   - RemoteCatalog: the accepted object ids of each bag assigned to a bucket.
//   - DiffReport: the reconciliation of the two.
//
// Records carry no timestamps, so identical inputs always serialize to
// identical bytes.
//
// # Store
//
// Store maps each record to a file under a configured output directory.
// Remote catalogs and diff reports can be scoped to a bag filter, in which
// case the filter is appended to the file name (remote_42.json, diff_42.json).
// Writes go through a temporary file and a rename so a failed run never
// leaves a truncated record behind.
//
// Reading a record that was never written returns an error wrapping
// ErrNotFound; a malformed or unknown-version record returns a *ParseError.
package catalog
