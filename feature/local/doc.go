// Package local lists the objects a storage node holds.
//
// Two sources are supported: a directory on disk and a prefix of the
// configured object storage bucket, addressed as s3://<prefix>. Only entries
// whose whole name is a base-10 integer are objects; anything else (temporary
// files, subdirectories, metadata) is skipped silently.
//
// Both sources can also delete objects, which is how orphans are pruned.
package local
