// Package storage provides an abstraction layer for object storage services.
//
// Some storage nodes keep their objects in an S3-compatible bucket instead of
// a local directory. This package wraps the MinIO Go client so the local
// enumerator can list (and, when pruning, remove) those objects the same way
// it handles a directory. Both AWS S3 and self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - RemoveObject: Deletes a single object.
//   - RemoveObjects: Deletes many objects through the multi-delete API.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "objects")
package storage
