package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"storage-audit/core/storage"
	"storage-audit/core/utils"

	"github.com/minio/minio-go/v7"
)

// ObjectStorageScheme marks a path as a prefix of the storage bucket.
const ObjectStorageScheme = "s3://"

// Source lists the raw entry names of a location.
type Source interface {
	List(ctx context.Context) ([]string, error)
	// Location names the listed place in the form Open accepts.
	Location() string
}

// DirSource lists the regular entries of a directory.
type DirSource struct {
	Dir string
}

// NewDirSource creates a source for dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// List returns the names of the non-directory entries of the directory.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", s.Dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Location returns the absolute directory path.
func (s *DirSource) Location() string {
	if abs, err := filepath.Abs(s.Dir); err == nil {
		return abs
	}
	return filepath.Clean(s.Dir)
}

// DeleteLocal removes the object file named key.
// A file that is already gone counts as deleted.
func (s *DirSource) DeleteLocal(ctx context.Context, key string) error {
	if !utils.IsNumeric(key) {
		return fmt.Errorf("refusing to delete %q: not an object id", key)
	}
	err := os.Remove(filepath.Join(s.Dir, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ObjectStorageSource lists objects stored under a prefix of a bucket.
type ObjectStorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStorageSource creates a source for prefix inside bucket.
// A non-empty prefix is treated as a folder.
func NewObjectStorageSource(client storage.Client, bucket, prefix string) *ObjectStorageSource {
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &ObjectStorageSource{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// List returns the base names of the objects directly under the prefix.
func (s *ObjectStorageSource) List(ctx context.Context) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: false,
	}

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, s.prefix)
		// Common prefixes come back as keys ending with a slash.
		if name == "" || strings.HasSuffix(name, "/") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Location returns the s3:// path of the prefix.
func (s *ObjectStorageSource) Location() string {
	return ObjectStorageScheme + s.prefix
}

// DeleteLocal removes a single object.
func (s *ObjectStorageSource) DeleteLocal(ctx context.Context, key string) error {
	if !utils.IsNumeric(key) {
		return fmt.Errorf("refusing to delete %q: not an object id", key)
	}
	return s.client.RemoveObject(ctx, s.bucket, s.prefix+key, minio.RemoveObjectOptions{})
}

// DeleteLocalBatch removes many objects with a single bulk request.
func (s *ObjectStorageSource) DeleteLocalBatch(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	for _, key := range keys {
		if !utils.IsNumeric(key) {
			return fmt.Errorf("refusing to delete %q: not an object id", key)
		}
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: s.prefix + key}
	}
	close(objectsCh)

	errorCh := s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{})

	var failed []string
	for e := range errorCh {
		if e.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", e.ObjectName, e.Err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("batch delete had %d errors: %s", len(failed), strings.Join(failed, "; "))
	}
	return nil
}

// IsObjectStoragePath reports whether path addresses the storage bucket and
// returns the prefix it names.
func IsObjectStoragePath(path string) (string, bool) {
	if !strings.HasPrefix(path, ObjectStorageScheme) {
		return "", false
	}
	return strings.TrimPrefix(path, ObjectStorageScheme), true
}

// OpenFunc creates the storage client used by s3:// paths.
type OpenFunc func() (storage.Client, error)

// Opened is a source that can also delete what it lists.
type Opened interface {
	Source
	DeleteLocal(ctx context.Context, key string) error
}

// Open resolves path into a source. Directories are used as is; s3:// paths
// open a storage client for bucket through open.
func Open(path, bucket string, open OpenFunc) (Opened, error) {
	prefix, ok := IsObjectStoragePath(path)
	if !ok {
		return NewDirSource(path), nil
	}
	if bucket == "" {
		return nil, fmt.Errorf("no storage bucket configured for %s", path)
	}
	client, err := open()
	if err != nil {
		return nil, fmt.Errorf("failed to open object storage: %w", err)
	}
	return NewObjectStorageSource(client, bucket, prefix), nil
}
