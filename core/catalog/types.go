package catalog

import "storage-audit/core/collation"

// SchemaVersion is the version written into every record.
const SchemaVersion = 1

// LocalCatalog lists the object ids stored on the node.
type LocalCatalog struct {
	Version int `json:"version"`
	// Source is the directory or s3:// prefix the objects were listed from.
	Source  string   `json:"source,omitempty"`
	Objects []string `json:"objects"`
}

// NewLocalCatalog returns a catalog holding objects in collation order.
func NewLocalCatalog(objects []string) *LocalCatalog {
	return &LocalCatalog{
		Version: SchemaVersion,
		Objects: collation.Sorted(nonNil(objects)),
	}
}

// RemoteCatalog maps each bag of a bucket to its accepted object ids.
// A bag is only present when it holds at least one accepted object.
type RemoteCatalog struct {
	Version int                 `json:"version"`
	Bucket  string              `json:"bucket"`
	Bags    map[string][]string `json:"bags"`
}

// NewRemoteCatalog returns an empty catalog for bucket.
func NewRemoteCatalog(bucket string) *RemoteCatalog {
	return &RemoteCatalog{
		Version: SchemaVersion,
		Bucket:  bucket,
		Bags:    make(map[string][]string),
	}
}

// ObjectCount returns the number of object entries across all bags.
// An object listed by two bags is counted twice.
func (c *RemoteCatalog) ObjectCount() int {
	n := 0
	for _, objects := range c.Bags {
		n += len(objects)
	}
	return n
}

// DiffReport is the outcome of reconciling a local and a remote catalog.
type DiffReport struct {
	Version int `json:"version"`
	// LocalSource is the Source of the local catalog the report was built from.
	LocalSource string `json:"localSource,omitempty"`
	// UnexpectedLocal lists local objects absent from every remote bag.
	UnexpectedLocal []string `json:"unexpectedLocal"`
	// MissingObjectsPerBag lists, per bag, the objects absent locally.
	MissingObjectsPerBag map[string][]string `json:"missingObjectsPerBag"`
	// MissingObjectsTotal counts distinct missing objects. It can be lower
	// than the sum of the per-bag lists when bags share objects.
	MissingObjectsTotal int `json:"missingObjectsTotal"`
	// UnexpectedLocalTotal is len(UnexpectedLocal).
	UnexpectedLocalTotal int `json:"unexpectedLocalTotal"`
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
