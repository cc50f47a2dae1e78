package reconcile

import (
	"storage-audit/core/catalog"
	"storage-audit/core/collation"
)

// Diff reconciles the local catalog against the remote catalog.
func Diff(local *catalog.LocalCatalog, remote *catalog.RemoteCatalog) *catalog.DiffReport {
	localSet := toSet(local.Objects)
	remoteSet := buildUnion(remote.Bags)

	unexpected := make([]string, 0)
	for id := range localSet {
		if _, ok := remoteSet[id]; !ok {
			unexpected = append(unexpected, id)
		}
	}
	collation.Sort(unexpected)

	missingPerBag := make(map[string][]string)
	missingSet := make(map[string]struct{})
	for bag, objects := range remote.Bags {
		missing := missingFrom(objects, localSet)
		if len(missing) == 0 {
			continue
		}
		missingPerBag[bag] = missing
		for _, id := range missing {
			missingSet[id] = struct{}{}
		}
	}

	return &catalog.DiffReport{
		Version:              catalog.SchemaVersion,
		LocalSource:          local.Source,
		UnexpectedLocal:      unexpected,
		MissingObjectsPerBag: missingPerBag,
		MissingObjectsTotal:  len(missingSet),
		UnexpectedLocalTotal: len(unexpected),
	}
}

// MissingObjects returns the distinct missing objects of a report in
// collation order.
func MissingObjects(report *catalog.DiffReport) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, report.MissingObjectsTotal)
	for _, objects := range report.MissingObjectsPerBag {
		for _, id := range objects {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	collation.Sort(out)
	return out
}

// buildUnion creates the set of every object listed by any bag.
func buildUnion(bags map[string][]string) map[string]struct{} {
	union := make(map[string]struct{})
	for _, objects := range bags {
		for _, id := range objects {
			union[id] = struct{}{}
		}
	}
	return union
}

// missingFrom filters objects down to those absent from present, keeping
// their order.
func missingFrom(objects []string, present map[string]struct{}) []string {
	var missing []string
	for _, id := range objects {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
