package reconcile

import (
	"testing"

	"storage-audit/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteOf(bags map[string][]string) *catalog.RemoteCatalog {
	c := catalog.NewRemoteCatalog("1")
	for bag, objects := range bags {
		c.Bags[bag] = objects
	}
	return c
}

// TestDiff_SharedMissingObject checks that an object missing from two bags is
// listed under both but counted once.
func TestDiff_SharedMissingObject(t *testing.T) {
	local := catalog.NewLocalCatalog([]string{"a", "b", "x"})
	remote := remoteOf(map[string][]string{
		"bag1": {"a", "b", "c"},
		"bag2": {"c", "d"},
	})

	report := Diff(local, remote)

	assert.Equal(t, []string{"x"}, report.UnexpectedLocal)
	assert.Equal(t, map[string][]string{
		"bag1": {"c"},
		"bag2": {"c", "d"},
	}, report.MissingObjectsPerBag)
	assert.Equal(t, 2, report.MissingObjectsTotal)
	assert.Equal(t, 1, report.UnexpectedLocalTotal)
	assert.Equal(t, []string{"c", "d"}, MissingObjects(report))
}

func TestDiff_CompleteBagsOmitted(t *testing.T) {
	local := catalog.NewLocalCatalog([]string{"1", "2", "3"})
	remote := remoteOf(map[string][]string{
		"full":    {"1", "2"},
		"partial": {"3", "4"},
	})

	report := Diff(local, remote)

	assert.Equal(t, map[string][]string{"partial": {"4"}}, report.MissingObjectsPerBag)
	assert.NotContains(t, report.MissingObjectsPerBag, "full")
	assert.Empty(t, report.UnexpectedLocal)
}

func TestDiff_PreservesBagOrder(t *testing.T) {
	local := catalog.NewLocalCatalog(nil)
	remote := remoteOf(map[string][]string{"bag": {"obj2", "obj9", "obj10"}})

	report := Diff(local, remote)

	assert.Equal(t, []string{"obj2", "obj9", "obj10"}, report.MissingObjectsPerBag["bag"])
	assert.Equal(t, 3, report.MissingObjectsTotal)
}

func TestDiff_UnexpectedSortedByCollation(t *testing.T) {
	local := catalog.NewLocalCatalog([]string{"10", "9", "100", "1"})
	remote := remoteOf(map[string][]string{"bag": {"1"}})

	report := Diff(local, remote)

	assert.Equal(t, []string{"9", "10", "100"}, report.UnexpectedLocal)
}

func TestDiff_EmptyInputs(t *testing.T) {
	report := Diff(catalog.NewLocalCatalog(nil), catalog.NewRemoteCatalog("1"))

	assert.Equal(t, catalog.SchemaVersion, report.Version)
	assert.NotNil(t, report.UnexpectedLocal)
	assert.Empty(t, report.UnexpectedLocal)
	assert.Empty(t, report.MissingObjectsPerBag)
	assert.Zero(t, report.MissingObjectsTotal)
}

func TestDiff_Idempotent(t *testing.T) {
	local := catalog.NewLocalCatalog([]string{"5", "3", "99", "1"})
	remote := remoteOf(map[string][]string{
		"dynamic:channel:2":  {"1", "2", "3"},
		"dynamic:member:10":  {"2", "4"},
		"dynamic:channel:11": {"7"},
	})

	first, err := catalog.Encode(Diff(local, remote))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := catalog.Encode(Diff(local, remote))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	local := catalog.NewLocalCatalog([]string{"b", "a"})
	remote := remoteOf(map[string][]string{"bag": {"c", "a"}})

	Diff(local, remote)

	assert.Equal(t, []string{"a", "b"}, local.Objects)
	assert.Equal(t, []string{"c", "a"}, remote.Bags["bag"])
}

func TestDiff_CarriesLocalSource(t *testing.T) {
	local := catalog.NewLocalCatalog([]string{"1", "2"})
	local.Source = "/data/uploads"

	report := Diff(local, remoteOf(map[string][]string{"bag": {"1"}}))
	assert.Equal(t, "/data/uploads", report.LocalSource)

	plan := BuildPlan(report)
	assert.Equal(t, "/data/uploads", plan.Source)
	assert.Equal(t, []Action{{Type: ActionDeleteLocal, Key: "2", Reason: "not assigned to any bag of the bucket"}}, plan.Actions)
}
