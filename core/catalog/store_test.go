package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(Config{OutputDir: t.TempDir()})
}

func TestStore_Paths(t *testing.T) {
	s := NewStore(Config{OutputDir: "out"})

	assert.Equal(t, filepath.Join("out", "local.json"), s.LocalPath())
	assert.Equal(t, filepath.Join("out", "remote.json"), s.RemotePath(""))
	assert.Equal(t, filepath.Join("out", "remote_42.json"), s.RemotePath("42"))
	assert.Equal(t, filepath.Join("out", "diff.json"), s.DiffPath(""))
	assert.Equal(t, filepath.Join("out", "diff_42.json"), s.DiffPath("42"))
}

func TestStore_LocalRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteLocal(NewLocalCatalog([]string{"10", "9", "007"})))

	got, err := s.ReadLocal()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, got.Version)
	assert.Equal(t, []string{"007", "9", "10"}, got.Objects)
}

func TestStore_LocalSource(t *testing.T) {
	s := newTestStore(t)

	c := NewLocalCatalog([]string{"1"})
	c.Source = "s3://uploads/"
	require.NoError(t, s.WriteLocal(c))

	got, err := s.ReadLocal()
	require.NoError(t, err)
	assert.Equal(t, "s3://uploads/", got.Source)

	// Records written without a source still load.
	require.NoError(t, os.WriteFile(s.LocalPath(), []byte(`{"version": 1, "objects": ["2"]}`), 0o644))
	got, err = s.ReadLocal()
	require.NoError(t, err)
	assert.Empty(t, got.Source)
	assert.Equal(t, []string{"2"}, got.Objects)
}

func TestStore_RemoteScopedByBag(t *testing.T) {
	s := newTestStore(t)

	all := NewRemoteCatalog("3")
	all.Bags["dynamic:channel:1"] = []string{"1"}
	scoped := NewRemoteCatalog("3")
	scoped.Bags["dynamic:channel:42"] = []string{"2", "3"}

	require.NoError(t, s.WriteRemote("", all))
	require.NoError(t, s.WriteRemote("42", scoped))

	got, err := s.ReadRemote("42")
	require.NoError(t, err)
	assert.Equal(t, "3", got.Bucket)
	assert.Equal(t, map[string][]string{"dynamic:channel:42": {"2", "3"}}, got.Bags)

	got, err = s.ReadRemote("")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"dynamic:channel:1": {"1"}}, got.Bags)
}

func TestStore_DiffWritesEmptyCollections(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.WriteDiff("", &DiffReport{Version: SchemaVersion}))

	data, err := os.ReadFile(s.DiffPath(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 1,
		"unexpectedLocal": [],
		"missingObjectsPerBag": {},
		"missingObjectsTotal": 0,
		"unexpectedLocalTotal": 0
	}`, string(data))
}

func TestStore_ReadMissingRecord(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadRemote("42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "remote_42.json")
}

func TestStore_ReadMalformedRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.LocalPath(), []byte(`{"version":1,"objects":[`), 0o644))

	_, err := s.ReadLocal()

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, s.LocalPath(), pe.Path)
}

func TestStore_ReadLegacyFlatList(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.LocalPath(), []byte(`["1","2"]`), 0o644))

	_, err := s.ReadLocal()

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestStore_ReadUnknownVersion(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.DiffPath(""), []byte(`{"version":2}`), 0o644))

	_, err := s.ReadDiff("")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "unsupported schema version 2")
}

func TestStore_WriteLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteLocal(NewLocalCatalog([]string{"1"})))

	entries, err := os.ReadDir(filepath.Dir(s.LocalPath()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "local.json", entries[0].Name())
}

func TestStore_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	s := NewStore(Config{OutputDir: dir})

	require.NoError(t, s.WriteLocal(NewLocalCatalog(nil)))

	got, err := s.ReadLocal()
	require.NoError(t, err)
	assert.Empty(t, got.Objects)
	assert.NotNil(t, got.Objects)
}

func TestRemoteCatalog_ObjectCount(t *testing.T) {
	c := NewRemoteCatalog("1")
	c.Bags["a"] = []string{"1", "2"}
	c.Bags["b"] = []string{"2"}
	assert.Equal(t, 3, c.ObjectCount())
}
