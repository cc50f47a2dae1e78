package catalog

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ServesCachedRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteLocal(NewLocalCatalog([]string{"1"})))

	c := NewCache(s, time.Minute)
	first, err := c.Local()
	require.NoError(t, err)

	require.NoError(t, s.WriteLocal(NewLocalCatalog([]string{"1", "2"})))
	second, err := c.Local()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"1"}, second.Objects)

	c.Invalidate()
	third, err := c.Local()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, third.Objects)
}

func TestCache_ZeroTTLAlwaysReads(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteDiff("", &DiffReport{Version: SchemaVersion, UnexpectedLocalTotal: 1}))

	c := NewCache(s, 0)
	first, err := c.Diff("")
	require.NoError(t, err)
	assert.Equal(t, 1, first.UnexpectedLocalTotal)

	require.NoError(t, s.WriteDiff("", &DiffReport{Version: SchemaVersion, UnexpectedLocalTotal: 2}))
	second, err := c.Diff("")
	require.NoError(t, err)
	assert.Equal(t, 2, second.UnexpectedLocalTotal)
}

func TestCache_ErrorsNotCached(t *testing.T) {
	s := newTestStore(t)
	c := NewCache(s, time.Minute)

	_, err := c.Remote("42")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, s.WriteRemote("42", NewRemoteCatalog("3")))
	got, err := c.Remote("42")
	require.NoError(t, err)
	assert.Equal(t, "3", got.Bucket)
}

func TestCache_ConcurrentReads(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteLocal(NewLocalCatalog([]string{"1"})))
	c := NewCache(s, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Local()
			assert.NoError(t, err)
			assert.Equal(t, []string{"1"}, got.Objects)
		}()
	}
	wg.Wait()

	require.NoError(t, os.Remove(s.LocalPath()))
	_, err := c.Local()
	assert.NoError(t, err)
}
