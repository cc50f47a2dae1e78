package bags

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storage-audit/core/query"
	"storage-audit/core/query/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func page(ids ...string) map[string]json.RawMessage {
	records := make([]bag, 0, len(ids))
	for _, id := range ids {
		records = append(records, bag{ID: id})
	}
	data, _ := json.Marshal(records)
	return map[string]json.RawMessage{"storageBags": data}
}

func atOffset(offset int) any {
	return mock.MatchedBy(func(vars map[string]any) bool {
		return vars["offset"] == offset && vars["storageBucket"] == "7"
	})
}

func TestListBags_Paginates(t *testing.T) {
	client := new(mocks.Client)
	client.On("Do", mock.Anything, bucketBagsQuery, atOffset(0)).Return(page("dynamic:channel:1", "dynamic:channel:2"), nil)
	client.On("Do", mock.Anything, bucketBagsQuery, atOffset(2)).Return(page("dynamic:member:3"), nil)

	e := NewEnumerator(client, 2, zap.NewNop())
	ids, err := e.ListBags(context.Background(), "7", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"dynamic:channel:1", "dynamic:channel:2", "dynamic:member:3"}, ids)
	client.AssertNumberOfCalls(t, "Do", 2)
}

func TestListBags_SubstringFilter(t *testing.T) {
	client := new(mocks.Client)
	client.On("Do", mock.Anything, bucketBagsQuery, atOffset(0)).Return(page(
		"dynamic:channel:142",
		"dynamic:channel:421",
		"dynamic:channel:4",
		"dynamic:member:2",
		"static:council",
	), nil)

	e := NewEnumerator(client, 10, zap.NewNop())
	ids, err := e.ListBags(context.Background(), "7", "42")
	require.NoError(t, err)

	assert.Equal(t, []string{"dynamic:channel:142", "dynamic:channel:421"}, ids)
}

func TestListBags_DropsDuplicates(t *testing.T) {
	client := new(mocks.Client)
	client.On("Do", mock.Anything, bucketBagsQuery, atOffset(0)).Return(page("a", "b", "a"), nil)

	e := NewEnumerator(client, 10, zap.NewNop())
	ids, err := e.ListBags(context.Background(), "7", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestListBags_Empty(t *testing.T) {
	client := new(mocks.Client)
	client.On("Do", mock.Anything, bucketBagsQuery, atOffset(0)).Return(page(), nil)

	e := NewEnumerator(client, 3000, zap.NewNop())
	ids, err := e.ListBags(context.Background(), "7", "")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListBags_TransportError(t *testing.T) {
	client := new(mocks.Client)
	client.On("Do", mock.Anything, bucketBagsQuery, atOffset(0)).Return(nil, &query.TransportError{Status: 500})

	e := NewEnumerator(client, 3000, zap.NewNop())
	ids, err := e.ListBags(context.Background(), "7", "")
	assert.Nil(t, ids)

	var te *query.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 500, te.Status)
	assert.Contains(t, err.Error(), "bucket 7")
}
