package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of query.Client
type Client struct {
	mock.Mock
}

func (m *Client) Do(ctx context.Context, query string, variables map[string]any) (map[string]json.RawMessage, error) {
	args := m.Called(ctx, query, variables)
	if data, ok := args.Get(0).(map[string]json.RawMessage); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
